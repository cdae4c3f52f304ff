// Package testutil provides mock implementations for the capability
// interfaces consumed by the stack-charset core library (pkg/charset and
// subpackages). These mocks facilitate unit testing by isolating the
// pipeline from the real statistical guesser and codec tables.
package testutil

import (
	"github.com/stackvity/stack-charset/pkg/charset"
	"github.com/stretchr/testify/mock"
)

// MockGuesser provides a mock implementation of the guesser.Guesser
// interface. Configure expectations using testify/mock methods
// (e.g. .On("Guess", ...).Return(...)).
type MockGuesser struct {
	mock.Mock
}

// Guess mocks the Guess method.
func (m *MockGuesser) Guess(sample []byte) (label string, err error) {
	args := m.Called(sample)
	label, _ = args.Get(0).(string)
	err = args.Error(1)
	return
}

// MockCodec provides a mock implementation of the codec.Codec interface.
// Configure expectations using testify/mock methods
// (e.g. .On("Decode", ...).Return(...)).
type MockCodec struct {
	mock.Mock
}

// Decode mocks the Decode method.
func (m *MockCodec) Decode(sample []byte, label string) (text string, substituted int, total int, hadSubstitutions bool, err error) {
	args := m.Called(sample, label)
	text, _ = args.Get(0).(string)
	substituted, _ = args.Get(1).(int)
	total, _ = args.Get(2).(int)
	hadSubstitutions, _ = args.Get(3).(bool)
	err = args.Error(4)
	return
}

// Encode mocks the Encode method.
func (m *MockCodec) Encode(text string, label string) (out []byte, err error) {
	args := m.Called(text, label)
	out, _ = args.Get(0).([]byte)
	err = args.Error(1)
	return
}

// MockHooks provides a mock implementation of the charset.Hooks interface.
// Configure expectations using testify/mock methods.
type MockHooks struct {
	mock.Mock
}

// OnSampleRead mocks the OnSampleRead method.
func (m *MockHooks) OnSampleRead(n int) error {
	args := m.Called(n)
	return args.Error(0)
}

// OnCandidateScored mocks the OnCandidateScored method.
func (m *MockHooks) OnCandidateScored(sc charset.ScoredCandidate) error {
	args := m.Called(sc)
	return args.Error(0)
}

// OnResult mocks the OnResult method.
func (m *MockHooks) OnResult(res charset.Result) error {
	args := m.Called(res)
	return args.Error(0)
}
