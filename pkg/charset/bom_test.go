package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSniffBOM(t *testing.T) {
	testCases := []struct {
		name         string
		sample       []byte
		expectedOK   bool
		expectedEnc  string
		expectedSkip int
	}{
		{
			name:         "UTF-8 BOM",
			sample:       []byte{0xEF, 0xBB, 0xBF, 'h', 'i'},
			expectedOK:   true,
			expectedEnc:  "utf-8",
			expectedSkip: 3,
		},
		{
			name:         "UTF-16LE BOM",
			sample:       []byte{0xFF, 0xFE, 'h', 0x00},
			expectedOK:   true,
			expectedEnc:  "UTF-16LE",
			expectedSkip: 2,
		},
		{
			name:         "UTF-16BE BOM",
			sample:       []byte{0xFE, 0xFF, 0x00, 'h'},
			expectedOK:   true,
			expectedEnc:  "UTF-16BE",
			expectedSkip: 2,
		},
		{
			// The 2-byte UTF-16LE signature is a prefix of the 4-byte
			// UTF-32LE one and is checked first, so UTF-32LE input is
			// reported as UTF-16LE. Locked-in compatibility behavior.
			name:         "UTF-32LE BOM shadowed by UTF-16LE",
			sample:       []byte{0xFF, 0xFE, 0x00, 0x00, 'h', 0x00, 0x00, 0x00},
			expectedOK:   true,
			expectedEnc:  "UTF-16LE",
			expectedSkip: 2,
		},
		{
			name:         "UTF-32BE BOM",
			sample:       []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 'h'},
			expectedOK:   true,
			expectedEnc:  "UTF-32BE",
			expectedSkip: 4,
		},
		{
			name:       "no BOM",
			sample:     []byte("plain text"),
			expectedOK: false,
		},
		{
			name:       "partial UTF-8 BOM",
			sample:     []byte{0xEF, 0xBB},
			expectedOK: false,
		},
		{
			name:       "empty",
			sample:     nil,
			expectedOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			enc, skip, ok := sniffBOM(tc.sample)
			assert.Equal(t, tc.expectedOK, ok)
			if tc.expectedOK {
				assert.Equal(t, tc.expectedEnc, enc)
				assert.Equal(t, tc.expectedSkip, skip)
			}
		})
	}
}
