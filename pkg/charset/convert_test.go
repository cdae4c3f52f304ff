package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/stack-charset/internal/testutil"
	"github.com/stackvity/stack-charset/pkg/charset"
)

func TestConvertFile(t *testing.T) {
	t.Run("legacy cyrillic to utf-8", func(t *testing.T) {
		const text = "Привет, мир! 1234567890 hello world"
		path := testutil.WriteTempFile(t, "legacy.txt", encodeFixture(t, text, "windows-1251"))

		guesser := &testutil.MockGuesser{}
		guesser.On("Guess", mock.Anything).Return("windows-1251", nil)

		out, err := charset.ConvertFile(path, "UTF-8", charset.Options{Guesser: guesser})

		require.NoError(t, err)
		assert.Equal(t, text, string(out))
	})

	t.Run("utf-8 to windows-1251", func(t *testing.T) {
		const text = "обычный текст"
		path := testutil.WriteTempFile(t, "modern.txt", []byte(text))

		out, err := charset.ConvertFile(path, "windows-1251", charset.Options{})

		require.NoError(t, err)
		assert.Equal(t, encodeFixture(t, text, "windows-1251"), out)
	})

	t.Run("invalid source bytes are fatal", func(t *testing.T) {
		// A UTF-8 mark followed by bytes no UTF-8 decoder accepts: detection
		// tolerates the substitutions, conversion must not.
		content := append([]byte{0xEF, 0xBB, 0xBF}, 0xC0, 0xC1, 0xFF)
		path := testutil.WriteTempFile(t, "broken.txt", content)

		_, err := charset.ConvertFile(path, "UTF-8", charset.Options{})

		assert.ErrorIs(t, err, charset.ErrConvertFailed)
	})

	t.Run("unencodable target", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "korean.txt", []byte("안녕하세요 세계"))

		_, err := charset.ConvertFile(path, "windows-1252", charset.Options{})

		assert.ErrorIs(t, err, charset.ErrConvertFailed)
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := charset.ConvertFile("/no/such/file.txt", "UTF-8", charset.Options{})

		assert.ErrorIs(t, err, charset.ErrSourceUnavailable)
	})
}
