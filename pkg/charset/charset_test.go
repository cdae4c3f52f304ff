package charset_test

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/stack-charset/internal/testutil"
	"github.com/stackvity/stack-charset/pkg/charset"
)

func TestAnalyzeFile(t *testing.T) {
	t.Run("reads the whole file", func(t *testing.T) {
		content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("first\r\nsecond\r\n")...)
		path := testutil.WriteTempFile(t, "marked.txt", content)

		match, err := charset.AnalyzeFile(path, charset.Options{})

		require.NoError(t, err)
		assert.Equal(t, "utf_8", match.Encoding)
		assert.Equal(t, charset.NewlineCRLF, match.Newlines)
		assert.Equal(t, content, match.RawBytes)
		assert.Equal(t, "first\r\nsecond\r\n", match.DecodedText)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := charset.AnalyzeFile("/definitely/not/here.txt", charset.Options{})

		assert.ErrorIs(t, err, charset.ErrSourceUnavailable)
	})

	t.Run("empty file", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "empty.txt", nil)

		_, err := charset.AnalyzeFile(path, charset.Options{})

		assert.ErrorIs(t, err, charset.ErrEmptySource)
		assert.Contains(t, err.Error(), path)
	})
}

func TestAnalyzeFileSample(t *testing.T) {
	t.Run("sample is capped at the configured size", func(t *testing.T) {
		content := testutil.RepeatToLength([]byte("sampled content line\n"), 8000)
		path := testutil.WriteTempFile(t, "large.txt", content)

		match, err := charset.AnalyzeFileSample(path, charset.Options{
			ChunkSize:     512,
			MaxSampleSize: 2048,
		})

		require.NoError(t, err)
		assert.Len(t, match.RawBytes, 2048)
		assert.Equal(t, "utf_8", match.Encoding)
	})

	t.Run("file smaller than the cap is read in full", func(t *testing.T) {
		content := []byte("short file\n")
		path := testutil.WriteTempFile(t, "small.txt", content)

		match, err := charset.AnalyzeFileSample(path, charset.Options{})

		require.NoError(t, err)
		assert.Equal(t, content, match.RawBytes)
	})
}

func TestAnalyzeReader(t *testing.T) {
	t.Run("bounded read from an arbitrary reader", func(t *testing.T) {
		src := bytes.NewReader(testutil.RepeatToLength([]byte("a"), 3000))

		match, err := charset.AnalyzeReader(src, charset.Options{
			ChunkSize:     512,
			MaxSampleSize: 1024,
		})

		require.NoError(t, err)
		assert.Len(t, match.RawBytes, 1024)
		assert.Equal(t, "utf_8", match.Encoding)
	})

	t.Run("read failure surfaces as a source read error", func(t *testing.T) {
		src := iotest.ErrReader(errors.New("disk gone"))

		_, err := charset.AnalyzeReader(src, charset.Options{})

		assert.ErrorIs(t, err, charset.ErrSourceRead)
	})

	t.Run("empty reader", func(t *testing.T) {
		_, err := charset.AnalyzeReader(bytes.NewReader(nil), charset.Options{})

		assert.ErrorIs(t, err, charset.ErrEmptySource)
	})
}
