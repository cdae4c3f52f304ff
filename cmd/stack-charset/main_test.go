package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/stackvity/stack-charset/internal/testutil"
)

// chdirTemp moves the test into a fresh temp dir and restores the previous
// working directory on cleanup (equivalent of t.Chdir, which needs Go 1.24+).
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// execute runs the root command with args and captures combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdirTemp(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestDetectCommand_Text(t *testing.T) {
	path := testutil.WriteTempFile(t, "plain.txt", []byte("hello world\r\n"))

	out, err := execute(t, "detect", "--output", "text", path)

	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "utf_8")
	assert.Contains(t, out, "CRLF")
}

func TestDetectCommand_JSON(t *testing.T) {
	path := testutil.WriteTempFile(t, "marked.txt", append([]byte{0xEF, 0xBB, 0xBF}, []byte("content\n")...))

	out, err := execute(t, "detect", "--output", "json", path)

	require.NoError(t, err)
	var reports []fileReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, path, reports[0].Path)
	assert.Equal(t, "utf_8", reports[0].Encoding)
	assert.Equal(t, "LF", reports[0].Newlines)
	assert.Empty(t, reports[0].Error)
}

func TestDetectCommand_YAML(t *testing.T) {
	path := testutil.WriteTempFile(t, "plain.txt", []byte("content\n"))

	out, err := execute(t, "detect", "--output", "yaml", path)

	require.NoError(t, err)
	var reports []fileReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "utf_8", reports[0].Encoding)
}

func TestDetectCommand_MultipleFiles(t *testing.T) {
	a := testutil.WriteTempFile(t, "a.txt", []byte("first\n"))
	b := testutil.WriteTempFile(t, "b.txt", []byte("second\r\n"))

	out, err := execute(t, "detect", "--output", "json", a, b)

	require.NoError(t, err)
	var reports []fileReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	assert.Len(t, reports, 2)
}

func TestDetectCommand_MissingFileFailsButReports(t *testing.T) {
	good := testutil.WriteTempFile(t, "good.txt", []byte("fine\n"))
	missing := filepath.Join(t.TempDir(), "absent.txt")

	out, err := execute(t, "detect", "--output", "json", good, missing)

	// The run reports every file and then fails overall.
	require.Error(t, err)
	var reports []fileReport
	payload := out[:strings.LastIndex(out, "]")+1]
	require.NoError(t, json.Unmarshal([]byte(payload), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "utf_8", reports[0].Encoding)
	assert.NotEmpty(t, reports[1].Error)
}

func TestDetectCommand_UnknownFormat(t *testing.T) {
	path := testutil.WriteTempFile(t, "plain.txt", []byte("content\n"))

	_, err := execute(t, "detect", "--output", "xml", path)

	assert.Error(t, err)
}

func TestConvertCommand(t *testing.T) {
	path := testutil.WriteTempFile(t, "text.txt", []byte("обычный текст"))

	out, err := execute(t, "convert", "--to", "windows-1251", path)

	require.NoError(t, err)
	// Single-byte Cyrillic: one byte per letter plus the space.
	assert.Len(t, out, 13)
}

func TestConvertCommand_OutFile(t *testing.T) {
	src := testutil.WriteTempFile(t, "src.txt", []byte("plain ascii\n"))
	dst := filepath.Join(t.TempDir(), "dst.txt")

	_, err := execute(t, "convert", "--to", "UTF-8", "-o", dst, src)

	require.NoError(t, err)
	assert.FileExists(t, dst)
}

func TestRootCommand_Version(t *testing.T) {
	out, err := execute(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "stack-charset version")
}
