package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n* Item 3\n• Item 4"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "* Item 3")
	assert.Contains(t, result, "• Item 4")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with    multiple    spaces"
	result := CleanText(input)

	assert.Contains(t, result, "Line with multiple spaces")
	assert.NotContains(t, result, "    ")
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3"
	result := CleanText(input)

	assert.Equal(t, "Line 1\nLine 2\nLine 3", result)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n   "))
}

func TestCleanText_TrimsOuterWhitespace(t *testing.T) {
	input := "\n\n  Summary  \n\n"
	result := CleanText(input)

	assert.Equal(t, "Summary", result)
}

func TestIngestFromFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("John Smith\r\nPython   and   SQL\n"), 0o644))

	text, meta, err := IngestFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "John Smith\nPython and SQL", text)
	require.NotNil(t, meta)
	assert.Equal(t, path, meta.Source)
	assert.Equal(t, ComputeHash(text), meta.Hash)
}

func TestIngestFromFile_NotFound(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_InvalidPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a real pdf"), 0o644))

	_, _, err := IngestFromFile(path)
	require.Error(t, err)
}
