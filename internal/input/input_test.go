package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesInlineData(t *testing.T) {
	lines, err := Lines("a  b\n1  2\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"a  b", "1  2"}, lines)
}

func TestLinesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	require.NoError(t, os.WriteFile(path, []byte("a  b\r\n1  2\n"), 0o644))

	lines, err := Lines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a  b", "1  2"}, lines)
}

func TestLinesFromFileInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	require.NoError(t, os.WriteFile(path, []byte("a  \xff\n"), 0o644))

	lines, err := Lines(path)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "a  �", lines[0])
}

func TestLinesMissingFile(t *testing.T) {
	_, err := Lines(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestSplitLines(t *testing.T) {
	assert.Empty(t, splitLines(""))
	assert.Equal(t, []string{"a"}, splitLines("a"))
	assert.Equal(t, []string{"a", ""}, splitLines("a\n\n"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\r\nb\r\n"))
}
