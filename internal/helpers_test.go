package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.h")
	require.NoError(t, os.WriteFile(path, []byte("typedef int64 TimestampTz;\r\n\ntypedef uint64 Datum;\n"), 0644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"typedef int64 TimestampTz;", "", "typedef uint64 Datum;"}, lines)
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.h"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "functions.java")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))

	require.NoError(t, WriteFileAtomic(path, []byte("new")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	entries, err := os.ReadDir(directory)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomicMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "functions.java")

	assert.Error(t, WriteFileAtomic(path, []byte("content")))
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
