package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONLReplacesContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.jsonl")

	require.NoError(t, writeJSONL(path, [][]byte{[]byte(`{"a":1}`), []byte(`{"b":2}`)}))
	require.NoError(t, writeJSONL(path, [][]byte{[]byte(`{"c":3}`)}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"c\":3}\n", string(data))
}

func TestWriteJSONLLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.jsonl")
	require.NoError(t, writeJSONL(path, [][]byte{[]byte(`{}`)}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks.jsonl", entries[0].Name())
}

func TestWriteJSONLFailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "tasks.jsonl")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0o644))

	err := writeJSONL(target, [][]byte{[]byte(`{}`)})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file %s left behind", e.Name())
	}
	_, err = os.Stat(filepath.Join(target, "keep"))
	assert.NoError(t, err)
}

func TestWriteJSONLCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.jsonl")
	require.NoError(t, writeJSONL(path, nil))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestReadJSONLLineNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("a\n\nb\nc"), 0o644))

	lines, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, 1, lines[0].num)
	assert.Equal(t, 3, lines[1].num)
	assert.Equal(t, 4, lines[2].num)
	assert.Equal(t, "c", string(lines[2].data))
}

func TestReadLinesSkipsBlankAndStripsTerminators(t *testing.T) {
	input := "a\r\n  \n\nb\n\r\nc"
	lines, err := readLines(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, lines, 3)
	assert.Equal(t, jsonlLine{num: 1, data: []byte("a")}, lines[0])
	assert.Equal(t, jsonlLine{num: 4, data: []byte("b")}, lines[1])
	assert.Equal(t, jsonlLine{num: 6, data: []byte("c")}, lines[2])
}
