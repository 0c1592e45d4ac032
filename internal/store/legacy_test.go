package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/taskman/pkg/types"
)

func writeLegacyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportLegacy(t *testing.T) {
	legacy := writeLegacyFile(t,
		"Buy_milk 2L_whole_milk 2024-05-01 True\n"+
			"\n"+
			"Walk_dog around_the_park 2024-05-02 False\n")

	s := newTestStore(t)
	n, err := s.Import(legacy)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, "2L whole milk", tasks[0].Description)
	assert.Equal(t, "2024-05-01", tasks[0].DueDate)
	assert.True(t, tasks[0].Completed)
	assert.Equal(t, "Walk dog", tasks[1].Title)
	assert.False(t, tasks[1].Completed)

	reloaded := New(s.Path())
	require.NoError(t, reloaded.Load())
	assert.Len(t, reloaded.Tasks(), 2)
}

func TestImportLegacyLongLine(t *testing.T) {
	desc := strings.Repeat("y", 5<<20)
	legacy := writeLegacyFile(t, "Big "+desc+" 2024-05-01 False\r\n   \r\n")

	s := newTestStore(t)
	n, err := s.Import(legacy)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, desc, s.Tasks()[0].Description)
}

func TestImportLegacyAppendsAfterExisting(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(types.NewTask("existing", "task", "2024-01-01")))

	n, err := s.Import(writeLegacyFile(t, "new task 2024-02-02 False\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "existing", tasks[0].Title)
	assert.Equal(t, "new", tasks[1].Title)
	assert.Equal(t, "task", tasks[1].Description)
}

func TestImportLegacyCompletedIsExactTrue(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Import(writeLegacyFile(t, "a b 2024-01-01 true\nc d 2024-01-01 TRUE\n"))
	require.NoError(t, err)
	for _, task := range s.Tasks() {
		assert.False(t, task.Completed, "only the exact string True marks completion")
	}
}

func TestImportLegacyMalformed(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
	}{
		{name: "too few fields", content: "a b 2024-01-01\n", wantLine: 1},
		{name: "too many fields", content: "ok ok 2024-01-01 False\na b c 2024-01-01 False\n", wantLine: 2},
		{name: "double space", content: "a  b 2024-01-01 False\n", wantLine: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			n, err := s.Import(writeLegacyFile(t, tt.content))

			require.Error(t, err)
			assert.Zero(t, n)
			assert.ErrorIs(t, err, types.ErrMalformedRecord)
			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.wantLine, de.Line)
			assert.Equal(t, 0, s.Len())

			_, statErr := os.Stat(s.Path())
			assert.True(t, os.IsNotExist(statErr), "failed import must not write")
		})
	}
}

func TestImportLegacyMissingFile(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Import(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, types.ErrStorageIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
