package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "task.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_Embedded(t *testing.T) {
	tasks, err := NewFileSource("").Load(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, tasks)

	seen := make(map[int64]bool)
	for i, task := range tasks {
		assert.Equal(t, int64(i+1), task.ID, "embedded ids are 1..n so len+1 starts clean")
		assert.NotEmpty(t, task.Title)
		assert.NotEmpty(t, task.Description)
		assert.False(t, task.CreatedAt.IsZero())
		assert.False(t, seen[task.ID])
		seen[task.ID] = true
	}
}

func TestFileSource_File(t *testing.T) {
	path := writeSeed(t, `{"tasks":[
		{"id":1,"title":"A","description":"B","completed":false,"priority":"low","createdAt":"2024-02-01T10:00:00Z"},
		{"id":2,"title":"C","description":"D","completed":true,"priority":null,"createdAt":"2024-02-02T10:00:00.5Z"}
	]}`)

	tasks, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "A", tasks[0].Title)
	require.NotNil(t, tasks[0].Priority)
	assert.Equal(t, "low", *tasks[0].Priority)
	assert.Equal(t, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), tasks[0].CreatedAt.UTC())

	assert.True(t, tasks[1].Completed)
	assert.Nil(t, tasks[1].Priority)
}

func TestFileSource_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			wantErr: "read seed file",
		},
		{
			name:    "malformed json",
			path:    func(t *testing.T) string { return writeSeed(t, `{"tasks":[`) },
			wantErr: "decode",
		},
		{
			name:    "no tasks key",
			path:    func(t *testing.T) string { return writeSeed(t, `{"items":[]}`) },
			wantErr: `missing "tasks" array`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileSource(tt.path(t)).Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFileSource_EmptyTasks(t *testing.T) {
	tasks, err := NewFileSource(writeSeed(t, `{"tasks":[]}`)).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
