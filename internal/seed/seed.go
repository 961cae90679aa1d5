// Package seed loads the initial task collection. Sources are read once
// at startup and never written back.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/BuzzLyutic/task-registry/internal/model"
)

//go:embed task.json
var defaultSeed []byte

type Source interface {
	Load(ctx context.Context) ([]model.Task, error)
}

// seedFile is the on-disk layout: {"tasks": [...]}.
type seedFile struct {
	Tasks []model.Task `json:"tasks"`
}

// FileSource reads tasks from a JSON file. An empty Path uses the seed
// compiled into the binary.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Load(ctx context.Context) ([]model.Task, error) {
	data := defaultSeed
	if s.Path != "" {
		var err error
		if data, err = os.ReadFile(s.Path); err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	tasks, err := decode(data)
	if err != nil {
		name := s.Path
		if name == "" {
			name = "embedded seed"
		}
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return tasks, nil
}

func decode(data []byte) ([]model.Task, error) {
	var f seedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Tasks == nil {
		return nil, errors.New(`missing "tasks" array`)
	}
	return f.Tasks, nil
}
