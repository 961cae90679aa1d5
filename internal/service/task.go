package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/BuzzLyutic/task-registry/internal/model"
	"github.com/BuzzLyutic/task-registry/internal/repo"
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	return s.repo.List(ctx, filter)
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	t, err := s.repo.Get(ctx, id)
	return t, notFound(err, MsgTaskNotFound)
}

// Create validates in and appends a new task. A falsy priority is stored as null.
func (s *TaskService) Create(ctx context.Context, in model.TaskInput) (model.Task, error) {
	t, err := s.validate(in)
	if err != nil {
		return t, err
	}

	t.Priority = nil
	if truthy(in.Priority) {
		t.Priority = priorityString(in.Priority)
	}
	return s.repo.Create(ctx, t)
}

// Update validates in and overwrites the task with the given id. Unlike
// Create, priority is stored as given: "" stays "" and only null or a
// missing field clears it.
func (s *TaskService) Update(ctx context.Context, id int64, in model.TaskInput) (model.Task, error) {
	t, err := s.validate(in)
	if err != nil {
		return t, err
	}

	t.ID = id
	t.Priority = priorityString(in.Priority)
	t, err = s.repo.Update(ctx, t)
	return t, notFound(err, MsgUpdateTaskNotFound)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id), MsgTaskNotFound)
}

// ListByPriority returns the tasks at level. No matches is an empty slice, not an error.
func (s *TaskService) ListByPriority(ctx context.Context, level string) ([]model.Task, error) {
	p := model.Priority(level)
	if !p.IsValid() {
		return nil, validationError(MsgInvalidPriorityLevel)
	}
	return s.repo.List(ctx, model.TaskFilter{Priority: &p})
}

// validate checks the fields in order and reports only the first failure.
func (s *TaskService) validate(in model.TaskInput) (model.Task, error) {
	var t model.Task

	title, ok := in.Title.(string)
	if !ok || title == "" {
		return t, validationError(MsgTitleRequired)
	}
	description, ok := in.Description.(string)
	if !ok || description == "" {
		return t, validationError(MsgDescriptionRequired)
	}
	completed, ok := in.Completed.(bool)
	if !ok {
		return t, validationError(MsgCompletedNotBoolean)
	}

	t.Title = title
	t.Description = description
	t.Completed = completed
	return t, nil
}

// ParseID reads a task id from a path segment the way integer-prefix
// parsing does: leading spaces and a sign are allowed, and parsing stops
// at the first non-digit. "12abc" is 12; "abc" is an error.
func ParseID(raw string) (int64, error) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, validationError(MsgInvalidID)
	}

	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, validationError(MsgInvalidID)
	}
	return id, nil
}

// truthy mirrors loose truthiness over decoded JSON values.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

// priorityString stores any non-null priority as text, since priorities
// are not checked against the known levels on write.
func priorityString(v any) *string {
	var s string
	switch v := v.(type) {
	case nil:
		return nil
	case string:
		s = v
	case bool:
		s = strconv.FormatBool(v)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		s = string(b)
	}
	return &s
}
