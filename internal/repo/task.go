package repo

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/BuzzLyutic/task-registry/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
)

// TaskRepo keeps the task collection in memory, in insertion order.
// Every method holds the lock for its whole pass over the slice, so each
// operation is applied as a single step.
type TaskRepo struct {
	mu    sync.RWMutex
	tasks []model.Task
	now   func() time.Time
}

func NewTaskRepo(seed []model.Task) *TaskRepo {
	return &TaskRepo{
		tasks: slices.Clone(seed),
		now:   time.Now,
	}
}

// Create assigns the id as the current length plus one. The id is not
// checked against existing ones, so it can repeat one still in the
// collection after a deletion.
func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = int64(len(r.tasks)) + 1
	t.CreatedAt = r.now()
	r.tasks = append(r.tasks, t)
	return t, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}
	return r.tasks[i], nil
}

func (r *TaskRepo) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	r.mu.RLock()
	tasks := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		if filter.Priority != nil && (t.Priority == nil || *t.Priority != string(*filter.Priority)) {
			continue
		}
		tasks = append(tasks, t)
	}
	r.mu.RUnlock()

	if filter.SortByCreatedAt {
		slices.SortStableFunc(tasks, func(a, b model.Task) int {
			if filter.Order == model.OrderDesc {
				return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
			}
			return cmp.Compare(a.CreatedAt.UnixNano(), b.CreatedAt.UnixNano())
		})
	}
	return tasks, nil
}

// Update overwrites the mutable fields of the first task with t.ID.
// ID and CreatedAt are kept.
func (r *TaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(t.ID)
	if i < 0 {
		return t, ErrorNotFound
	}

	cur := &r.tasks[i]
	cur.Title = t.Title
	cur.Description = t.Description
	cur.Completed = t.Completed
	cur.Priority = t.Priority
	return *cur, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrorNotFound
	}
	r.tasks = slices.Delete(r.tasks, i, i+1)
	return nil
}

func (r *TaskRepo) Len(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks), nil
}

// indexOf returns the first position holding id, or -1. Callers hold the lock.
func (r *TaskRepo) indexOf(id int64) int {
	return slices.IndexFunc(r.tasks, func(t model.Task) bool { return t.ID == id })
}
