package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/task-registry/internal/model"
)

// PostgresSource reads the seed from a tasks table. It only runs SELECTs.
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{
		pool: pool,
	}
}

func (s *PostgresSource) Load(ctx context.Context) ([]model.Task, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, description, completed, priority, created_at
		FROM tasks
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query seed tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.Priority, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan seed task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
