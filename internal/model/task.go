package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the levels tasks can be listed by.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    *string   `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskInput holds the request body fields as decoded from JSON, before
// any type checks. Values are nil, bool, float64, string, []any or map[string]any.
type TaskInput struct {
	Title       any
	Description any
	Completed   any
	Priority    any
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

type TaskFilter struct {
	Completed *bool
	Priority  *Priority
	// SortByCreatedAt leaves insertion order when false.
	SortByCreatedAt bool
	Order           SortOrder
}
