package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a todo id does not exist in the store.
var ErrNotFound = errors.New("todo not found")

type Todo struct {
	ID          int64
	Title       string `validate:"required,max=200"`
	Description string
	DueDate     *time.Time `validate:"omitempty,fromtoday"`
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Label is the human-readable form used on confirmation pages.
func (t *Todo) Label() string {
	if t.DueDate != nil {
		return fmt.Sprintf("%s (due %s)", t.Title, t.DueDate.Format("2006-01-02"))
	}

	return t.Title
}

func (t *Todo) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"title":       t.Title,
		"description": t.Description,
		"due_date":    t.DueDate,
		"completed":   t.Completed,
		"updated_at":  t.UpdatedAt,
	}
}
