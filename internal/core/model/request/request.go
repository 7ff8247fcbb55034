package request

import (
	"time"

	"todoweb/internal/core/domain"
)

const dateLayout = "2006-01-02"

// TodoForm carries the raw create/edit form fields. The due date stays a
// string until ToDomain so a malformed value can be reported as a field
// error instead of a binding failure.
type TodoForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	DueDate     string `form:"due_date"`
	Completed   bool   `form:"completed"`
}

// ToDomain converts the form into a domain record. A second return of
// field-keyed messages reports parse problems; validation rules proper
// run later against the domain struct.
func (f *TodoForm) ToDomain() (domain.Todo, map[string]string) {
	todo := domain.Todo{
		Title:       f.Title,
		Description: f.Description,
		Completed:   f.Completed,
	}

	if f.DueDate != "" {
		due, err := time.ParseInLocation(dateLayout, f.DueDate, time.Local)

		if err != nil {
			return todo, map[string]string{"due_date": "Enter a valid date."}
		}

		todo.DueDate = &due
	}

	return todo, nil
}

// FromDomain prefills the edit form.
func FromDomain(todo domain.Todo) TodoForm {
	form := TodoForm{
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
	}

	if todo.DueDate != nil {
		form.DueDate = todo.DueDate.Format(dateLayout)
	}

	return form
}
