package port

import (
	"context"

	"todoweb/internal/core/domain"
)

type TodoRepository interface {
	List(ctx context.Context, status domain.StatusFilter, limit, offset int) ([]domain.Todo, error)
	Count(ctx context.Context, status domain.StatusFilter) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Update(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	ToggleComplete(ctx context.Context, id int64) (domain.Todo, error)
	Delete(ctx context.Context, id int64) error
}

type TodoService interface {
	ListPage(ctx context.Context, status domain.StatusFilter, page int) (domain.TodoPage, error)
	Get(ctx context.Context, id int64) (domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Update(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	ToggleComplete(ctx context.Context, id int64) (domain.Todo, error)
	Delete(ctx context.Context, id int64) error
}
