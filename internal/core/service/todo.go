package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"todoweb/internal/core/domain"
	"todoweb/internal/core/port"
)

// PageSize is the fixed number of todos per listing page.
const PageSize = 10

type TodoService struct {
	repo port.TodoRepository
}

func NewTodoService(repo port.TodoRepository) *TodoService {
	return &TodoService{repo}
}

// ListPage returns one page of the filtered listing. Out-of-range page
// numbers are clamped rather than rejected, so a stale pagination link
// still renders the nearest valid page.
func (ts *TodoService) ListPage(ctx context.Context, status domain.StatusFilter, page int) (domain.TodoPage, error) {
	count, err := ts.repo.Count(ctx, status)

	if err != nil {
		log.Error().Err(err).Str("status", status.String()).Msg("counting todos failed")
		return domain.TodoPage{}, err
	}

	totalPages := int((count + PageSize - 1) / PageSize)

	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}

	if page > totalPages {
		page = totalPages
	}

	todos, err := ts.repo.List(ctx, status, PageSize, (page-1)*PageSize)

	if err != nil {
		log.Error().Err(err).Str("status", status.String()).Int("page", page).Msg("listing todos failed")
		return domain.TodoPage{}, err
	}

	return domain.TodoPage{
		Todos:      todos,
		Status:     status,
		Page:       page,
		TotalPages: totalPages,
		TotalCount: count,
	}, nil
}

func (ts *TodoService) Get(ctx context.Context, id int64) (domain.Todo, error) {
	return ts.repo.GetByID(ctx, id)
}

func (ts *TodoService) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	now := time.Now()
	todo.ID = 0
	todo.CreatedAt = now
	todo.UpdatedAt = now

	created, err := ts.repo.Create(ctx, todo)

	if err != nil {
		log.Error().Err(err).Str("title", todo.Title).Msg("creating todo failed")
		return domain.Todo{}, err
	}

	return created, nil
}

func (ts *TodoService) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	todo.UpdatedAt = time.Now()

	updated, err := ts.repo.Update(ctx, todo)

	if err != nil {
		log.Error().Err(err).Int64("id", todo.ID).Msg("updating todo failed")
		return domain.Todo{}, err
	}

	return updated, nil
}

// ToggleComplete flips the completed flag and refreshes updated_at,
// touching no other fields.
func (ts *TodoService) ToggleComplete(ctx context.Context, id int64) (domain.Todo, error) {
	return ts.repo.ToggleComplete(ctx, id)
}

func (ts *TodoService) Delete(ctx context.Context, id int64) error {
	return ts.repo.Delete(ctx, id)
}
