package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"todoweb/internal/adapter/database/postgres"
	"todoweb/internal/core/domain"
	"todoweb/internal/core/port"
)

// Postgres sorts NULLs last on ascending order, so the missing-due-date
// group has to be pulled to the front explicitly.
var listOrder = []string{"completed ASC", "due_date ASC NULLS FIRST", "created_at DESC", "id DESC"}

type TodoRepository struct {
	db *postgres.DB
}

func NewTodoRepository(db *postgres.DB) port.TodoRepository {
	return &TodoRepository{db: db}
}

func statusPredicate(query sq.SelectBuilder, status domain.StatusFilter) sq.SelectBuilder {
	switch status {
	case domain.StatusCompleted:
		return query.Where(sq.Eq{"completed": true})
	case domain.StatusOpen:
		return query.Where(sq.Eq{"completed": false})
	default:
		return query
	}
}

func (tr *TodoRepository) List(ctx context.Context, status domain.StatusFilter, limit, offset int) ([]domain.Todo, error) {
	query := tr.db.QueryBuilder.
		Select("id", "title", "description", "due_date", "completed", "created_at", "updated_at").
		From("todos").
		OrderBy(listOrder...).
		Limit(uint64(limit)).
		Offset(uint64(offset))

	query = statusPredicate(query, status)

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.Query(ctx, stmt, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	todos := make([]domain.Todo, 0)

	for rows.Next() {
		todo, err := scanTodo(rows)

		if err != nil {
			return nil, err
		}

		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

func (tr *TodoRepository) Count(ctx context.Context, status domain.StatusFilter) (int64, error) {
	stmt, args, err := statusPredicate(tr.db.QueryBuilder.Select("COUNT(*)").From("todos"), status).ToSql()

	if err != nil {
		return 0, err
	}

	var count int64

	if err := tr.db.QueryRow(ctx, stmt, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (tr *TodoRepository) GetByID(ctx context.Context, id int64) (domain.Todo, error) {
	stmt, args, err := tr.db.QueryBuilder.
		Select("id", "title", "description", "due_date", "completed", "created_at", "updated_at").
		From("todos").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	rows, err := tr.db.Query(ctx, stmt, args...)

	if err != nil {
		return domain.Todo{}, err
	}

	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Todo{}, err
		}

		return domain.Todo{}, domain.ErrNotFound
	}

	return scanTodo(rows)
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	stmt, args, err := tr.db.QueryBuilder.Insert("todos").
		Columns("title", "description", "due_date", "completed", "created_at", "updated_at").
		Values(todo.Title, todo.Description, todo.DueDate, todo.Completed, todo.CreatedAt, todo.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	var id int64

	if err := tr.db.QueryRow(ctx, stmt, args...).Scan(&id); err != nil {
		log.Error().Err(err).Str("title", todo.Title).Msg("todo insert failed")
		return domain.Todo{}, err
	}

	return tr.GetByID(ctx, id)
}

func (tr *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	stmt, args, err := tr.db.QueryBuilder.Update("todos").
		SetMap(todo.ToMap()).
		Where(sq.Eq{"id": todo.ID}).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	result, err := tr.db.Exec(ctx, stmt, args...)

	if err != nil {
		return domain.Todo{}, err
	}

	if result.RowsAffected() == 0 {
		return domain.Todo{}, domain.ErrNotFound
	}

	return tr.GetByID(ctx, todo.ID)
}

func (tr *TodoRepository) ToggleComplete(ctx context.Context, id int64) (domain.Todo, error) {
	stmt, args, err := tr.db.QueryBuilder.Update("todos").
		Set("completed", sq.Expr("NOT completed")).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	result, err := tr.db.Exec(ctx, stmt, args...)

	if err != nil {
		return domain.Todo{}, err
	}

	if result.RowsAffected() == 0 {
		return domain.Todo{}, domain.ErrNotFound
	}

	return tr.GetByID(ctx, id)
}

func (tr *TodoRepository) Delete(ctx context.Context, id int64) error {
	stmt, args, err := tr.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.Exec(ctx, stmt, args...)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func scanTodo(rows pgx.Rows) (domain.Todo, error) {
	var todo domain.Todo

	err := rows.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.DueDate, &todo.Completed, &todo.CreatedAt, &todo.UpdatedAt)

	if err != nil {
		return domain.Todo{}, err
	}

	return todo, nil
}
