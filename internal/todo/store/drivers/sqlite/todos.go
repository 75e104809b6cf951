package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite/gen"
)

type todosRepo struct {
	q *gen.Queries
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	row, err := r.q.CreateTodo(ctx, gen.CreateTodoParams{
		UserID:      t.UserID,
		Title:       t.Title,
		Description: mapOptionalString(t.Description),
		Completed:   t.Completed,
		CreatedAt:   toMillis(t.CreatedAt),
		UpdatedAt:   toMillis(t.UpdatedAt),
	})
	if err != nil {
		return domain.Todo{}, err
	}
	return mapTodo(row), nil
}

func (r *todosRepo) GetTodoByID(ctx context.Context, id int64) (domain.Todo, error) {
	row, err := r.q.GetTodoByID(ctx, id)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return mapTodo(row), nil
}

func (r *todosRepo) ListTodosByUser(ctx context.Context, userID int64) ([]domain.Todo, error) {
	rows, err := r.q.ListTodosByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, len(rows))
	for i, row := range rows {
		todos[i] = mapTodo(row)
	}
	return todos, nil
}

func (r *todosRepo) UpdateTodo(ctx context.Context, id int64, p domain.TodoPatch, now time.Time) (domain.Todo, error) {
	row, err := r.q.UpdateTodo(ctx, gen.UpdateTodoParams{
		Title:       mapOptionalString(p.Title),
		Description: mapOptionalString(p.Description),
		Completed:   mapOptionalBool(p.Completed),
		UpdatedAt:   toMillis(now),
		ID:          id,
	})
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return mapTodo(row), nil
}

func (r *todosRepo) DeleteTodo(ctx context.Context, id int64) error {
	return mapRowsAffected(r.q.DeleteTodo(ctx, id))
}

func (r *todosRepo) DeleteTodosByUser(ctx context.Context, userID int64) (int64, error) {
	return r.q.DeleteTodosByUser(ctx, userID)
}
