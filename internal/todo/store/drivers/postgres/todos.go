package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/jackc/pgx/v5"
)

const todoColumns = `id, user_id, title, description, completed, created_at, updated_at`

type todosRepo struct {
	db dbtx
}

func scanTodo(row pgx.Row) (domain.Todo, error) {
	var t domain.Todo
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Todo{}, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO todos (user_id, title, description, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+todoColumns,
		t.UserID, t.Title, t.Description, t.Completed, t.CreatedAt, t.UpdatedAt,
	)
	return scanTodo(row)
}

func (r *todosRepo) GetTodoByID(ctx context.Context, id int64) (domain.Todo, error) {
	t, err := scanTodo(r.db.QueryRow(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = $1`, id))
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return t, nil
}

func (r *todosRepo) ListTodosByUser(ctx context.Context, userID int64) ([]domain.Todo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *todosRepo) UpdateTodo(ctx context.Context, id int64, p domain.TodoPatch, now time.Time) (domain.Todo, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE todos
		SET title       = COALESCE($1, title),
		    description = COALESCE($2, description),
		    completed   = COALESCE($3, completed),
		    updated_at  = $4
		WHERE id = $5
		RETURNING `+todoColumns,
		p.Title, p.Description, p.Completed, now, id,
	)
	t, err := scanTodo(row)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return t, nil
}

func (r *todosRepo) DeleteTodo(ctx context.Context, id int64) error {
	return mapRowsAffected(r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id))
}

func (r *todosRepo) DeleteTodosByUser(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
