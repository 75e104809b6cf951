package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
)

const (
	msgTodoNotFound   = "Todo not found"
	msgTodoCreateFail = "Failed to create todo"
	msgTodoUpdateFail = "Failed to update todo"
	msgTodoToggleFail = "Failed to toggle todo"
	msgTodoDeleteFail = "Failed to delete todo"
)

type TodoService struct {
	Store store.Store
}

// CreateTodo inserts a todo for userID. The user is not looked up first; an
// unknown user fails on the foreign key and surfaces as an internal error.
func (s *TodoService) CreateTodo(ctx context.Context, userID int64, title string, description *string) (domain.Todo, error) {
	ts := now()
	t, err := s.Store.Todos().CreateTodo(ctx, domain.Todo{
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	})
	if err != nil {
		return domain.Todo{}, domain.Internal(domain.EntityTodo, msgTodoCreateFail, err)
	}
	return t, nil
}

// GetTodoByID reports a missing todo through the bool, not the error.
func (s *TodoService) GetTodoByID(ctx context.Context, id int64) (domain.Todo, bool, error) {
	t, err := s.Store.Todos().GetTodoByID(ctx, id)
	switch {
	case err == nil:
		return t, true, nil
	case errors.Is(err, store.ErrNotFound):
		return domain.Todo{}, false, nil
	default:
		return domain.Todo{}, false, err
	}
}

// ListTodosByUser never returns nil on success, so it renders as [].
func (s *TodoService) ListTodosByUser(ctx context.Context, userID int64) ([]domain.Todo, error) {
	todos, err := s.Store.Todos().ListTodosByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []domain.Todo{}
	}
	return todos, nil
}

func (s *TodoService) UpdateTodo(ctx context.Context, id int64, p domain.TodoPatch) (domain.Todo, error) {
	return s.update(ctx, id, p, msgTodoUpdateFail)
}

// ToggleTodoComplete flips completed. The read and the write share one
// transaction so concurrent toggles cannot both observe the same state.
func (s *TodoService) ToggleTodoComplete(ctx context.Context, id int64) (domain.Todo, error) {
	var out domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Todos().GetTodoByID(ctx, id)
		if err != nil {
			return err
		}
		out, err = tx.Todos().UpdateTodo(ctx, id, t.Toggled(), now())
		return err
	})
	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, store.ErrNotFound):
		return domain.Todo{}, domain.NotFound(domain.EntityTodo, msgTodoNotFound)
	default:
		return domain.Todo{}, domain.Internal(domain.EntityTodo, msgTodoToggleFail, err)
	}
}

func (s *TodoService) update(ctx context.Context, id int64, p domain.TodoPatch, failMsg string) (domain.Todo, error) {
	t, err := s.Store.Todos().UpdateTodo(ctx, id, p, now())
	switch {
	case err == nil:
		return t, nil
	case errors.Is(err, store.ErrNotFound):
		return domain.Todo{}, domain.NotFound(domain.EntityTodo, msgTodoNotFound)
	default:
		return domain.Todo{}, domain.Internal(domain.EntityTodo, failMsg, err)
	}
}

func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	err := s.Store.Todos().DeleteTodo(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return domain.NotFound(domain.EntityTodo, msgTodoNotFound)
	default:
		return domain.Internal(domain.EntityTodo, msgTodoDeleteFail, err)
	}
}

// ClearTodos deletes every todo owned by userID and returns how many went.
// The user itself is left alone.
func (s *TodoService) ClearTodos(ctx context.Context, userID int64) (int64, error) {
	n, err := s.Store.Todos().DeleteTodosByUser(ctx, userID)
	if err != nil {
		return 0, domain.Internal(domain.EntityTodo, msgTodoDeleteFail, err)
	}
	return n, nil
}
