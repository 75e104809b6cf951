package http

import (
	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

func toUser(u domain.User) todosdk.User {
	return todosdk.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toTodo(t domain.Todo) todosdk.Todo {
	return todosdk.Todo{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTodos(ts []domain.Todo) []todosdk.Todo {
	out := make([]todosdk.Todo, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTodo(t))
	}
	return out
}
