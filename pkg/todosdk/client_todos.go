package todosdk

import (
	"context"
	"fmt"
	"net/http"
)

func (c *SDKClient) CreateTodo(ctx context.Context, req CreateTodoRequest) (*Todo, error) {
	var out Todo
	if err := c.call(ctx, http.MethodPost, "/todos", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetTodo(ctx context.Context, id int64) (*Todo, error) {
	var out Todo
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/todos/%d", id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTodos returns every todo of userID, oldest first.
func (c *SDKClient) ListTodos(ctx context.Context, userID int64) ([]Todo, error) {
	var out ListTodosResponse
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/todos/user/%d", userID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Todos, nil
}

func (c *SDKClient) UpdateTodo(ctx context.Context, id int64, req UpdateTodoRequest) (*Todo, error) {
	var out Todo
	if err := c.call(ctx, http.MethodPut, fmt.Sprintf("/todos/%d", id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleTodo flips the completed flag and returns the updated todo.
func (c *SDKClient) ToggleTodo(ctx context.Context, id int64) (*Todo, error) {
	var out Todo
	if err := c.call(ctx, http.MethodPatch, fmt.Sprintf("/todos/%d/toggle", id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) DeleteTodo(ctx context.Context, id int64) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.call(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
