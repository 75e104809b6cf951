package todosdk

import (
	"context"
	"fmt"
	"net/http"
)

func (c *SDKClient) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var out User
	if err := c.call(ctx, http.MethodPost, "/users", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetUser(ctx context.Context, id int64) (*User, error) {
	var out User
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	var out User
	if err := c.call(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes the user along with all of their todos.
func (c *SDKClient) DeleteUser(ctx context.Context, id int64) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.call(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
