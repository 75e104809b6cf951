package todosdk

import (
	"context"
	"net/http"
)

// Signup creates an account and returns it with a token.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.call(ctx, http.MethodPost, "/auth/signup", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login checks credentials and returns the user with a token.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.call(ctx, http.MethodPost, "/auth/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signout acknowledges the end of a session. The token may be empty.
func (c *SDKClient) Signout(ctx context.Context, token string) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.call(ctx, http.MethodPost, "/auth/signout", SignoutRequest{Token: token}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
