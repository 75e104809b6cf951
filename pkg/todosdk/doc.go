/*
Package todosdk provides a client SDK for the todo service, plus the wire
types and error envelope the service itself writes.

# Overview

Create an SDKClient pointed at a running service:

	client := todosdk.NewSDKClient("http://localhost:4000")

	// Check service health
	health, err := client.Health(ctx)

	// Create an account and log in
	auth, err := client.Signup(ctx, todosdk.SignupRequest{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	auth, err = client.Login(ctx, todosdk.LoginRequest{Email: "ana@x.com", Password: "secret1"})

	// Manage todos
	todo, err := client.CreateTodo(ctx, todosdk.CreateTodoRequest{UserID: auth.User.ID, Title: "Buy milk"})
	todo, err = client.ToggleTodo(ctx, todo.ID)
	list, err := client.ListTodos(ctx, auth.User.ID)

The service does not check tokens, so no call needs one. The token returned
by Signup and Login is only echoed back to Signout.

# Errors

Non-2xx responses are returned as *APIError carrying the HTTP status, the
error code and the human readable message:

	_, err := client.GetUser(ctx, 42)
	var apiErr *todosdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == todosdk.ErrorCodeNotFound {
		// no such user
	}

IsNotFound, IsAlreadyExists and friends wrap the common checks.
*/
package todosdk
