package todo_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLoginEndpoint verifies that /auth/login is rate limited per
// IP and email. The strict limit allows a burst of 5.
func TestRateLimitLoginEndpoint(t *testing.T) {
	client := setupTodoContainerWithDefaultRateLimits(t)
	ctx := context.Background()

	for i := range 5 {
		_, err := client.Login(ctx, todosdk.LoginRequest{Email: "ghost@x.com", Password: "guess"})
		require.True(t, todosdk.IsUnauthenticated(err), "request %d should not be rate limited yet", i+1)
	}

	_, err := client.Login(ctx, todosdk.LoginRequest{Email: "ghost@x.com", Password: "guess"})
	require.True(t, todosdk.IsRateLimited(err), "expected rate limit after 5 requests, got %v", err)
}
