package todosdk

import (
	"context"
	"net/http"
)

// Health calls the root health endpoint.
func (c *SDKClient) Health(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/")
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service is ready. A not-ready service answers
// 503, which is returned as an *APIError.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, path, nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
