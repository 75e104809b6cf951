package todosdk

import "time"

// ============================================================================
// Resources
// ============================================================================

// User is the public view of an account. The password hash never leaves
// the server.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Todo is a single item on a user's list. Description is null when unset.
type Todo struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ============================================================================
// Auth
// ============================================================================

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignoutRequest struct {
	Token string `json:"token,omitempty"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	User    User   `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// MessageResponse carries a bare confirmation, e.g. after a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Users
// ============================================================================

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is a partial update; nil fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ============================================================================
// Todos
// ============================================================================

type CreateTodoRequest struct {
	UserID      int64   `json:"userId"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// UpdateTodoRequest is a partial update; nil fields are left unchanged.
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

type ListTodosResponse struct {
	Todos []Todo `json:"todos"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /, /livez and /readyz. Message and Timestamp
// are set by /; Uptime and Version by the probes; Checks by /readyz only.
type HealthResponse struct {
	Status    string        `json:"status"`
	Message   string        `json:"message,omitempty"`
	Timestamp string        `json:"timestamp,omitempty"`
	Uptime    string        `json:"uptime,omitempty"`
	Version   string        `json:"version,omitempty"`
	Checks    *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks holds per-dependency readiness results.
type HealthChecks struct {
	Database string `json:"database"`
}
