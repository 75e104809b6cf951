package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Repositories hang off it as methods so a Tx-scoped Store
// hands out repositories bound to the same transaction.
type Store interface {
	Users() Users
	Todos() Todos

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	// service.TodoService.ToggleTodoComplete runs its read-then-write here.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Each repository method issues exactly one SQL statement.

type Users interface {
	// CreateUser inserts u and returns it with id and timestamps assigned.
	// A duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail returns the full record including the password hash.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdateUser applies the non-nil fields of p (Password is ignored, use
	// PasswordHash) and sets updated_at to now.
	UpdateUser(ctx context.Context, id int64, p domain.UserPatch, now time.Time) (domain.User, error)

	// DeleteUser removes the user; todos go with it via the FK cascade.
	DeleteUser(ctx context.Context, id int64) error
}

type Todos interface {
	CreateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error)
	GetTodoByID(ctx context.Context, id int64) (domain.Todo, error)

	// ListTodosByUser returns the user's todos ordered by id. Never nil.
	ListTodosByUser(ctx context.Context, userID int64) ([]domain.Todo, error)

	// UpdateTodo applies the non-nil fields of p and sets updated_at to now.
	UpdateTodo(ctx context.Context, id int64, p domain.TodoPatch, now time.Time) (domain.Todo, error)

	DeleteTodo(ctx context.Context, id int64) error

	// DeleteTodosByUser removes every todo of userID and reports how many
	// rows went.
	DeleteTodosByUser(ctx context.Context, userID int64) (int64, error)
}
