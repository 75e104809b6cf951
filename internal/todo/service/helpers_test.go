package service_test

import (
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type services struct {
	users *service.UserService
	todos *service.TodoService
	auth  *service.AuthService
}

func newServices(t *testing.T) services {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "todo.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	users := &service.UserService{
		Store:  st,
		Hasher: cryptox.Hasher{Algorithm: cryptox.Bcrypt, BcryptCost: bcrypt.MinCost},
	}
	return services{
		users: users,
		todos: &service.TodoService{Store: st},
		auth:  &service.AuthService{Users: users, Tokens: service.PlaceholderIssuer{}},
	}
}

func ptr[T any](v T) *T { return &v }
