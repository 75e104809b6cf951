package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	todohttp "github.com/aussiebroadwan/todo/internal/todo/http"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func newRouter(t *testing.T) *todohttp.Router {
	t.Helper()
	return newRouterWithLogger(t, slogx.Discard())
}

func newRouterWithLogger(t *testing.T, logger *slog.Logger) *todohttp.Router {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "todo.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	users := &service.UserService{
		Store:  st,
		Hasher: cryptox.Hasher{Algorithm: cryptox.Bcrypt, BcryptCost: bcrypt.MinCost},
	}

	r := todohttp.NewRouter("test", st, nil, logger)
	r.UserService = users
	r.TodoService = &service.TodoService{Store: st}
	r.AuthService = &service.AuthService{Users: users, Tokens: service.PlaceholderIssuer{}}
	r.ApplyRoutes()
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	if raw != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, status int, code, msg string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	apiErr := decode[todosdk.APIError](t, rec)
	require.Equal(t, code, apiErr.Code)
	if msg != "" {
		require.Equal(t, msg, apiErr.Message)
	}
}

func signup(t *testing.T, h http.Handler, name, email, password string) todosdk.AuthResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/auth/signup", todosdk.SignupRequest{Name: name, Email: email, Password: password})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[todosdk.AuthResponse](t, rec)
}

func TestHealth(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	health := decode[todosdk.HealthResponse](t, rec)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "API working properly", health.Message)
	_, err := time.Parse(time.RFC3339, health.Timestamp)
	require.NoError(t, err)

	rec = do(t, r, http.MethodGet, "/livez", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "test", decode[todosdk.HealthResponse](t, rec).Version)

	rec = do(t, r, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[todosdk.HealthResponse](t, rec).Checks.Database)
}

func TestReadyzDegraded(t *testing.T) {
	h := todohttp.ReadyzHandler(time.Now(), "test", pingerFunc(func(context.Context) error {
		return errors.New("dial tcp 10.0.0.5:5432: connection refused")
	}))

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	req = req.WithContext(slogx.WithContext(req.Context(), logger))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	health := decode[todosdk.HealthResponse](t, rec)
	require.Equal(t, "degraded", health.Status)
	require.Equal(t, "error", health.Checks.Database)
	require.NotContains(t, rec.Body.String(), "10.0.0.5")
	require.NotContains(t, rec.Body.String(), "connection refused")

	require.Contains(t, logs.String(), `"msg":"readiness check failed"`)
	require.Contains(t, logs.String(), `"error":"dial tcp 10.0.0.5:5432: connection refused"`)
}

func TestSignupAndLogin(t *testing.T) {
	r := newRouter(t)

	auth := signup(t, r, "Ana", "ana@x.com", "secret1")
	require.Equal(t, "User created successfully", auth.Message)
	require.Equal(t, "Ana", auth.User.Name)
	require.Regexp(t, `^token_\d+_\d+$`, auth.Token)

	t.Run("no password in response", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/auth/login", todosdk.LoginRequest{Email: "ana@x.com", Password: "secret1"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotContains(t, rec.Body.String(), "password")
		require.NotContains(t, rec.Body.String(), "$2")

		login := decode[todosdk.AuthResponse](t, rec)
		require.Equal(t, "Login successful", login.Message)
		require.Equal(t, auth.User.ID, login.User.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/auth/signup", todosdk.SignupRequest{Name: "Other", Email: "ana@x.com", Password: "x"})
		requireAPIError(t, rec, http.StatusConflict, todosdk.ErrorCodeAlreadyExists, "User with this email already exists")

		rec = do(t, r, http.MethodGet, "/users/"+strconv.FormatInt(auth.User.ID, 10), nil)
		require.Equal(t, "Ana", decode[todosdk.User](t, rec).Name)
	})

	t.Run("same message for unknown email and wrong password", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/auth/login", todosdk.LoginRequest{Email: "ana@x.com", Password: "wrong"})
		requireAPIError(t, rec, http.StatusUnauthorized, todosdk.ErrorCodeUnauthenticated, "Invalid email or password")

		rec = do(t, r, http.MethodPost, "/auth/login", todosdk.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
		requireAPIError(t, rec, http.StatusUnauthorized, todosdk.ErrorCodeUnauthenticated, "Invalid email or password")
	})

	t.Run("signout", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/auth/signout", todosdk.SignoutRequest{Token: auth.Token})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Signout successful", decode[todosdk.MessageResponse](t, rec).Message)

		rec = do(t, r, http.MethodPost, "/auth/signout", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestBodyValidation(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodPost, "/auth/signup", `{"name":`)
	requireAPIError(t, rec, http.StatusBadRequest, todosdk.ErrorCodeInvalidArgument, "Invalid request body")

	rec = do(t, r, http.MethodPost, "/auth/signup", `{"name":"Ana","email":"a@x.com"}`)
	requireAPIError(t, rec, http.StatusBadRequest, todosdk.ErrorCodeInvalidArgument, "password is required")

	rec = do(t, r, http.MethodPost, "/todos", `{"userId":"one","title":"x"}`)
	requireAPIError(t, rec, http.StatusBadRequest, todosdk.ErrorCodeInvalidArgument, "Invalid request body")

	rec = do(t, r, http.MethodPost, "/todos", `{"title":"x"}`)
	requireAPIError(t, rec, http.StatusBadRequest, todosdk.ErrorCodeInvalidArgument, "userId is required")

	rec = do(t, r, http.MethodPut, "/todos/1", `{"completed":"yes"}`)
	requireAPIError(t, rec, http.StatusBadRequest, todosdk.ErrorCodeInvalidArgument, "Invalid request body")
}

func TestRequiredFieldsAbsentOnly(t *testing.T) {
	r := newRouter(t)
	signup(t, r, "Ana", "ana@x.com", "secret1")

	t.Run("empty password reaches login", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/auth/login", `{"email":"ana@x.com","password":""}`)
		requireAPIError(t, rec, http.StatusUnauthorized, todosdk.ErrorCodeUnauthenticated, "Invalid email or password")
	})

	t.Run("absent password is rejected", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/auth/login", `{"email":"ana@x.com"}`)
		requireAPIError(t, rec, http.StatusBadRequest, todosdk.ErrorCodeInvalidArgument, "password is required")
	})

	t.Run("zero userId reaches the store", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/todos", `{"userId":0,"title":"x"}`)
		requireAPIError(t, rec, http.StatusInternalServerError, todosdk.ErrorCodeInternal, "Failed to create todo")
	})

	t.Run("null userId is absent", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/todos", `{"userId":null,"title":"x"}`)
		requireAPIError(t, rec, http.StatusBadRequest, todosdk.ErrorCodeInvalidArgument, "userId is required")
	})

	t.Run("empty name creates user", func(t *testing.T) {
		rec := do(t, r, http.MethodPost, "/users", `{"name":"","email":"blank@x.com","password":"secret1"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.Empty(t, decode[todosdk.User](t, rec).Name)
	})

	t.Run("empty title creates todo", func(t *testing.T) {
		auth := signup(t, r, "Bo", "bo@x.com", "secret1")
		body := `{"userId":` + strconv.FormatInt(auth.User.ID, 10) + `,"title":""}`
		rec := do(t, r, http.MethodPost, "/todos", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.Empty(t, decode[todosdk.Todo](t, rec).Title)
	})
}

func TestInvalidIDs(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		method, path, msg string
	}{
		{http.MethodGet, "/users/abc", "Invalid user ID"},
		{http.MethodPut, "/users/abc", "Invalid user ID"},
		{http.MethodDelete, "/users/abc", "Invalid user ID"},
		{http.MethodGet, "/todos/abc", "Invalid todo ID"},
		{http.MethodPut, "/todos/abc", "Invalid todo ID"},
		{http.MethodPatch, "/todos/abc/toggle", "Invalid todo ID"},
		{http.MethodDelete, "/todos/abc", "Invalid todo ID"},
		{http.MethodGet, "/todos/user/abc", "Invalid user ID"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(t, r, tt.method, tt.path, `{}`)
			requireAPIError(t, rec, http.StatusBadRequest, todosdk.ErrorCodeInvalidArgument, tt.msg)
		})
	}
}

func TestMissingIDs(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		method, path, msg string
	}{
		{http.MethodGet, "/users/999", "User not found"},
		{http.MethodPut, "/users/999", "User not found"},
		{http.MethodDelete, "/users/999", "User not found"},
		{http.MethodGet, "/todos/999", "Todo not found"},
		{http.MethodPut, "/todos/999", "Todo not found"},
		{http.MethodPatch, "/todos/999/toggle", "Todo not found"},
		{http.MethodDelete, "/todos/999", "Todo not found"},
		{http.MethodGet, "/users/999xyz", "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(t, r, tt.method, tt.path, `{"name":"x"}`)
			requireAPIError(t, rec, http.StatusNotFound, todosdk.ErrorCodeNotFound, tt.msg)
		})
	}
}

func TestUsers(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodPost, "/users", todosdk.CreateUserRequest{Name: "Bo", Email: "bo@x.com", Password: "pw"})
	require.Equal(t, http.StatusCreated, rec.Code)
	user := decode[todosdk.User](t, rec)
	path := "/users/" + strconv.FormatInt(user.ID, 10)

	name := "Bob"
	rec = do(t, r, http.MethodPut, path, todosdk.UpdateUserRequest{Name: &name})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[todosdk.User](t, rec)
	require.Equal(t, "Bob", updated.Name)
	require.Equal(t, "bo@x.com", updated.Email)

	t.Run("email collision", func(t *testing.T) {
		signup(t, r, "Cy", "cy@x.com", "pw")
		email := "cy@x.com"
		rec := do(t, r, http.MethodPut, path, todosdk.UpdateUserRequest{Email: &email})
		requireAPIError(t, rec, http.StatusConflict, todosdk.ErrorCodeAlreadyExists, "User with this email already exists")
	})

	t.Run("password change", func(t *testing.T) {
		pw := "newpass"
		rec := do(t, r, http.MethodPut, path, todosdk.UpdateUserRequest{Password: &pw})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, r, http.MethodPost, "/auth/login", todosdk.LoginRequest{Email: "bo@x.com", Password: "newpass"})
		require.Equal(t, http.StatusOK, rec.Code)
	})

	rec = do(t, r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "User deleted successfully", decode[todosdk.MessageResponse](t, rec).Message)

	rec = do(t, r, http.MethodGet, path, nil)
	requireAPIError(t, rec, http.StatusNotFound, todosdk.ErrorCodeNotFound, "User not found")
}

func TestTodoWorkedExample(t *testing.T) {
	r := newRouter(t)
	ana := signup(t, r, "Ana", "ana@x.com", "secret1")

	desc := "2 litres"
	rec := do(t, r, http.MethodPost, "/todos", todosdk.CreateTodoRequest{UserID: ana.User.ID, Title: "Buy milk", Description: &desc})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	todo := decode[todosdk.Todo](t, rec)
	require.False(t, todo.Completed)
	require.Equal(t, ana.User.ID, todo.UserID)
	todoPath := "/todos/" + strconv.FormatInt(todo.ID, 10)

	rec = do(t, r, http.MethodPatch, todoPath+"/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decode[todosdk.Todo](t, rec).Completed)

	rec = do(t, r, http.MethodPatch, todoPath+"/toggle", nil)
	require.False(t, decode[todosdk.Todo](t, rec).Completed)

	title := "Buy oat milk"
	rec = do(t, r, http.MethodPut, todoPath, todosdk.UpdateTodoRequest{Title: &title})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[todosdk.Todo](t, rec)
	require.Equal(t, title, updated.Title)
	require.Equal(t, "2 litres", *updated.Description)

	listPath := "/todos/user/" + strconv.FormatInt(ana.User.ID, 10)
	rec = do(t, r, http.MethodGet, listPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[todosdk.ListTodosResponse](t, rec).Todos, 1)

	rec = do(t, r, http.MethodDelete, "/users/"+strconv.FormatInt(ana.User.ID, 10), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, todoPath, nil)
	requireAPIError(t, rec, http.StatusNotFound, todosdk.ErrorCodeNotFound, "Todo not found")

	rec = do(t, r, http.MethodGet, listPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"todos":[]}`, rec.Body.String())
}

func TestTodoNullDescription(t *testing.T) {
	r := newRouter(t)
	ana := signup(t, r, "Ana", "ana@x.com", "secret1")

	rec := do(t, r, http.MethodPost, "/todos", todosdk.CreateTodoRequest{UserID: ana.User.ID, Title: "Walk"})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"description":null`)

	rec = do(t, r, http.MethodDelete, "/todos/"+strconv.FormatInt(decode[todosdk.Todo](t, rec).ID, 10), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Todo deleted successfully", decode[todosdk.MessageResponse](t, rec).Message)
}

func TestCreateTodoUnknownUserIsInternal(t *testing.T) {
	var logs bytes.Buffer
	r := newRouterWithLogger(t, slog.New(slog.NewJSONHandler(&logs, nil)))

	rec := do(t, r, http.MethodPost, "/todos", todosdk.CreateTodoRequest{UserID: 4242, Title: "Orphan"})
	requireAPIError(t, rec, http.StatusInternalServerError, todosdk.ErrorCodeInternal, "Failed to create todo")
	require.NotContains(t, rec.Body.String(), "FOREIGN KEY")

	require.Contains(t, logs.String(), `"msg":"Failed to create todo"`)
	require.Contains(t, logs.String(), `"error":"`)
	require.NotContains(t, logs.String(), `"err":`)
}

func TestLoginRateLimited(t *testing.T) {
	r := newRouter(t)

	var rec *httptest.ResponseRecorder
	for range 10 {
		rec = do(t, r, http.MethodPost, "/auth/login", todosdk.LoginRequest{Email: "ana@x.com", Password: "guess"})
		if rec.Code == http.StatusTooManyRequests {
			break
		}
	}
	requireAPIError(t, rec, http.StatusTooManyRequests, todosdk.ErrorCodeRateLimited, "")
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// A different email from the same address has its own bucket
	rec = do(t, r, http.MethodPost, "/auth/login", todosdk.LoginRequest{Email: "bo@x.com", Password: "guess"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPanicRecovered(t *testing.T) {
	r := todohttp.NewRouter("test", pingerFunc(func(context.Context) error { return nil }), nil, slogx.Discard())
	r.Mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := do(t, r, http.MethodGet, "/boom", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
