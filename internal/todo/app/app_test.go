package app

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()

	var cfg Config
	cfg.LogLevel = "error"
	cfg.Port = 4000
	cfg.Database.Driver = DriverSQLite
	cfg.Database.File = filepath.Join(t.TempDir(), "todo.db")
	cfg.Password.Hash = "bcrypt"
	cfg.Password.BcryptCost = 4
	cfg.Token.Mode = TokenModePlaceholder
	return cfg
}

func TestNewServesRoutes(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := json.Marshal(todosdk.SignupRequest{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestNewJWTMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.Token.Mode = TokenModeJWT
	cfg.Token.JWTSecret = strings.Repeat("k", 32)

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	body, err := json.Marshal(todosdk.SignupRequest{Name: "Ana", Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out todosdk.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, 2, strings.Count(out.Token, "."))
}

func TestNewRejectsUnknownHash(t *testing.T) {
	cfg := testConfig(t)
	cfg.Password.Hash = "md5"

	_, err := New(cfg)
	require.Error(t, err)
}

func TestMigrate(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, Migrate(cfg))
	require.NoError(t, Migrate(cfg))
}

func TestRunReleasesSignals(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	cfg := testConfig(t)
	cfg.Port = busy.Addr().(*net.TCPAddr).Port

	var notified, stopped chan<- os.Signal
	origNotify, origStop := signalNotify, signalStop
	signalNotify = func(c chan<- os.Signal, _ ...os.Signal) { notified = c }
	signalStop = func(c chan<- os.Signal) { stopped = c }
	t.Cleanup(func() { signalNotify, signalStop = origNotify, origStop })

	application, err := New(cfg)
	require.NoError(t, err)

	err = application.Run()
	require.ErrorContains(t, err, "server failed")
	require.NotNil(t, notified)
	require.Equal(t, notified, stopped)
}
