package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, DriverSQLite, cfg.Database.Driver)
	require.Equal(t, "todo.db", cfg.Database.File)
	require.Equal(t, "bcrypt", cfg.Password.Hash)
	require.Equal(t, 10, cfg.Password.BcryptCost)
	require.Equal(t, TokenModePlaceholder, cfg.Token.Mode)
	require.Equal(t, 24*time.Hour, cfg.Token.JWTTTL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")
	t.Setenv("TODO_DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgresql://u:p@db:5432/todo")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173,https://todo.example.com")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, DriverPostgres, cfg.Database.Driver)
	require.Equal(t, "postgresql://u:p@db:5432/todo", cfg.Database.URL)
	require.Equal(t, []string{"http://localhost:5173", "https://todo.example.com"}, cfg.CORSOrigins)
	require.Equal(t, 3*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TODO_BCRYPT_COST=12\nLOG_LEVEL=debug\n"), 0o600))

	// Register restores so godotenv does not leak into other tests.
	for _, key := range []string{"TODO_BCRYPT_COST", "LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Password.BcryptCost)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "todo.yaml")
	yaml := strings.Join([]string{
		"port: 9000",
		"database:",
		"  file: /var/lib/todo/todo.db",
		"token:",
		"  mode: jwt",
		"  jwt_secret: " + strings.Repeat("s", 32),
		"  jwt_ttl: 1h",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv(ConfigFileEnv, path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.Port)
	require.Equal(t, "/var/lib/todo/todo.db", cfg.Database.File)
	require.Equal(t, TokenModeJWT, cfg.Token.Mode)
	require.Equal(t, time.Hour, cfg.Token.JWTTTL)
	require.Equal(t, 10, cfg.Password.BcryptCost)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		var c Config
		c.Port = 4000
		c.Database.Driver = DriverSQLite
		c.Database.File = "todo.db"
		c.Token.Mode = TokenModePlaceholder
		return c
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.Port = 0 }, "PORT"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "TODO_DATABASE_DRIVER"},
		{"postgres without url", func(c *Config) { c.Database.Driver = DriverPostgres }, "DATABASE_URL"},
		{"unknown token mode", func(c *Config) { c.Token.Mode = "opaque" }, "TODO_TOKEN_MODE"},
		{"short jwt secret", func(c *Config) {
			c.Token.Mode = TokenModeJWT
			c.Token.JWTSecret = "short"
		}, "TODO_JWT_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}
