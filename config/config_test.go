package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/config"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "postpass")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads values from environment", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("GOOGLE_API_KEY", "gem-key")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.ServerPort)
		assert.Equal(t, "postgres", cfg.DBUser)
		assert.Equal(t, "gem-key", cfg.GoogleAPIKey)
	})

	t.Run("applies defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SECRETS_DIR", t.TempDir())

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "disable", cfg.DBSSLMode)
	})

	t.Run("falls back to Docker secrets", func(t *testing.T) {
		secretsDir := t.TempDir()
		t.Setenv("SECRETS_DIR", secretsDir)
		t.Setenv("DB_USER", "postgres")
		t.Setenv("DB_PASSWORD", "postpass")

		require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "jwt_secret"), []byte("from-secret\n"), 0o600))

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "from-secret", cfg.JWTSecret)
	})

	t.Run("fails when required values are missing", func(t *testing.T) {
		t.Setenv("SECRETS_DIR", t.TempDir())
		t.Setenv("DB_USER", "")
		t.Setenv("DB_PASSWORD", "")
		t.Setenv("JWT_SECRET", "")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_USER")
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Run("defaults to development", func(t *testing.T) {
		t.Setenv("ENV", "")
		assert.Equal(t, config.Development, config.GetEnvironment())
	})

	t.Run("reads production", func(t *testing.T) {
		t.Setenv("ENV", "production")
		assert.Equal(t, config.Production, config.GetEnvironment())
		assert.True(t, config.IsProduction())
	})
}
