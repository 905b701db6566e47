package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "devsecret")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, "devsecret", cfg.Auth.Secret)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	assert.True(t, cfg.MigrateOnStart)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.CORS.AllowCredentials)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ACCESS_TTL", "1h")
	t.Setenv("SERVER_PORT", "5000")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEVELOPMENT", "true")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/recipes")
	t.Setenv("MIGRATE_ON_START", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://recipes.example.com")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "postgres://u:p@db:5432/recipes", cfg.Postgres.DatabaseURL)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTTL)
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, []string{"http://localhost:3000", "https://recipes.example.com"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "missing secret", env: map[string]string{"JWT_SECRET": ""}, want: "JWT_SECRET"},
		{name: "bad ttl", env: map[string]string{"JWT_SECRET": "x", "JWT_ACCESS_TTL": "soon"}, want: "failed to parse config"},
		{name: "negative ttl", env: map[string]string{"JWT_SECRET": "x", "JWT_ACCESS_TTL": "-1m"}, want: "JWT_ACCESS_TTL"},
		{name: "bad bool", env: map[string]string{"JWT_SECRET": "x", "MIGRATE_ON_START": "maybe"}, want: "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Parse()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
