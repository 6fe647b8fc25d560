package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("RAILWAY_ENVIRONMENT_NAME", "")

	LoadEnv()

	assert.True(t, Env.IsDevelopment)
	assert.Equal(t, "4000", Env.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, Env.AllowedOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("RAILWAY_ENVIRONMENT_NAME", "production")

	LoadEnv()

	assert.False(t, Env.IsDevelopment)
	assert.Equal(t, "8081", Env.Port)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, Env.AllowedOrigins)
}
