package config

import (
	"os"
	"strings"
)

type Environment struct {
	IsDevelopment  bool
	Port           string
	AllowedOrigins []string
}

var Env Environment

// LoadEnv reads the process environment into Env. Called from main after
// godotenv has had a chance to populate os.Environ.
func LoadEnv() {
	// RAILWAY_ENVIRONMENT_NAME is only set on deployed instances
	isDev := os.Getenv("RAILWAY_ENVIRONMENT_NAME") == ""

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	origins := []string{"http://localhost:3000"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
	}

	Env = Environment{
		IsDevelopment:  isDev,
		Port:           port,
		AllowedOrigins: origins,
	}
}
