package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Environment struct {
	IsDevelopment bool
	Name          string
}

// LoadEnvironment reads .env when not running in production and reports
// which environment we are in. A missing .env file is not an error.
func LoadEnvironment() Environment {
	name := os.Getenv("STUDYSMART_ENV")
	if name != "production" {
		// Load .env file if not in production environment
		_ = godotenv.Load()
		name = os.Getenv("STUDYSMART_ENV")
	}

	// If no environment is set, we're in development
	if name == "" {
		name = "development"
	}

	return Environment{
		IsDevelopment: name != "production",
		Name:          name,
	}
}
