package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable before the
// server starts.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errors = append(errors, "SERVER_PORT must be numeric")
	}
	if cfg.GeminiAPIKey == "" {
		errors = append(errors, "Gemini API key is required")
	}
	if cfg.GeminiModel == "" {
		errors = append(errors, "GEMINI_MODEL must not be empty")
	}
	if cfg.DBName == "" {
		errors = append(errors, "DB_NAME must not be empty")
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
		if cfg.RedisPassword == "" && cfg.RedisURL == "" {
			errors = append(errors, "REDIS_PASSWORD or REDIS_URL is required in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
