package config

import (
	"fmt"
	"log/slog"
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

var supportedLocales = map[string]bool{
	"pl": true,
	"en": true,
}

// ValidateConfig checks that the loaded values are usable. A missing API key
// is only reported as a warning.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errors = append(errors, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)}.Error())
	}

	if cfg.OpenAIAPIURL == "" {
		errors = append(errors, ValidationError{Field: "OPENAI_API_URL", Message: "must not be empty"}.Error())
	}

	if cfg.OpenAIModel == "" {
		errors = append(errors, ValidationError{Field: "OPENAI_MODEL", Message: "must not be empty"}.Error())
	}

	if cfg.RateLimitPerHour < 0 {
		errors = append(errors, ValidationError{Field: "RATE_LIMIT_PER_HOUR", Message: "must be a non-negative integer"}.Error())
	}

	if !supportedLocales[cfg.DefaultLocale] {
		errors = append(errors, ValidationError{Field: "DEFAULT_LOCALE", Message: fmt.Sprintf("unsupported locale %q", cfg.DefaultLocale)}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	if cfg.OpenAIAPIKey == "" {
		slog.Warn("OPENAI_API_KEY is not set, extraction requests will fail")
	}

	return nil
}
