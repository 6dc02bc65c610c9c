package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerPort   = "8080"
	defaultOpenAIURL    = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel  = "gpt-4o-mini"
	defaultLLMTimeout   = 60 * time.Second
	defaultRateLimit    = 60
	defaultLocale       = "pl"
	defaultSecretsDir   = "/run/secrets"
	defaultShutdownWait = 5 * time.Second
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost      string
	ServerPort      string
	ShutdownTimeout time.Duration

	// OpenAI configuration. OpenAIAPIKey may be empty; requests then fail
	// with a 500 instead of the process refusing to start.
	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string
	LLMTimeout   time.Duration

	// Optional Redis used for per-client rate limiting
	RedisURL         string
	RateLimitPerHour int

	DefaultLocale string
	LogLevel      string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if env == Development {
		// A missing .env is fine, the process environment still applies.
		if err := godotenv.Load(); err == nil {
			slog.Debug("loaded .env file")
		}
	}

	cfg := &Config{}

	switch env {
	case CI, Test:
		loadEnvConfig(cfg)
	case Development, Production:
		loadEnvConfig(cfg)
		if cfg.OpenAIAPIKey == "" {
			cfg.OpenAIAPIKey = readSecret("openai_api_key")
		}
		if cfg.RedisURL == "" {
			cfg.RedisURL = readSecret("redis_url")
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadEnvConfig reads plain environment variables and applies defaults
func loadEnvConfig(cfg *Config) {
	cfg.ServerHost = os.Getenv("SERVER_HOST")
	cfg.ServerPort = getEnv("SERVER_PORT", defaultServerPort)
	cfg.OpenAIAPIKey = loadAPIKey()
	cfg.OpenAIAPIURL = getEnv("OPENAI_API_URL", defaultOpenAIURL)
	cfg.OpenAIModel = getEnv("OPENAI_MODEL", defaultOpenAIModel)
	cfg.LLMTimeout = getSeconds("LLM_TIMEOUT_SECONDS", defaultLLMTimeout)
	cfg.ShutdownTimeout = getSeconds("SHUTDOWN_TIMEOUT_SECONDS", defaultShutdownWait)
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RateLimitPerHour = defaultRateLimit
	if v := os.Getenv("RATE_LIMIT_PER_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitPerHour = n
		} else {
			// Keep the raw value visible to ValidateConfig.
			cfg.RateLimitPerHour = -1
		}
	}
	cfg.DefaultLocale = getEnv("DEFAULT_LOCALE", defaultLocale)
	cfg.LogLevel = os.Getenv("LOG_LEVEL")
}

// loadAPIKey reads the key from OPENAI_API_KEY, falling back to the file
// named by OPENAI_API_KEY_FILE.
func loadAPIKey() string {
	if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
		return key
	}
	path := os.Getenv("OPENAI_API_KEY_FILE")
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read API key file", "path", path, "error", err)
		return ""
	}
	return strings.TrimSpace(string(data))
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = defaultSecretsDir
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
