package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// OpenAI
	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIBaseURL   string
	ProviderTimeout time.Duration

	// Static assets
	StaticDir string

	// Rate limiting (AI routes only)
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// CORS
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "3000"),
		Env:  getEnvOrDefault("ENV", "development"),

		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:   getEnvOrDefault("OPENAI_BASE_URL", ""),
		ProviderTimeout: time.Duration(getEnvAsIntOrDefault("PROVIDER_TIMEOUT_SECONDS", 30)) * time.Second,

		StaticDir: getEnvOrDefault("STATIC_DIR", "./public"),

		RateLimitRequests: getEnvAsIntOrDefault("RATE_LIMIT_REQUESTS", 30),
		RateLimitWindow:   time.Duration(getEnvAsIntOrDefault("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,

		AllowedOrigins: strings.Split(getEnvOrDefault("ALLOWED_ORIGINS", "*"), ","),
	}

	return cfg
}

// MockMode reports whether the process runs without a provider credential.
// All AI routes then serve locally generated text.
func (c *Config) MockMode() bool {
	return c.OpenAIAPIKey == ""
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
