package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Response modes supported by the proxy pipeline.
const (
	// ModeStructured asks the upstream for a raw JSON document as the whole
	// text output (responseMimeType = application/json).
	ModeStructured = "structured"
	// ModeEmbedded lets the upstream answer in natural language that may
	// carry a JSON fragment, optionally wrapped in a markdown fence.
	ModeEmbedded = "embedded"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Gemini      GeminiConfig
	Proxy       ProxyConfig
}

// GeminiConfig holds the upstream generative-language API configuration
type GeminiConfig struct {
	APIKey          string
	Model           string
	BaseURL         string
	MaxOutputTokens int
	TimeoutSeconds  int
}

// ProxyConfig holds the handler policy configuration
type ProxyConfig struct {
	ResponseMode       string // "structured" or "embedded"
	StripMarkdownFence bool
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash-preview-05-20")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("GEMINI_MAX_OUTPUT_TOKENS", 4096)
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 0)
	viper.SetDefault("RESPONSE_MODE", ModeEmbedded)
	viper.SetDefault("STRIP_MARKDOWN_FENCE", true)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Gemini: GeminiConfig{
			APIKey:          viper.GetString("GEMINI_API_KEY"),
			Model:           viper.GetString("GEMINI_MODEL"),
			BaseURL:         viper.GetString("GEMINI_BASE_URL"),
			MaxOutputTokens: viper.GetInt("GEMINI_MAX_OUTPUT_TOKENS"),
			TimeoutSeconds:  viper.GetInt("UPSTREAM_TIMEOUT_SECONDS"),
		},
		Proxy: ProxyConfig{
			ResponseMode:       viper.GetString("RESPONSE_MODE"),
			StripMarkdownFence: viper.GetBool("STRIP_MARKDOWN_FENCE"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
