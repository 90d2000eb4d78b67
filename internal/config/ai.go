package config

import (
	"os"
	"strconv"
	"time"
)

// AIConfig holds the LLM provider configuration
type AIConfig struct {
	APIKey      string `json:"-"` // Never serialize
	BaseURL     string `json:"baseUrl,omitempty"`
	Model       string `json:"model"`
	TimeoutMS   int    `json:"timeoutMs"`
	MaxRetries  int    `json:"maxRetries"`
	BaseDelayMS int    `json:"baseDelayMs"`
}

// DefaultAIConfig returns the AI configuration read from the environment
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		BaseURL:     os.Getenv("OPENAI_BASE_URL"),
		Model:       getEnvOrDefault("OPENAI_MODEL", "gpt-4.1-nano"),
		TimeoutMS:   getEnvInt("OPENAI_TIMEOUT_MS", 30000),
		MaxRetries:  getEnvInt("OPENAI_MAX_RETRIES", 3),
		BaseDelayMS: getEnvInt("OPENAI_BASE_DELAY_MS", 1000),
	}
}

// IsEnabled returns true if the provider API key is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// Timeout is the per-attempt deadline for a completion call
func (c *AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// BaseDelay is the first retry backoff step
func (c *AIConfig) BaseDelay() time.Duration {
	return time.Duration(c.BaseDelayMS) * time.Millisecond
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}
