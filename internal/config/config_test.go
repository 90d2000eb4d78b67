package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultAIConfigFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("OPENAI_MAX_RETRIES", "not-a-number")

	cfg := DefaultAIConfig()
	if cfg.IsEnabled() {
		t.Fatal("expected provider disabled without a key")
	}
	if cfg.Model != "gpt-4.1-nano" {
		t.Fatalf("unexpected default model %q", cfg.Model)
	}
	if cfg.MaxRetries != 3 {
		t.Fatalf("bad integer should fall back to default, got %d", cfg.MaxRetries)
	}
	if cfg.BaseDelay() != time.Second {
		t.Fatalf("unexpected base delay %v", cfg.BaseDelay())
	}
}

func TestLoadStripsRedisScheme(t *testing.T) {
	t.Setenv("REDIS_URI", "redis://cache:6379")
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("SESSION_TTL_MINUTES", "15")

	cfg := Load()
	if cfg.RedisAddr != "cache:6379" {
		t.Fatalf("unexpected redis addr %q", cfg.RedisAddr)
	}
	if !cfg.UsesRedis() {
		t.Fatal("expected redis session store")
	}
	if cfg.SessionTTL != 15*time.Minute {
		t.Fatalf("unexpected ttl %v", cfg.SessionTTL)
	}
}

func TestValidateJWTSecret(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		wantErr error
	}{
		{"development without secret", "development", "", nil},
		{"production without secret", "production", "", ErrMissingJWTSecret},
		{"prod alias without secret", "PROD", "  ", ErrMissingJWTSecret},
		{"production with secret", "production", "s3cret", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)
			t.Setenv("JWT_SECRET", tt.secret)

			cfg := Load()
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
