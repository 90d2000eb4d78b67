package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// ErrMissingJWTSecret is returned by Validate in production without JWT_SECRET
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in production")

// Session store backends
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config is the server-level configuration
type Config struct {
	Port            string
	Host            string
	LogMode         string
	MongoURI        string // empty disables the assessment log
	MongoDatabase   string
	RedisAddr       string
	SessionStore    string
	SessionTTL      time.Duration
	JWTSecret       string
	SessionTokenTTL time.Duration
}

// Load reads the server configuration from the environment
func Load() *Config {
	return &Config{
		Port:            getEnvOrDefault("PORT", "5001"),
		Host:            getEnvOrDefault("HOST", "0.0.0.0"),
		LogMode:         getEnvOrDefault("APP_ENV", "development"),
		MongoURI:        getEnvOrDefault("MONGO_URI", ""),
		MongoDatabase:   getEnvOrDefault("MONGO_DB", "symptomintake"),
		RedisAddr:       strings.TrimPrefix(getEnvOrDefault("REDIS_URI", "localhost:6379"), "redis://"),
		SessionStore:    strings.ToLower(getEnvOrDefault("SESSION_STORE", SessionStoreMemory)),
		SessionTTL:      time.Duration(getEnvInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		JWTSecret:       strings.TrimSpace(os.Getenv("JWT_SECRET")),
		SessionTokenTTL: 24 * time.Hour,
	}
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// IsProduction reports whether APP_ENV selects production mode
func (c *Config) IsProduction() bool {
	mode := strings.ToLower(strings.TrimSpace(c.LogMode))
	return mode == "prod" || mode == "production"
}

// Validate rejects settings the server must not start with
func (c *Config) Validate() error {
	if c.JWTSecret == "" && c.IsProduction() {
		return ErrMissingJWTSecret
	}
	return nil
}

// UsesRedis reports whether sessions live in Redis
func (c *Config) UsesRedis() bool {
	return c.SessionStore == SessionStoreRedis
}
