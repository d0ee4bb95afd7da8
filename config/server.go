package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ServerConfig holds process-level settings for the HTTP server and CLI.
type ServerConfig struct {
	Port            string
	DataFile        string
	LogLevel        string
	LogFormat       string
	GinMode         string
	MaxRequestBytes int64
	CORSAllowOrigin string
}

// LoadServerConfig reads configuration from the environment.
// A .env file in the working directory is loaded first when present.
func LoadServerConfig() (*ServerConfig, error) {
	_ = godotenv.Load()

	cfg := &ServerConfig{
		Port:            getEnv("PORT", "5000"),
		DataFile:        getEnv("DATA_FILE", "data.json"),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", "json")),
		GinMode:         getEnv("GIN_MODE", "release"),
		MaxRequestBytes: getEnvInt64("MAX_REQUEST_BYTES", 1<<20),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.DataFile); os.IsNotExist(err) {
		log.Printf("Warning: DATA_FILE %s does not exist yet", cfg.DataFile)
	}

	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *ServerConfig) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("config error: PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("config error: DATA_FILE cannot be empty")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("config error: LOG_FORMAT must be 'json' or 'text', got %q", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	if c.MaxRequestBytes <= 0 {
		return fmt.Errorf("config error: MAX_REQUEST_BYTES must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt64 returns an integer environment variable or fallback if not set/invalid
func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return fallback
}
