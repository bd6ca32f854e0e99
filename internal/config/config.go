package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// defaultEndpointURL points at the serving endpoint the tool was
// originally deployed against. Overridden with DATABRICKS_ENDPOINT_URL.
const defaultEndpointURL = "https://dbc-32cf6ae7-cf82.staging.cloud.databricks.com/serving-endpoints/databricks-gpt-oss-120b/invocations"

// Config holds all application configuration.
type Config struct {
	// HTTP server
	Host string
	Port int

	// Model serving endpoint
	EndpointURL string
	APIToken    string

	// Frontend bundle
	StaticDir string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables. It automatically
// loads a .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host:        getEnv("HOST", "0.0.0.0"),
		EndpointURL: getEnv("DATABRICKS_ENDPOINT_URL", defaultEndpointURL),
		APIToken:    getEnv("DATABRICKS_API_TOKEN", ""),
		StaticDir:   getEnv("STATIC_DIR", "public"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ValidateForServe checks configuration needed for serve mode. The API
// token is deliberately not required here: a missing token surfaces as a
// downstream failure on each generate call, so the frontend can still be
// served without one.
func (c *Config) ValidateForServe() error {
	if c.EndpointURL == "" {
		return fmt.Errorf("DATABRICKS_ENDPOINT_URL is required")
	}
	return nil
}

// ValidateForGenerate checks configuration needed for one-shot
// generation from the CLI.
func (c *Config) ValidateForGenerate() error {
	if c.EndpointURL == "" {
		return fmt.Errorf("DATABRICKS_ENDPOINT_URL is required")
	}
	if c.APIToken == "" {
		return fmt.Errorf("DATABRICKS_API_TOKEN is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
