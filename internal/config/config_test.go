package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env and restore after test
	origEnv := os.Environ()
	t.Cleanup(func() {
		os.Clearenv()
		for _, e := range origEnv {
			for i := 0; i < len(e); i++ {
				if e[i] == '=' {
					os.Setenv(e[:i], e[i+1:])
					break
				}
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.Host)
		assert.Equal(t, 8000, cfg.Port)
		assert.Equal(t, defaultEndpointURL, cfg.EndpointURL)
		assert.Empty(t, cfg.APIToken)
		assert.Equal(t, "public", cfg.StaticDir)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("custom values", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("HOST", "127.0.0.1")
		os.Setenv("PORT", "9000")
		os.Setenv("DATABRICKS_API_TOKEN", "dapi-test")
		os.Setenv("DATABRICKS_ENDPOINT_URL", "https://example.com/invocations")
		os.Setenv("STATIC_DIR", "dist")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1", cfg.Host)
		assert.Equal(t, 9000, cfg.Port)
		assert.Equal(t, "dapi-test", cfg.APIToken)
		assert.Equal(t, "https://example.com/invocations", cfg.EndpointURL)
		assert.Equal(t, "dist", cfg.StaticDir)
	})

	t.Run("invalid port", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("PORT", "notanumber")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "PORT")
	})
}

func TestConfig_Addr(t *testing.T) {
	cfg := &Config{Host: "0.0.0.0", Port: 8000}
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}

func TestConfig_ValidateForServe(t *testing.T) {
	t.Run("valid without token", func(t *testing.T) {
		cfg := &Config{EndpointURL: "https://example.com/invocations"}
		assert.NoError(t, cfg.ValidateForServe())
	})

	t.Run("missing endpoint", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.ValidateForServe()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DATABRICKS_ENDPOINT_URL")
	})
}

func TestConfig_ValidateForGenerate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{
			EndpointURL: "https://example.com/invocations",
			APIToken:    "dapi-test",
		}
		assert.NoError(t, cfg.ValidateForGenerate())
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := &Config{EndpointURL: "https://example.com/invocations"}
		err := cfg.ValidateForGenerate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DATABRICKS_API_TOKEN")
	})
}
