package config

import (
	"fmt"
	"os"
	"time"
)

const (
	EnvOpenAIAPIKey   = "RADAR_OPENAI_API_KEY"
	EnvGeminiAPIKey   = "RADAR_GEMINI_API_KEY"
	EnvGeminiModel    = "RADAR_GEMINI_MODEL"
	EnvBackendTimeout = "RADAR_BACKEND_TIMEOUT"
)

// BackendsConfig holds credentials and tuning for the analysis backends.
type BackendsConfig struct {
	OpenAIAPIKey string `toml:"openai_api_key"`
	GeminiAPIKey string `toml:"gemini_api_key"`
	GeminiModel  string `toml:"gemini_model"`
	Timeout      string `toml:"timeout"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *BackendsConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *BackendsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *BackendsConfig) Merge(overlay *BackendsConfig) {
	if overlay.OpenAIAPIKey != "" {
		c.OpenAIAPIKey = overlay.OpenAIAPIKey
	}
	if overlay.GeminiAPIKey != "" {
		c.GeminiAPIKey = overlay.GeminiAPIKey
	}
	if overlay.GeminiModel != "" {
		c.GeminiModel = overlay.GeminiModel
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *BackendsConfig) loadDefaults() {
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.5-pro"
	}
	if c.Timeout == "" {
		c.Timeout = "2m"
	}
}

func (c *BackendsConfig) loadEnv() {
	if v := os.Getenv(EnvOpenAIAPIKey); v != "" {
		c.OpenAIAPIKey = v
	}
	if v := os.Getenv(EnvGeminiAPIKey); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv(EnvGeminiModel); v != "" {
		c.GeminiModel = v
	}
	if v := os.Getenv(EnvBackendTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *BackendsConfig) validate() error {
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
