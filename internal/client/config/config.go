// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the Writely terminal client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend (no trailing /api).
//   - TokenFile: where the bearer token is persisted between runs.
//   - RequestTimeout: per-request deadline for API calls.
type Config struct {
	ServerBaseURL  string
	TokenFile      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. The token lands under
// the user config dir when one is resolvable, next to the binary otherwise.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second

	c.TokenFile = "token.json"
	if dir, err := os.UserConfigDir(); err == nil {
		c.TokenFile = filepath.Join(dir, "writely", "token.json")
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
