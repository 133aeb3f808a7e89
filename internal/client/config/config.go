package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the GophDrive CLI.
//
// Fields:
//   - ServerBaseURL: root URL of the backend HTTP API.
//   - AuthTransport: credential scheme, "bearer" or "cookie".
//   - SessionDBPath: SQLite file persisting the credential across runs.
//   - DownloadDir: directory (under the working dir) for downloaded files.
//   - RequestTimeout: per-request HTTP timeout.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerBaseURL       string
	AuthTransport       string
	SessionDBPath       string
	DownloadDir         string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.AuthTransport = "bearer"
	c.SessionDBPath = "session.db"
	c.DownloadDir = "downloads"
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
}

// Validate rejects settings no deployment can run with.
func (c *Config) Validate() error {
	if c.ServerBaseURL == "" {
		return fmt.Errorf("server base URL must not be empty")
	}
	if c.AuthTransport != "bearer" && c.AuthTransport != "cookie" {
		return fmt.Errorf("auth transport must be %q or %q, got %q", "bearer", "cookie", c.AuthTransport)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
