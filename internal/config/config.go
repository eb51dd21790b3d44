// Package config loads server configuration from an optional YAML file and
// the environment. Precedence, lowest to highest: defaults, file, env.
package config

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration
type Config struct {
	// Addr is the HTTP listen address
	Addr string `yaml:"addr"`

	// BaseURL is the upstream problem site
	BaseURL string `yaml:"baseURL"`

	// UserAgent overrides the User-Agent sent on page fetches
	UserAgent string `yaml:"userAgent"`

	// Retries is the maximum number of fetch retries
	Retries int `yaml:"retries"`

	// Timeout bounds a single page fetch
	Timeout time.Duration `yaml:"timeout"`

	// NotificationStatus is the HTTP status returned for JSON-RPC
	// notifications, 202 or 204
	NotificationStatus int `yaml:"notificationStatus"`

	// EchoVersion makes the handshake return the client's protocol version
	// offer unchanged
	EchoVersion bool `yaml:"echoVersion"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Addr:               ":8080",
		BaseURL:            "https://www.luogu.com.cn",
		Retries:            2,
		Timeout:            30 * time.Second,
		NotificationStatus: http.StatusAccepted,
	}
}

// Load reads a YAML document over the defaults
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

// LoadFile loads the configuration file at path. A missing file is not an
// error; defaults plus environment overrides apply.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.applyEnv()
			return cfg, cfg.Validate()
		}
		return Default(), fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LUOGU_MCP_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("LUOGU_MCP_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("LUOGU_MCP_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv("LUOGU_MCP_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Retries = n
		}
	}
	if v := os.Getenv("LUOGU_MCP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
	if v := os.Getenv("LUOGU_MCP_NOTIFICATION_STATUS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.NotificationStatus = n
		}
	}
	if v := os.Getenv("LUOGU_MCP_ECHO_VERSION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.EchoVersion = b
		}
	}
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("baseURL must not be empty")
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", c.Retries)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.NotificationStatus != http.StatusAccepted && c.NotificationStatus != http.StatusNoContent {
		return fmt.Errorf("notificationStatus must be 202 or 204, got %d", c.NotificationStatus)
	}
	return nil
}
