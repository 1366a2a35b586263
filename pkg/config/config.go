// Package config defines the runtime configuration for the SDK: backend
// endpoint, API key and default headers, logging mode, optional client-side
// rate limiting and the HTTP request timeout. It also provides validation,
// defaulting and file loading helpers.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// DefaultBackendURL is the Magic relayer endpoint every RPC is POSTed to.
const DefaultBackendURL = "https://box.magic.link"

// APIKeyHeader carries Config.APIKey on every request.
const APIKeyHeader = "X-Magic-API-Key"

// Log formats accepted by Config.LogFormat.
const (
	// LogFormatConsole writes human-readable lines (zap development encoder).
	LogFormatConsole = "console"
	// LogFormatJSON writes structured JSON lines (zap production encoder).
	LogFormatJSON = "json"
)

// Config holds all SDK settings. Use Validate to fill implicit defaults and
// to check the values before handing the config to sdk.NewSDK.
type Config struct {
	// BackendURL is the RPC endpoint. Default: DefaultBackendURL.
	BackendURL string `json:"backend_url" yaml:"backend_url" toml:"backend_url"`
	// APIKey is the publishable API key, sent as APIKeyHeader when set.
	APIKey string `json:"api_key" yaml:"api_key" toml:"api_key"`
	// Headers are added to the shared header set at initialization.
	Headers map[string]string `json:"headers" yaml:"headers" toml:"headers"`
	// Debug enables debug-level logging of every call.
	Debug bool `json:"debug" yaml:"debug" toml:"debug"`
	// LogFormat selects the logger once at startup: "console" or "json".
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format"`
	// RateLimit optionally throttles outgoing requests. Disabled when zero.
	RateLimit RateLimit `json:"rate_limit" yaml:"rate_limit" toml:"rate_limit"`
	// Timeouts configures the HTTP client.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts" toml:"timeouts"`
}

// RateLimit is a token bucket applied to outgoing requests.
type RateLimit struct {
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" toml:"requests_per_second"`
	Burst             int     `json:"burst" yaml:"burst" toml:"burst"`
}

// Enabled reports whether requests are throttled at all.
func (r RateLimit) Enabled() bool {
	return r.RequestsPerSecond > 0
}

// Timeouts controls HTTP deadlines. A zero Request keeps the http.Client
// default, which never times out on its own.
type Timeouts struct {
	Request time.Duration `json:"request" yaml:"request" toml:"request"`
}

// Validate normalizes the configuration by applying implicit defaults for
// BackendURL and LogFormat, then checks the remaining fields.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		c.BackendURL = DefaultBackendURL
	}

	if c.LogFormat == "" {
		c.LogFormat = LogFormatConsole
	}

	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("invalid backend URL: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("backend URL must be http(s), got %q", c.BackendURL)
	}
	if u.Host == "" {
		return errors.New("backend URL has no host")
	}

	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate limit must not be negative")
	}

	if c.Timeouts.Request < 0 {
		return errors.New("request timeout must not be negative")
	}

	return nil
}
