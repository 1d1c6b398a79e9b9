package claude

import (
	"errors"
	"net/http"
	"time"
)

// Config holds Claude client configuration.
type Config struct {
	APIKey string
	Model  string // defaults to DefaultModel
	// BaseURL overrides the Anthropic API endpoint. Used by tests to
	// point the client at an httptest server.
	BaseURL string
	// Timeout bounds a single API call. Defaults to DefaultTimeout.
	Timeout time.Duration
	// RequestsPerMinute throttles outgoing calls. 0 disables throttling.
	RequestsPerMinute int
	// HTTPClient overrides the underlying transport when non-nil.
	HTTPClient *http.Client
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("claude: api key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// CompleteRequest is a single-turn completion request.
type CompleteRequest struct {
	Prompt      string
	MaxTokens   int64   // defaults to DefaultMaxTokens
	Temperature float64 // 0 is a valid, deterministic setting
}
