package claude

import "time"

const (
	// DefaultModel is the default Claude model
	DefaultModel = "claude-sonnet-4-20250514"

	// DefaultMaxTokens is the default response token budget
	DefaultMaxTokens = 4000

	// DefaultTimeout is the default per-call timeout
	DefaultTimeout = 30 * time.Second
)
