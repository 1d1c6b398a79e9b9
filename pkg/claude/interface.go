package claude

import "context"

// IClaude defines the interface for the Claude API client.
// Implementations are safe for concurrent use.
type IClaude interface {
	// Complete sends a single-turn completion request and returns the
	// concatenated text blocks of the response.
	Complete(ctx context.Context, req CompleteRequest) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Claude client with the given configuration
func New(cfg Config) (IClaude, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClaudeImpl(cfg), nil
}
