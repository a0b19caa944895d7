package llm

import "context"

// ChatMessage is one transcript entry sent to a provider.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// Provider defines the interface for text-generation providers. Complete
// runs a single completion over the system persona plus the conversation
// and returns the raw assistant text. An empty completion is returned as
// ("", nil); callers decide the fallback.
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Complete generates one assistant reply
	Complete(ctx context.Context, system string, conversation []ChatMessage, model string) (string, error)
}
