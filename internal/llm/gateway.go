package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/swiftsites/swiftsites-api/internal/domain"
)

// Request types accepted by the gateway.
const (
	TypeChat  = "chat"
	TypeFinal = "final"
)

// System personas for the two gateway modes.
const (
	chatPersona  = "You are SwiftSites' AI design assistant. Help users refine website briefs in a helpful, natural way."
	finalPersona = "You are a professional website strategist at SwiftSites. Generate a clear, persuasive final project proposal based on this brief."
)

// Fallback strings returned when the provider produces an empty completion.
const (
	FallbackChat  = "No reply from AI."
	FallbackFinal = "No final proposal generated."
)

// ErrInvalidRequestType is returned for a request that is neither chat nor
// final. No provider call is made in that case.
var ErrInvalidRequestType = errors.New("invalid request type")

// Request selects the gateway mode and carries the mode-specific input.
// Chat mode replays the full conversation; final mode sends only the brief.
type Request struct {
	Type         string
	Conversation []ChatMessage
	Brief        domain.Brief
}

// Gateway shapes conversation or brief input into a single completion call
// against the configured provider. It is stateless; retry policy belongs to
// the caller.
type Gateway struct {
	router *Router
}

// NewGateway creates a gateway over a provider router.
func NewGateway(router *Router) *Gateway {
	return &Gateway{router: router}
}

// Complete runs one request. Provider failures surface as errors; empty
// completions degrade to the mode's fixed fallback string so a conversation
// never dead-ends.
func (g *Gateway) Complete(ctx context.Context, req Request) (string, error) {
	switch req.Type {
	case TypeChat:
		return g.complete(ctx, chatPersona, req.Conversation, FallbackChat)
	case TypeFinal:
		// The conversation history is deliberately not sent here: the
		// finalized artifact depends only on the structured brief.
		conversation := []ChatMessage{{Role: "user", Text: BriefPrompt(req.Brief)}}
		return g.complete(ctx, finalPersona, conversation, FallbackFinal)
	default:
		return "", ErrInvalidRequestType
	}
}

func (g *Gateway) complete(ctx context.Context, persona string, conversation []ChatMessage, fallback string) (string, error) {
	provider, err := g.router.GetProvider("")
	if err != nil {
		return "", fmt.Errorf("resolve provider: %w", err)
	}

	text, err := provider.Complete(ctx, persona, conversation, "")
	if err != nil {
		return "", fmt.Errorf("%s completion: %w", provider.Name(), err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fallback, nil
	}
	return text, nil
}
