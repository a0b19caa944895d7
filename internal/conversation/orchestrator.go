package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/swiftsites/swiftsites-api/internal/domain"
	"github.com/swiftsites/swiftsites-api/internal/llm"
)

// Completer is the slice of the text-generation gateway the orchestrator
// needs. Satisfied by *llm.Gateway.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// ErrEmptyMessage rejects a blank user turn before any state changes.
var ErrEmptyMessage = errors.New("message text is empty")

// ErrTurnInFlight rejects a new turn while a reply is still awaited.
// Turns on one session are strictly sequential.
var ErrTurnInFlight = errors.New("turn already awaiting a reply")

// Visible transcript entries appended when the gateway fails. Errors are
// never silently dropped; the user can retry by sending again.
const (
	errReplyText    = "Error contacting AI. Try again."
	errProposalText = "Error creating final proposal."
)

// Orchestrator drives conversation turns over an explicit session handle.
// Each turn is one blocking round trip: Idle -> AwaitingReply -> Idle.
type Orchestrator struct {
	gateway Completer
}

// NewOrchestrator creates an orchestrator over a gateway.
func NewOrchestrator(gateway Completer) *Orchestrator {
	return &Orchestrator{gateway: gateway}
}

// SendUserTurn appends the user message, replays the full history through
// the gateway in chat mode, and appends the assistant reply. Every accepted
// turn grows the session by exactly two messages: on gateway failure the
// second is a synthetic error entry and the gateway error is returned
// alongside it.
func (o *Orchestrator) SendUserTurn(ctx context.Context, s *Session, text string) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, ErrEmptyMessage
	}
	if s.awaiting {
		return domain.Message{}, ErrTurnInFlight
	}

	s.append(domain.SenderUser, text)
	s.awaiting = true
	defer func() { s.awaiting = false }()

	reply, err := o.gateway.Complete(ctx, llm.Request{
		Type:         llm.TypeChat,
		Conversation: transcript(s.messages),
	})
	if err != nil {
		return s.append(domain.SenderAssistant, errReplyText), fmt.Errorf("chat turn: %w", err)
	}

	return s.append(domain.SenderAssistant, reply), nil
}

// StartFromBrief opens the conversation by sending the compact brief text
// as the first user turn.
func (o *Orchestrator) StartFromBrief(ctx context.Context, s *Session) (domain.Message, error) {
	return o.SendUserTurn(ctx, s, s.brief.Text())
}

// DetectReadiness reports whether the most recent assistant message offers
// to finalize. Only the latest assistant message is scanned: once the
// assistant has moved on from asking, the offer should not resurface.
func (o *Orchestrator) DetectReadiness(s *Session) bool {
	m, ok := s.latestAssistant()
	return ok && DetectFinalizeIntent(m.Text)
}

// Finalize sends only the current brief snapshot through the gateway in
// final mode and appends the proposal as an assistant message. It never
// requires DetectReadiness to have fired; a user may force finalization.
func (o *Orchestrator) Finalize(ctx context.Context, s *Session) (domain.Message, error) {
	proposal, err := o.gateway.Complete(ctx, llm.Request{
		Type:  llm.TypeFinal,
		Brief: s.brief,
	})
	if err != nil {
		return s.append(domain.SenderAssistant, errProposalText), fmt.Errorf("finalize: %w", err)
	}

	return s.append(domain.SenderAssistant, proposal), nil
}

// Reset clears the message sequence. The brief survives a reset.
func (o *Orchestrator) Reset(s *Session) {
	s.messages = nil
}

func transcript(messages []domain.Message) []llm.ChatMessage {
	out := make([]llm.ChatMessage, len(messages))
	for i, m := range messages {
		role := "user"
		if m.Sender == domain.SenderAssistant {
			role = "assistant"
		}
		out[i] = llm.ChatMessage{Role: role, Text: m.Text}
	}
	return out
}
