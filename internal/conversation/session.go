package conversation

import (
	"github.com/swiftsites/swiftsites-api/internal/domain"
)

// Session is the ephemeral state of one conversation: an ordered message
// sequence plus the current brief snapshot. Sessions are never durably
// stored; only a successful handoff produces durable state. A session is
// not safe for concurrent use; the orchestrator serializes turns on it.
type Session struct {
	brief    domain.Brief
	messages []domain.Message
	awaiting bool
}

// NewSession creates an empty session with a default brief.
func NewSession() *Session {
	return &Session{brief: domain.NewBrief()}
}

// Restore rebuilds a session from an existing brief and message history,
// preserving order.
func Restore(brief domain.Brief, messages []domain.Message) *Session {
	s := &Session{brief: brief}
	s.messages = append(s.messages, messages...)
	return s
}

// Brief returns the current brief snapshot.
func (s *Session) Brief() domain.Brief {
	return s.brief
}

// SetBrief replaces the brief snapshot. Only the client-side edit path
// mutates the brief; gateway calls never do.
func (s *Session) SetBrief(b domain.Brief) {
	s.brief = b
}

// Messages returns a copy of the ordered message sequence.
func (s *Session) Messages() []domain.Message {
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the session.
func (s *Session) Len() int {
	return len(s.messages)
}

func (s *Session) append(sender domain.Sender, text string) domain.Message {
	m := domain.NewMessage(sender, text)
	s.messages = append(s.messages, m)
	return m
}

// latestAssistant returns the most recent assistant-authored message.
func (s *Session) latestAssistant() (domain.Message, bool) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Sender == domain.SenderAssistant {
			return s.messages[i], true
		}
	}
	return domain.Message{}, false
}
