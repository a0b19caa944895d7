package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a message
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one entry in a conversation session. Messages are immutable
// once appended; insertion order is the conversation order and is replayed
// verbatim to the text-generation gateway on every chat turn.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage creates a message stamped with the current time.
func NewMessage(sender Sender, text string) Message {
	return Message{
		ID:        uuid.New(),
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now(),
	}
}
