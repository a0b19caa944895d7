package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFinalizeIntent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"offer to send", "Great! Would you like me to send the final brief to our team?", true},
		{"shall i send", "Shall I send this over?", true},
		{"ready to send", "The proposal is ready to send.", true},
		{"send the brief", "I can send the brief now.", true},
		{"send final proposal", "Let me know and I'll send final proposal.", true},
		{"send the plan", "I will send the plan once you confirm.", true},
		{"case insensitive", "WOULD YOU LIKE ME TO SEND it?", true},
		{"plain question", "What budget range are you thinking of?", false},
		{"mentions sending email", "You could send an email to support.", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFinalizeIntent(tt.text))
		})
	}
}
