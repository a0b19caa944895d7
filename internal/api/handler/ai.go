package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/swiftsites/swiftsites-api/internal/api/response"
	"github.com/swiftsites/swiftsites-api/internal/conversation"
	"github.com/swiftsites/swiftsites-api/internal/domain"
	"github.com/swiftsites/swiftsites-api/internal/llm"
	"github.com/swiftsites/swiftsites-api/internal/metrics"
)

// AIHandler serves conversation turns and brief finalization.
type AIHandler struct {
	orchestrator *conversation.Orchestrator
}

// NewAIHandler creates a new AI handler
func NewAIHandler(orchestrator *conversation.Orchestrator) *AIHandler {
	return &AIHandler{orchestrator: orchestrator}
}

type aiRequest struct {
	Type         string            `json:"type"`
	Conversation []llm.ChatMessage `json:"conversation"`
	Brief        domain.Brief      `json:"brief"`
}

// Complete handles POST /api/ai. Chat requests replay the posted history
// through a restored session; final requests carry only the brief.
func (h *AIHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req aiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	switch req.Type {
	case llm.TypeChat:
		h.chat(w, r, req)
	case llm.TypeFinal:
		h.final(w, r, req)
	default:
		metrics.AIRequests.WithLabelValues("invalid", "rejected").Inc()
		response.BadRequest(w, "Invalid request type.")
	}
}

func (h *AIHandler) chat(w http.ResponseWriter, r *http.Request, req aiRequest) {
	if len(req.Conversation) == 0 {
		response.BadRequest(w, "Conversation is empty")
		return
	}

	last := req.Conversation[len(req.Conversation)-1]
	if last.Role != string(domain.SenderUser) {
		response.BadRequest(w, "Conversation must end with a user message")
		return
	}

	// The posted history minus the new user turn restores the session;
	// the orchestrator re-appends the turn and drives the gateway.
	sess := conversation.Restore(domain.NewBrief(), fromTranscript(req.Conversation[:len(req.Conversation)-1]))

	reply, err := h.orchestrator.SendUserTurn(r.Context(), sess, last.Text)
	if err != nil {
		if errors.Is(err, conversation.ErrEmptyMessage) {
			response.BadRequest(w, "Message text is required")
			return
		}
		metrics.AIRequests.WithLabelValues(llm.TypeChat, "error").Inc()
		log.Error().Err(err).Msg("AI chat turn failed")
		response.InternalError(w, "Internal server error.")
		return
	}

	metrics.AIRequests.WithLabelValues(llm.TypeChat, "ok").Inc()
	response.OK(w, map[string]string{"text": reply.Text})
}

func (h *AIHandler) final(w http.ResponseWriter, r *http.Request, req aiRequest) {
	sess := conversation.NewSession()
	sess.SetBrief(domain.NewBrief().Merge(req.Brief))

	proposal, err := h.orchestrator.Finalize(r.Context(), sess)
	if err != nil {
		metrics.AIRequests.WithLabelValues(llm.TypeFinal, "error").Inc()
		log.Error().Err(err).Msg("AI finalization failed")
		response.InternalError(w, "Internal server error.")
		return
	}

	metrics.AIRequests.WithLabelValues(llm.TypeFinal, "ok").Inc()
	response.OK(w, map[string]string{"text": proposal.Text})
}

func fromTranscript(entries []llm.ChatMessage) []domain.Message {
	out := make([]domain.Message, 0, len(entries))
	for _, e := range entries {
		sender := domain.SenderUser
		if e.Role == string(domain.SenderAssistant) {
			sender = domain.SenderAssistant
		}
		out = append(out, domain.NewMessage(sender, e.Text))
	}
	return out
}
