package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/swiftsites/swiftsites-api/internal/config"
	"github.com/swiftsites/swiftsites-api/internal/llm"
	"google.golang.org/api/option"
)

// Provider implements llm.Provider for Google Gemini
type Provider struct {
	apiKey string
	model  string
}

// NewProvider creates a new Gemini provider
func NewProvider(cfg config.GeminiConfig) *Provider {
	return &Provider{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

func (p *Provider) Name() string {
	return "gemini"
}

func (p *Provider) DefaultModel() string {
	if p.model != "" {
		return p.model
	}
	return "gemini-2.5-flash"
}

func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

// Complete generates one assistant reply. The conversation maps onto a
// Gemini chat session: all but the last message become history, the last
// message is sent as the live turn.
func (p *Provider) Complete(ctx context.Context, system string, conversation []llm.ChatMessage, model string) (string, error) {
	if !p.IsConfigured() {
		return "", fmt.Errorf("gemini provider is not configured (missing API key)")
	}
	if len(conversation) == 0 {
		return "", fmt.Errorf("empty conversation")
	}

	if model == "" {
		model = p.DefaultModel()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	generativeModel := client.GenerativeModel(model)
	generativeModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}

	chat := generativeModel.StartChat()
	for _, m := range conversation[:len(conversation)-1] {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(conversation[len(conversation)-1].Text))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}

	return output, nil
}
