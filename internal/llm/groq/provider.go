package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/swiftsites/swiftsites-api/internal/llm"
)

// Provider implements llm.Provider for Groq's OpenAI-compatible API
type Provider struct {
	apiKey       string
	defaultModel string
	client       *http.Client
	baseURL      string
}

// NewProvider creates a new Groq provider
func NewProvider(apiKey, defaultModel string, timeout time.Duration) llm.Provider {
	if defaultModel == "" {
		defaultModel = "llama-3.3-70b-versatile"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Provider{
		apiKey:       apiKey,
		defaultModel: defaultModel,
		client:       &http.Client{Timeout: timeout},
		baseURL:      "https://api.groq.com/openai/v1",
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "groq"
}

// DefaultModel returns the default model
func (p *Provider) DefaultModel() string {
	return p.defaultModel
}

// IsConfigured checks if provider has valid credentials
func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete generates one assistant reply
func (p *Provider) Complete(ctx context.Context, system string, conversation []llm.ChatMessage, model string) (string, error) {
	if model == "" {
		model = p.defaultModel
	}

	messages := make([]chatMessage, 0, len(conversation)+1)
	messages = append(messages, chatMessage{Role: "system", Content: system})
	for _, m := range conversation {
		role := "user"
		if m.Role == "assistant" {
			role = "assistant"
		}
		messages = append(messages, chatMessage{Role: role, Content: m.Text})
	}

	body, err := json.Marshal(chatRequest{Model: model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	// Empty choices count as an empty completion, not an error
	if len(chatResp.Choices) == 0 {
		return "", nil
	}

	return chatResp.Choices[0].Message.Content, nil
}
