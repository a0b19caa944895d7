package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/swiftsites/swiftsites-api/internal/llm"
)

// Provider implements llm.Provider for a local Ollama instance
type Provider struct {
	host         string
	defaultModel string
	client       *http.Client
}

// NewProvider creates a new Ollama provider
func NewProvider(host, defaultModel string, timeout time.Duration) llm.Provider {
	if defaultModel == "" {
		defaultModel = "llama3"
	}
	if timeout <= 0 {
		timeout = 300 * time.Second
	}
	return &Provider{
		host:         host,
		defaultModel: defaultModel,
		client:       &http.Client{Timeout: timeout},
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "ollama"
}

// DefaultModel returns the default model
func (p *Provider) DefaultModel() string {
	return p.defaultModel
}

// IsConfigured checks if provider has valid credentials
func (p *Provider) IsConfigured() bool {
	return p.host != ""
}

type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Done bool `json:"done"`
}

// Complete generates one assistant reply
func (p *Provider) Complete(ctx context.Context, system string, conversation []llm.ChatMessage, model string) (string, error) {
	if model == "" {
		model = p.defaultModel
	}

	messages := make([]ollamaMessage, 0, len(conversation)+1)
	messages = append(messages, ollamaMessage{Role: "system", Content: system})
	for _, m := range conversation {
		role := "user"
		if m.Role == "assistant" {
			role = "assistant"
		}
		messages = append(messages, ollamaMessage{Role: role, Content: m.Text})
	}

	body, err := json.Marshal(ollamaRequest{Model: model, Messages: messages, Stream: false})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var ollamaResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return ollamaResp.Message.Content, nil
}
