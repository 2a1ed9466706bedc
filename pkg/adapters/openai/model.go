// Package openai adapts the OpenAI Chat Completions API to ports.ChatModel.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/flash/internal/logging"
	"github.com/aretw0/flash/pkg/domain"
	goopenai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the model identifier used when none is configured.
const DefaultModel = "gpt-4o-mini"

// completer is the subset of *goopenai.Client used by Model; it is easy to mock in tests.
type completer interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// Config holds the connection settings. APIKey and Model are required.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for OpenAI-compatible gateways
}

// Model implements ports.ChatModel against the Chat Completions endpoint.
type Model struct {
	client completer
	model  string
	logger *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New validates cfg and builds a Model. Missing credentials fail here, not on first use.
func New(cfg Config, opts ...Option) (*Model, error) {
	var missing []string
	if cfg.APIKey == "" {
		missing = append(missing, "api_key")
	}
	if cfg.Model == "" {
		missing = append(missing, "model")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("openai: %w: %s", domain.ErrMissingConfig, strings.Join(missing, ", "))
	}

	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return newModel(goopenai.NewClientWithConfig(clientCfg), cfg.Model, opts...), nil
}

func newModel(client completer, model string, opts ...Option) *Model {
	m := &Model{
		client: client,
		model:  model,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.NewNop()
	}
	return m
}

// Invoke sends the conversation and returns the first choice. Errors are not retried.
func (m *Model) Invoke(ctx context.Context, messages []domain.Message) (domain.Message, error) {
	req := goopenai.ChatCompletionRequest{
		Model:    m.model,
		Messages: make([]goopenai.ChatCompletionMessage, len(messages)),
	}
	for i, msg := range messages {
		req.Messages[i] = goopenai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	m.logger.Debug("Chat Completion Request", "model", m.model, "messages", len(messages))

	resp, err := m.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return domain.Message{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.Message{}, fmt.Errorf("openai: %w", domain.ErrEmptyResponse)
	}

	m.logger.Debug("Chat Completion Reply",
		"model", resp.Model,
		"finish_reason", resp.Choices[0].FinishReason,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
	)

	reply := resp.Choices[0].Message
	role := domain.Role(reply.Role)
	if role == "" {
		role = domain.RoleAssistant
	}
	return domain.Message{Role: role, Content: reply.Content}, nil
}
