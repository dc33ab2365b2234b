// Package ai wraps the LLM provider behind a farm-aware chat call.
package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// provider-side roles
	roleUser  = "user"
	roleModel = "model"
)

// Message is one turn of the client-side transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Turn is a transcript entry in provider roles ("user" or "model").
type Turn struct {
	Role string
	Text string
}

// Generator produces a completion for a system instruction and history.
type Generator interface {
	Generate(ctx context.Context, system string, turns []Turn) (string, error)
}

type Client struct {
	gen Generator
	log *zap.Logger
}

func NewClient(gen Generator, log *zap.Logger) *Client {
	return &Client{gen: gen, log: log}
}

// Chat sends the transcript with the farm context and returns the model's
// reply. Provider errors are logged and returned wrapped.
func (c *Client) Chat(ctx context.Context, msgs []Message, uc *UserContext) (string, error) {
	turns := make([]Turn, len(msgs))
	for i, m := range msgs {
		turns[i] = Turn{Role: ProviderRole(m.Role), Text: m.Content}
	}
	text, err := c.gen.Generate(ctx, SystemPrompt(uc), turns)
	if err != nil {
		c.log.Error("ai chat", zap.Int("messages", len(msgs)), zap.Error(err))
		return "", fmt.Errorf("ошибка при общении с AI: %w", err)
	}
	if text == "" {
		return FallbackReply, nil
	}
	return text, nil
}

// ProviderRole maps "assistant" to "model"; anything else is sent as "user".
func ProviderRole(role string) string {
	if role == RoleAssistant {
		return roleModel
	}
	return roleUser
}
