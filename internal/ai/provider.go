package ai

import (
	"context"
	"errors"
)

// Message is a role-tagged chat message
type Message struct {
	Role    string `json:"role"` // 'system', 'user', 'assistant'
	Content string `json:"content"`
}

// Provider abstracts the hosted chat-completion endpoint so the advisor
// can run against OpenAI-compatible APIs or Gemini interchangeably.
type Provider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
	SetTemperature(temp float64)
	SetMaxTokens(tokens int)
}

// Unavailable stands in when no provider could be built. Every request
// fails, which the advisor turns into its fixed fallback message.
type Unavailable struct{}

func (Unavailable) Complete(context.Context, []Message) (string, error) {
	return "", errors.New("no AI provider configured")
}

func (Unavailable) SetTemperature(float64) {}

func (Unavailable) SetMaxTokens(int) {}
