package ai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// OpenAIProvider implements Provider over any OpenAI-compatible
// chat-completion endpoint, authenticated with a bearer token.
type OpenAIProvider struct {
	client      *openai.LLM
	model       string
	temperature float64
	maxTokens   int
}

// NewOpenAIProvider builds the provider. baseURL may be empty for the
// public API, or point at a compatible gateway.
func NewOpenAIProvider(token, baseURL, model string) (*OpenAIProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
	}

	opts := []openai.Option{openai.WithToken(token)}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	return &OpenAIProvider{
		client:      client,
		model:       model,
		temperature: 0.7,
		maxTokens:   1000,
	}, nil
}

func (p *OpenAIProvider) SetTemperature(temp float64) { p.temperature = temp }
func (p *OpenAIProvider) SetMaxTokens(tokens int)     { p.maxTokens = tokens }

// Complete sends the role-tagged messages and returns the generated text.
func (p *OpenAIProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	content := make([]llms.MessageContent, len(messages))
	for i, msg := range messages {
		var msgType schema.ChatMessageType
		switch msg.Role {
		case "system":
			msgType = schema.ChatMessageTypeSystem
		case "assistant":
			msgType = schema.ChatMessageTypeAI
		default:
			msgType = schema.ChatMessageTypeHuman
		}
		content[i] = llms.TextParts(msgType, msg.Content)
	}

	response, err := p.client.GenerateContent(ctx, content,
		llms.WithModel(p.model),
		llms.WithTemperature(p.temperature),
		llms.WithMaxTokens(p.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate chat completion: %w", err)
	}
	if response == nil || len(response.Choices) == 0 {
		return "", fmt.Errorf("empty response from model %s", p.model)
	}
	return response.Choices[0].Content, nil
}
