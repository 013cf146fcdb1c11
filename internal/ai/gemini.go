package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider on Google's Generative AI API. The
// client is created per request; the SDK keeps no useful state between
// calls and this avoids holding a connection the dashboard rarely uses.
type GeminiProvider struct {
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
}

func NewGeminiProvider(apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
	}
	return &GeminiProvider{
		apiKey:      apiKey,
		model:       model,
		temperature: 0.7,
		maxTokens:   1000,
	}, nil
}

func (p *GeminiProvider) SetTemperature(temp float64) { p.temperature = temp }
func (p *GeminiProvider) SetMaxTokens(tokens int)     { p.maxTokens = tokens }

// Complete flattens the role-tagged messages into a single prompt, since
// Gemini has no separate system role on this API surface.
func (p *GeminiProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.model)
	model.SetTemperature(float32(p.temperature))
	model.SetMaxOutputTokens(int32(p.maxTokens))

	var prompt strings.Builder
	for _, msg := range messages {
		prompt.WriteString(strings.ToUpper(msg.Role))
		prompt.WriteString(": ")
		prompt.WriteString(msg.Content)
		prompt.WriteString("\n\n")
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from model %s", p.model)
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt), nil
		}
	}
	return "", fmt.Errorf("no text part in response from model %s", p.model)
}
