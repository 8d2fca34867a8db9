// README: Gemini-backed itinerary generator.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripplanner/internal/prompt"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider implements Generator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client from the given API key.
// The key is request-scoped: a provider is built per run and closed after it.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)

	// Itineraries are free text; leave the response type unconstrained and use
	// a moderate temperature for varied but grounded suggestions.
	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Generate sends the assembled prompt to Gemini and returns the itinerary text.
func (p *GeminiProvider) Generate(ctx context.Context, pr prompt.Prompt) (string, error) {
	p.model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(pr.System)},
	}

	resp, err := p.model.GenerateContent(ctx, genai.Text(pr.User))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: API returned empty candidates")
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}

	return strings.Join(textParts, "\n"), nil
}

// NewGeminiGenerator adapts NewGeminiProvider to the GeneratorFactory shape.
func NewGeminiGenerator(ctx context.Context, apiKey string) (Generator, error) {
	return NewGeminiProvider(ctx, apiKey)
}
