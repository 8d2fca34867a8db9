// README: Generator contract for itinerary text generation.
package ai

import (
	"context"

	"tripplanner/internal/prompt"
)

// Generator defines the contract for producing itinerary text from an
// assembled prompt. This interface allows swapping providers (Gemini, OpenAI,
// etc.) and stubbing generation in tests.
type Generator interface {
	// Generate sends the prompt to the model and returns the raw generated
	// text. One blocking request per call, no retries; errors are surfaced
	// to the caller as-is.
	Generate(ctx context.Context, p prompt.Prompt) (string, error)
}

// GeneratorFactory builds a Generator from a request-scoped API key. The key
// arrives with each run, so the provider cannot be constructed at startup.
type GeneratorFactory func(ctx context.Context, apiKey string) (Generator, error)
