// README: Trip planner pipeline; aggregates weather and flight data into a Gemini prompt.
package service

import (
	"context"
	"errors"
	"fmt"

	"tripplanner/internal/ai"
	"tripplanner/internal/prompt"
	"tripplanner/internal/trip"
)

// ErrMissingAPIKey is returned before any network call when no Gemini key is
// available for the run.
var ErrMissingAPIKey = errors.New("gemini api key is required")

// WeatherFetcher supplies the forecast summary for a destination. The fetch is
// fail-soft: errors arrive as descriptive strings, never as Go errors.
type WeatherFetcher interface {
	Fetch(ctx context.Context, destination string) string
}

// FlightFetcher supplies display-ready flight options, mock or live.
type FlightFetcher interface {
	Fetch(ctx context.Context, destination, credential string) []string
}

// Credentials are the per-run API keys. AmadeusKey is optional; without it the
// flight fetcher serves mock quotes.
type Credentials struct {
	GeminiKey  string
	AmadeusKey string
}

// Result is everything one run produces. Nothing is retained between runs; the
// caller keeps the itinerary and hands it back for PDF export.
type Result struct {
	Itinerary      string
	WeatherSummary string
	FlightOptions  []string
}

// Planner orchestrates the data aggregation and itinerary generation pipeline.
type Planner struct {
	weather      WeatherFetcher
	flights      FlightFetcher
	newGenerator ai.GeneratorFactory
}

// NewPlanner creates a Planner with initialized dependencies.
func NewPlanner(weather WeatherFetcher, flights FlightFetcher, newGenerator ai.GeneratorFactory) *Planner {
	return &Planner{
		weather:      weather,
		flights:      flights,
		newGenerator: newGenerator,
	}
}

// Plan executes one pipeline run: credential gate, weather fetch, flight
// fetch, prompt assembly, generation. Weather and flight failures degrade to
// inline strings and the run continues; a generation failure aborts the run
// with the upstream message intact. Runs are independent and stateless.
func (p *Planner) Plan(ctx context.Context, req trip.Request, creds Credentials) (Result, error) {
	if creds.GeminiKey == "" {
		return Result{}, ErrMissingAPIKey
	}

	weatherSummary := p.weather.Fetch(ctx, req.Destination)
	flightOptions := p.flights.Fetch(ctx, req.Destination, creds.AmadeusKey)

	pr := prompt.Assemble(req, weatherSummary, flightOptions)

	gen, err := p.newGenerator(ctx, creds.GeminiKey)
	if err != nil {
		return Result{}, fmt.Errorf("itinerary generation: %w", err)
	}
	if closer, ok := gen.(interface{ Close() }); ok {
		defer closer.Close()
	}

	itinerary, err := gen.Generate(ctx, pr)
	if err != nil {
		return Result{}, fmt.Errorf("itinerary generation: %w", err)
	}

	return Result{
		Itinerary:      itinerary,
		WeatherSummary: weatherSummary,
		FlightOptions:  flightOptions,
	}, nil
}
