// README: One-shot CLI demo; runs a single planning pipeline and writes the PDF.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"tripplanner/internal/ai"
	"tripplanner/internal/config"
	"tripplanner/internal/flights"
	"tripplanner/internal/pdf"
	"tripplanner/internal/service"
	"tripplanner/internal/trip"
	"tripplanner/internal/weather"
)

func main() {
	destination := flag.String("destination", "Manali", "trip destination")
	days := flag.Int("days", 2, "number of days (1-30)")
	budget := flag.String("budget", "Medium", "budget tier: Low, Medium or High")
	interests := flag.String("interests", "Nature,Adventure", "comma-separated interests")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.AI.GeminiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	var interestList []string
	for _, s := range strings.Split(*interests, ",") {
		if s = strings.TrimSpace(s); s != "" {
			interestList = append(interestList, s)
		}
	}

	weatherClient := weather.NewClient(cfg.Weather.GeocodingBaseURL, cfg.Weather.ForecastBaseURL, nil)
	flightClient := flights.NewClient(cfg.Flights.BaseURL, nil)
	planner := service.NewPlanner(weatherClient, flightClient, ai.NewGeminiGenerator)

	result, err := planner.Plan(context.Background(), trip.Request{
		Destination: *destination,
		Days:        *days,
		Budget:      trip.Budget(*budget),
		Interests:   interestList,
	}, service.Credentials{
		GeminiKey:  cfg.AI.GeminiKey,
		AmadeusKey: cfg.Flights.APIKey,
	})
	if err != nil {
		log.Fatalf("planning failed: %v", err)
	}

	fmt.Printf("Weather: %s\n", result.WeatherSummary)
	fmt.Printf("Flights: %s\n\n", strings.Join(result.FlightOptions, ", "))
	fmt.Println(result.Itinerary)

	data, err := pdf.Render(result.Itinerary)
	if err != nil {
		log.Fatalf("pdf rendering failed: %v", err)
	}
	filename := fmt.Sprintf("%s_itinerary.pdf", *destination)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", filename, err)
	}
	fmt.Printf("\nSaved %s\n", filename)
}
