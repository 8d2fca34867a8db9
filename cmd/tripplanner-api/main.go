// README: Entry point; loads config, wires clients, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tripplanner/internal/ai"
	"tripplanner/internal/config"
	"tripplanner/internal/flights"
	httptransport "tripplanner/internal/http"
	"tripplanner/internal/service"
	"tripplanner/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}
	weatherClient := weather.NewClient(cfg.Weather.GeocodingBaseURL, cfg.Weather.ForecastBaseURL, httpClient)
	flightClient := flights.NewClient(cfg.Flights.BaseURL, httpClient)

	planner := service.NewPlanner(weatherClient, flightClient, ai.NewGeminiGenerator)

	router := httptransport.NewRouter(planner, service.Credentials{
		GeminiKey:  cfg.AI.GeminiKey,
		AmadeusKey: cfg.Flights.APIKey,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
