// README: Config loader with .env support and env defaults for HTTP, external APIs, and AI keys.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Weather struct {
		GeocodingBaseURL string
		ForecastBaseURL  string
	}
	Flights struct {
		BaseURL string
		APIKey  string
	}
	AI struct {
		GeminiKey string
	}
	HTTPClientTimeout time.Duration
}

// Load reads configuration from a .env file (if present) and the environment.
// Both API keys are optional here: requests may carry their own keys, and the
// planner rejects a run only when no Gemini key is available at all.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIP_HTTP_ADDR", ":8080")
	cfg.Weather.GeocodingBaseURL = envOrDefault("TRIP_GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1/search")
	cfg.Weather.ForecastBaseURL = envOrDefault("TRIP_FORECAST_URL", "https://api.open-meteo.com/v1/forecast")
	cfg.Flights.BaseURL = envOrDefault("TRIP_FLIGHTS_URL", "https://test.api.amadeus.com/v2/shopping/flight-offers")
	cfg.Flights.APIKey = os.Getenv("AMADEUS_API_KEY")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.HTTPClientTimeout = time.Duration(envOrDefaultInt("TRIP_HTTP_TIMEOUT_SECONDS", 15)) * time.Second
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
