package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTP.Addr == "" {
		t.Error("HTTP addr default missing")
	}
	if cfg.Weather.GeocodingBaseURL == "" || cfg.Weather.ForecastBaseURL == "" {
		t.Error("weather endpoint defaults missing")
	}
	if cfg.Flights.BaseURL == "" {
		t.Error("flights endpoint default missing")
	}
	if cfg.HTTPClientTimeout <= 0 {
		t.Error("http client timeout must be positive")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRIP_HTTP_ADDR", ":9999")
	t.Setenv("TRIP_HTTP_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTP.Addr != ":9999" {
		t.Errorf("HTTP.Addr = %q, want :9999", cfg.HTTP.Addr)
	}
	if cfg.HTTPClientTimeout.Seconds() != 3 {
		t.Errorf("HTTPClientTimeout = %v, want 3s", cfg.HTTPClientTimeout)
	}
}
