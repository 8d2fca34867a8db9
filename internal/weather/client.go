// README: Open-Meteo client; geocodes a destination and summarizes a 3-day forecast.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const forecastDays = 3

// Client resolves destination names and fetches daily forecasts from Open-Meteo.
type Client struct {
	geocodingURL string
	forecastURL  string
	httpClient   *http.Client
}

// NewClient creates a Client for the given Open-Meteo endpoints. A nil
// httpClient falls back to a default with a 15s timeout.
func NewClient(geocodingURL, forecastURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		geocodingURL: geocodingURL,
		forecastURL:  forecastURL,
		httpClient:   httpClient,
	}
}

type geocodingResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	Daily struct {
		Time           []string  `json:"time"`
		TemperatureMax []float64 `json:"temperature_2m_max"`
		TemperatureMin []float64 `json:"temperature_2m_min"`
		WeatherCode    []int     `json:"weathercode"`
	} `json:"daily"`
}

// Fetch returns a one-line forecast summary for the destination, one entry per
// day in upstream order, e.g. "2026-08-29: 21.4°C - 29.1°C | ...".
//
// Fetch never fails: an unknown destination yields a "not found" sentinel and
// any transport or decode error degrades to a descriptive string, so weather
// unavailability cannot abort a planning run.
func (c *Client) Fetch(ctx context.Context, destination string) string {
	geo, err := c.geocode(ctx, destination)
	if err != nil {
		return fmt.Sprintf("Weather API error: %v", err)
	}
	if len(geo.Results) == 0 {
		return fmt.Sprintf("Weather info for %s not found.", destination)
	}

	// First match only; the upstream ranks results and we do no disambiguation.
	lat := geo.Results[0].Latitude
	lon := geo.Results[0].Longitude

	fc, err := c.forecast(ctx, lat, lon)
	if err != nil {
		return fmt.Sprintf("Weather API error: %v", err)
	}

	days := make([]string, 0, len(fc.Daily.Time))
	for i, date := range fc.Daily.Time {
		if i >= len(fc.Daily.TemperatureMin) || i >= len(fc.Daily.TemperatureMax) {
			break
		}
		days = append(days, fmt.Sprintf("%s: %s°C - %s°C",
			date,
			formatTemp(fc.Daily.TemperatureMin[i]),
			formatTemp(fc.Daily.TemperatureMax[i])))
	}
	if len(days) == 0 {
		return fmt.Sprintf("Weather info for %s not found.", destination)
	}
	return strings.Join(days, " | ")
}

func (c *Client) geocode(ctx context.Context, destination string) (*geocodingResponse, error) {
	q := url.Values{}
	q.Set("name", destination)
	q.Set("count", "1")

	var out geocodingResponse
	if err := c.getJSON(ctx, c.geocodingURL+"?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("geocoding: %w", err)
	}
	return &out, nil
}

func (c *Client) forecast(ctx context.Context, lat, lon float64) (*forecastResponse, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,weathercode")
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("timezone", "auto")

	var out forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// formatTemp keeps the upstream value without trailing zeros (21.5, 24).
func formatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
