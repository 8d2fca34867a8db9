// README: Amadeus flight-offer client with deterministic mock quotes when no key is given.
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripplanner/internal/types"
)

const (
	originCode    = "DEL"
	fallbackCode  = "KUU"
	maxOffers     = 2
	departureLead = 7 * 24 * time.Hour
)

// destinationCodes is intentionally a two-entry table, not a real IATA lookup:
// only Goa resolves to its own airport, everything else degrades to the fixed
// fallback code. Widening it changes user-visible behavior.
var destinationCodes = map[string]string{
	"goa": "GOI",
}

// Quote is one flight price option.
type Quote struct {
	Origin      string
	Destination string
	Price       types.Price
	IsMock      bool
}

// Display renders the quote as shown to the user and embedded in the prompt.
// The rupee prefix lives here, not in the Price value.
func (q Quote) Display() string {
	s := fmt.Sprintf("%s → %s : ₹%s", q.Origin, q.Destination, q.Price.Amount)
	if q.IsMock {
		s += " (Mock)"
	}
	return s
}

// Client searches flight offers via the Amadeus test API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a Client for the given flight-offers endpoint. A nil
// httpClient falls back to a default with a 15s timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		now:        time.Now,
	}
}

type offersResponse struct {
	Data []struct {
		Price struct {
			Total string `json:"total"`
		} `json:"price"`
		Itineraries []struct {
			Segments []struct {
				Departure struct {
					IataCode string `json:"iataCode"`
				} `json:"departure"`
				Arrival struct {
					IataCode string `json:"iataCode"`
				} `json:"arrival"`
			} `json:"segments"`
		} `json:"itineraries"`
	} `json:"data"`
}

// Fetch returns display-ready flight options for the destination, in upstream
// order. Without a credential it returns exactly two deterministic mock quotes.
//
// Fetch never fails: an empty result degrades to a "No flights found." line and
// any transport or decode error to a descriptive one-element slice, mirroring
// the weather client's fail-soft contract.
func (c *Client) Fetch(ctx context.Context, destination, credential string) []string {
	if strings.TrimSpace(credential) == "" {
		return mockQuotes(destination)
	}

	offers, err := c.search(ctx, destination, credential)
	if err != nil {
		return []string{fmt.Sprintf("Flight API error: %v", err)}
	}
	if len(offers.Data) == 0 {
		return []string{"No flights found."}
	}

	lines := make([]string, 0, len(offers.Data))
	for _, offer := range offers.Data {
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		seg := offer.Itineraries[0].Segments[0]
		q := Quote{
			Origin:      seg.Departure.IataCode,
			Destination: seg.Arrival.IataCode,
			Price:       types.Price{Amount: offer.Price.Total, Currency: "INR"},
		}
		lines = append(lines, q.Display())
	}
	if len(lines) == 0 {
		return []string{"No flights found."}
	}
	return lines
}

func (c *Client) search(ctx context.Context, destination, credential string) (*offersResponse, error) {
	departure := c.now().Add(departureLead).Format("2006-01-02")

	q := url.Values{}
	q.Set("originLocationCode", originCode)
	q.Set("destinationLocationCode", destinationCode(destination))
	q.Set("departureDate", departure)
	q.Set("adults", "1")
	q.Set("max", fmt.Sprint(maxOffers))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out offersResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func destinationCode(destination string) string {
	if code, ok := destinationCodes[strings.ToLower(strings.TrimSpace(destination))]; ok {
		return code
	}
	return fallbackCode
}

func mockQuotes(destination string) []string {
	dest := strings.ToUpper(destination)
	quotes := []Quote{
		{Origin: "DEL", Destination: dest, Price: types.Price{Amount: "4,500", Currency: "INR"}, IsMock: true},
		{Origin: "BOM", Destination: dest, Price: types.Price{Amount: "5,200", Currency: "INR"}, IsMock: true},
	}
	lines := make([]string, len(quotes))
	for i, q := range quotes {
		lines[i] = q.Display()
	}
	return lines
}
