// internal/adapters/aviationstack/client.go
package aviationstack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"travel_companion/internal/adapters/observability"
)

// Client queries the aviationstack flight-schedule API. Authentication is a
// query-string access key, per that provider's scheme.
type Client struct {
	base string
	key  string
	hc   *http.Client
}

func New(base, key string) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("aviationstack access key is required")
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		key:  key,
		hc:   &http.Client{Timeout: 20 * time.Second},
	}, nil
}

func (c *Client) FlightsByRoute(ctx context.Context, origin, destination, date string) (map[string]any, error) {
	q := url.Values{
		"access_key": {c.key},
		"dep_iata":   {origin},
		"arr_iata":   {destination},
	}
	if date != "" {
		q.Set("flight_date", date)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/v1/flights?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveProvider("aviationstack", "flights", 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveProvider("aviationstack", "flights", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("aviationstack status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("aviationstack decode: %w", err)
	}
	return out, nil
}
