// internal/adapters/wttr/client.go
package wttr

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

// Client talks to a wttr.in-compatible weather/geocoding endpoint. It is
// the only provider client with an explicit timeout: a slow weather answer
// should not stall a whole request.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 5 * time.Second},
	}
}

// CurrentByCity fetches the full j1 payload for a city: current conditions,
// astronomy and the nearest-area geocode. One round trip, no retries.
func (c *Client) CurrentByCity(ctx context.Context, city string) (map[string]any, error) {
	u := fmt.Sprintf("%s/%s?format=j1", c.base, url.PathEscape(city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "travel-companion/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveProvider("wttr", "current", 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveProvider("wttr", "current", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("wttr status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("wttr decode: %w", err)
	}
	return out, nil
}
