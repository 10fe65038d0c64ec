// internal/adapters/rapidapi/client.go
package rapidapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"travel_companion/internal/adapters/observability"
	"travel_companion/internal/domain"
)

// client is the shared transport for RapidAPI-hosted providers: account key
// and host headers, JSON decode into a loose map, no retries.
type client struct {
	base string
	host string // X-RapidAPI-Host value, derived from base
	key  string
	hc   *http.Client
}

func newClient(base, key string) (*client, error) {
	if key == "" {
		return nil, fmt.Errorf("RapidAPI key is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("bad base URL %q: %w", base, err)
	}
	return &client{
		base: strings.TrimRight(base, "/"),
		host: u.Host,
		key:  key,
		hc:   &http.Client{Timeout: 20 * time.Second},
	}, nil
}

func (c *client) get(ctx context.Context, provider, path string, q url.Values, out any) error {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-RapidAPI-Key", c.key)
	req.Header.Set("X-RapidAPI-Host", c.host)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveProvider(provider, path, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveProvider(provider, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s status %d: %s", provider, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s decode: %w", provider, err)
	}
	return nil
}

// AirportClient resolves city names through the IATA codes autocomplete API.
type AirportClient struct{ *client }

func NewAirports(base, key string) (*AirportClient, error) {
	c, err := newClient(base, key)
	if err != nil {
		return nil, err
	}
	return &AirportClient{c}, nil
}

func (c *AirportClient) Autocomplete(ctx context.Context, query string) (map[string]any, error) {
	var out map[string]any
	q := url.Values{"query": {query}}
	return out, c.get(ctx, "iata", "/api/v6/autocomplete", q, &out)
}

// HotelClient queries the booking list-by-map API for hotels inside a
// bounding box.
type HotelClient struct{ *client }

func NewHotels(base, key string) (*HotelClient, error) {
	c, err := newClient(base, key)
	if err != nil {
		return nil, err
	}
	return &HotelClient{c}, nil
}

// ListByBoundingBox searches the box with the fixed leisure-trip filter set:
// one room, one guest, USD, class 1-3, ordered by popularity from offset 0.
func (c *HotelClient) ListByBoundingBox(ctx context.Context, box domain.BoundingBox, arrival, departure string) (map[string]any, error) {
	q := url.Values{
		"arrival_date":              {arrival},
		"departure_date":            {departure},
		"room_qty":                  {"1"},
		"guest_qty":                 {"1"},
		"bbox":                      {formatBbox(box)},
		"search_id":                 {"none"},
		"price_filter_currencycode": {"USD"},
		"categories_filter":         {"class::1,class::2,class::3"},
		"languagecode":              {"en-us"},
		"travel_purpose":            {"leisure"},
		"order_by":                  {"popularity"},
		"offset":                    {"0"},
	}
	var out map[string]any
	return out, c.get(ctx, "booking", "/properties/list-by-map", q, &out)
}

func formatBbox(b domain.BoundingBox) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return f(b.LatMin) + "," + f(b.LatMax) + "," + f(b.LonMin) + "," + f(b.LonMax)
}
