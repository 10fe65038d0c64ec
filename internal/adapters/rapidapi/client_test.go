package rapidapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"travel_companion/internal/adapters/rapidapi"
	"travel_companion/internal/domain"
)

func TestNewAirports_RequiresKey(t *testing.T) {
	if _, err := rapidapi.NewAirports("https://example.com", ""); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestAutocomplete_SendsKeyAndQuery(t *testing.T) {
	var gotKey, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"cities":[{"code":"MAA"}]}}`))
	}))
	defer ts.Close()

	cl, err := rapidapi.NewAirports(ts.URL, "test-key")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got, err := cl.Autocomplete(context.Background(), "chennai")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotKey != "test-key" || gotQuery != "chennai" {
		t.Fatalf("key=%q query=%q", gotKey, gotQuery)
	}
	if _, ok := got["response"]; !ok {
		t.Fatalf("payload: %+v", got)
	}
}

func TestListByBoundingBox_FixedFilterSet(t *testing.T) {
	var got url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":[]}`))
	}))
	defer ts.Close()

	cl, err := rapidapi.NewHotels(ts.URL, "test-key")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	box := domain.BoundingBox{LatMin: 12.85, LatMax: 13.25, LonMin: 80.05, LonMax: 80.45}
	if _, err := cl.ListByBoundingBox(context.Background(), box, "2026-09-10", "2026-09-12"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for param, want := range map[string]string{
		"bbox":                      "12.85,13.25,80.05,80.45",
		"arrival_date":              "2026-09-10",
		"departure_date":            "2026-09-12",
		"room_qty":                  "1",
		"guest_qty":                 "1",
		"price_filter_currencycode": "USD",
		"categories_filter":         "class::1,class::2,class::3",
		"order_by":                  "popularity",
		"offset":                    "0",
		"search_id":                 "none",
		"languagecode":              "en-us",
		"travel_purpose":            "leisure",
	} {
		if got.Get(param) != want {
			t.Fatalf("%s: got %q, want %q", param, got.Get(param), want)
		}
	}
}

func TestGet_Non200IsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	cl, err := rapidapi.NewAirports(ts.URL, "test-key")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := cl.Autocomplete(context.Background(), "x"); err == nil {
		t.Fatalf("expected error for 429")
	}
}
