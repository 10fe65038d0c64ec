package wttr_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel_companion/internal/adapters/wttr"
)

func TestCurrentByCity_DecodesPayload(t *testing.T) {
	var gotPath, gotFormat string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFormat = r.URL.Query().Get("format")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"nearest_area":[{"latitude":"13.083","longitude":"80.283"}]}`))
	}))
	defer ts.Close()

	cl := wttr.New(ts.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := cl.CurrentByCity(ctx, "new delhi")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotPath != "/new%20delhi" && gotPath != "/new delhi" {
		t.Fatalf("path: %q", gotPath)
	}
	if gotFormat != "j1" {
		t.Fatalf("format: %q", gotFormat)
	}
	if _, ok := got["nearest_area"]; !ok {
		t.Fatalf("payload: %+v", got)
	}
}

func TestCurrentByCity_Non200IsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown location", http.StatusNotFound)
	}))
	defer ts.Close()

	cl := wttr.New(ts.URL)
	if _, err := cl.CurrentByCity(context.Background(), "x"); err == nil {
		t.Fatalf("expected error for 404")
	}
}
