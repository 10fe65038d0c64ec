package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travel_companion/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveHTTP("/weather", "GET", 200, 12*time.Millisecond)
	observability.ObserveProvider("wttr", "current", 200, 30*time.Millisecond)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "travel_http_requests_total") {
		t.Fatalf("expected travel_http_requests_total in output")
	}
	if !strings.Contains(out, "travel_provider_requests_total") {
		t.Fatalf("expected travel_provider_requests_total in output")
	}
}
