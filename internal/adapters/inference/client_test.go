package inference_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"travel_companion/internal/adapters/inference"
)

func TestGenerateReply(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate" {
			t.Errorf("path: %q", r.URL.Path)
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["message"] != "plan my trip" {
			t.Errorf("message: %q", in["message"])
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"reply": "sure, where to?"})
	}))
	defer ts.Close()

	cl := inference.New(ts.URL)
	reply, err := cl.GenerateReply(context.Background(), "plan my trip")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply != "sure, where to?" {
		t.Fatalf("reply: %q", reply)
	}
}

func TestClassifySentiment_TruncatesLongText(t *testing.T) {
	var gotText string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		gotText = in["text"]
		_ = json.NewEncoder(w).Encode(map[string]any{"label": "POSITIVE", "score": 0.91})
	}))
	defer ts.Close()

	cl := inference.New(ts.URL)
	label, score, err := cl.ClassifySentiment(context.Background(), strings.Repeat("é", 600))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if label != "POSITIVE" || score != 0.91 {
		t.Fatalf("label=%q score=%v", label, score)
	}
	if n := utf8.RuneCountInString(gotText); n != 512 {
		t.Fatalf("want 512 runes sent, got %d", n)
	}
}
