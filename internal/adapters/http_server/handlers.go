// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"travel_companion/internal/app"
	"travel_companion/internal/domain"
)

type Handlers struct {
	Travel *app.TravelService
	Assist *app.AssistService
	Audit  domain.AuditLog
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/", h.home)
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/weather", h.weather)
	s.mux.Get("/iata-code", h.iataCode)
	s.mux.Get("/flight-details", h.flightDetails)
	s.mux.Get("/hotels", h.hotels)
	s.mux.Post("/chat", h.chat)
	s.mux.Post("/sentiment", h.sentiment)
}

// ---- error mapping ----

// apiError carries the stable machine-checkable kind. Raw upstream error
// text never leaves the server; it is logged in writeError only.
type apiError struct {
	Kind   string `json:"error"`
	Title  string `json:"title"`
	Status int    `json:"status"`
}

func classify(err error) (kind string, status int, title string) {
	var ve *domain.ValidationError
	var ue *domain.UpstreamError
	switch {
	case errors.As(err, &ve):
		return "validation", http.StatusBadRequest, ve.Error()
	case errors.Is(err, domain.ErrNotFound):
		return "not_found", http.StatusNotFound, "no matching data upstream"
	case errors.As(err, &ue):
		return "upstream", http.StatusInternalServerError, "upstream provider failed"
	default:
		return "internal", http.StatusInternalServerError, "internal error"
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind, status, title := classify(err)
	if status >= 500 {
		log.Error().Err(err).Str("path", r.URL.Path).Str("kind", kind).Msg("request failed")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(apiError{Kind: kind, Title: title, Status: status}); encErr != nil {
		log.Error().Err(encErr).Msg("write JSON error response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// requiredParam returns the trimmed query parameter, or a ValidationError
// before any audit write or provider call happens.
func requiredParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", &domain.ValidationError{Param: name}
	}
	return v, nil
}

// audit records the request attempt; failures are logged, never surfaced.
func (h *Handlers) audit(endpoint, city, message string) {
	if err := h.Audit.Record(endpoint, city, message); err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("audit append failed")
	}
}

// ---- handlers ----

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Smart Travel Companion API is running"})
}

func (h *Handlers) weather(w http.ResponseWriter, r *http.Request) {
	city, err := requiredParam(r, "city")
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.audit("/weather", city, "")

	snap, err := h.Travel.Weather(r.Context(), city)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handlers) iataCode(w http.ResponseWriter, r *http.Request) {
	city, err := requiredParam(r, "city")
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.audit("/iata-code", city, "")

	code, err := h.Travel.IataCode(r.Context(), city)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"iata": code})
}

func (h *Handlers) flightDetails(w http.ResponseWriter, r *http.Request) {
	origin, err := requiredParam(r, "origin")
	if err != nil {
		writeError(w, r, err)
		return
	}
	destination, err := requiredParam(r, "destination")
	if err != nil {
		writeError(w, r, err)
		return
	}
	date := r.URL.Query().Get("date") // optional, forwarded unvalidated
	h.audit("/flight-details", origin, "to "+destination)

	legs, err := h.Travel.Flights(r.Context(), origin, destination, date)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"flights": legs})
}

func (h *Handlers) hotels(w http.ResponseWriter, r *http.Request) {
	city, err := requiredParam(r, "city")
	if err != nil {
		writeError(w, r, err)
		return
	}
	arrival, err := requiredParam(r, "arrival_date")
	if err != nil {
		writeError(w, r, err)
		return
	}
	departure, err := requiredParam(r, "departure_date")
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.audit("/hotels", city, arrival+" to "+departure)

	list, err := h.Travel.Hotels(r.Context(), city, arrival, departure)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hotels": list})
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	msg := strings.TrimSpace(body.Message)
	if msg == "" {
		writeError(w, r, &domain.ValidationError{Param: "message"})
		return
	}
	h.audit("/chat", "", msg)

	reply, err := h.Assist.Reply(r.Context(), msg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (h *Handlers) sentiment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	text := strings.TrimSpace(body.Text)
	if text == "" {
		writeError(w, r, &domain.ValidationError{Param: "text"})
		return
	}

	out, err := h.Assist.Sentiment(r.Context(), text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
