package domain

import "context"

// Provider ports. Adapters decode upstream JSON into loose maps; the app
// layer owns normalization so a provider shape change never panics a request.

type WeatherProvider interface {
	CurrentByCity(ctx context.Context, city string) (map[string]any, error)
}

type AirportProvider interface {
	Autocomplete(ctx context.Context, query string) (map[string]any, error)
}

type FlightProvider interface {
	// FlightsByRoute queries scheduled flights between two IATA codes.
	// date is optional and forwarded upstream unvalidated.
	FlightsByRoute(ctx context.Context, origin, destination, date string) (map[string]any, error)
}

type HotelProvider interface {
	ListByBoundingBox(ctx context.Context, box BoundingBox, arrival, departure string) (map[string]any, error)
}

// Assistant is the injected handle to the text-inference service.
type Assistant interface {
	GenerateReply(ctx context.Context, text string) (string, error)
	ClassifySentiment(ctx context.Context, text string) (label string, score float64, err error)
}

// AuditLog records one entry per inbound request, before business logic
// runs. Implementations must serialize concurrent appends.
type AuditLog interface {
	Record(endpoint, city, message string) error
}
