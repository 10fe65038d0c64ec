package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"travel_companion/internal/domain"
)

// bboxDelta is the half-width, in degrees, of the hotel search region
// centered on a resolved city coordinate.
const bboxDelta = 0.2

// TravelService aggregates the upstream travel providers behind one API.
// Every call is a fresh round trip: no caching, no retries.
type TravelService struct {
	weather  domain.WeatherProvider
	airports domain.AirportProvider
	flights  domain.FlightProvider
	hotels   domain.HotelProvider
}

func NewTravelService(w domain.WeatherProvider, a domain.AirportProvider, f domain.FlightProvider, h domain.HotelProvider) *TravelService {
	return &TravelService{weather: w, airports: a, flights: f, hotels: h}
}

// Weather resolves current conditions, astronomy data and coordinates for
// a city. Missing subfields degrade to "N/A" or zero coordinates; only a
// failed round trip is an error.
func (s *TravelService) Weather(ctx context.Context, city string) (domain.WeatherSnapshot, error) {
	p, err := s.weather.CurrentByCity(ctx, city)
	if err != nil {
		return domain.WeatherSnapshot{}, &domain.UpstreamError{Stage: "weather", Err: err}
	}
	return mapWeather(city, p), nil
}

// IataCode resolves a city name to the airport code of its first
// autocomplete match. An empty candidate list is ErrNotFound, distinct
// from a transport failure.
func (s *TravelService) IataCode(ctx context.Context, city string) (string, error) {
	p, err := s.airports.Autocomplete(ctx, city)
	if err != nil {
		return "", &domain.UpstreamError{Stage: "iata", Err: err}
	}
	code, ok := firstCityCode(p)
	if !ok {
		return "", domain.ErrNotFound
	}
	return code, nil
}

// Flights lists scheduled flights between two airports, capped at the
// first five provider entries in provider order. date is forwarded
// upstream as-is when present.
func (s *TravelService) Flights(ctx context.Context, origin, destination, date string) ([]domain.FlightLeg, error) {
	p, err := s.flights.FlightsByRoute(ctx, origin, destination, date)
	if err != nil {
		return nil, &domain.UpstreamError{Stage: "flights", Err: err}
	}
	legs := mapFlights(p)
	if len(legs) == 0 {
		return nil, domain.ErrNotFound
	}
	return legs, nil
}

// Hotels searches hotels around a city for a date range. The city is
// re-resolved to coordinates through the weather provider on every call;
// a payload without coordinates degrades to the (0,0)-centered box rather
// than failing, matching the weather resolver's own fallback policy. A
// failed round trip at either step fails the whole call.
func (s *TravelService) Hotels(ctx context.Context, city, arrival, departure string) ([]domain.HotelListing, error) {
	p, err := s.weather.CurrentByCity(ctx, city)
	if err != nil {
		return nil, &domain.UpstreamError{Stage: "geo", Err: err}
	}
	geo := mapGeo(p)
	if geo.IsZero() {
		log.Warn().Str("city", city).Msg("geo resolution degenerate, searching around (0,0)")
	}
	box := domain.BoxAround(geo, bboxDelta)

	hp, err := s.hotels.ListByBoundingBox(ctx, box, arrival, departure)
	if err != nil {
		return nil, &domain.UpstreamError{Stage: "hotels", Err: err}
	}
	return mapHotels(hp), nil
}
