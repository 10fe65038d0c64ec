package domain

// GeoPoint is a WGS84 coordinate pair. The zero value (0,0) is the
// documented fallback when a provider omits coordinates; callers that care
// can detect it with IsZero.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (g GeoPoint) IsZero() bool { return g.Lat == 0 && g.Lon == 0 }

// BoundingBox is a rectangular geographic region used to scope a spatial
// hotel search.
type BoundingBox struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

// BoxAround expands p by delta degrees on each axis.
func BoxAround(p GeoPoint, delta float64) BoundingBox {
	return BoundingBox{
		LatMin: p.Lat - delta, LatMax: p.Lat + delta,
		LonMin: p.Lon - delta, LonMax: p.Lon + delta,
	}
}

// WeatherSnapshot is the normalized per-request view of a city's current
// conditions. Textual fields carry display formatting ("31°C", "74%") and
// degrade to the literal "N/A" when the provider omits them.
type WeatherSnapshot struct {
	City        string `json:"city"`
	Temperature string `json:"temperature"`
	Description string `json:"description"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"wind_speed_kph"`
	Sunrise     string `json:"sunrise"`
	Sunset      string `json:"sunset"`
	Icon        string `json:"icon"`
	GeoPoint
	Cuisine []string `json:"cuisine"`
}

// HotelListing is a normalized hotel search result. Listings reach clients
// only when BookingURL is actionable (direct URL or deep link).
type HotelListing struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	Stars      int     `json:"stars"`
	Photo      string  `json:"photo"`
	BookingURL string  `json:"booking_url"`
}

type FlightLeg struct {
	FlightNumber  string `json:"flight_number"`
	Airline       string `json:"airline"`
	Departure     string `json:"departure"`
	Arrival       string `json:"arrival"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Emoji string  `json:"emoji"`
	Quote string  `json:"quote"`
}
