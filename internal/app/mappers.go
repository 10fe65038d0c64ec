package app

import (
	"strconv"
	"strings"

	"travel_companion/internal/domain"
)

// fallbackIconURL must stay byte-identical across releases; clients cache
// it by value.
const fallbackIconURL = "https://cdn-icons-png.flaticon.com/512/869/869869.png"

const maxFlightLegs = 5

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths. Numeric parts index into
// arrays, so "weather.0.astronomy.0.sunrise" walks the wttr payload.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[part]
			if !ok {
				return nil
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			cur = node[i]
		default:
			return nil
		}
	}
	return cur
}

// lookupStr returns the string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// strOr returns the trimmed string at path, or "N/A" when the leaf is
// missing or empty. Partial provider data never fails a request.
func strOr(m map[string]any, path string) string {
	if s := strings.TrimSpace(lookupStr(m, path)); s != "" {
		return s
	}
	return "N/A"
}

// withUnit appends a display unit unless the value already degraded to N/A.
func withUnit(v, unit string) string {
	if v == "N/A" {
		return v
	}
	return v + unit
}

// floatOr: number at path from float64/int/string forms; 0 on miss. The
// zero is the documented degenerate coordinate, not an error.
func floatOr(m map[string]any, path string) float64 {
	switch v := lookupAny(m, path).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}

/********** weather / geo mappers **********/

// mapGeo pulls the nearest-area coordinates; wttr serves them as strings.
func mapGeo(p map[string]any) domain.GeoPoint {
	return domain.GeoPoint{
		Lat: floatOr(p, "nearest_area.0.latitude"),
		Lon: floatOr(p, "nearest_area.0.longitude"),
	}
}

func mapWeather(city string, p map[string]any) domain.WeatherSnapshot {
	icon := strings.TrimSpace(lookupStr(p, "current_condition.0.weatherIconUrl.0.value"))
	if icon == "" {
		icon = fallbackIconURL
	}
	return domain.WeatherSnapshot{
		City:        titleCase(city),
		Temperature: withUnit(strOr(p, "current_condition.0.temp_C"), "°C"),
		Description: strOr(p, "current_condition.0.weatherDesc.0.value"),
		Humidity:    withUnit(strOr(p, "current_condition.0.humidity"), "%"),
		WindSpeed:   withUnit(strOr(p, "current_condition.0.windspeedKmph"), " km/h"),
		Sunrise:     strOr(p, "weather.0.astronomy.0.sunrise"),
		Sunset:      strOr(p, "weather.0.astronomy.0.sunset"),
		Icon:        icon,
		GeoPoint:    mapGeo(p),
		Cuisine:     cuisineFor(city),
	}
}

/********** airport mapper **********/

// firstCityCode takes the first autocomplete candidate only. ok is false
// when the provider authoritatively returned no candidates.
func firstCityCode(p map[string]any) (string, bool) {
	raw, _ := lookupAny(p, "response.cities").([]any)
	if len(raw) == 0 {
		return "", false
	}
	c, ok := raw[0].(map[string]any)
	if !ok {
		return "", false
	}
	return lookupStr(c, "code"), true
}

/********** flight mapper **********/

// mapFlights keeps the first five entries in provider order; no
// deduplication, no re-sorting.
func mapFlights(p map[string]any) []domain.FlightLeg {
	raw, _ := lookupAny(p, "data").([]any)
	if len(raw) > maxFlightLegs {
		raw = raw[:maxFlightLegs]
	}
	out := make([]domain.FlightLeg, 0, len(raw))
	for _, it := range raw {
		f, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, domain.FlightLeg{
			FlightNumber:  lookupStr(f, "flight.iata"),
			Airline:       lookupStr(f, "airline.name"),
			Departure:     lookupStr(f, "departure.airport"),
			Arrival:       lookupStr(f, "arrival.airport"),
			DepartureTime: lookupStr(f, "departure.scheduled"),
			ArrivalTime:   lookupStr(f, "arrival.scheduled"),
		})
	}
	return out
}

/********** hotel mapper **********/

// mapHotels normalizes the list-by-map payload. A listing without a direct
// URL or a deep link is not actionable and never surfaces; the direct URL
// wins when both exist.
func mapHotels(p map[string]any) []domain.HotelListing {
	raw, _ := lookupAny(p, "result").([]any)
	out := make([]domain.HotelListing, 0, len(raw))
	for _, it := range raw {
		h, ok := it.(map[string]any)
		if !ok {
			continue
		}
		link := lookupStr(h, "url")
		if link == "" {
			link = lookupStr(h, "deep_link")
		}
		if link == "" {
			continue
		}
		out = append(out, domain.HotelListing{
			Name:       lookupStr(h, "name"),
			Address:    lookupStr(h, "address"),
			Price:      floatOr(h, "min_total_price"),
			Currency:   lookupStr(h, "currencycode"),
			Stars:      int(floatOr(h, "class")),
			Photo:      lookupStr(h, "main_photo_url"),
			BookingURL: link,
		})
	}
	return out
}
