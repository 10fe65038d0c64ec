package app

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cuisineUnavailable is the sentinel suggestion for cities we have no
// table entry for.
const cuisineUnavailable = "Local food info not available"

// cuisineTable maps lowercase city names to signature local dishes.
// Read-only after process start.
var cuisineTable = map[string][]string{
	"chennai": {"Dosa", "Sambar", "Filter Coffee"},
	"mumbai":  {"Vada Pav", "Pav Bhaji", "Bombay Sandwich"},
	"delhi":   {"Chole Bhature", "Butter Chicken", "Paratha"},
	"kolkata": {"Rasgulla", "Fish Curry", "Kathi Roll"},
}

// cuisineFor is a case-insensitive exact lookup. Callers get a copy so the
// table stays immutable.
func cuisineFor(city string) []string {
	dishes, ok := cuisineTable[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return []string{cuisineUnavailable}
	}
	out := make([]string, len(dishes))
	copy(out, dishes)
	return out
}

// titleCase renders a display city name regardless of input casing.
// cases.Caser is stateful, so build one per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
