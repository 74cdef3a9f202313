package domain

import "strings"

// Vertical is one travel product category. Each vertical has a parallel but
// independent search/filter/booking flow.
type Vertical string

const (
	VerticalFlights   Vertical = "flights"
	VerticalHotels    Vertical = "hotels"
	VerticalBuses     Vertical = "buses"
	VerticalTrains    Vertical = "trains"
	VerticalHomestays Vertical = "homestays"
	VerticalCabs      Vertical = "cabs"
	VerticalInsurance Vertical = "insurance"
	VerticalPackages  Vertical = "holiday-packages"
)

// AllVerticals in route-registration order.
var AllVerticals = []Vertical{
	VerticalFlights, VerticalHotels, VerticalBuses, VerticalTrains,
	VerticalHomestays, VerticalCabs, VerticalInsurance, VerticalPackages,
}

// verticalAliases maps legacy duplicate path segments onto their canonical
// vertical. The old site exposed both singular and marketing-style paths.
var verticalAliases = map[string]Vertical{
	"flight":           VerticalFlights,
	"flight-booking":   VerticalFlights,
	"hotel":            VerticalHotels,
	"bus":              VerticalBuses,
	"bus-tickets":      VerticalBuses,
	"train":            VerticalTrains,
	"train-tickets":    VerticalTrains,
	"homestay":         VerticalHomestays,
	"villas":           VerticalHomestays,
	"cab":              VerticalCabs,
	"airport-cabs":     VerticalCabs,
	"travel-insurance": VerticalInsurance,
	"holidays":         VerticalPackages,
	"packages":         VerticalPackages,
}

// ParseVertical resolves a path segment (canonical or legacy alias) to a
// vertical. ok is false for unknown segments.
func ParseVertical(seg string) (Vertical, bool) {
	s := strings.ToLower(strings.TrimSpace(seg))
	for _, v := range AllVerticals {
		if s == string(v) {
			return v, true
		}
	}
	if v, ok := verticalAliases[s]; ok {
		return v, true
	}
	return "", false
}
