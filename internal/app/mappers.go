package app

import (
	"strconv"
	"strings"
	"time"

	"tripdesk/internal/domain"
)

/********** alias registries (single source of truth) **********/

// Supplier payloads are schemaless and field names drift between inventory
// sources; each logical field keeps an ordered alias list, first non-empty
// wins.

var commonAliases = map[string][]string{
	"id":        {"id", "itemId", "item_id", "code"},
	"from":      {"from", "origin", "source", "departure.city"},
	"to":        {"to", "destination", "arrival.city"},
	"departure": {"departureTime", "departure_time", "departure.time", "departs_at"},
	"arrival":   {"arrivalTime", "arrival_time", "arrival.time", "arrives_at"},
}

var flightAliases = map[string][]string{
	"airline": {"airline", "airline.name", "carrier", "operator"},
	"number":  {"flightNumber", "flight_number", "number"},
	"class":   {"cabinClass", "cabin_class", "class", "type"},
}

var hotelAliases = map[string][]string{
	"name":   {"name", "hotelName", "hotel_name", "title"},
	"city":   {"city", "location", "address.city"},
	"rating": {"rating", "userRating", "review_score"},
}

var stayAliases = map[string][]string{
	"name":     {"name", "propertyName", "title"},
	"location": {"location", "city", "address.city"},
	"type":     {"propertyType", "property_type", "type", "category"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		switch t := v.(type) {
		case string:
			return t
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		}
	}
	return ""
}

// firstStr: first non-empty string across an alias set.
func firstStr(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return s
		}
	}
	return ""
}

// getFloat: number from several paths (float64/int/string like "1,250.50").
func getFloat(m map[string]any, paths ...string) float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func getInt(m map[string]any, paths ...string) int {
	return int(getFloat(m, paths...))
}

// getTime parses RFC3339 first, then the few formats suppliers actually send.
func getTime(m map[string]any, paths ...string) time.Time {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04", "2006-01-02"}
	for _, k := range paths {
		s, ok := lookupAny(m, k).(string)
		if !ok || s == "" {
			continue
		}
		for _, l := range layouts {
			if t, err := time.Parse(l, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// getStrings accepts []any holding strings or {name/url} objects.
func getStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case map[string]any:
				if n, ok := t["name"].(string); ok && n != "" {
					out = append(out, n)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func getMaps(m map[string]any, paths ...string) []map[string]any {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(raw))
		for _, it := range raw {
			if t, ok := it.(map[string]any); ok {
				out = append(out, t)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

/********** per-vertical mappers **********/

func mapFlight(m map[string]any) domain.Flight {
	dep := getTime(m, commonAliases["departure"]...)
	arr := getTime(m, commonAliases["arrival"]...)
	dur := getInt(m, "durationMinutes", "duration_minutes", "duration")
	if dur == 0 && !dep.IsZero() && arr.After(dep) {
		dur = int(arr.Sub(dep).Minutes())
	}
	return domain.Flight{
		ID:              firstStr(m, commonAliases, "id"),
		Airline:         firstStr(m, flightAliases, "airline"),
		FlightNumber:    firstStr(m, flightAliases, "number"),
		From:            firstStr(m, commonAliases, "from"),
		To:              firstStr(m, commonAliases, "to"),
		DepartureTime:   dep,
		ArrivalTime:     arr,
		DurationMinutes: dur,
		Stops:           getInt(m, "stops", "stopCount"),
		CabinClass:      firstStr(m, flightAliases, "class"),
		Fare:            getFloat(m, "fare", "price", "price.amount", "amount"),
		SeatsLeft:       getInt(m, "seatsLeft", "seats_left", "availableSeats"),
	}
}

func mapHotel(m map[string]any) domain.Hotel {
	rooms := getMaps(m, "rooms", "roomOptions", "room_types")
	ro := make([]domain.RoomOption, 0, len(rooms))
	for _, r := range rooms {
		ro = append(ro, domain.RoomOption{
			Type:          lookupStr(r, "type"),
			PricePerNight: getFloat(r, "pricePerNight", "price_per_night", "price", "rate"),
			Capacity:      getInt(r, "capacity", "maxGuests"),
		})
	}
	return domain.Hotel{
		ID:        firstStr(m, commonAliases, "id"),
		Name:      firstStr(m, hotelAliases, "name"),
		City:      firstStr(m, hotelAliases, "city"),
		Stars:     getInt(m, "stars", "starRating", "star_rating"),
		Rating:    getFloat(m, hotelAliases["rating"]...),
		Amenities: getStrings(m, "amenities", "facilities"),
		Rooms:     ro,
	}
}

func mapBus(m map[string]any) domain.Bus {
	return domain.Bus{
		ID:            firstStr(m, commonAliases, "id"),
		Operator:      lookupStr(m, "operator"),
		BusType:       firstNonEmpty(lookupStr(m, "busType"), lookupStr(m, "bus_type"), lookupStr(m, "type")),
		From:          firstStr(m, commonAliases, "from"),
		To:            firstStr(m, commonAliases, "to"),
		DepartureTime: getTime(m, commonAliases["departure"]...),
		ArrivalTime:   getTime(m, commonAliases["arrival"]...),
		Fare:          getFloat(m, "fare", "price", "amount"),
		SeatsLeft:     getInt(m, "seatsLeft", "seats_left", "availableSeats"),
	}
}

func mapTrain(m map[string]any) domain.Train {
	raw := getMaps(m, "classes", "coachClasses", "fares")
	cls := make([]domain.TrainClass, 0, len(raw))
	for _, c := range raw {
		cls = append(cls, domain.TrainClass{
			Code:      firstNonEmpty(lookupStr(c, "code"), lookupStr(c, "class")),
			Fare:      getFloat(c, "fare", "price"),
			SeatsLeft: getInt(c, "seatsLeft", "available"),
		})
	}
	return domain.Train{
		ID:            firstStr(m, commonAliases, "id"),
		Name:          lookupStr(m, "name"),
		Number:        firstNonEmpty(lookupStr(m, "trainNumber"), lookupStr(m, "number")),
		Operator:      firstNonEmpty(lookupStr(m, "operator"), lookupStr(m, "zone")),
		From:          firstStr(m, commonAliases, "from"),
		To:            firstStr(m, commonAliases, "to"),
		DepartureTime: getTime(m, commonAliases["departure"]...),
		ArrivalTime:   getTime(m, commonAliases["arrival"]...),
		Classes:       cls,
	}
}

func mapHomestay(m map[string]any) domain.Homestay {
	return domain.Homestay{
		ID:            firstStr(m, commonAliases, "id"),
		Name:          firstStr(m, stayAliases, "name"),
		Location:      firstStr(m, stayAliases, "location"),
		PropertyType:  firstStr(m, stayAliases, "type"),
		PricePerNight: getFloat(m, "pricePerNight", "price_per_night", "price"),
		MaxGuests:     getInt(m, "maxGuests", "max_guests", "guests"),
		Rating:        getFloat(m, "rating"),
		Amenities:     getStrings(m, "amenities"),
	}
}

func mapCab(m map[string]any) domain.CabOption {
	return domain.CabOption{
		ID:       firstStr(m, commonAliases, "id"),
		Category: firstNonEmpty(lookupStr(m, "category"), lookupStr(m, "type")),
		Model:    lookupStr(m, "model"),
		Capacity: getInt(m, "capacity", "seats"),
		Fare:     getFloat(m, "fare", "price", "estimatedFare"),
		ETA:      getInt(m, "etaMinutes", "eta"),
	}
}

func mapInsurance(m map[string]any) domain.InsurancePlan {
	return domain.InsurancePlan{
		ID:             firstStr(m, commonAliases, "id"),
		Name:           lookupStr(m, "name"),
		PlanType:       firstNonEmpty(lookupStr(m, "planType"), lookupStr(m, "plan_type"), lookupStr(m, "type")),
		Premium:        getFloat(m, "premium", "price"),
		CoverageAmount: getFloat(m, "coverageAmount", "coverage_amount", "coverage"),
		Provider:       lookupStr(m, "provider"),
	}
}

func mapPackage(m map[string]any) domain.HolidayPackage {
	return domain.HolidayPackage{
		ID:           firstStr(m, commonAliases, "id"),
		Name:         lookupStr(m, "name"),
		Destination:  firstNonEmpty(lookupStr(m, "destination"), lookupStr(m, "location")),
		DurationDays: getInt(m, "durationDays", "duration_days", "duration"),
		Price:        getFloat(m, "price", "startingPrice", "amount"),
		Highlights:   getStrings(m, "highlights", "inclusions"),
		Category:     firstNonEmpty(lookupStr(m, "category"), lookupStr(m, "tier")),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
