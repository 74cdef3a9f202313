package search

import (
	"strings"
	"time"

	"tripdesk/internal/domain"
)

// Departure-time buckets: a total, non-overlapping partition of the day into
// four fixed 6-hour windows.
const (
	BucketEarly     = "early"     // [00:00, 06:00)
	BucketMorning   = "morning"   // [06:00, 12:00)
	BucketAfternoon = "afternoon" // [12:00, 18:00)
	BucketEvening   = "evening"   // [18:00, 24:00)
)

// TimeBucket maps a timestamp to exactly one of the four buckets.
func TimeBucket(t time.Time) string {
	switch h := t.Hour(); {
	case h < 6:
		return BucketEarly
	case h < 12:
		return BucketMorning
	case h < 18:
		return BucketAfternoon
	default:
		return BucketEvening
	}
}

// priceInRange is boundary-inclusive on both ends. A non-positive bound means
// that end of the range is open.
func priceInRange(p float64, f domain.FilterCriteria) bool {
	if f.PriceMin > 0 && p < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && p > f.PriceMax {
		return false
	}
	return true
}

// inSet is case-insensitive membership; an empty selection passes
// unconditionally (no filter applied).
func inSet(v string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if strings.EqualFold(strings.TrimSpace(s), v) {
			return true
		}
	}
	return false
}

// inBucket checks the departure bucket against the selection; empty selection
// passes unconditionally.
func inBucket(t time.Time, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	return inSet(TimeBucket(t), selected)
}

// Per-vertical matchers. Sub-predicates are independent and ANDed; each one
// passes when its selection is empty.

func MatchFlight(f domain.Flight, fc domain.FilterCriteria) bool {
	return priceInRange(f.MinPrice(), fc) &&
		inSet(f.CabinClass, fc.Categories) &&
		inSet(f.Airline, fc.Operators) &&
		inBucket(f.DepartureTime, fc.TimeBuckets)
}

func MatchHotel(h domain.Hotel, fc domain.FilterCriteria) bool {
	// hotel category is its star band; derived price is the cheapest room
	return priceInRange(h.MinPrice(), fc) &&
		inSet(starBand(h.Stars), fc.Categories)
}

func MatchBus(b domain.Bus, fc domain.FilterCriteria) bool {
	return priceInRange(b.MinPrice(), fc) &&
		inSet(b.BusType, fc.Categories) &&
		inSet(b.Operator, fc.Operators) &&
		inBucket(b.DepartureTime, fc.TimeBuckets)
}

func MatchTrain(t domain.Train, fc domain.FilterCriteria) bool {
	return priceInRange(t.MinPrice(), fc) &&
		trainHasClass(t, fc.Categories) &&
		inSet(t.Operator, fc.Operators) &&
		inBucket(t.DepartureTime, fc.TimeBuckets)
}

func MatchHomestay(h domain.Homestay, fc domain.FilterCriteria) bool {
	return priceInRange(h.MinPrice(), fc) &&
		inSet(h.PropertyType, fc.Categories)
}

func MatchCab(c domain.CabOption, fc domain.FilterCriteria) bool {
	return priceInRange(c.MinPrice(), fc) &&
		inSet(c.Category, fc.Categories)
}

func MatchInsurance(p domain.InsurancePlan, fc domain.FilterCriteria) bool {
	return priceInRange(p.MinPrice(), fc) &&
		inSet(p.PlanType, fc.Categories) &&
		inSet(p.Provider, fc.Operators)
}

func MatchPackage(p domain.HolidayPackage, fc domain.FilterCriteria) bool {
	return priceInRange(p.MinPrice(), fc) &&
		inSet(p.Category, fc.Categories)
}

// trainHasClass: a multi-class train stays visible if any bookable class is
// in the selected set.
func trainHasClass(t domain.Train, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, c := range t.Classes {
		if inSet(c.Code, selected) {
			return true
		}
	}
	return false
}

func starBand(stars int) string {
	switch {
	case stars >= 5:
		return "5-star"
	case stars == 4:
		return "4-star"
	case stars == 3:
		return "3-star"
	default:
		return "budget"
	}
}
