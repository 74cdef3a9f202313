package domain

import "time"

// SearchCriteria is the immutable snapshot of a submitted search. It is
// produced by criteria resolution (URL path + query string) and consumed by
// the fetch trigger; the next submission supersedes it wholesale.
type SearchCriteria struct {
	From     string
	To       string
	Location string

	Date      time.Time // departure / travel date
	Return    time.Time // return leg, when round-trip
	CheckIn   time.Time
	CheckOut  time.Time
	StartDate time.Time // holiday packages

	Travelers int
	Guests    int
	Rooms     int

	Category     string // cabin class / room type / plan type
	DurationDays int    // holiday packages
}

// Complete reports whether every field the vertical requires is populated.
// A search is not dispatched until its criteria are complete.
func (c SearchCriteria) Complete(v Vertical) bool {
	switch v {
	case VerticalFlights, VerticalBuses, VerticalTrains:
		return c.From != "" && c.To != "" && !c.Date.IsZero()
	case VerticalHotels:
		return c.Location != "" && !c.CheckIn.IsZero() && !c.CheckOut.IsZero()
	case VerticalHomestays:
		return c.Location != "" && !c.CheckIn.IsZero()
	case VerticalCabs:
		return c.From != "" && c.To != ""
	case VerticalInsurance:
		return !c.StartDate.IsZero() && c.Travelers > 0
	case VerticalPackages:
		return c.Location != "" && !c.StartDate.IsZero()
	}
	return false
}

// FilterCriteria narrows an already-fetched result list. It never mutates the
// underlying items; it only determines visibility. An empty selection set
// means "no filter applied" for that sub-predicate.
type FilterCriteria struct {
	PriceMin float64
	PriceMax float64 // <= 0 means unbounded

	Categories  []string // type codes: bus type, cabin class, property type, plan type
	Operators   []string // airlines, bus operators, train operators
	TimeBuckets []string // departure-time buckets, see search.TimeBucket
}

// IsZero reports whether no filter is active at all.
func (f FilterCriteria) IsZero() bool {
	return f.PriceMin <= 0 && f.PriceMax <= 0 &&
		len(f.Categories) == 0 && len(f.Operators) == 0 && len(f.TimeBuckets) == 0
}

// FetchStatus is the lifecycle of one fetch: idle until dispatched, loading
// while in flight, then succeeded or failed. A new search supersedes, never
// merges with, the previous one.
type FetchStatus string

const (
	FetchIdle      FetchStatus = "idle"
	FetchLoading   FetchStatus = "loading"
	FetchSucceeded FetchStatus = "succeeded"
	FetchFailed    FetchStatus = "failed"
)
