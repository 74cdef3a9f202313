package search_test

import (
	"net/url"
	"testing"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/search"
)

var now = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func TestResolveCriteria_Defaults(t *testing.T) {
	q := url.Values{}
	q.Set("from", "Delhi")
	q.Set("to", "Mumbai")

	c := search.ResolveCriteria(domain.VerticalFlights, q, now)
	if c.From != "Delhi" || c.To != "Mumbai" {
		t.Fatalf("unexpected criteria: %+v", c)
	}
	if !c.Date.Equal(now.Truncate(24 * time.Hour)) {
		t.Fatalf("missing date must default to today, got %v", c.Date)
	}
	if c.Travelers != 1 || c.Guests != 1 {
		t.Fatalf("counts must default to 1, got %+v", c)
	}
}

func TestResolveCriteria_MalformedValuesFallBack(t *testing.T) {
	q := url.Values{}
	q.Set("from", "Delhi")
	q.Set("to", "Mumbai")
	q.Set("date", "not-a-date")
	q.Set("travelers", "-3")
	q.Set("guests", "lots")

	c := search.ResolveCriteria(domain.VerticalFlights, q, now)
	if !c.Date.Equal(now.Truncate(24 * time.Hour)) {
		t.Fatalf("malformed date must fall back to today, got %v", c.Date)
	}
	if c.Travelers != 1 || c.Guests != 1 {
		t.Fatalf("malformed counts must fall back to defaults: %+v", c)
	}
}

func TestResolveCriteria_HotelCheckoutWindow(t *testing.T) {
	q := url.Values{}
	q.Set("location", "Goa")
	q.Set("checkIn", "2025-06-20")

	c := search.ResolveCriteria(domain.VerticalHotels, q, now)
	if got := c.CheckOut.Format("2006-01-02"); got != "2025-06-21" {
		t.Fatalf("checkOut must default to checkIn plus one night, got %s", got)
	}

	// inverted window collapses back to one night
	q.Set("checkOut", "2025-06-18")
	c = search.ResolveCriteria(domain.VerticalHotels, q, now)
	if got := c.CheckOut.Format("2006-01-02"); got != "2025-06-21" {
		t.Fatalf("checkOut before checkIn must be corrected, got %s", got)
	}
}

func TestCriteriaComplete_GatesDispatch(t *testing.T) {
	incomplete := domain.SearchCriteria{From: "Delhi"}
	if incomplete.Complete(domain.VerticalFlights) {
		t.Fatalf("criteria without destination/date must be incomplete")
	}
	full := domain.SearchCriteria{From: "Delhi", To: "Mumbai", Date: now}
	if !full.Complete(domain.VerticalFlights) {
		t.Fatalf("populated criteria must be complete")
	}
	hotel := domain.SearchCriteria{Location: "Goa", CheckIn: now, CheckOut: now.AddDate(0, 0, 2)}
	if !hotel.Complete(domain.VerticalHotels) {
		t.Fatalf("hotel criteria with location and window must be complete")
	}
}

func TestParseVertical_Aliases(t *testing.T) {
	cases := map[string]domain.Vertical{
		"flights":        domain.VerticalFlights,
		"flight-booking": domain.VerticalFlights,
		"bus-tickets":    domain.VerticalBuses,
		"holidays":       domain.VerticalPackages,
		"villas":         domain.VerticalHomestays,
	}
	for seg, want := range cases {
		got, ok := domain.ParseVertical(seg)
		if !ok || got != want {
			t.Fatalf("%q: got (%v,%v) want %v", seg, got, ok, want)
		}
	}
	if _, ok := domain.ParseVertical("cruises"); ok {
		t.Fatalf("unknown segment must not resolve")
	}
}

func TestCacheKey_DistinguishesCriteria(t *testing.T) {
	a := domain.SearchCriteria{From: "Delhi", To: "Mumbai", Date: now}
	b := domain.SearchCriteria{From: "Delhi", To: "Goa", Date: now}
	if search.CacheKey(domain.VerticalFlights, a) == search.CacheKey(domain.VerticalFlights, b) {
		t.Fatalf("different criteria must produce different keys")
	}
	if search.CacheKey(domain.VerticalFlights, a) != search.CacheKey(domain.VerticalFlights, a) {
		t.Fatalf("cache key must be stable")
	}
	if search.CacheKey(domain.VerticalFlights, a) == search.CacheKey(domain.VerticalBuses, a) {
		t.Fatalf("verticals must not share keys")
	}
}

func TestQueryParams_EmitsOnlyPopulatedFields(t *testing.T) {
	c := domain.SearchCriteria{From: "Delhi", To: "Mumbai", Date: now, Travelers: 2, Guests: 1}
	v := search.QueryParams(c)
	if v.Get("from") != "Delhi" || v.Get("to") != "Mumbai" {
		t.Fatalf("unexpected params: %v", v)
	}
	if v.Get("checkIn") != "" || v.Get("location") != "" {
		t.Fatalf("empty fields must be omitted: %v", v)
	}
	if v.Get("travelers") != "2" {
		t.Fatalf("travelers should be carried: %v", v)
	}
}
