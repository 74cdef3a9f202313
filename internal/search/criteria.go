package search

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"tripdesk/internal/domain"
)

const dateLayout = "2006-01-02"

// ResolveCriteria builds a typed SearchCriteria from a vertical and a query
// string. It is a pure function of (vertical, query, now): missing fields get
// defaults (travel date defaults to today, check-out to check-in plus one
// night) and malformed values are treated as absent, never an error.
func ResolveCriteria(v domain.Vertical, q url.Values, now time.Time) domain.SearchCriteria {
	today := now.Truncate(24 * time.Hour)

	c := domain.SearchCriteria{
		From:         strings.TrimSpace(q.Get("from")),
		To:           strings.TrimSpace(q.Get("to")),
		Location:     strings.TrimSpace(q.Get("location")),
		Date:         parseDate(q.Get("date"), today),
		Return:       parseDate(q.Get("returnDate"), time.Time{}),
		CheckIn:      parseDate(q.Get("checkIn"), time.Time{}),
		CheckOut:     parseDate(q.Get("checkOut"), time.Time{}),
		StartDate:    parseDate(q.Get("startDate"), time.Time{}),
		Travelers:    parseCount(q.Get("travelers"), 1),
		Guests:       parseCount(q.Get("guests"), 1),
		Rooms:        parseCount(q.Get("rooms"), 1),
		Category:     strings.TrimSpace(q.Get("type")),
		DurationDays: parseCount(q.Get("duration"), 0),
	}

	switch v {
	case domain.VerticalHotels, domain.VerticalHomestays:
		if c.CheckIn.IsZero() {
			c.CheckIn = today
		}
		if c.CheckOut.IsZero() || !c.CheckOut.After(c.CheckIn) {
			c.CheckOut = c.CheckIn.AddDate(0, 0, 1)
		}
	case domain.VerticalInsurance, domain.VerticalPackages:
		if c.StartDate.IsZero() {
			c.StartDate = today
		}
	}
	return c
}

// ResolveFilter reads filter controls from the query string. Malformed
// numbers leave that bound unset.
func ResolveFilter(q url.Values) domain.FilterCriteria {
	return domain.FilterCriteria{
		PriceMin:    parsePrice(q.Get("priceMin")),
		PriceMax:    parsePrice(q.Get("priceMax")),
		Categories:  splitCSV(q.Get("categories")),
		Operators:   splitCSV(q.Get("operators")),
		TimeBuckets: splitCSV(q.Get("depart")),
	}
}

// CacheKey is a stable key for a (vertical, criteria) pair.
func CacheKey(v domain.Vertical, c domain.SearchCriteria) string {
	parts := []string{
		"search", string(v),
		c.From, c.To, c.Location, c.Category,
		fmtDate(c.Date), fmtDate(c.Return), fmtDate(c.CheckIn), fmtDate(c.CheckOut), fmtDate(c.StartDate),
		strconv.Itoa(c.Travelers), strconv.Itoa(c.Guests), strconv.Itoa(c.Rooms), strconv.Itoa(c.DurationDays),
	}
	return strings.ToLower(strings.Join(parts, ":"))
}

// QueryParams renders criteria back into supplier query parameters, emitting
// only the populated fields.
func QueryParams(c domain.SearchCriteria) url.Values {
	v := url.Values{}
	setIf := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	setIf("from", c.From)
	setIf("to", c.To)
	setIf("location", c.Location)
	setIf("type", c.Category)
	setIf("date", fmtDate(c.Date))
	setIf("returnDate", fmtDate(c.Return))
	setIf("checkIn", fmtDate(c.CheckIn))
	setIf("checkOut", fmtDate(c.CheckOut))
	setIf("startDate", fmtDate(c.StartDate))
	if c.Travelers > 0 {
		v.Set("travelers", strconv.Itoa(c.Travelers))
	}
	if c.Guests > 0 {
		v.Set("guests", strconv.Itoa(c.Guests))
	}
	if c.DurationDays > 0 {
		v.Set("duration", strconv.Itoa(c.DurationDays))
	}
	return v
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(s string, def time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	return def
}

func parseCount(s string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n > 0 {
		return n
	}
	return def
}

func parsePrice(s string) float64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && f > 0 {
		return f
	}
	return 0
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
