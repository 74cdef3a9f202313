package search

import (
	"sort"

	"tripdesk/internal/domain"
)

// Facet builders derive the available filter options from whatever the
// current result set contains. Nothing here is a fixed catalog: an operator
// or category that no fetched item carries is not offered.

func FlightFacets(items []domain.Flight) domain.Facets {
	f := domain.Facets{}
	cats := newDistinct()
	ops := newDistinct()
	for i, it := range items {
		cats.add(it.CabinClass)
		ops.add(it.Airline)
		f.PriceMin, f.PriceMax = bound(f.PriceMin, f.PriceMax, it.MinPrice(), i == 0)
	}
	f.Categories, f.Operators = cats.sorted(), ops.sorted()
	return f
}

func HotelFacets(items []domain.Hotel) domain.Facets {
	f := domain.Facets{}
	cats := newDistinct()
	for i, it := range items {
		cats.add(starBand(it.Stars))
		f.PriceMin, f.PriceMax = bound(f.PriceMin, f.PriceMax, it.MinPrice(), i == 0)
	}
	f.Categories = cats.sorted()
	return f
}

func BusFacets(items []domain.Bus) domain.Facets {
	f := domain.Facets{}
	cats := newDistinct()
	ops := newDistinct()
	for i, it := range items {
		cats.add(it.BusType)
		ops.add(it.Operator)
		f.PriceMin, f.PriceMax = bound(f.PriceMin, f.PriceMax, it.MinPrice(), i == 0)
	}
	f.Categories, f.Operators = cats.sorted(), ops.sorted()
	return f
}

func TrainFacets(items []domain.Train) domain.Facets {
	f := domain.Facets{}
	cats := newDistinct()
	ops := newDistinct()
	for i, it := range items {
		for _, cl := range it.Classes {
			cats.add(cl.Code)
		}
		ops.add(it.Operator)
		f.PriceMin, f.PriceMax = bound(f.PriceMin, f.PriceMax, it.MinPrice(), i == 0)
	}
	f.Categories, f.Operators = cats.sorted(), ops.sorted()
	return f
}

func HomestayFacets(items []domain.Homestay) domain.Facets {
	f := domain.Facets{}
	cats := newDistinct()
	for i, it := range items {
		cats.add(it.PropertyType)
		f.PriceMin, f.PriceMax = bound(f.PriceMin, f.PriceMax, it.MinPrice(), i == 0)
	}
	f.Categories = cats.sorted()
	return f
}

func CabFacets(items []domain.CabOption) domain.Facets {
	f := domain.Facets{}
	cats := newDistinct()
	for i, it := range items {
		cats.add(it.Category)
		f.PriceMin, f.PriceMax = bound(f.PriceMin, f.PriceMax, it.MinPrice(), i == 0)
	}
	f.Categories = cats.sorted()
	return f
}

func InsuranceFacets(items []domain.InsurancePlan) domain.Facets {
	f := domain.Facets{}
	cats := newDistinct()
	ops := newDistinct()
	for i, it := range items {
		cats.add(it.PlanType)
		ops.add(it.Provider)
		f.PriceMin, f.PriceMax = bound(f.PriceMin, f.PriceMax, it.MinPrice(), i == 0)
	}
	f.Categories, f.Operators = cats.sorted(), ops.sorted()
	return f
}

func PackageFacets(items []domain.HolidayPackage) domain.Facets {
	f := domain.Facets{}
	cats := newDistinct()
	for i, it := range items {
		cats.add(it.Category)
		f.PriceMin, f.PriceMax = bound(f.PriceMin, f.PriceMax, it.MinPrice(), i == 0)
	}
	f.Categories = cats.sorted()
	return f
}

type distinct struct {
	seen map[string]struct{}
	vals []string
}

func newDistinct() *distinct { return &distinct{seen: map[string]struct{}{}} }

func (d *distinct) add(v string) {
	if v == "" {
		return
	}
	if _, ok := d.seen[v]; ok {
		return
	}
	d.seen[v] = struct{}{}
	d.vals = append(d.vals, v)
}

func (d *distinct) sorted() []string {
	sort.Strings(d.vals)
	return d.vals
}

func bound(min, max, p float64, first bool) (float64, float64) {
	if first || p < min {
		min = p
	}
	if p > max {
		max = p
	}
	return min, max
}
