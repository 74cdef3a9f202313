package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tripdesk/internal/domain"
	"tripdesk/internal/search"
)

// Searcher is one vertical's search surface. Implementations are the
// parameterized VerticalService instances held by the Registry.
type Searcher interface {
	Search(ctx context.Context, c domain.SearchCriteria, f domain.FilterCriteria) (domain.SearchView, error)
}

// VerticalService binds one vertical's collection, mapper, matcher and facet
// builder over the shared supplier client and cache. One instance per
// vertical; state is independent across verticals.
type VerticalService[T any] struct {
	vertical domain.Vertical
	supplier domain.SupplierClient
	cache    domain.Cache
	ttl      time.Duration
	col      *search.Collection[T]
	mapItem  func(map[string]any) T
	facets   func([]T) domain.Facets
}

func NewVerticalService[T any](
	v domain.Vertical,
	supplier domain.SupplierClient,
	cache domain.Cache,
	ttl time.Duration,
	match search.Matcher[T],
	mapItem func(map[string]any) T,
	facets func([]T) domain.Facets,
) *VerticalService[T] {
	return &VerticalService[T]{
		vertical: v,
		supplier: supplier,
		cache:    cache,
		ttl:      ttl,
		col:      search.NewCollection(match),
		mapItem:  mapItem,
		facets:   facets,
	}
}

// Search resolves one search round-trip: it does not fire until the criteria
// are complete, serves results cache-aside, and reduces the outcome through
// the vertical's collection so a failure keeps the previous list visible and
// a stale response never overwrites a newer one. An empty result list is a
// success, not an error.
func (s *VerticalService[T]) Search(ctx context.Context, c domain.SearchCriteria, f domain.FilterCriteria) (domain.SearchView, error) {
	if !c.Complete(s.vertical) {
		return domain.SearchView{
			Vertical: s.vertical,
			Status:   domain.FetchIdle,
			Items:    []T{},
		}, nil
	}

	gen := s.col.Begin()
	key := search.CacheKey(s.vertical, c)

	var items []T
	hit, _ := s.cache.Get(ctx, key, &items)
	if !hit {
		raws, err := s.supplier.Search(ctx, s.vertical, search.QueryParams(c))
		if err != nil {
			log.Warn().Str("vertical", string(s.vertical)).Err(err).Msg("supplier search failed")
			s.col.Fail(gen, fmt.Sprintf("unable to fetch %s results", s.vertical))
			return s.view(s.col.Snapshot(f)), nil
		}
		items = make([]T, 0, len(raws))
		for _, r := range raws {
			items = append(items, s.mapItem(r))
		}
		_ = s.cache.Set(ctx, key, items, int(s.ttl.Seconds()))
	}

	s.col.Commit(gen, items)
	return s.view(s.col.Snapshot(f)), nil
}

func (s *VerticalService[T]) view(snap search.Snapshot[T]) domain.SearchView {
	return domain.SearchView{
		Vertical: s.vertical,
		Status:   snap.Status,
		Message:  snap.Message,
		Total:    len(snap.Visible),
		Items:    snap.Visible,
		Facets:   s.facets(snap.All),
	}
}

// Registry owns one Searcher per vertical plus the shared detail lookup. It
// is explicit application state: constructed in main (or per test), never
// package-global.
type Registry struct {
	supplier  domain.SupplierClient
	cache     domain.Cache
	ttl       time.Duration
	searchers map[domain.Vertical]Searcher
}

func NewRegistry(supplier domain.SupplierClient, cache domain.Cache, ttl time.Duration) *Registry {
	r := &Registry{supplier: supplier, cache: cache, ttl: ttl}
	r.searchers = map[domain.Vertical]Searcher{
		domain.VerticalFlights:   NewVerticalService(domain.VerticalFlights, supplier, cache, ttl, search.MatchFlight, mapFlight, search.FlightFacets),
		domain.VerticalHotels:    NewVerticalService(domain.VerticalHotels, supplier, cache, ttl, search.MatchHotel, mapHotel, search.HotelFacets),
		domain.VerticalBuses:     NewVerticalService(domain.VerticalBuses, supplier, cache, ttl, search.MatchBus, mapBus, search.BusFacets),
		domain.VerticalTrains:    NewVerticalService(domain.VerticalTrains, supplier, cache, ttl, search.MatchTrain, mapTrain, search.TrainFacets),
		domain.VerticalHomestays: NewVerticalService(domain.VerticalHomestays, supplier, cache, ttl, search.MatchHomestay, mapHomestay, search.HomestayFacets),
		domain.VerticalCabs:      NewVerticalService(domain.VerticalCabs, supplier, cache, ttl, search.MatchCab, mapCab, search.CabFacets),
		domain.VerticalInsurance: NewVerticalService(domain.VerticalInsurance, supplier, cache, ttl, search.MatchInsurance, mapInsurance, search.InsuranceFacets),
		domain.VerticalPackages:  NewVerticalService(domain.VerticalPackages, supplier, cache, ttl, search.MatchPackage, mapPackage, search.PackageFacets),
	}
	return r
}

// Search dispatches to the vertical's service.
func (r *Registry) Search(ctx context.Context, v domain.Vertical, c domain.SearchCriteria, f domain.FilterCriteria) (domain.SearchView, error) {
	s, ok := r.searchers[v]
	if !ok {
		return domain.SearchView{}, fmt.Errorf("unknown vertical %q", v)
	}
	return s.Search(ctx, c, f)
}

// Detail fetches a single item by id, cache-aside. The payload is returned
// as-is; detail rendering is the caller's concern.
func (r *Registry) Detail(ctx context.Context, v domain.Vertical, id string) (map[string]any, error) {
	key := fmt.Sprintf("detail:%s:%s", v, id)
	var out map[string]any
	if ok, _ := r.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	out, err := r.supplier.Detail(ctx, v, id)
	if err != nil {
		return nil, err
	}
	_ = r.cache.Set(ctx, key, out, int(r.ttl.Seconds()))
	return out, nil
}

// Warm pre-runs a search so its results are already cached when a user lands
// on the route. Used by cmd/warmer.
func (r *Registry) Warm(ctx context.Context, v domain.Vertical, c domain.SearchCriteria) error {
	view, err := r.Search(ctx, v, c, domain.FilterCriteria{})
	if err != nil {
		return err
	}
	if view.Status == domain.FetchFailed {
		return fmt.Errorf("warm %s: %s", v, view.Message)
	}
	return nil
}
