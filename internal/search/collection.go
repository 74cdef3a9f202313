// Package search holds the vertical-independent search state model: a
// generic result collection with a three-phase fetch lifecycle, pure filter
// predicates, and criteria resolution from URL paths and query strings.
package search

import (
	"sync"

	"tripdesk/internal/domain"
)

// Matcher decides whether an item stays visible under the given filter.
type Matcher[T any] func(T, domain.FilterCriteria) bool

// Collection is the searchable-collection state container, instantiated once
// per vertical. It reduces the fetch lifecycle (idle -> loading ->
// succeeded|failed) and keeps the last committed result list.
//
// Every dispatch is tagged with a generation; only the outcome carrying the
// current generation is committed, so a rapid re-search can never be
// overwritten by a stale response resolving late.
type Collection[T any] struct {
	mu     sync.Mutex
	gen    uint64
	status domain.FetchStatus
	errMsg string
	items  []T
	match  Matcher[T]
}

func NewCollection[T any](match Matcher[T]) *Collection[T] {
	return &Collection[T]{status: domain.FetchIdle, match: match}
}

// Begin marks a new fetch in flight and returns its generation tag. Any
// previously in-flight fetch is superseded.
func (c *Collection[T]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.status = domain.FetchLoading
	return c.gen
}

// Commit stores the fetched items for generation gen, replacing the previous
// list wholesale. A stale generation is discarded and false is returned.
func (c *Collection[T]) Commit(gen uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.items = items
	c.status = domain.FetchSucceeded
	c.errMsg = ""
	return true
}

// Fail records a fetch failure for generation gen. The previous result list
// is preserved untouched; only the status and message change.
func (c *Collection[T]) Fail(gen uint64, msg string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.status = domain.FetchFailed
	c.errMsg = msg
	return true
}

// Reset returns the collection to idle with no items (new vertical context).
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.status = domain.FetchIdle
	c.errMsg = ""
	c.items = nil
}

// Snapshot is a point-in-time view: status, message, the full fetched list
// and the filtered (visible) list in original relative order.
type Snapshot[T any] struct {
	Status  domain.FetchStatus
	Message string
	All     []T
	Visible []T
}

// Snapshot applies the filter as a pure view projection: items are removed,
// never reordered or mutated.
func (c *Collection[T]) Snapshot(f domain.FilterCriteria) Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := make([]T, len(c.items))
	copy(all, c.items)

	visible := all
	if c.match != nil && !f.IsZero() {
		visible = make([]T, 0, len(all))
		for _, it := range all {
			if c.match(it, f) {
				visible = append(visible, it)
			}
		}
	}
	return Snapshot[T]{Status: c.status, Message: c.errMsg, All: all, Visible: visible}
}

// Status returns the current fetch status without copying items.
func (c *Collection[T]) Status() domain.FetchStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}
