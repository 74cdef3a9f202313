package search_test

import (
	"testing"

	"tripdesk/internal/domain"
	"tripdesk/internal/search"
)

func TestCollection_Lifecycle(t *testing.T) {
	col := search.NewCollection(search.MatchBus)

	if got := col.Status(); got != domain.FetchIdle {
		t.Fatalf("fresh collection should be idle, got %s", got)
	}

	gen := col.Begin()
	if got := col.Status(); got != domain.FetchLoading {
		t.Fatalf("after Begin status should be loading, got %s", got)
	}

	items := []domain.Bus{{ID: "b1", Fare: 500}, {ID: "b2", Fare: 900}}
	if !col.Commit(gen, items) {
		t.Fatalf("commit with current generation must apply")
	}
	snap := col.Snapshot(domain.FilterCriteria{})
	if snap.Status != domain.FetchSucceeded || len(snap.Visible) != 2 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestCollection_StaleCommitDiscarded(t *testing.T) {
	col := search.NewCollection(search.MatchBus)

	old := col.Begin()
	latest := col.Begin() // rapid re-search supersedes the first dispatch

	if col.Commit(old, []domain.Bus{{ID: "stale"}}) {
		t.Fatalf("stale generation must not commit")
	}
	if !col.Commit(latest, []domain.Bus{{ID: "fresh"}}) {
		t.Fatalf("latest generation must commit")
	}

	snap := col.Snapshot(domain.FilterCriteria{})
	if len(snap.Visible) != 1 || snap.Visible[0].ID != "fresh" {
		t.Fatalf("expected only the latest result set, got %+v", snap.Visible)
	}

	// a stale failure must not clobber the committed result either
	if col.Fail(old, "boom") {
		t.Fatalf("stale failure must be discarded")
	}
	if col.Status() != domain.FetchSucceeded {
		t.Fatalf("status should remain succeeded")
	}
}

func TestCollection_FailurePreservesPreviousResults(t *testing.T) {
	col := search.NewCollection(search.MatchBus)

	gen := col.Begin()
	col.Commit(gen, []domain.Bus{{ID: "b1"}, {ID: "b2"}})

	gen = col.Begin()
	if !col.Fail(gen, "unable to fetch buses results") {
		t.Fatalf("failure with current generation must apply")
	}

	snap := col.Snapshot(domain.FilterCriteria{})
	if snap.Status != domain.FetchFailed {
		t.Fatalf("status should be failed, got %s", snap.Status)
	}
	if snap.Message == "" {
		t.Fatalf("failure message must be non-empty")
	}
	if len(snap.Visible) != 2 {
		t.Fatalf("previous result list must be retained untouched, got %d items", len(snap.Visible))
	}
}

func TestCollection_FilterIsStable(t *testing.T) {
	col := search.NewCollection(search.MatchBus)
	gen := col.Begin()
	col.Commit(gen, []domain.Bus{
		{ID: "a", Fare: 300},
		{ID: "b", Fare: 1500},
		{ID: "c", Fare: 450},
		{ID: "d", Fare: 2000},
		{ID: "e", Fare: 600},
	})

	snap := col.Snapshot(domain.FilterCriteria{PriceMin: 400, PriceMax: 1000})
	got := make([]string, 0, len(snap.Visible))
	for _, b := range snap.Visible {
		got = append(got, b.ID)
	}
	if len(got) != 2 || got[0] != "c" || got[1] != "e" {
		t.Fatalf("filtering must only remove items, preserving order; got %v", got)
	}
	if len(snap.All) != 5 {
		t.Fatalf("snapshot must keep the unfiltered set for facet derivation")
	}
}

func TestCollection_CommitReplacesWholesale(t *testing.T) {
	col := search.NewCollection(search.MatchBus)

	gen := col.Begin()
	col.Commit(gen, []domain.Bus{{ID: "old1"}, {ID: "old2"}, {ID: "old3"}})

	gen = col.Begin()
	col.Commit(gen, []domain.Bus{{ID: "new1"}})

	snap := col.Snapshot(domain.FilterCriteria{})
	if len(snap.Visible) != 1 || snap.Visible[0].ID != "new1" {
		t.Fatalf("a new search must supersede, not merge: %+v", snap.Visible)
	}
}
