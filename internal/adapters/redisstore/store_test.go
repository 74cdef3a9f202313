package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"tripdesk/internal/adapters/redisstore"
	"tripdesk/internal/domain"
)

func newStore(t *testing.T) (*miniredis.Miniredis, *redisstore.Cache, *redisstore.SessionStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redisstore.NewClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return mr, redisstore.NewCache(client), redisstore.NewSessionStore(client, 30*time.Minute)
}

func TestCache_SetGetDel(t *testing.T) {
	_, cache, _ := newStore(t)
	ctx := context.Background()

	buses := []domain.Bus{{ID: "b1", Operator: "RedLine", Fare: 750}}
	if err := cache.Set(ctx, "search:buses:k", buses, 300); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []domain.Bus
	ok, err := cache.Get(ctx, "search:buses:k", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].Operator != "RedLine" {
		t.Fatalf("unexpected value: %+v", got)
	}

	if err := cache.Del(ctx, "search:buses:k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, err = cache.Get(ctx, "search:buses:k", &got)
	if err != nil || ok {
		t.Fatalf("deleted key must miss, ok=%v err=%v", ok, err)
	}
}

func TestCache_MissIsNotAnError(t *testing.T) {
	_, cache, _ := newStore(t)

	var got []domain.Bus
	ok, err := cache.Get(context.Background(), "search:buses:absent", &got)
	if err != nil {
		t.Fatalf("miss must not error: %v", err)
	}
	if ok {
		t.Fatalf("absent key must report a miss")
	}
}

func TestCache_TTLExpires(t *testing.T) {
	mr, cache, _ := newStore(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []string{"v"}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(61 * time.Second)

	var got []string
	ok, err := cache.Get(ctx, "k", &got)
	if err != nil || ok {
		t.Fatalf("expired key must miss, ok=%v err=%v", ok, err)
	}
}

func TestSessionStore_SaveLoadClear(t *testing.T) {
	_, _, store := newStore(t)
	ctx := context.Background()

	b := domain.ConfirmedBooking{
		Type:          domain.VerticalHotels,
		Amount:        5100,
		BookingID:     "bk-1",
		BookingDate:   time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC),
		Status:        "confirmed",
		PaymentStatus: "succeeded",
		Details:       map[string]any{"hotel": "Sea Breeze"},
	}
	if err := store.SaveBooking(ctx, "sess-1", b); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.LoadBooking(ctx, "sess-1")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.BookingID != "bk-1" || got.PaymentStatus != "succeeded" {
		t.Fatalf("unexpected record: %+v", got)
	}

	if err := store.ClearBooking(ctx, "sess-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	_, ok, err = store.LoadBooking(ctx, "sess-1")
	if err != nil || ok {
		t.Fatalf("cleared record must be gone, ok=%v err=%v", ok, err)
	}
}

func TestSessionStore_MissingIsNotAnError(t *testing.T) {
	_, _, store := newStore(t)

	_, ok, err := store.LoadBooking(context.Background(), "sess-none")
	if err != nil {
		t.Fatalf("missing record must not error: %v", err)
	}
	if ok {
		t.Fatalf("missing record must report ok=false")
	}
}

func TestSessionStore_CorruptRecordErrors(t *testing.T) {
	mr, _, store := newStore(t)
	mr.Set("session:sess-x:confirmedBooking", "{not json")

	_, _, err := store.LoadBooking(context.Background(), "sess-x")
	if err == nil {
		t.Fatalf("corrupt record must surface an error")
	}
}

func TestSessionStore_IsolatedPerSession(t *testing.T) {
	_, _, store := newStore(t)
	ctx := context.Background()

	_ = store.SaveBooking(ctx, "sess-a", domain.ConfirmedBooking{BookingID: "a"})
	_ = store.SaveBooking(ctx, "sess-b", domain.ConfirmedBooking{BookingID: "b"})

	got, ok, _ := store.LoadBooking(ctx, "sess-a")
	if !ok || got.BookingID != "a" {
		t.Fatalf("sessions must not share records: %+v", got)
	}
}
