//go:build integration || !unit

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"tripdesk/internal/adapters/redisstore"
	"tripdesk/internal/app"
	"tripdesk/internal/domain"
)

// fake gateway so the flow needs no Stripe credentials
type okGateway struct{}

func (okGateway) CreateIntent(ctx context.Context, amount float64, t domain.Vertical) (domain.PaymentIntent, error) {
	return domain.PaymentIntent{ID: "pi_test", ClientSecret: "pi_test_secret_x"}, nil
}

func (okGateway) ConfirmIntent(ctx context.Context, clientSecret string) (domain.PaymentResult, error) {
	return domain.PaymentResult{Succeeded: true, Status: "succeeded"}, nil
}

// ---------- tiny HTTP around the confirmation flow ----------
type testAPI struct{ checkout *app.CheckoutService }

func (a *testAPI) confirmation(w http.ResponseWriter, r *http.Request) {
	sid := r.URL.Query().Get("session")
	b, err := a.checkout.Confirmation(r.Context(), sid)
	if errors.Is(err, domain.ErrBookingNotFound) {
		http.Error(w, "Booking information not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(b)
}

// ---------- the test ----------
func TestRedis_EndToEnd_BookingConfirmation(t *testing.T) {
	// Start isolated Redis container
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run redis: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	addr := fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))

	var client *redis.Client
	if err := pool.Retry(func() error {
		client = redisstore.NewClient(addr, "", 0)
		return client.Ping(context.Background()).Err()
	}); err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	store := redisstore.NewSessionStore(client, 30*time.Minute)
	checkout := app.NewCheckoutService(okGateway{}, store)
	ctx := context.Background()

	// Confirm a payment; the booking record lands in Redis
	draft := domain.BookingDraft{
		Type:    domain.VerticalFlights,
		Amount:  4500,
		Details: map[string]any{"from": "Delhi", "to": "Mumbai"},
	}
	booking, err := checkout.Submit(ctx, "sess-e2e", "pi_test_secret_x", draft)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Spin up minimal HTTP server exposing the one route we need
	api := &testAPI{checkout: checkout}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/booking/confirmation", api.confirmation)
	ts := httptest.NewServer(mux)
	defer ts.Close()

	// Hit the endpoint with the right session
	res, err := http.Get(fmt.Sprintf("%s/v1/booking/confirmation?session=sess-e2e", ts.URL))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var body domain.ConfirmedBooking
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.BookingID != booking.BookingID || body.PaymentStatus != "succeeded" {
		t.Fatalf("unexpected body: %+v", body)
	}

	// A session with no record gets the terminal 404
	res2, err := http.Get(fmt.Sprintf("%s/v1/booking/confirmation?session=sess-other", ts.URL))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", res2.StatusCode)
	}
}
