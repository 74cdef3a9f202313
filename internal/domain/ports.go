package domain

import (
	"context"
	"errors"
	"net/url"
)

var (
	// ErrBookingNotFound: no confirmed booking in the session store. Terminal
	// for the confirmation screen; the only escape is navigating home.
	ErrBookingNotFound = errors.New("booking information not found")

	// ErrPaymentDeclined wraps a provider-reported payment failure. The
	// provider's message is surfaced verbatim and the user may resubmit.
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrCriteriaIncomplete: required search fields are missing, the fetch
	// is not dispatched.
	ErrCriteriaIncomplete = errors.New("search criteria incomplete")
)

// SupplierClient is the upstream inventory API: it returns ready-made result
// lists per vertical. Payloads are schemaless; mapping to typed items happens
// in the app layer.
type SupplierClient interface {
	Search(ctx context.Context, vertical Vertical, params url.Values) ([]map[string]any, error)
	Detail(ctx context.Context, vertical Vertical, id string) (map[string]any, error)
}

// Cache is a TTL'd JSON blob store used cache-aside for search results.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// SessionStore holds the one cross-navigation mutable record: the confirmed
// booking, written once by checkout and read once by the confirmation screen.
type SessionStore interface {
	SaveBooking(ctx context.Context, sessionID string, b ConfirmedBooking) error
	LoadBooking(ctx context.Context, sessionID string) (ConfirmedBooking, bool, error)
	ClearBooking(ctx context.Context, sessionID string) error
}

// PaymentGateway is the external payment provider: create an intent for an
// amount, later confirm it by its opaque client secret.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount float64, bookingType Vertical) (PaymentIntent, error)
	ConfirmIntent(ctx context.Context, clientSecret string) (PaymentResult, error)
}
