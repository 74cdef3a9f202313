package domain

import "time"

// BookingDraft is the purchase intent assembled at checkout time, before the
// payment provider has been involved.
type BookingDraft struct {
	Type    Vertical       `json:"type"`
	Amount  float64        `json:"amount"`
	Details map[string]any `json:"details"`
}

// ConfirmedBooking is the post-payment record. It lives in the session store
// only: written once by checkout, read once by the confirmation screen, gone
// after the session expires.
type ConfirmedBooking struct {
	Type          Vertical       `json:"type"`
	Amount        float64        `json:"amount"`
	BookingID     string         `json:"bookingId"`
	BookingDate   time.Time      `json:"bookingDate"`
	Status        string         `json:"status"` // confirmed
	PaymentStatus string         `json:"paymentStatus"`
	Details       map[string]any `json:"details"`
}

// CheckoutState is the payment state machine position. ready and failed are
// both resubmittable; only a missing session record is terminal.
type CheckoutState string

const (
	CheckoutInitializing CheckoutState = "initializing"
	CheckoutReady        CheckoutState = "ready"
	CheckoutSubmitting   CheckoutState = "submitting"
	CheckoutSucceeded    CheckoutState = "succeeded"
	CheckoutFailed       CheckoutState = "failed"
)

// CheckoutSession is what the checkout surface renders from.
type CheckoutSession struct {
	State        CheckoutState `json:"state"`
	ClientSecret string        `json:"clientSecret,omitempty"`
	Message      string        `json:"message,omitempty"`
}

// PaymentIntent is the opaque handle returned by the payment provider.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentResult is the provider's confirmation outcome. Message carries the
// raw provider error verbatim when Succeeded is false.
type PaymentResult struct {
	Succeeded bool
	Status    string
	Message   string
}
