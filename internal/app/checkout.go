package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tripdesk/internal/domain"
)

// CheckoutService drives the payment state machine:
//
//	initializing -> ready -> submitting -> succeeded | failed
//
// Initialize covers initializing->ready|failed, Submit covers
// submitting->succeeded|failed. A failed submit is resubmittable; the raw
// provider message is carried to the user unchanged.
type CheckoutService struct {
	gateway domain.PaymentGateway
	store   domain.SessionStore
}

func NewCheckoutService(gw domain.PaymentGateway, store domain.SessionStore) *CheckoutService {
	return &CheckoutService{gateway: gw, store: store}
}

// Initialize requests a payment handle for the booking amount. On success the
// session is ready with an opaque client secret; a backend error is terminal
// for this attempt (the user retries by reloading checkout).
func (s *CheckoutService) Initialize(ctx context.Context, draft domain.BookingDraft) (domain.CheckoutSession, error) {
	if draft.Amount <= 0 {
		return domain.CheckoutSession{State: domain.CheckoutFailed, Message: "invalid booking amount"},
			errors.New("invalid booking amount")
	}
	if _, ok := domain.ParseVertical(string(draft.Type)); !ok {
		return domain.CheckoutSession{State: domain.CheckoutFailed, Message: "unknown booking type"},
			fmt.Errorf("unknown booking type %q", draft.Type)
	}

	intent, err := s.gateway.CreateIntent(ctx, draft.Amount, draft.Type)
	if err != nil {
		log.Error().Err(err).Str("type", string(draft.Type)).Msg("create payment intent failed")
		return domain.CheckoutSession{State: domain.CheckoutFailed, Message: "unable to initialize payment"}, err
	}
	return domain.CheckoutSession{State: domain.CheckoutReady, ClientSecret: intent.ClientSecret}, nil
}

// Submit confirms the payment with the provider. On success the confirmed
// booking is written to the session store before returning, so the record is
// in place before the caller navigates to the confirmation screen. On a
// provider-reported decline the error wraps ErrPaymentDeclined with the
// provider message verbatim and the session stays resubmittable.
func (s *CheckoutService) Submit(ctx context.Context, sessionID, clientSecret string, draft domain.BookingDraft) (domain.ConfirmedBooking, error) {
	if clientSecret == "" {
		return domain.ConfirmedBooking{}, errors.New("missing payment client secret")
	}

	res, err := s.gateway.ConfirmIntent(ctx, clientSecret)
	if err != nil {
		return domain.ConfirmedBooking{}, fmt.Errorf("confirm payment: %w", err)
	}
	if !res.Succeeded {
		return domain.ConfirmedBooking{}, fmt.Errorf("%w: %s", domain.ErrPaymentDeclined, res.Message)
	}

	booking := domain.ConfirmedBooking{
		Type:          draft.Type,
		Amount:        draft.Amount,
		BookingID:     uuid.New().String(),
		BookingDate:   time.Now().UTC(),
		Status:        "confirmed",
		PaymentStatus: res.Status,
		Details:       draft.Details,
	}
	if err := s.store.SaveBooking(ctx, sessionID, booking); err != nil {
		// payment went through but the record didn't stick; surface it so the
		// user is not routed to an empty confirmation screen
		log.Error().Err(err).Str("bookingId", booking.BookingID).Msg("persist confirmed booking failed")
		return domain.ConfirmedBooking{}, fmt.Errorf("persist booking: %w", err)
	}

	log.Info().
		Str("bookingId", booking.BookingID).
		Str("type", string(booking.Type)).
		Float64("amount", booking.Amount).
		Msg("booking confirmed")
	return booking, nil
}

// Reset drops the session's previous confirmed booking. Called when a new
// checkout starts so a stale confirmation cannot be replayed on the
// confirmation screen.
func (s *CheckoutService) Reset(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.store.ClearBooking(ctx, sessionID)
}

// Confirmation reads the session's confirmed booking once. Absent or
// unreadable records collapse to ErrBookingNotFound; the confirmation screen
// has no retry path beyond navigating home.
func (s *CheckoutService) Confirmation(ctx context.Context, sessionID string) (domain.ConfirmedBooking, error) {
	if sessionID == "" {
		return domain.ConfirmedBooking{}, domain.ErrBookingNotFound
	}
	b, ok, err := s.store.LoadBooking(ctx, sessionID)
	if err != nil {
		log.Warn().Err(err).Msg("load confirmed booking failed")
		return domain.ConfirmedBooking{}, domain.ErrBookingNotFound
	}
	if !ok {
		return domain.ConfirmedBooking{}, domain.ErrBookingNotFound
	}
	return b, nil
}
