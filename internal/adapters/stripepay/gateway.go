// Package stripepay implements the payment gateway port on Stripe
// PaymentIntents. The client secret returned by CreateIntent is the opaque
// handle the checkout flow carries; confirmation resolves it back to the
// intent and reports the provider outcome, declines included, with the
// provider's own message untouched.
package stripepay

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v76"
	stripeclient "github.com/stripe/stripe-go/v76/client"

	"tripdesk/internal/domain"
)

type Gateway struct {
	api      *stripeclient.API
	currency string
}

func New(apiKey, currency string) (*Gateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("stripe API key is required")
	}
	if currency == "" {
		currency = "inr"
	}
	api := &stripeclient.API{}
	api.Init(apiKey, nil)
	return &Gateway{api: api, currency: strings.ToLower(currency)}, nil
}

func (g *Gateway) CreateIntent(ctx context.Context, amount float64, bookingType domain.Vertical) (domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(amount)),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.AddMetadata("bookingType", string(bookingType))

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return domain.PaymentIntent{}, fmt.Errorf("stripe create intent: %w", err)
	}
	return domain.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// ConfirmIntent reports a Stripe-side decline as a result, not an error:
// declines are a normal resubmittable outcome for the checkout machine, and
// the card-holder-facing message must reach the user verbatim.
func (g *Gateway) ConfirmIntent(ctx context.Context, clientSecret string) (domain.PaymentResult, error) {
	id, err := IntentID(clientSecret)
	if err != nil {
		return domain.PaymentResult{}, err
	}

	params := &stripe.PaymentIntentConfirmParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Confirm(id, params)
	if err != nil {
		var se *stripe.Error
		if errors.As(err, &se) {
			msg := se.Msg
			if msg == "" {
				msg = string(se.Code)
			}
			return domain.PaymentResult{Succeeded: false, Status: "failed", Message: msg}, nil
		}
		return domain.PaymentResult{}, fmt.Errorf("stripe confirm intent: %w", err)
	}

	if pi.Status == stripe.PaymentIntentStatusSucceeded {
		return domain.PaymentResult{Succeeded: true, Status: "succeeded"}, nil
	}
	return domain.PaymentResult{
		Succeeded: false,
		Status:    string(pi.Status),
		Message:   fmt.Sprintf("payment not completed (status %s)", pi.Status),
	}, nil
}

// IntentID extracts the intent id from a client secret of the form
// "pi_xxx_secret_yyy".
func IntentID(clientSecret string) (string, error) {
	s := strings.TrimSpace(clientSecret)
	if s == "" {
		return "", fmt.Errorf("empty client secret")
	}
	if i := strings.Index(s, "_secret_"); i > 0 {
		return s[:i], nil
	}
	return "", fmt.Errorf("malformed client secret")
}

// MinorUnits converts a display amount to the currency's smallest unit.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
