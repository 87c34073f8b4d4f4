package payments

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/stripe/stripe-go/v74"
)

// Payment method ids understood by the mock client, mirroring Stripe test cards.
const (
	mockPaymentMethodAuthRequired = "pm_card_authenticationRequired"
	mockPaymentMethodDeclined     = "pm_card_chargeDeclined"
)

// mockStripeClient is an in-memory stand-in for the Stripe API used when
// PAYMENT_GATEWAY_MOCK is enabled.
type mockStripeClient struct {
	mu      sync.Mutex
	seq     int
	intents map[string]*stripe.PaymentIntent
	now     func() time.Time
}

var _ StripePaymentIntentClient = (*mockStripeClient)(nil)

func newMockStripeClient() *mockStripeClient {
	return &mockStripeClient{
		intents: map[string]*stripe.PaymentIntent{},
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (c *mockStripeClient) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	if params == nil || params.Amount == nil || params.Currency == nil {
		return nil, &stripe.Error{
			Type:           stripe.ErrorTypeInvalidRequest,
			HTTPStatusCode: http.StatusBadRequest,
			Msg:            "Missing required param: amount.",
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.seq++
	id := fmt.Sprintf("pi_mock_%d%04d", now.Unix(), c.seq)
	types := make([]string, 0, len(params.PaymentMethodTypes))
	for _, t := range params.PaymentMethodTypes {
		if t != nil {
			types = append(types, *t)
		}
	}
	metadata := make(map[string]string, len(params.Metadata))
	for k, v := range params.Metadata {
		metadata[k] = v
	}

	pi := &stripe.PaymentIntent{
		ID:                 id,
		ClientSecret:       id + "_secret_mock",
		Amount:             *params.Amount,
		Currency:           stripe.Currency(*params.Currency),
		Status:             stripe.PaymentIntentStatusRequiresPaymentMethod,
		PaymentMethodTypes: types,
		Created:            now.Unix(),
		Metadata:           metadata,
	}
	c.intents[id] = pi
	return copyIntent(pi), nil
}

func (c *mockStripeClient) Get(id string, _ *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pi, ok := c.intents[id]
	if !ok {
		return nil, noSuchIntent(id)
	}
	return copyIntent(pi), nil
}

func (c *mockStripeClient) Confirm(id string, params *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pi, ok := c.intents[id]
	if !ok {
		return nil, noSuchIntent(id)
	}

	pm := ""
	if params != nil && params.PaymentMethod != nil {
		pm = *params.PaymentMethod
	}
	if pm == "" {
		return nil, &stripe.Error{
			Type:           stripe.ErrorTypeInvalidRequest,
			HTTPStatusCode: http.StatusBadRequest,
			Msg:            "You cannot confirm this PaymentIntent because it's missing a payment method.",
		}
	}
	pi.PaymentMethod = &stripe.PaymentMethod{ID: pm}

	switch pm {
	case mockPaymentMethodDeclined:
		declined := &stripe.Error{
			Type:           stripe.ErrorTypeCard,
			HTTPStatusCode: http.StatusPaymentRequired,
			Code:           stripe.ErrorCodeCardDeclined,
			DeclineCode:    stripe.DeclineCodeGenericDecline,
			Msg:            "Your card was declined.",
		}
		pi.Status = stripe.PaymentIntentStatusRequiresPaymentMethod
		pi.LastPaymentError = declined
		return nil, declined
	case mockPaymentMethodAuthRequired:
		returnURL := ""
		if params.ReturnURL != nil {
			returnURL = *params.ReturnURL
		}
		pi.Status = stripe.PaymentIntentStatusRequiresAction
		pi.NextAction = &stripe.PaymentIntentNextAction{
			Type: stripe.PaymentIntentNextActionType("redirect_to_url"),
			RedirectToURL: &stripe.PaymentIntentNextActionRedirectToURL{
				ReturnURL: returnURL,
				URL:       "https://hooks.stripe.com/redirect/authenticate/" + id,
			},
		}
	default:
		pi.Status = stripe.PaymentIntentStatusSucceeded
		pi.AmountReceived = pi.Amount
		pi.NextAction = nil
		pi.LastPaymentError = nil
	}
	return copyIntent(pi), nil
}

func noSuchIntent(id string) error {
	return &stripe.Error{
		Type:           stripe.ErrorTypeInvalidRequest,
		HTTPStatusCode: http.StatusNotFound,
		Code:           stripe.ErrorCodeResourceMissing,
		Msg:            fmt.Sprintf("No such payment_intent: '%s'", id),
	}
}

func copyIntent(pi *stripe.PaymentIntent) *stripe.PaymentIntent {
	cp := *pi
	cp.PaymentMethodTypes = append([]string(nil), pi.PaymentMethodTypes...)
	return &cp
}
