package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"todotech_backend/internal/domain/entities"
	"todotech_backend/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

const stripeCardPaymentMethodType = "card"

// StripeConfig carries the credential of the Stripe account. It is handed to
// the gateway once at startup and never changes afterwards.
type StripeConfig struct {
	SecretKey string
	// APIBase overrides the API URL, e.g. http://localhost:12111 for stripe-mock.
	APIBase  string
	MockMode bool
}

// StripePaymentIntentClient is the part of paymentintent.Client the gateway uses.
type StripePaymentIntentClient interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Confirm(id string, params *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error)
}

// StripeGateway maps payment intents onto the Stripe PaymentIntents API.
//
// It is stateless apart from its client and safe for concurrent use.
type StripeGateway struct {
	client StripePaymentIntentClient
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg StripeConfig) (*StripeGateway, error) {
	if cfg.MockMode {
		log.Printf("[payment][gateway] stripe mock mode enabled")
		return NewStripeGatewayWithClient(newMockStripeClient()), nil
	}

	key := strings.TrimSpace(cfg.SecretKey)
	if key == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	backend := stripe.GetBackend(stripe.APIBackend)
	if cfg.APIBase != "" {
		backend = stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL: stripe.String(cfg.APIBase),
		})
	}
	log.Printf("[payment][gateway] Stripe client initialized")

	return NewStripeGatewayWithClient(&paymentintent.Client{B: backend, Key: key}), nil
}

func NewStripeGatewayWithClient(client StripePaymentIntentClient) *StripeGateway {
	return &StripeGateway{client: client}
}

func (g *StripeGateway) Provider() entities.PaymentProvider {
	return entities.PaymentProviderStripe
}

// Supports is true for the native STRIPE method and the card methods.
func (g *StripeGateway) Supports(method entities.PaymentMethod) bool {
	return method.SupportedBy(entities.PaymentProviderStripe)
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) entities.PaymentIntentResponse {
	log.Printf("[payment][gateway] stripe create start order_id=%d method=%s currency=%s", req.OrderID, req.PaymentMethod, req.Currency)
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] stripe gateway not configured")
		return failedResponse(entities.PaymentProviderStripe, opCreatePaymentIntent, ErrPaymentGatewayNotConfigured)
	}
	if err := req.Validate(); err != nil {
		log.Printf("[payment][gateway] stripe create rejected order_id=%d err=%v", req.OrderID, err)
		return failedResponse(g.Provider(), opCreatePaymentIntent, err)
	}

	currency := req.NormalizedCurrency()
	amount, err := entities.ToMinorUnits(req.Amount, currency)
	if err != nil {
		log.Printf("[payment][gateway] stripe create rejected order_id=%d amount=%v currency=%s err=%v", req.OrderID, req.Amount, currency, err)
		return failedResponse(g.Provider(), opCreatePaymentIntent, err)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{stripeCardPaymentMethodType}),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	// Reconciliation keys are written last so caller metadata cannot shadow them.
	params.AddMetadata("order_id", strconv.FormatInt(req.OrderID, 10))
	params.AddMetadata("payment_method", string(req.PaymentMethod))
	if email := strings.TrimSpace(req.CustomerEmail); email != "" {
		params.AddMetadata("customer_email", email)
		params.ReceiptEmail = stripe.String(email)
	}

	pi, err := g.client.New(params)
	if err == nil && pi == nil {
		err = errors.New("empty payment intent response")
	}
	if err != nil {
		log.Printf("[payment][gateway] stripe create failed order_id=%d err=%v", req.OrderID, err)
		return failedResponse(g.Provider(), opCreatePaymentIntent, err)
	}
	log.Printf("[payment][gateway] stripe create success order_id=%d payment_intent_id=%s status=%s amount_minor=%d", req.OrderID, pi.ID, pi.Status, amount)

	return g.intentResponse(pi)
}

func (g *StripeGateway) ConfirmPayment(ctx context.Context, confirmation entities.PaymentConfirmation) entities.PaymentIntentResponse {
	id := strings.TrimSpace(confirmation.PaymentIntentID)
	log.Printf("[payment][gateway] stripe confirm start payment_intent_id=%s", id)
	if g == nil || g.client == nil {
		return failedResponse(entities.PaymentProviderStripe, opConfirmPayment, ErrPaymentGatewayNotConfigured)
	}
	if id == "" {
		return failedResponse(g.Provider(), opConfirmPayment, entities.ErrInvalidPaymentIntentID)
	}

	getParams := &stripe.PaymentIntentParams{}
	getParams.Context = ctx
	pi, err := g.client.Get(id, getParams)
	if err == nil && pi == nil {
		err = fmt.Errorf("payment intent %s not returned", id)
	}
	if err != nil {
		log.Printf("[payment][gateway] stripe retrieve before confirm failed payment_intent_id=%s err=%v", id, err)
		return failedResponse(g.Provider(), opConfirmPayment, err)
	}

	params := &stripe.PaymentIntentConfirmParams{}
	params.Context = ctx
	if pm := strings.TrimSpace(confirmation.PaymentMethodID); pm != "" {
		params.PaymentMethod = stripe.String(pm)
	}
	applyConfirmOptions(params, confirmation.Options)

	confirmed, err := g.client.Confirm(pi.ID, params)
	if err == nil && confirmed == nil {
		err = fmt.Errorf("payment intent %s not returned", id)
	}
	if err != nil {
		log.Printf("[payment][gateway] stripe confirm failed payment_intent_id=%s err=%v", id, err)
		return failedResponse(g.Provider(), opConfirmPayment, err)
	}
	log.Printf("[payment][gateway] stripe confirm success payment_intent_id=%s status=%s amount_received=%d", confirmed.ID, confirmed.Status, confirmed.AmountReceived)

	return g.intentResponse(confirmed)
}

func (g *StripeGateway) GetPaymentStatus(ctx context.Context, paymentIntentID string) entities.PaymentIntentResponse {
	id := strings.TrimSpace(paymentIntentID)
	log.Printf("[payment][gateway] stripe status start payment_intent_id=%s", id)
	if g == nil || g.client == nil {
		return failedResponse(entities.PaymentProviderStripe, opGetPaymentStatus, ErrPaymentGatewayNotConfigured)
	}
	if id == "" {
		return failedResponse(g.Provider(), opGetPaymentStatus, entities.ErrInvalidPaymentIntentID)
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := g.client.Get(id, params)
	if err == nil && pi == nil {
		err = fmt.Errorf("payment intent %s not returned", id)
	}
	if err != nil {
		log.Printf("[payment][gateway] stripe status failed payment_intent_id=%s err=%v", id, err)
		return failedResponse(g.Provider(), opGetPaymentStatus, err)
	}
	log.Printf("[payment][gateway] stripe status success payment_intent_id=%s status=%s", pi.ID, pi.Status)

	res := g.intentResponse(pi)
	res.AdditionalData["payment_method"] = nil
	if pi.PaymentMethod != nil && pi.PaymentMethod.ID != "" {
		res.AdditionalData["payment_method"] = pi.PaymentMethod.ID
	}
	res.AdditionalData["customer"] = nil
	if pi.Customer != nil && pi.Customer.ID != "" {
		res.AdditionalData["customer"] = pi.Customer.ID
	}
	res.AdditionalData["description"] = nil
	if pi.Description != "" {
		res.AdditionalData["description"] = pi.Description
	}
	if res.LastPaymentError != nil {
		res.AdditionalData["last_payment_error"] = res.LastPaymentError.Message
	}
	if res.NextAction != nil {
		res.AdditionalData["next_action"] = res.NextAction.Type
	}
	return res
}

// intentResponse normalizes the fields shared by every operation.
func (g *StripeGateway) intentResponse(pi *stripe.PaymentIntent) entities.PaymentIntentResponse {
	status := entities.PaymentIntentStatus(pi.Status)
	res := entities.PaymentIntentResponse{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Status:          status,
		RequiresAction:  entities.RequiresActionStatus(status),
		AdditionalData: map[string]any{
			"provider":             string(entities.PaymentProviderStripe),
			"payment_method_types": append([]string(nil), pi.PaymentMethodTypes...),
			"created":              pi.Created,
			"amount_received":      pi.AmountReceived,
		},
	}

	if pi.NextAction != nil {
		res.NextAction = &entities.NextAction{Type: string(pi.NextAction.Type)}
		if pi.NextAction.RedirectToURL != nil {
			res.NextAction.RedirectURL = pi.NextAction.RedirectToURL.URL
		}
		if res.RequiresAction {
			res.NextActionType = res.NextAction.Type
		}
	}

	if e := pi.LastPaymentError; e != nil {
		res.LastPaymentError = &entities.PaymentError{
			Code:        string(e.Code),
			DeclineCode: string(e.DeclineCode),
			Message:     e.Msg,
			Type:        string(e.Type),
		}
	}
	return res
}

// applyConfirmOptions promotes the options Stripe types explicitly and sends
// the rest as raw form parameters.
func applyConfirmOptions(params *stripe.PaymentIntentConfirmParams, options map[string]any) {
	for k, v := range options {
		if v == nil {
			continue
		}
		switch k {
		case "return_url":
			params.ReturnURL = stripe.String(fmt.Sprint(v))
		case "receipt_email":
			params.ReceiptEmail = stripe.String(fmt.Sprint(v))
		case "setup_future_usage":
			params.SetupFutureUsage = stripe.String(fmt.Sprint(v))
		case "off_session":
			if b, ok := v.(bool); ok {
				params.OffSession = stripe.Bool(b)
			} else if b, err := strconv.ParseBool(fmt.Sprint(v)); err == nil {
				params.OffSession = stripe.Bool(b)
			}
		default:
			params.AddExtra(k, fmt.Sprint(v))
		}
	}
}
