package interfaces

import (
	"context"

	"todotech_backend/internal/domain/entities"
)

// IPaymentGateway abstracts a payment provider holding payment intents
// (e.g. Stripe, Mercado Pago).
//
// Implementations never return provider faults as errors: a failure is a
// PaymentIntentResponse with status "failed" and an error message.
type IPaymentGateway interface {
	Provider() entities.PaymentProvider
	Supports(method entities.PaymentMethod) bool
	CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) entities.PaymentIntentResponse
	ConfirmPayment(ctx context.Context, confirmation entities.PaymentConfirmation) entities.PaymentIntentResponse
	GetPaymentStatus(ctx context.Context, paymentIntentID string) entities.PaymentIntentResponse
}
