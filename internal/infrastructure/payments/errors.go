package payments

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"todotech_backend/internal/domain/entities"

	"github.com/stripe/stripe-go/v74"
)

var ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")

const (
	opCreatePaymentIntent = "error creating payment intent"
	opConfirmPayment      = "error confirming payment"
	opGetPaymentStatus    = "error retrieving payment status"

	unknownProviderError = "unknown provider error"
)

// Error kinds reported in AdditionalData["error_kind"] of failed responses.
const (
	ErrorKindInvalidRequest   = "invalid_request"
	ErrorKindUnauthorized     = "unauthorized"
	ErrorKindNotFound         = "not_found"
	ErrorKindCardDeclined     = "card_declined"
	ErrorKindInvalidUsers     = "invalid_users"
	ErrorKindCustomerNotFound = "customer_not_found"
	ErrorKindProvider         = "provider_error"
)

// failedResponse turns any provider fault into the failure variant of the
// normalized response. The message always carries the provider description.
func failedResponse(provider entities.PaymentProvider, op string, err error) entities.PaymentIntentResponse {
	res := entities.NewFailedPaymentIntentResponse(fmt.Sprintf("%s: %s", op, providerMessage(err)))
	res.AdditionalData["provider"] = string(provider)
	res.AdditionalData["error_kind"] = classifyProviderError(err)
	return res
}

func providerMessage(err error) string {
	if err == nil {
		return unknownProviderError
	}
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && strings.TrimSpace(stripeErr.Msg) != "" {
		return stripeErr.Msg
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return unknownProviderError
}

func classifyProviderError(err error) string {
	if err == nil {
		return ErrorKindProvider
	}
	if errors.Is(err, entities.ErrInvalidPaymentAmount) ||
		errors.Is(err, entities.ErrInvalidCurrency) ||
		errors.Is(err, entities.ErrAmountPrecision) ||
		errors.Is(err, entities.ErrInvalidPaymentIntentID) {
		return ErrorKindInvalidRequest
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch {
		case stripeErr.Type == stripe.ErrorTypeCard:
			return ErrorKindCardDeclined
		case stripeErr.HTTPStatusCode == http.StatusUnauthorized:
			return ErrorKindUnauthorized
		case stripeErr.HTTPStatusCode == http.StatusNotFound:
			return ErrorKindNotFound
		case stripeErr.Type == stripe.ErrorTypeInvalidRequest:
			return ErrorKindInvalidRequest
		}
		return ErrorKindProvider
	}

	// Mercado Pago surfaces the raw API body in the error message.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrorKindCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrorKindInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401") || strings.Contains(msg, "invalid api key") || strings.Contains(msg, "invalid access token"):
		return ErrorKindUnauthorized
	case strings.Contains(msg, "\"error\":\"not_found\"") || strings.Contains(msg, "\"status\":404"):
		return ErrorKindNotFound
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrorKindInvalidRequest
	}
	return ErrorKindProvider
}
