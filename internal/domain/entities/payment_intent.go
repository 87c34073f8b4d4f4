package entities

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPaymentAmount   = errors.New("invalid payment amount")
	ErrInvalidCurrency        = errors.New("invalid currency")
	ErrInvalidPaymentIntentID = errors.New("invalid payment intent id")
)

// PaymentIntentStatus mirrors the provider status. Values outside the
// constants below are passed through untouched.
type PaymentIntentStatus string

const (
	PaymentIntentStatusRequiresPaymentMethod PaymentIntentStatus = "requires_payment_method"
	PaymentIntentStatusRequiresConfirmation  PaymentIntentStatus = "requires_confirmation"
	PaymentIntentStatusRequiresAction        PaymentIntentStatus = "requires_action"
	PaymentIntentStatusProcessing            PaymentIntentStatus = "processing"
	PaymentIntentStatusRequiresCapture       PaymentIntentStatus = "requires_capture"
	PaymentIntentStatusCanceled              PaymentIntentStatus = "canceled"
	PaymentIntentStatusSucceeded             PaymentIntentStatus = "succeeded"
	PaymentIntentStatusFailed                PaymentIntentStatus = "failed"
)

// PaymentIntentRequest asks a gateway to open a payment intent.
//
// Amount is expressed in major units (e.g. 100.0 USD); gateways convert it to
// the provider representation.
type PaymentIntentRequest struct {
	Amount        float64
	Currency      string
	PaymentMethod PaymentMethod
	OrderID       int64
	CustomerEmail string
	Metadata      map[string]string
}

func (r PaymentIntentRequest) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidPaymentAmount
	}
	c := r.NormalizedCurrency()
	if len(c) != 3 {
		return ErrInvalidCurrency
	}
	for _, ch := range c {
		if ch < 'a' || ch > 'z' {
			return ErrInvalidCurrency
		}
	}
	return nil
}

func (r PaymentIntentRequest) NormalizedCurrency() string {
	return strings.ToLower(strings.TrimSpace(r.Currency))
}

// PaymentConfirmation confirms an intent previously opened by a gateway.
type PaymentConfirmation struct {
	PaymentIntentID string
	PaymentMethodID string
	Options         map[string]any
}

// NextAction is the follow-up step the provider requires before the intent
// can succeed.
type NextAction struct {
	Type        string `json:"type"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// PaymentError is the last error the provider reported for an intent.
type PaymentError struct {
	Code        string `json:"code,omitempty"`
	DeclineCode string `json:"decline_code,omitempty"`
	Message     string `json:"message,omitempty"`
	Type        string `json:"type,omitempty"`
}

// PaymentIntentResponse is the normalized result of every gateway operation.
//
// It is either a success (provider state) or a failure: Status "failed",
// empty PaymentIntentID and ClientSecret and a non-empty ErrorMessage.
type PaymentIntentResponse struct {
	PaymentIntentID  string
	ClientSecret     string
	Status           PaymentIntentStatus
	RequiresAction   bool
	NextActionType   string
	NextAction       *NextAction
	LastPaymentError *PaymentError
	ErrorMessage     string
	AdditionalData   map[string]any
}

func NewFailedPaymentIntentResponse(message string) PaymentIntentResponse {
	return PaymentIntentResponse{
		Status:         PaymentIntentStatusFailed,
		ErrorMessage:   message,
		AdditionalData: map[string]any{},
	}
}

func (r PaymentIntentResponse) Failed() bool {
	return r.Status == PaymentIntentStatusFailed
}

// RequiresActionStatus reports whether status asks the shopper for a next step.
func RequiresActionStatus(status PaymentIntentStatus) bool {
	return status == PaymentIntentStatusRequiresAction
}
