package request

import (
	"strings"
	"todotech_backend/internal/domain/entities"
)

// PaymentIntentCreateRequest is the payload for opening a payment intent.
//
// `amount` is in major units; conversion to provider minor units happens downstream.
type PaymentIntentCreateRequest struct {
	Amount        float64           `json:"amount" binding:"required,gt=0" example:"100.00"`
	Currency      string            `json:"currency" binding:"required,len=3" example:"usd"`
	PaymentMethod string            `json:"payment_method" binding:"required" example:"CREDIT_CARD"`
	OrderID       int64             `json:"order_id" binding:"required,gt=0" example:"12345"`
	CustomerEmail string            `json:"customer_email" binding:"omitempty,email" example:"customer@example.com"`
	Metadata      map[string]string `json:"metadata"`
}

func (r PaymentIntentCreateRequest) ToEntity() (entities.PaymentIntentRequest, error) {
	method, err := entities.ParsePaymentMethod(r.PaymentMethod)
	if err != nil {
		return entities.PaymentIntentRequest{}, err
	}
	return entities.PaymentIntentRequest{
		Amount:        r.Amount,
		Currency:      strings.ToLower(strings.TrimSpace(r.Currency)),
		PaymentMethod: method,
		OrderID:       r.OrderID,
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		Metadata:      r.Metadata,
	}, nil
}

// PaymentConfirmRequest carries the optional confirmation inputs. An empty
// body confirms with whatever payment method is already attached.
type PaymentConfirmRequest struct {
	PaymentMethodID string         `json:"payment_method_id" example:"pm_card_visa"`
	Options         map[string]any `json:"options"`
}

func (r PaymentConfirmRequest) ToEntity(paymentIntentID string) entities.PaymentConfirmation {
	return entities.PaymentConfirmation{
		PaymentIntentID: strings.TrimSpace(paymentIntentID),
		PaymentMethodID: strings.TrimSpace(r.PaymentMethodID),
		Options:         r.Options,
	}
}
