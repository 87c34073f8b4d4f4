package response

import (
	"time"
	"todotech_backend/internal/domain/entities"
)

// PaymentIntentResponse is the wire form of entities.PaymentIntentResponse.
// Absent values are emitted as null.
type PaymentIntentResponse struct {
	PaymentIntentID  *string                `json:"payment_intent_id"`
	ClientSecret     *string                `json:"client_secret"`
	Status           string                 `json:"status"`
	RequiresAction   bool                   `json:"requires_action"`
	NextActionType   *string                `json:"next_action_type"`
	NextAction       *entities.NextAction   `json:"next_action,omitempty"`
	LastPaymentError *entities.PaymentError `json:"last_payment_error,omitempty"`
	ErrorMessage     *string                `json:"error_message"`
	AdditionalData   map[string]any         `json:"additional_data"`
}

func FromPaymentIntentResponse(r entities.PaymentIntentResponse) PaymentIntentResponse {
	additional := r.AdditionalData
	if additional == nil {
		additional = map[string]any{}
	}
	return PaymentIntentResponse{
		PaymentIntentID:  nullable(r.PaymentIntentID),
		ClientSecret:     nullable(r.ClientSecret),
		Status:           string(r.Status),
		RequiresAction:   r.RequiresAction,
		NextActionType:   nullable(r.NextActionType),
		NextAction:       r.NextAction,
		LastPaymentError: r.LastPaymentError,
		ErrorMessage:     nullable(r.ErrorMessage),
		AdditionalData:   additional,
	}
}

type PaymentIntentRecordResponse struct {
	ID             string    `json:"id"`
	OrderID        int64     `json:"order_id"`
	Provider       string    `json:"provider"`
	PaymentMethod  string    `json:"payment_method"`
	Status         string    `json:"status"`
	Amount         float64   `json:"amount"`
	AmountMinor    int64     `json:"amount_minor"`
	Currency       string    `json:"currency"`
	AmountReceived int64     `json:"amount_received"`
	CustomerEmail  string    `json:"customer_email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromPaymentIntentRecord(r entities.PaymentIntentRecord) PaymentIntentRecordResponse {
	return PaymentIntentRecordResponse{
		ID:             r.ID,
		OrderID:        r.OrderID,
		Provider:       string(r.Provider),
		PaymentMethod:  string(r.PaymentMethod),
		Status:         string(r.Status),
		Amount:         r.Amount,
		AmountMinor:    r.AmountMinor,
		Currency:       r.Currency,
		AmountReceived: r.AmountReceived,
		CustomerEmail:  r.CustomerEmail,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func FromPaymentIntentRecords(records []entities.PaymentIntentRecord) []PaymentIntentRecordResponse {
	out := make([]PaymentIntentRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromPaymentIntentRecord(r))
	}
	return out
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
