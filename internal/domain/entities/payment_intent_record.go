package entities

import "time"

// PaymentIntentRecord is the local projection of a provider payment intent.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment intent id)
//   - GSI1 (order_id-index): order_id
//
// The provider stays the source of truth for the status; the record keeps the
// last status observed by this service so orders can be reconciled.

type PaymentIntentRecord struct {
	ID             string              `json:"id"`
	OrderID        int64               `json:"order_id"`
	Provider       PaymentProvider     `json:"provider"`
	PaymentMethod  PaymentMethod       `json:"payment_method"`
	Status         PaymentIntentStatus `json:"status"`
	Amount         float64             `json:"amount"`
	AmountMinor    int64               `json:"amount_minor"`
	Currency       string              `json:"currency"`
	AmountReceived int64               `json:"amount_received"`
	CustomerEmail  string              `json:"customer_email,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}
