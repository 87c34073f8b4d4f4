package interfaces

import (
	"context"

	"todotech_backend/internal/domain/entities"
)

// IPaymentIntentRepository abstracts DynamoDB persistence for PaymentIntentRecord.
//
// Lookups return a zero record and a nil error when nothing is stored.

type IPaymentIntentRepository interface {
	Create(ctx context.Context, r entities.PaymentIntentRecord) (entities.PaymentIntentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentIntentRecord, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentIntentStatus, amountReceived int64) (entities.PaymentIntentRecord, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]entities.PaymentIntentRecord, error)
}
