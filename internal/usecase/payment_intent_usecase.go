package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"todotech_backend/internal/domain/entities"
	"todotech_backend/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID         = errors.New("invalid order_id")
	ErrPaymentIntentNotFound  = errors.New("payment intent not found")
	ErrPaymentRecordsDisabled = errors.New("payment intent persistence disabled")
)

// IPaymentIntentUseCase drives the payment intent lifecycle. Provider failures
// come back as a response with status "failed", not as an error.
type IPaymentIntentUseCase interface {
	Create(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntentResponse, error)
	Confirm(ctx context.Context, confirmation entities.PaymentConfirmation) (entities.PaymentIntentResponse, error)
	GetStatus(ctx context.Context, paymentIntentID string) (entities.PaymentIntentResponse, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]entities.PaymentIntentRecord, error)
}

type PaymentIntentUseCase struct {
	gateways *PaymentGatewayRegistry
	repo     interfaces.IPaymentIntentRepository
	now      func() time.Time
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

// NewPaymentIntentUseCase accepts a nil repo; records are then not kept.
func NewPaymentIntentUseCase(gateways *PaymentGatewayRegistry, repo interfaces.IPaymentIntentRepository) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{
		gateways: gateways,
		repo:     repo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentIntentUseCase) Create(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntentResponse, error) {
	log.Printf("[payment][usecase] create start order_id=%d method=%s amount=%v currency=%s", req.OrderID, req.PaymentMethod, req.Amount, req.Currency)
	if req.OrderID <= 0 {
		log.Printf("[payment][usecase] invalid order_id=%d", req.OrderID)
		return entities.PaymentIntentResponse{}, ErrInvalidOrderID
	}
	if err := req.Validate(); err != nil {
		log.Printf("[payment][usecase] invalid request order_id=%d err=%v", req.OrderID, err)
		return entities.PaymentIntentResponse{}, err
	}
	amountMinor, err := entities.ToMinorUnits(req.Amount, req.NormalizedCurrency())
	if err != nil {
		log.Printf("[payment][usecase] invalid amount order_id=%d err=%v", req.OrderID, err)
		return entities.PaymentIntentResponse{}, err
	}

	gateway, err := u.gateways.ForMethod(req.PaymentMethod)
	if err != nil {
		log.Printf("[payment][usecase] no gateway order_id=%d method=%s err=%v", req.OrderID, req.PaymentMethod, err)
		return entities.PaymentIntentResponse{}, err
	}

	res := gateway.CreatePaymentIntent(ctx, req)
	if res.Failed() {
		log.Printf("[payment][usecase] create failed order_id=%d provider=%s err=%s", req.OrderID, gateway.Provider(), res.ErrorMessage)
		return res, nil
	}

	if u.repo != nil {
		now := u.now()
		record := entities.PaymentIntentRecord{
			ID:             res.PaymentIntentID,
			OrderID:        req.OrderID,
			Provider:       gateway.Provider(),
			PaymentMethod:  req.PaymentMethod,
			Status:         res.Status,
			Amount:         req.Amount,
			AmountMinor:    amountMinor,
			Currency:       req.NormalizedCurrency(),
			AmountReceived: amountReceived(res),
			CustomerEmail:  strings.TrimSpace(req.CustomerEmail),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if _, err := u.repo.Create(ctx, record); err != nil {
			log.Printf("[payment][usecase] payment intent repository create failed order_id=%d payment_intent_id=%s err=%v", req.OrderID, record.ID, err)
			return entities.PaymentIntentResponse{}, err
		}
	}
	log.Printf("[payment][usecase] create success order_id=%d payment_intent_id=%s status=%s", req.OrderID, res.PaymentIntentID, res.Status)
	return res, nil
}

func (u *PaymentIntentUseCase) Confirm(ctx context.Context, confirmation entities.PaymentConfirmation) (entities.PaymentIntentResponse, error) {
	confirmation.PaymentIntentID = strings.TrimSpace(confirmation.PaymentIntentID)
	log.Printf("[payment][usecase] confirm start payment_intent_id=%s", confirmation.PaymentIntentID)
	if confirmation.PaymentIntentID == "" {
		return entities.PaymentIntentResponse{}, entities.ErrInvalidPaymentIntentID
	}

	gateway, err := u.gatewayForIntent(ctx, confirmation.PaymentIntentID)
	if err != nil {
		return entities.PaymentIntentResponse{}, err
	}

	res := gateway.ConfirmPayment(ctx, confirmation)
	if res.Failed() {
		log.Printf("[payment][usecase] confirm failed payment_intent_id=%s err=%s", confirmation.PaymentIntentID, res.ErrorMessage)
		return res, nil
	}
	if err := u.recordStatus(ctx, res); err != nil {
		return entities.PaymentIntentResponse{}, err
	}
	log.Printf("[payment][usecase] confirm success payment_intent_id=%s status=%s", res.PaymentIntentID, res.Status)
	return res, nil
}

func (u *PaymentIntentUseCase) GetStatus(ctx context.Context, paymentIntentID string) (entities.PaymentIntentResponse, error) {
	paymentIntentID = strings.TrimSpace(paymentIntentID)
	if paymentIntentID == "" {
		return entities.PaymentIntentResponse{}, entities.ErrInvalidPaymentIntentID
	}

	gateway, err := u.gatewayForIntent(ctx, paymentIntentID)
	if err != nil {
		return entities.PaymentIntentResponse{}, err
	}

	res := gateway.GetPaymentStatus(ctx, paymentIntentID)
	if res.Failed() {
		log.Printf("[payment][usecase] status failed payment_intent_id=%s err=%s", paymentIntentID, res.ErrorMessage)
		return res, nil
	}
	if err := u.recordStatus(ctx, res); err != nil {
		return entities.PaymentIntentResponse{}, err
	}
	return res, nil
}

func (u *PaymentIntentUseCase) ListByOrderID(ctx context.Context, orderID int64) ([]entities.PaymentIntentRecord, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if u.repo == nil {
		return nil, ErrPaymentRecordsDisabled
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

// gatewayForIntent resolves the provider that owns an intent. Without a
// stored record the native provider is assumed.
func (u *PaymentIntentUseCase) gatewayForIntent(ctx context.Context, paymentIntentID string) (interfaces.IPaymentGateway, error) {
	provider := entities.PaymentProviderStripe
	if u.repo != nil {
		record, err := u.repo.GetByID(ctx, paymentIntentID)
		if err != nil {
			log.Printf("[payment][usecase] failed loading payment intent payment_intent_id=%s err=%v", paymentIntentID, err)
			return nil, err
		}
		if record.ID == "" {
			log.Printf("[payment][usecase] payment intent not found payment_intent_id=%s", paymentIntentID)
			return nil, ErrPaymentIntentNotFound
		}
		provider = record.Provider
	}

	gateway, err := u.gateways.ForProvider(provider)
	if err != nil {
		log.Printf("[payment][usecase] no gateway payment_intent_id=%s provider=%s", paymentIntentID, provider)
		return nil, err
	}
	return gateway, nil
}

func (u *PaymentIntentUseCase) recordStatus(ctx context.Context, res entities.PaymentIntentResponse) error {
	if u.repo == nil {
		return nil
	}
	if _, err := u.repo.UpdateStatus(ctx, res.PaymentIntentID, res.Status, amountReceived(res)); err != nil {
		log.Printf("[payment][usecase] payment intent repository update failed payment_intent_id=%s err=%v", res.PaymentIntentID, err)
		return err
	}
	return nil
}

func amountReceived(res entities.PaymentIntentResponse) int64 {
	switch v := res.AdditionalData["amount_received"].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}
