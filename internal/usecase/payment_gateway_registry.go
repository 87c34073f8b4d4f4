package usecase

import (
	"errors"

	"todotech_backend/internal/domain/entities"
	"todotech_backend/internal/usecase/interfaces"
)

var (
	ErrUnsupportedPaymentMethod    = errors.New("unsupported payment method")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// PaymentGatewayRegistry routes a payment method to the gateway that supports it.
type PaymentGatewayRegistry struct {
	gateways []interfaces.IPaymentGateway
}

// NewPaymentGatewayRegistry keeps the non-nil gateways in order; the first one
// supporting a method wins.
func NewPaymentGatewayRegistry(gateways ...interfaces.IPaymentGateway) *PaymentGatewayRegistry {
	r := &PaymentGatewayRegistry{}
	for _, g := range gateways {
		if g != nil {
			r.gateways = append(r.gateways, g)
		}
	}
	return r
}

func (r *PaymentGatewayRegistry) ForMethod(method entities.PaymentMethod) (interfaces.IPaymentGateway, error) {
	if r != nil {
		for _, g := range r.gateways {
			if g.Supports(method) {
				return g, nil
			}
		}
	}
	if _, ok := method.Provider(); ok {
		return nil, ErrPaymentGatewayNotConfigured
	}
	return nil, ErrUnsupportedPaymentMethod
}

func (r *PaymentGatewayRegistry) ForProvider(provider entities.PaymentProvider) (interfaces.IPaymentGateway, error) {
	if r != nil {
		for _, g := range r.gateways {
			if g.Provider() == provider {
				return g, nil
			}
		}
	}
	return nil, ErrPaymentGatewayNotConfigured
}
