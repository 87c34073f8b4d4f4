package entities

import (
	"errors"
	"strings"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

// PaymentMethod is the payment method chosen by the shopper.
type PaymentMethod string

const (
	PaymentMethodStripe       PaymentMethod = "STRIPE"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodRedcompra    PaymentMethod = "REDCOMPRA"
)

// PaymentProvider names a provider-backed gateway.
type PaymentProvider string

const (
	PaymentProviderStripe      PaymentProvider = "stripe"
	PaymentProviderMercadoPago PaymentProvider = "mercadopago"
)

// paymentMethodProviders is the capability matrix. Methods absent from it
// (REDCOMPRA) have no gateway.
var paymentMethodProviders = map[PaymentMethod]PaymentProvider{
	PaymentMethodStripe:       PaymentProviderStripe,
	PaymentMethodCreditCard:   PaymentProviderStripe,
	PaymentMethodDebitCard:    PaymentProviderStripe,
	PaymentMethodCash:         PaymentProviderMercadoPago,
	PaymentMethodBankTransfer: PaymentProviderMercadoPago,
}

func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodStripe,
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodCash,
		PaymentMethodBankTransfer,
		PaymentMethodRedcompra,
	}
}

// Provider returns the provider that supports m.
func (m PaymentMethod) Provider() (PaymentProvider, bool) {
	p, ok := paymentMethodProviders[m]
	return p, ok
}

// SupportedBy reports whether provider p handles m.
func (m PaymentMethod) SupportedBy(p PaymentProvider) bool {
	got, ok := m.Provider()
	return ok && got == p
}

func (m PaymentMethod) IsValid() bool {
	for _, known := range AllPaymentMethods() {
		if m == known {
			return true
		}
	}
	return false
}

// ParsePaymentMethod accepts method names in any case, e.g. "credit_card".
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", ErrUnknownPaymentMethod
	}
	return m, nil
}
