package entities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		currency string
		want     int64
	}{
		{name: "usd two decimals", amount: 100.0, currency: "usd", want: 10000},
		{name: "usd cents", amount: 19.99, currency: "usd", want: 1999},
		{name: "cop is two-decimal", amount: 50000.0, currency: "cop", want: 5000000},
		{name: "upper case currency", amount: 50000.0, currency: "COP", want: 5000000},
		{name: "jpy zero decimal", amount: 1500, currency: "jpy", want: 1500},
		{name: "clp zero decimal", amount: 25000, currency: "clp", want: 25000},
		{name: "kwd three decimals", amount: 5.12, currency: "kwd", want: 5120},
		{name: "isk whole amounts", amount: 1200, currency: "isk", want: 120000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToMinorUnits(tc.amount, tc.currency)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToMinorUnits_Rejects(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		currency string
		want     error
	}{
		{name: "zero", amount: 0, currency: "usd", want: ErrInvalidPaymentAmount},
		{name: "negative", amount: -5, currency: "usd", want: ErrInvalidPaymentAmount},
		{name: "nan", amount: math.NaN(), currency: "usd", want: ErrInvalidPaymentAmount},
		{name: "inf", amount: math.Inf(1), currency: "usd", want: ErrInvalidPaymentAmount},
		{name: "sub-cent usd", amount: 10.005, currency: "usd", want: ErrAmountPrecision},
		{name: "fractional jpy", amount: 10.5, currency: "jpy", want: ErrAmountPrecision},
		{name: "kwd last digit", amount: 5.124, currency: "kwd", want: ErrAmountPrecision},
		{name: "fractional isk", amount: 10.5, currency: "isk", want: ErrAmountPrecision},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToMinorUnits(tc.amount, tc.currency)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, 100.0, FromMinorUnits(10000, "usd"))
	assert.Equal(t, 50000.0, FromMinorUnits(5000000, "cop"))
	assert.Equal(t, 1500.0, FromMinorUnits(1500, "jpy"))
	assert.Equal(t, 5.12, FromMinorUnits(5120, "kwd"))
}

func TestCurrencyExponent(t *testing.T) {
	assert.Equal(t, int32(2), CurrencyExponent("usd"))
	assert.Equal(t, int32(2), CurrencyExponent("cop"))
	assert.Equal(t, int32(0), CurrencyExponent("JPY"))
	assert.Equal(t, int32(3), CurrencyExponent("bhd"))
	assert.Equal(t, int32(2), CurrencyExponent("isk"))
}
