package entities

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrAmountPrecision = errors.New("amount has more decimals than the currency allows")

// Provider currency exponents. Amounts are sent in the smallest unit of the
// currency:
//   - zero-decimal currencies are sent as-is (1000 JPY -> 1000)
//   - three-decimal currencies are multiplied by 1000 and must end in 0
//     (5.124 KWD is rejected, 5.120 KWD -> 5120)
//   - ISK keeps a two-decimal representation but only whole krónur
//   - everything else, COP included, is two-decimal (50000.00 COP -> 5000000)
var (
	zeroDecimalCurrencies = map[string]struct{}{
		"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {}, "krw": {}, "mga": {},
		"pyg": {}, "rwf": {}, "ugx": {}, "vnd": {}, "vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
	}
	threeDecimalCurrencies = map[string]struct{}{
		"bhd": {}, "jod": {}, "kwd": {}, "omr": {}, "tnd": {},
	}
	wholeAmountCurrencies = map[string]struct{}{
		"isk": {},
	}
)

const defaultCurrencyExponent int32 = 2

// CurrencyExponent returns the number of decimal digits the provider uses for
// currency in its amount fields.
func CurrencyExponent(currency string) int32 {
	c := strings.ToLower(strings.TrimSpace(currency))
	if _, ok := zeroDecimalCurrencies[c]; ok {
		return 0
	}
	if _, ok := threeDecimalCurrencies[c]; ok {
		return 3
	}
	return defaultCurrencyExponent
}

// ToMinorUnits converts a major-unit amount into the provider integer
// representation. It never rounds: an amount that cannot be represented
// exactly is rejected.
func ToMinorUnits(amount float64, currency string) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidPaymentAmount
	}
	d := decimal.NewFromFloat(amount)
	if !d.IsPositive() {
		return 0, ErrInvalidPaymentAmount
	}

	c := strings.ToLower(strings.TrimSpace(currency))
	if _, ok := wholeAmountCurrencies[c]; ok && !d.IsInteger() {
		return 0, ErrAmountPrecision
	}

	minor := d.Shift(CurrencyExponent(c))
	if !minor.IsInteger() {
		return 0, ErrAmountPrecision
	}
	if _, ok := threeDecimalCurrencies[c]; ok && !minor.Mod(decimal.NewFromInt(10)).IsZero() {
		return 0, ErrAmountPrecision
	}
	if minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, ErrInvalidPaymentAmount
	}
	return minor.IntPart(), nil
}

// FromMinorUnits converts a provider integer amount back into major units.
func FromMinorUnits(minor int64, currency string) float64 {
	return decimal.New(minor, -CurrencyExponent(currency)).InexactFloat64()
}
