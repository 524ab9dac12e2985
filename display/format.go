// Package display turns calculator results into text for people. All
// rounding here is cosmetic; nothing is fed back into a calculation.
package display

import (
	"github.com/shopspring/decimal"
)

type Options struct {
	QuoteCurrency  string
	PricePlaces    int32
	MoneyPlaces    int32
	QuantityPlaces int32
}

func DefaultOptions() Options {
	return Options{
		QuoteCurrency:  "USDT",
		PricePlaces:    8,
		MoneyPlaces:    2,
		QuantityPlaces: 6,
	}
}

// Price rounds to PricePlaces and drops trailing zeros: 90 -> "90",
// 1.40000000 -> "1.4".
func (o Options) Price(v float64) string {
	return decimal.NewFromFloat(v).Round(o.PricePlaces).String()
}

// Money always shows MoneyPlaces decimals.
func (o Options) Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(o.MoneyPlaces)
}

// Quantity always shows QuantityPlaces decimals.
func (o Options) Quantity(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(o.QuantityPlaces)
}

// Plain prints the shortest decimal that round-trips to v, never in
// exponent form. Used for values the user typed in.
func Plain(v float64) string {
	return decimal.NewFromFloat(v).String()
}
