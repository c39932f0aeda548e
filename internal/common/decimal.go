package common

import (
	"github.com/shopspring/decimal"
)

// ReportingScale is the number of decimal places amounts are reported with.
const ReportingScale = 2

var hundred = decimal.NewFromInt(100)

// ToCents converts an amount to its minor unit, rounding half away from zero.
func ToCents(d decimal.Decimal) int64 {
	return d.Round(ReportingScale).Mul(hundred).IntPart()
}

// FromCents is the inverse of ToCents.
func FromCents(c int64) decimal.Decimal {
	return decimal.New(c, -ReportingScale)
}

// SumDecimals adds the amounts without rounding.
func SumDecimals(values ...decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, values...)
}
