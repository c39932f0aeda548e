package models

import (
	"github.com/shopspring/decimal"
)

// Decimal is an amount rendered as a bare JSON number (10.5, not "10.5").
// Inputs still accept both forms through the embedded UnmarshalJSON.
type Decimal struct {
	decimal.Decimal
}

func AsDecimal(d decimal.Decimal) Decimal {
	return Decimal{d}
}

func ParseDecimal(value string) (Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d}, nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal.String()), nil
}
