package models

import (
	"github.com/shopspring/decimal"
)

// Client is a reconciliation unit. Its tolerance only applies to manual
// matches.
type Client struct {
	ID              string
	TenantID        string
	Name            string
	AllowTolerance  bool
	ToleranceAmount decimal.Decimal
}

// Tolerance returns the maximum absolute net a manual match may carry.
func (c Client) Tolerance() decimal.Decimal {
	if !c.AllowTolerance {
		return decimal.Zero
	}
	return c.ToleranceAmount.Abs()
}
