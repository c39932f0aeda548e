package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionSet int16

const (
	SetOne TransactionSet = 1
	SetTwo TransactionSet = 2
)

func (s TransactionSet) Valid() bool {
	return s == SetOne || s == SetTwo
}

type MatchStatus string

const (
	MatchStatusUnmatched MatchStatus = "unmatched"
	MatchStatusMatched   MatchStatus = "matched"
)

// Transaction is one ledger entry of a client. MatchID is set iff
// MatchStatus is matched.
type Transaction struct {
	ID              string
	ClientID        string
	Set             TransactionSet
	Amount          decimal.Decimal
	ForeignAmount   decimal.NullDecimal
	Currency        string
	ForeignCurrency *string
	Date            time.Time
	SecondaryDate   *time.Time
	Description     string
	Voucher         string
	Reference       string
	IsImported      bool
	MatchStatus     MatchStatus
	MatchID         *string
	Version         int64
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}

func (t Transaction) IsMatched() bool {
	return t.MatchStatus == MatchStatusMatched
}
