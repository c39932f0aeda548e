package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MatchType string

const (
	MatchTypeAuto   MatchType = "auto"
	MatchTypeManual MatchType = "manual"
)

// Match does not own its members. Membership is the set of transactions
// whose MatchID points at it.
type Match struct {
	ID         string
	ClientID   string
	RuleID     *string
	MatchType  MatchType
	Difference decimal.Decimal
	MatchedBy  *string
	CreatedAt  *time.Time
}

type CreateMatchIn struct {
	ID             string
	ClientID       string
	RuleID         *string
	MatchType      MatchType
	Difference     decimal.Decimal
	MatchedBy      *string
	TransactionIDs []string
}

// MatchMemberCount is one row of the match -> member count index.
type MatchMemberCount struct {
	MatchID     string
	MemberCount int
}

type MatchWithMembers struct {
	Match
	TransactionIDs []string
}

func (m *MatchWithMembers) ConvertToMatchOut() MatchOut {
	ids := m.TransactionIDs
	if ids == nil {
		ids = []string{}
	}
	return MatchOut{
		Kind:           "match",
		ID:             m.ID,
		RuleID:         m.RuleID,
		MatchType:      m.MatchType,
		Difference:     AsDecimal(m.Difference),
		MatchedBy:      m.MatchedBy,
		TransactionIDs: ids,
		CreatedAt:      m.CreatedAt,
	}
}

type MatchOut struct {
	Kind           string     `json:"kind"`
	ID             string     `json:"id"`
	RuleID         *string    `json:"ruleId"`
	MatchType      MatchType  `json:"matchType"`
	Difference     Decimal    `json:"difference"`
	MatchedBy      *string    `json:"matchedBy"`
	TransactionIDs []string   `json:"transactionIds"`
	CreatedAt      *time.Time `json:"createdAt"`
}

type CommitResult struct {
	TotalMatches          int      `json:"totalMatches"`
	TotalTransactions     int      `json:"totalTransactions"`
	MatchedTransactionIDs []string `json:"matchedTransactionIds"`
	Stats                 RunStats `json:"stats"`
}

type CreateManualMatchRequest struct {
	ClientID       string   `json:"-" param:"clientId" validate:"required,uuid"`
	TransactionIDs []string `json:"transactionIds" validate:"required,min=2,dive,uuid"`
}

type ManualMatchResult struct {
	MatchID          string `json:"matchId"`
	TransactionCount int    `json:"transactionCount"`
}

// UnmatchRequest selects exactly one of MatchID, All or TransactionID.
type UnmatchRequest struct {
	ClientID      string `json:"-" param:"clientId" validate:"required,uuid"`
	MatchID       string `json:"matchId" validate:"omitempty,uuid"`
	All           bool   `json:"all"`
	TransactionID string `json:"transactionId" validate:"omitempty,uuid"`
}

func (r UnmatchRequest) SelectorCount() int {
	n := 0
	if r.MatchID != "" {
		n++
	}
	if r.All {
		n++
	}
	if r.TransactionID != "" {
		n++
	}
	return n
}

type UnmatchResult struct {
	MatchesRemoved        int `json:"matchesRemoved"`
	TransactionsUnmatched int `json:"transactionsUnmatched"`
}

type ClientPathRequest struct {
	ClientID string `param:"clientId" validate:"required,uuid"`
}

type RulePathRequest struct {
	ClientID string `param:"clientId" validate:"required,uuid"`
	RuleID   string `param:"ruleId" validate:"required,uuid"`
}
