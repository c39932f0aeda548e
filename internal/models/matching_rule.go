package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RuleType string

const (
	RuleTypeOneToOne   RuleType = "one_to_one"
	RuleTypeManyToOne  RuleType = "many_to_one"
	RuleTypeManyToMany RuleType = "many_to_many"
)

type CompareCurrency string

const (
	CompareCurrencyLocal   CompareCurrency = "local"
	CompareCurrencyForeign CompareCurrency = "foreign"
)

type MatchingRule struct {
	ID                string
	ClientID          string
	Name              string
	Priority          int
	RuleType          RuleType
	IsInternal        bool
	DateMustMatch     bool
	DateToleranceDays int
	CompareCurrency   CompareCurrency
	AllowTolerance    bool
	ToleranceAmount   decimal.Decimal
	IsActive          bool
	CreatedAt         *time.Time
	UpdatedAt         *time.Time
}

func (r *MatchingRule) ConvertToMatchingRuleOut() MatchingRuleOut {
	return MatchingRuleOut{
		Kind:              "matchingRule",
		ID:                r.ID,
		Name:              r.Name,
		Priority:          r.Priority,
		RuleType:          r.RuleType,
		IsInternal:        r.IsInternal,
		DateMustMatch:     r.DateMustMatch,
		DateToleranceDays: r.DateToleranceDays,
		CompareCurrency:   r.CompareCurrency,
		AllowTolerance:    r.AllowTolerance,
		ToleranceAmount:   AsDecimal(r.ToleranceAmount),
		IsActive:          r.IsActive,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

type MatchingRuleOut struct {
	Kind              string          `json:"kind"`
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Priority          int             `json:"priority"`
	RuleType          RuleType        `json:"ruleType"`
	IsInternal        bool            `json:"isInternal"`
	DateMustMatch     bool            `json:"dateMustMatch"`
	DateToleranceDays int             `json:"dateToleranceDays"`
	CompareCurrency   CompareCurrency `json:"compareCurrency"`
	AllowTolerance    bool            `json:"allowTolerance"`
	ToleranceAmount   Decimal         `json:"toleranceAmount"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         *time.Time      `json:"createdAt"`
	UpdatedAt         *time.Time      `json:"updatedAt"`
}

type CreateMatchingRuleRequest struct {
	ClientID          string  `json:"-" param:"clientId" validate:"required,uuid"`
	Name              string  `json:"name" validate:"required,min=1,max=100,noStartEndSpaces"`
	Priority          int     `json:"priority" validate:"required,min=1"`
	RuleType          string  `json:"ruleType" validate:"required,oneof=one_to_one many_to_one many_to_many"`
	IsInternal        bool    `json:"isInternal"`
	DateMustMatch     bool    `json:"dateMustMatch"`
	DateToleranceDays int     `json:"dateToleranceDays" validate:"min=0,max=366"`
	CompareCurrency   string  `json:"compareCurrency" validate:"omitempty,oneof=local foreign"`
	AllowTolerance    bool    `json:"allowTolerance"`
	ToleranceAmount   Decimal `json:"toleranceAmount" validate:"decimalNonNegative"`
	IsActive          *bool   `json:"isActive"`
}

func (r CreateMatchingRuleRequest) ToMatchingRule() MatchingRule {
	cc := CompareCurrency(r.CompareCurrency)
	if cc == "" {
		cc = CompareCurrencyLocal
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return MatchingRule{
		ClientID:          r.ClientID,
		Name:              r.Name,
		Priority:          r.Priority,
		RuleType:          RuleType(r.RuleType),
		IsInternal:        r.IsInternal,
		DateMustMatch:     r.DateMustMatch,
		DateToleranceDays: r.DateToleranceDays,
		CompareCurrency:   cc,
		AllowTolerance:    r.AllowTolerance,
		ToleranceAmount:   r.ToleranceAmount.Decimal,
		IsActive:          active,
	}
}

type UpdateMatchingRuleRequest struct {
	RuleID string `json:"-" param:"ruleId" validate:"required,uuid"`
	CreateMatchingRuleRequest
}

func (r UpdateMatchingRuleRequest) ToMatchingRule() MatchingRule {
	rule := r.CreateMatchingRuleRequest.ToMatchingRule()
	rule.ID = r.RuleID
	return rule
}

type MatchingRuleFilterOptions struct {
	ClientID   string
	ActiveOnly bool
}
