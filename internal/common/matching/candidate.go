package matching

import (
	"cmp"
	"strings"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Candidate is a group of transactions that satisfies one rule.
type Candidate struct {
	RuleID         string
	TransactionIDs []string
	Net            decimal.Decimal

	leadDay  int64
	leadID   string
	absCents int64
	key      string
}

func (c Candidate) Size() int {
	return len(c.TransactionIDs)
}

func newCandidate(ruleID string, members []entry) Candidate {
	ids := make([]string, len(members))
	amounts := make([]decimal.Decimal, len(members))
	lead := members[0]
	var cents int64
	for i, m := range members {
		ids[i] = m.id
		amounts[i] = m.amount
		cents += m.cents
		if m.day < lead.day || (m.day == lead.day && m.id < lead.id) {
			lead = m
		}
	}
	slices.Sort(ids)
	if cents < 0 {
		cents = -cents
	}

	return Candidate{
		RuleID:         ruleID,
		TransactionIDs: ids,
		Net:            common.SumDecimals(amounts...),
		leadDay:        lead.day,
		leadID:         lead.id,
		absCents:       cents,
		key:            strings.Join(ids, ","),
	}
}

// compareCandidates is the emission order: member count, earliest member
// (day, id), absolute net, then member ids.
func compareCandidates(a, b Candidate) int {
	if c := cmp.Compare(len(a.TransactionIDs), len(b.TransactionIDs)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.leadDay, b.leadDay); c != 0 {
		return c
	}
	if c := cmp.Compare(a.leadID, b.leadID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.absCents, b.absCents); c != 0 {
		return c
	}
	return cmp.Compare(a.key, b.key)
}

// WithinTolerance reports whether net satisfies the rule's amount policy.
// Without tolerance the net must be zero at reporting precision.
func WithinTolerance(net decimal.Decimal, allowTolerance bool, tolerance decimal.Decimal) bool {
	if allowTolerance {
		return net.Abs().LessThanOrEqual(tolerance.Abs())
	}
	return net.Round(common.ReportingScale).IsZero()
}

func ruleToleranceCents(rule models.MatchingRule) int64 {
	if !rule.AllowTolerance {
		return 0
	}
	return rule.ToleranceAmount.Abs().Shift(common.ReportingScale).Floor().IntPart()
}
