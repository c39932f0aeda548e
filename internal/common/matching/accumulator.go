package matching

import (
	"time"

	"bitbucket.org/Amartha/go-recon-matching/internal/models"

	"github.com/shopspring/decimal"
)

// Group is an accepted candidate together with the rule that produced it.
type Group struct {
	RuleID         string
	RuleName       string
	RuleType       models.RuleType
	TransactionIDs []string
	Net            decimal.Decimal
}

// Result is the outcome of one selection pass.
type Result struct {
	Groups []Group
	Stats  models.RunStats
}

// MatchedTransactionIDs lists the members of every group in acceptance order.
func (r Result) MatchedTransactionIDs() []string {
	ids := make([]string, 0, r.Stats.TotalTransactions)
	for _, g := range r.Groups {
		ids = append(ids, g.TransactionIDs...)
	}
	return ids
}

// Accumulator folds accepted candidates into per-rule and total statistics.
type Accumulator struct {
	groups []Group
	stats  models.RunStats
}

func NewAccumulator() *Accumulator {
	return &Accumulator{stats: models.RunStats{ByRule: []models.RuleStats{}}}
}

// StartRule opens the stats row every later Add and SkipBuckets call lands in.
func (a *Accumulator) StartRule(rule models.MatchingRule) {
	a.stats.ByRule = append(a.stats.ByRule, models.RuleStats{
		RuleID:   rule.ID,
		RuleName: rule.Name,
		RuleType: rule.RuleType,
	})
}

func (a *Accumulator) current() *models.RuleStats {
	if len(a.stats.ByRule) == 0 {
		a.stats.ByRule = append(a.stats.ByRule, models.RuleStats{})
	}
	return &a.stats.ByRule[len(a.stats.ByRule)-1]
}

func (a *Accumulator) Add(c Candidate) {
	rs := a.current()
	rs.MatchCount++
	rs.TransactionCount += c.Size()
	a.stats.TotalMatches++
	a.stats.TotalTransactions += c.Size()

	a.groups = append(a.groups, Group{
		RuleID:         rs.RuleID,
		RuleName:       rs.RuleName,
		RuleType:       rs.RuleType,
		TransactionIDs: c.TransactionIDs,
		Net:            c.Net,
	})
}

func (a *Accumulator) SkipBuckets(n int) {
	a.current().SkippedBuckets += n
}

func (a *Accumulator) Result(elapsed time.Duration) Result {
	stats := a.stats
	stats.DurationMs = elapsed.Milliseconds()
	return Result{Groups: a.groups, Stats: stats}
}
