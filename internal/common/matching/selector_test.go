package matching

import (
	"context"
	"os"
	"testing"
	"time"

	"bitbucket.org/Amartha/go-recon-matching/internal/common/xlog"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func trx(id string, set models.TransactionSet, amount, date string) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		ID:          id,
		ClientID:    "client-1",
		Set:         set,
		Amount:      decimal.RequireFromString(amount),
		Date:        d,
		MatchStatus: models.MatchStatusUnmatched,
	}
}

func withForeign(t models.Transaction, amount string) models.Transaction {
	t.ForeignAmount = decimal.NewNullDecimal(decimal.RequireFromString(amount))
	return t
}

func rule(id string, priority int, ruleType models.RuleType, opts ...func(*models.MatchingRule)) models.MatchingRule {
	r := models.MatchingRule{
		ID:              id,
		ClientID:        "client-1",
		Name:            "rule " + id,
		Priority:        priority,
		RuleType:        ruleType,
		CompareCurrency: models.CompareCurrencyLocal,
		IsActive:        true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func dateWithin(days int) func(*models.MatchingRule) {
	return func(r *models.MatchingRule) {
		r.DateMustMatch = true
		r.DateToleranceDays = days
	}
}

func tolerance(amount string) func(*models.MatchingRule) {
	return func(r *models.MatchingRule) {
		r.AllowTolerance = true
		r.ToleranceAmount = decimal.RequireFromString(amount)
	}
}

func internal(r *models.MatchingRule) {
	r.IsInternal = true
}

func run(t *testing.T, limits Limits, txs []models.Transaction, rules ...models.MatchingRule) Result {
	t.Helper()
	res, err := NewSelector(limits).Run(context.Background(), NewPool(txs), rules)
	require.NoError(t, err)
	return res
}

func assertDisjoint(t *testing.T, res Result) {
	t.Helper()
	seen := map[string]bool{}
	for _, g := range res.Groups {
		for _, id := range g.TransactionIDs {
			assert.False(t, seen[id], "transaction %s used twice", id)
			seen[id] = true
		}
	}
}

func TestSelector_OneToOneSameDate(t *testing.T) {
	txs := []models.Transaction{
		trx("A", models.SetOne, "100.00", "2024-01-05"),
		trx("B", models.SetTwo, "-100.00", "2024-01-05"),
	}

	res := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeOneToOne, dateWithin(0)))

	assert.Equal(t, 1, res.Stats.TotalMatches)
	assert.Equal(t, 2, res.Stats.TotalTransactions)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, []string{"A", "B"}, res.Groups[0].TransactionIDs)
	assert.True(t, res.Groups[0].Net.IsZero())
}

func TestSelector_DateTolerance(t *testing.T) {
	txs := []models.Transaction{
		trx("A", models.SetOne, "100.00", "2024-01-05"),
		trx("B", models.SetTwo, "-100.00", "2024-01-09"),
	}

	tests := []struct {
		days int
		want int
	}{
		{days: 0, want: 0},
		{days: 3, want: 0},
		{days: 4, want: 1},
		{days: 10, want: 1},
	}
	for _, tt := range tests {
		res := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeOneToOne, dateWithin(tt.days)))
		assert.Equal(t, tt.want, res.Stats.TotalMatches, "tolerance %d days", tt.days)
	}

	res := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeOneToOne))
	assert.Equal(t, 1, res.Stats.TotalMatches, "dates ignored without date rule")
}

func TestSelector_ManyToOneWithTolerance(t *testing.T) {
	txs := []models.Transaction{
		trx("A", models.SetOne, "300.00", "2024-01-05"),
		trx("B1", models.SetTwo, "-150.00", "2024-01-05"),
		trx("B2", models.SetTwo, "-150.01", "2024-01-06"),
	}

	res := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeManyToOne, tolerance("0.02")))

	assert.Equal(t, 1, res.Stats.TotalMatches)
	assert.Equal(t, 3, res.Stats.TotalTransactions)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, []string{"A", "B1", "B2"}, res.Groups[0].TransactionIDs)
	assert.Equal(t, "-0.01", res.Groups[0].Net.String())

	strict := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeManyToOne))
	assert.Equal(t, 0, strict.Stats.TotalMatches)
}

func TestSelector_ManyToOneDateAnchor(t *testing.T) {
	txs := []models.Transaction{
		trx("A", models.SetTwo, "-300.00", "2024-01-10"),
		trx("B1", models.SetOne, "100.00", "2024-01-08"),
		trx("B2", models.SetOne, "200.00", "2024-01-12"),
		trx("B3", models.SetOne, "200.00", "2024-01-20"),
	}

	res := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeManyToOne, dateWithin(2)))

	require.Len(t, res.Groups, 1)
	assert.Equal(t, []string{"A", "B1", "B2"}, res.Groups[0].TransactionIDs)
}

func TestSelector_PriorityRespect(t *testing.T) {
	txs := []models.Transaction{
		trx("A", models.SetOne, "50.00", "2024-02-01"),
		trx("B", models.SetTwo, "-50.00", "2024-02-01"),
	}
	low := rule("a-low", 2, models.RuleTypeOneToOne)
	high := rule("z-high", 1, models.RuleTypeOneToOne, dateWithin(0))

	res := run(t, Limits{}, txs, low, high)

	require.Len(t, res.Groups, 1)
	assert.Equal(t, "z-high", res.Groups[0].RuleID)
	require.Len(t, res.Stats.ByRule, 2)
	assert.Equal(t, "z-high", res.Stats.ByRule[0].RuleID)
	assert.Equal(t, 1, res.Stats.ByRule[0].MatchCount)
	assert.Equal(t, "a-low", res.Stats.ByRule[1].RuleID)
	assert.Equal(t, 0, res.Stats.ByRule[1].MatchCount)
}

func TestSelector_InactiveRulesIgnored(t *testing.T) {
	txs := []models.Transaction{
		trx("A", models.SetOne, "50.00", "2024-02-01"),
		trx("B", models.SetTwo, "-50.00", "2024-02-01"),
	}
	r := rule("r1", 1, models.RuleTypeOneToOne)
	r.IsActive = false

	res := run(t, Limits{}, txs, r)
	assert.Equal(t, 0, res.Stats.TotalMatches)
	assert.Empty(t, res.Stats.ByRule)
}

func TestSelector_TieBreak(t *testing.T) {
	txs := []models.Transaction{
		trx("A", models.SetOne, "100.00", "2024-01-05"),
		trx("C", models.SetTwo, "-100.00", "2024-01-05"),
		trx("B", models.SetTwo, "-100.00", "2024-01-05"),
		trx("D", models.SetTwo, "-100.00", "2024-01-04"),
	}

	res := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeOneToOne))

	// D is the earliest member of its pair, so that pair leads
	require.Len(t, res.Groups, 1)
	assert.Equal(t, []string{"A", "D"}, res.Groups[0].TransactionIDs)

	res = run(t, Limits{}, txs[:3], rule("r1", 1, models.RuleTypeOneToOne))
	require.Len(t, res.Groups, 1)
	assert.Equal(t, []string{"A", "B"}, res.Groups[0].TransactionIDs)
}

func TestSelector_SmallerGroupsFirst(t *testing.T) {
	txs := []models.Transaction{
		trx("A", models.SetOne, "100.00", "2024-01-05"),
		trx("B1", models.SetTwo, "-60.00", "2024-01-05"),
		trx("B2", models.SetTwo, "-40.00", "2024-01-05"),
		trx("B3", models.SetTwo, "-100.00", "2024-01-06"),
	}

	res := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeManyToOne))

	require.Len(t, res.Groups, 1)
	assert.Equal(t, []string{"A", "B3"}, res.Groups[0].TransactionIDs)
}

func TestSelector_ManyToMany(t *testing.T) {
	txs := []models.Transaction{
		trx("A1", models.SetOne, "100.00", "2024-03-01"),
		trx("A2", models.SetOne, "50.00", "2024-03-02"),
		trx("B1", models.SetTwo, "-70.00", "2024-03-01"),
		trx("B2", models.SetTwo, "-80.00", "2024-03-03"),
		trx("B3", models.SetTwo, "-80.00", "2024-03-20"),
	}

	res := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeManyToMany, dateWithin(2)))

	require.Len(t, res.Groups, 1)
	assert.Equal(t, []string{"A1", "A2", "B1", "B2"}, res.Groups[0].TransactionIDs)
	assertDisjoint(t, res)

	tight := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeManyToMany, dateWithin(1)))
	assert.Equal(t, 0, tight.Stats.TotalMatches)
}

func TestSelector_ManyToManySideCap(t *testing.T) {
	txs := []models.Transaction{
		trx("A1", models.SetOne, "10.00", "2024-03-01"),
		trx("A2", models.SetOne, "10.00", "2024-03-01"),
		trx("A3", models.SetOne, "10.00", "2024-03-01"),
		trx("B1", models.SetTwo, "-30.00", "2024-03-01"),
	}

	res := run(t, Limits{MaxGroupSideSize: 2}, txs, rule("r1", 1, models.RuleTypeManyToMany))
	assert.Equal(t, 0, res.Stats.TotalMatches)

	res = run(t, Limits{MaxGroupSideSize: 3}, txs, rule("r1", 1, models.RuleTypeManyToMany))
	assert.Equal(t, 1, res.Stats.TotalMatches)
}

func TestSelector_Internal(t *testing.T) {
	txs := []models.Transaction{
		trx("A1", models.SetOne, "100.00", "2024-03-01"),
		trx("A2", models.SetOne, "-60.00", "2024-03-01"),
		trx("A3", models.SetOne, "-40.00", "2024-03-01"),
		trx("B1", models.SetTwo, "-100.00", "2024-03-01"),
	}

	pairs := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeOneToOne, internal))
	assert.Equal(t, 0, pairs.Stats.TotalMatches, "cross-set pair is not internal")

	groups := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeManyToMany, internal))
	require.Len(t, groups.Groups, 1)
	assert.Equal(t, []string{"A1", "A2", "A3"}, groups.Groups[0].TransactionIDs)

	anchored := run(t, Limits{}, txs, rule("r1", 1, models.RuleTypeManyToOne, internal))
	require.Len(t, anchored.Groups, 1)
	assert.Equal(t, []string{"A1", "A2", "A3"}, anchored.Groups[0].TransactionIDs)
}

func TestSelector_ForeignCurrency(t *testing.T) {
	txs := []models.Transaction{
		withForeign(trx("A", models.SetOne, "100.00", "2024-01-05"), "6.50"),
		withForeign(trx("B", models.SetTwo, "-99.00", "2024-01-05"), "-6.50"),
		trx("C", models.SetTwo, "-100.00", "2024-01-05"),
	}
	foreign := rule("r1", 1, models.RuleTypeOneToOne, func(r *models.MatchingRule) {
		r.CompareCurrency = models.CompareCurrencyForeign
	})

	res := run(t, Limits{}, txs, foreign)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, []string{"A", "B"}, res.Groups[0].TransactionIDs)
	assert.True(t, res.Groups[0].Net.IsZero())
}

func TestSelector_SkipsLargeBuckets(t *testing.T) {
	txs := []models.Transaction{
		trx("A", models.SetOne, "300.00", "2024-01-05"),
		trx("B1", models.SetTwo, "-100.00", "2024-01-05"),
		trx("B2", models.SetTwo, "-100.00", "2024-01-05"),
		trx("B3", models.SetTwo, "-100.00", "2024-01-05"),
		trx("B4", models.SetTwo, "-7.00", "2024-01-05"),
	}

	res := run(t, Limits{MaxBucketSize: 3}, txs, rule("r1", 1, models.RuleTypeManyToOne))
	assert.Equal(t, 0, res.Stats.TotalMatches)
	require.Len(t, res.Stats.ByRule, 1)
	assert.Equal(t, 1, res.Stats.ByRule[0].SkippedBuckets)

	res = run(t, Limits{MaxBucketSize: 4}, txs, rule("r1", 1, models.RuleTypeManyToOne))
	assert.Equal(t, 1, res.Stats.TotalMatches)
	assert.Equal(t, 0, res.Stats.ByRule[0].SkippedBuckets)
}

func TestSelector_LaterRulesSeeRemainingPool(t *testing.T) {
	txs := []models.Transaction{
		trx("A1", models.SetOne, "100.00", "2024-01-05"),
		trx("A2", models.SetOne, "100.00", "2024-01-05"),
		trx("B1", models.SetTwo, "-100.00", "2024-01-05"),
		trx("B2", models.SetTwo, "-60.00", "2024-01-05"),
		trx("B3", models.SetTwo, "-40.00", "2024-01-05"),
	}

	res := run(t, Limits{}, txs,
		rule("r1", 1, models.RuleTypeOneToOne),
		rule("r2", 2, models.RuleTypeManyToOne))

	require.Len(t, res.Groups, 2)
	assert.Equal(t, "r1", res.Groups[0].RuleID)
	assert.Equal(t, []string{"A1", "B1"}, res.Groups[0].TransactionIDs)
	assert.Equal(t, "r2", res.Groups[1].RuleID)
	assert.Equal(t, []string{"A2", "B2", "B3"}, res.Groups[1].TransactionIDs)
	assertDisjoint(t, res)
}

func TestSelector_Deterministic(t *testing.T) {
	txs := []models.Transaction{
		trx("A1", models.SetOne, "100.00", "2024-01-05"),
		trx("A2", models.SetOne, "100.00", "2024-01-05"),
		trx("A3", models.SetOne, "40.00", "2024-01-06"),
		trx("A4", models.SetOne, "60.00", "2024-01-06"),
		trx("B1", models.SetTwo, "-100.00", "2024-01-05"),
		trx("B2", models.SetTwo, "-100.00", "2024-01-06"),
		trx("B3", models.SetTwo, "-100.00", "2024-01-06"),
		trx("B4", models.SetTwo, "-60.00", "2024-01-07"),
		trx("B5", models.SetTwo, "-40.00", "2024-01-07"),
	}
	rules := []models.MatchingRule{
		rule("r3", 3, models.RuleTypeManyToMany, dateWithin(2)),
		rule("r1", 1, models.RuleTypeOneToOne, dateWithin(0)),
		rule("r2", 2, models.RuleTypeManyToOne, dateWithin(1)),
	}

	first := run(t, Limits{}, txs, rules...)
	second := run(t, Limits{}, txs, rules...)
	first.Stats.DurationMs, second.Stats.DurationMs = 0, 0

	opt := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(first, second, opt); diff != "" {
		t.Errorf("repeated runs differ (-first +second):\n%s", diff)
	}
	assertDisjoint(t, first)
	assert.Equal(t, 4, first.Stats.TotalMatches)
	assert.Equal(t, 8, first.Stats.TotalTransactions)
}

func TestSelector_ContextCancelled(t *testing.T) {
	txs := []models.Transaction{
		trx("A", models.SetOne, "100.00", "2024-01-05"),
		trx("B", models.SetTwo, "-100.00", "2024-01-05"),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := NewSelector(Limits{}).Run(ctx, NewPool(txs), []models.MatchingRule{rule("r1", 1, models.RuleTypeOneToOne)})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Groups)
}

func TestPool(t *testing.T) {
	matched := trx("M", models.SetOne, "1.00", "2024-01-01")
	matched.MatchStatus = models.MatchStatusMatched
	bad := trx("X", models.TransactionSet(3), "1.00", "2024-01-01")

	p := NewPool([]models.Transaction{
		trx("B", models.SetTwo, "-1.00", "2024-01-02"),
		trx("A", models.SetOne, "1.00", "2024-01-02"),
		matched,
		bad,
	})
	assert.Equal(t, 2, p.Len())
	assert.False(t, p.Has("M"))
	assert.False(t, p.Has("X"))

	p.Remove("A", "unknown")
	assert.Equal(t, 1, p.Len())
	assert.Empty(t, p.view(models.SetOne, models.CompareCurrencyLocal, nil))
	assert.Len(t, p.view(models.SetTwo, models.CompareCurrencyLocal, nil), 1)
	assert.Empty(t, p.view(models.SetTwo, models.CompareCurrencyForeign, nil))
}

func TestWithinTolerance(t *testing.T) {
	d := decimal.RequireFromString
	assert.True(t, WithinTolerance(d("0"), false, decimal.Zero))
	assert.True(t, WithinTolerance(d("0.004"), false, decimal.Zero))
	assert.False(t, WithinTolerance(d("0.01"), false, decimal.Zero))
	assert.True(t, WithinTolerance(d("-0.02"), true, d("0.02")))
	assert.False(t, WithinTolerance(d("0.021"), true, d("0.02")))
}
