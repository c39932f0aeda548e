package matching

import (
	"cmp"
	"fmt"
	"iter"
	"sort"

	"bitbucket.org/Amartha/go-recon-matching/internal/models"

	"golang.org/x/exp/slices"
)

const (
	DefaultMaxGroupSideSize = 6
	DefaultMaxBucketSize    = 32
)

// Limits bound the subset search. MaxGroupSideSize caps the members drawn
// from one side of a group, MaxBucketSize caps how many transactions a date
// bucket may hold before N:1 and N:N search skips it.
type Limits struct {
	MaxGroupSideSize int
	MaxBucketSize    int
}

func (l Limits) normalize() Limits {
	if l.MaxGroupSideSize <= 0 {
		l.MaxGroupSideSize = DefaultMaxGroupSideSize
	}
	if l.MaxBucketSize <= 0 {
		l.MaxBucketSize = DefaultMaxBucketSize
	}
	if l.MaxBucketSize > maxBucketBits {
		l.MaxBucketSize = maxBucketBits
	}
	return l
}

// Generator enumerates the candidates of one rule over one pool.
type Generator struct {
	pool     *Pool
	rule     models.MatchingRule
	limits   Limits
	consumed func(id string) bool
	stop     func() bool
	tolCents int64
	skipped  map[string]struct{}
}

type GeneratorOption func(*Generator)

// WithConsumed hides transactions the caller already claimed. The
// generator only reads it.
func WithConsumed(fn func(id string) bool) GeneratorOption {
	return func(g *Generator) {
		g.consumed = fn
	}
}

// WithStop ends the enumeration early once fn returns true.
func WithStop(fn func() bool) GeneratorOption {
	return func(g *Generator) {
		g.stop = fn
	}
}

func NewGenerator(pool *Pool, rule models.MatchingRule, limits Limits, opts ...GeneratorOption) *Generator {
	g := &Generator{
		pool:     pool,
		rule:     rule,
		limits:   limits.normalize(),
		tolCents: ruleToleranceCents(rule),
		skipped:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SkippedBuckets is the number of distinct buckets left unsearched because
// they exceeded MaxBucketSize.
func (g *Generator) SkippedBuckets() int {
	return len(g.skipped)
}

// Candidates yields every candidate of the rule ordered by member count,
// earliest member (date, id), absolute net and member ids. Each member count
// is enumerated only when the previous one is exhausted, so transactions
// consumed in between are no longer offered.
func (g *Generator) Candidates() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		maxSize := g.maxGroupSize()
		for size := 2; size <= maxSize; size++ {
			if g.stopped() {
				return
			}
			batch := g.candidatesOfSize(size)
			slices.SortFunc(batch, compareCandidates)
			for _, c := range batch {
				if !yield(c) {
					return
				}
			}
		}
	}
}

func (g *Generator) maxGroupSize() int {
	side := g.limits.MaxGroupSideSize
	switch g.rule.RuleType {
	case models.RuleTypeOneToOne:
		return 2
	case models.RuleTypeManyToOne:
		return side + 1
	case models.RuleTypeManyToMany:
		if g.rule.IsInternal {
			return side
		}
		return 2 * side
	default:
		return 0
	}
}

func (g *Generator) candidatesOfSize(size int) []Candidate {
	c := &collector{rule: g.rule, seen: make(map[string]struct{})}
	switch g.rule.RuleType {
	case models.RuleTypeOneToOne:
		g.pairs(c)
	case models.RuleTypeManyToOne:
		g.anchored(size-1, c)
	case models.RuleTypeManyToMany:
		if g.rule.IsInternal {
			g.internalGroups(size, c)
		} else {
			g.crossGroups(size, c)
		}
	}
	return c.out
}

func (g *Generator) stopped() bool {
	return g.stop != nil && g.stop()
}

func (g *Generator) view(set models.TransactionSet) []entry {
	return g.pool.view(set, g.rule.CompareCurrency, g.consumed)
}

func (g *Generator) dateTolerance() (days int64, dated bool) {
	if !g.rule.DateMustMatch {
		return 0, false
	}
	return int64(max(g.rule.DateToleranceDays, 0)), true
}

// directions lists (anchor set, subset set) pairs.
func (g *Generator) directions() [][2]models.TransactionSet {
	if g.rule.IsInternal {
		return [][2]models.TransactionSet{{models.SetOne, models.SetOne}, {models.SetTwo, models.SetTwo}}
	}
	return [][2]models.TransactionSet{{models.SetOne, models.SetTwo}, {models.SetTwo, models.SetOne}}
}

func (g *Generator) skip(key string) {
	g.skipped[key] = struct{}{}
}

// pairs finds 1:1 groups. No bucket limit applies, the search is a range
// lookup over amounts.
func (g *Generator) pairs(c *collector) {
	days, dated := g.dateTolerance()
	tol := g.tolCents
	dateOK := func(a, b entry) bool {
		return !dated || absInt64(a.day-b.day) <= days
	}

	if g.rule.IsInternal {
		for _, set := range []models.TransactionSet{models.SetOne, models.SetTwo} {
			byCents := sortedByCents(g.view(set))
			for i, a := range byCents {
				rest := byCents[i+1:]
				for j := lowerBoundCents(rest, -a.cents-tol); j < len(rest) && rest[j].cents <= -a.cents+tol; j++ {
					if dateOK(a, rest[j]) {
						c.add(a, rest[j])
					}
				}
			}
		}
		return
	}

	right := sortedByCents(g.view(models.SetTwo))
	for _, a := range g.view(models.SetOne) {
		for j := lowerBoundCents(right, -a.cents-tol); j < len(right) && right[j].cents <= -a.cents+tol; j++ {
			if dateOK(a, right[j]) {
				c.add(a, right[j])
			}
		}
	}
}

// anchored finds N:1 groups: one anchor plus a k-subset of the other side
// (or of the same side when internal) dated within tolerance of the anchor.
func (g *Generator) anchored(k int, c *collector) {
	if k < 1 || k > g.limits.MaxGroupSideSize {
		return
	}
	days, dated := g.dateTolerance()
	tol := g.tolCents

	for _, dir := range g.directions() {
		anchors := g.view(dir[0])
		others := g.view(dir[1])
		for _, a := range anchors {
			if g.stopped() {
				return
			}

			bucket := others
			if dated {
				bucket = dayRange(others, a.day-days, a.day+days)
			}
			if dir[0] == dir[1] {
				bucket = without(bucket, a.id)
			}
			if len(bucket) > g.limits.MaxBucketSize {
				g.skip(fmt.Sprintf("n1:%d:%s", dir[0], a.id))
				continue
			}
			if len(bucket) < k {
				continue
			}

			sorted := sortedByCents(bucket)
			searchSubsets(centsOf(sorted), k, -a.cents-tol, -a.cents+tol, func(mask uint64, _ int64) {
				members := append([]entry{a}, pick(sorted, mask)...)
				c.add(members...)
			})
		}
	}
}

// crossGroups finds N:N groups with members on both sides. Each side holds
// 1..MaxGroupSideSize members and all members fall in one date window.
func (g *Generator) crossGroups(size int, c *collector) {
	side := g.limits.MaxGroupSideSize
	tol := g.tolCents

	for _, w := range g.windows("nn", g.view(models.SetOne), g.view(models.SetTwo)) {
		if g.stopped() {
			return
		}
		left, right := w.parts[0], w.parts[1]
		if len(left)+len(right) > g.limits.MaxBucketSize {
			g.skip(w.key)
			continue
		}
		ls, rs := sortedByCents(left), sortedByCents(right)

		for a := 1; a <= side && a < size; a++ {
			b := size - a
			if b > side || a > len(ls) || b > len(rs) {
				continue
			}

			// build the lookup table on the side with fewer subsets
			probe, probeK, table, tableK := ls, a, rs, b
			if binomial(len(rs), b) > binomial(len(ls), a) {
				probe, probeK, table, tableK = rs, b, ls, a
			}
			sums := subsetSums(centsOf(table), tableK)
			if len(sums) == 0 {
				continue
			}

			lo := -sums[len(sums)-1].sum - tol
			hi := -sums[0].sum + tol
			searchSubsets(centsOf(probe), probeK, lo, hi, func(mask uint64, sum int64) {
				for i := lowerBoundSum(sums, -sum-tol); i < len(sums) && sums[i].sum <= -sum+tol; i++ {
					members := append(pick(probe, mask), pick(table, sums[i].mask)...)
					if w.anchored && !touchesDay(members, w.day) {
						continue
					}
					c.add(members...)
				}
			})
		}
	}
}

// internalGroups finds N:N groups drawn from a single set.
func (g *Generator) internalGroups(size int, c *collector) {
	if size > g.limits.MaxGroupSideSize {
		return
	}
	tol := g.tolCents

	for _, set := range []models.TransactionSet{models.SetOne, models.SetTwo} {
		for _, w := range g.windows(fmt.Sprintf("nn%d", set), g.view(set)) {
			if g.stopped() {
				return
			}
			entries := w.parts[0]
			if len(entries) > g.limits.MaxBucketSize {
				g.skip(w.key)
				continue
			}
			if len(entries) < size {
				continue
			}

			sorted := sortedByCents(entries)
			searchSubsets(centsOf(sorted), size, -tol, tol, func(mask uint64, _ int64) {
				members := pick(sorted, mask)
				if w.anchored && !touchesDay(members, w.day) {
					return
				}
				c.add(members...)
			})
		}
	}
}

type window struct {
	key      string
	day      int64
	anchored bool
	parts    [][]entry
}

// windows splits day-ordered sides into [d, d+tolerance] windows, one per
// distinct day d. A group belongs to the window of its earliest day, so the
// caller keeps only groups touching d. Without a date rule everything is one
// window.
func (g *Generator) windows(prefix string, sides ...[]entry) []window {
	days, dated := g.dateTolerance()
	if !dated {
		return []window{{key: prefix + ":all", parts: sides}}
	}

	var starts []int64
	for _, s := range sides {
		for _, e := range s {
			starts = append(starts, e.day)
		}
	}
	slices.Sort(starts)
	starts = slices.Compact(starts)

	out := make([]window, 0, len(starts))
	for _, d := range starts {
		w := window{key: fmt.Sprintf("%s:%d", prefix, d), day: d, anchored: true}
		for _, s := range sides {
			w.parts = append(w.parts, dayRange(s, d, d+days))
		}
		out = append(out, w)
	}
	return out
}

type collector struct {
	rule models.MatchingRule
	seen map[string]struct{}
	out  []Candidate
}

// add keeps a group once per enumeration and re-checks the amount policy on
// the exact decimal net.
func (c *collector) add(members ...entry) {
	cand := newCandidate(c.rule.ID, members)
	if _, dup := c.seen[cand.key]; dup {
		return
	}
	c.seen[cand.key] = struct{}{}
	if !WithinTolerance(cand.Net, c.rule.AllowTolerance, c.rule.ToleranceAmount) {
		return
	}
	c.out = append(c.out, cand)
}

type subsetSum struct {
	mask uint64
	sum  int64
}

func subsetSums(vals []int64, k int) []subsetSum {
	var out []subsetSum
	var lo, hi int64
	for _, v := range vals {
		if v < 0 {
			lo += v
		} else {
			hi += v
		}
	}
	searchSubsets(vals, k, lo, hi, func(mask uint64, sum int64) {
		out = append(out, subsetSum{mask: mask, sum: sum})
	})
	slices.SortFunc(out, func(a, b subsetSum) int {
		if c := cmp.Compare(a.sum, b.sum); c != 0 {
			return c
		}
		return cmp.Compare(a.mask, b.mask)
	})
	return out
}

func lowerBoundSum(sums []subsetSum, target int64) int {
	return sort.Search(len(sums), func(i int) bool { return sums[i].sum >= target })
}

func lowerBoundCents(es []entry, target int64) int {
	return sort.Search(len(es), func(i int) bool { return es[i].cents >= target })
}

// dayRange returns the entries of a day-ordered slice with from <= day <= to.
func dayRange(es []entry, from, to int64) []entry {
	lo := sort.Search(len(es), func(i int) bool { return es[i].day >= from })
	hi := sort.Search(len(es), func(i int) bool { return es[i].day > to })
	return es[lo:hi]
}

func sortedByCents(es []entry) []entry {
	out := slices.Clone(es)
	slices.SortFunc(out, func(a, b entry) int {
		if c := cmp.Compare(a.cents, b.cents); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	return out
}

func centsOf(es []entry) []int64 {
	out := make([]int64, len(es))
	for i, e := range es {
		out[i] = e.cents
	}
	return out
}

func pick(es []entry, mask uint64) []entry {
	idx := maskIndexes(mask)
	out := make([]entry, len(idx))
	for i, j := range idx {
		out[i] = es[j]
	}
	return out
}

func without(es []entry, id string) []entry {
	out := make([]entry, 0, len(es))
	for _, e := range es {
		if e.id != id {
			out = append(out, e)
		}
	}
	return out
}

func touchesDay(es []entry, day int64) bool {
	for _, e := range es {
		if e.day == day {
			return true
		}
	}
	return false
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// binomial approximates n choose k for picking the cheaper side.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}
