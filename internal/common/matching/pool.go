// Package matching finds groups of transactions that net to zero.
//
// A run loads one client's unmatched transactions into a Pool, then a
// Selector walks the active rules in priority order. Each rule gets a
// Generator that lazily yields Candidates in a fixed order, and the Selector
// accepts every candidate whose members are still free. Nothing in this
// package touches storage.
package matching

import (
	"cmp"

	"bitbucket.org/Amartha/go-recon-matching/internal/common"
	"bitbucket.org/Amartha/go-recon-matching/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

const secondsPerDay = 24 * 60 * 60

type poolItem struct {
	id      string
	set     models.TransactionSet
	day     int64
	amount  decimal.Decimal
	foreign decimal.NullDecimal
}

// entry is a pool item seen through one currency view.
type entry struct {
	id     string
	set    models.TransactionSet
	day    int64
	cents  int64
	amount decimal.Decimal
}

// Pool is the working set of unmatched transactions of one client. It is
// owned by a single run and is not safe for concurrent use.
type Pool struct {
	items map[string]poolItem
	order []string
}

// NewPool keeps the unmatched transactions of a valid set. Matched ones are
// ignored even if the caller passed them in.
func NewPool(txs []models.Transaction) *Pool {
	p := &Pool{items: make(map[string]poolItem, len(txs))}
	for _, t := range txs {
		if t.IsMatched() || !t.Set.Valid() {
			continue
		}
		p.items[t.ID] = poolItem{
			id:      t.ID,
			set:     t.Set,
			day:     common.TruncateToDay(t.Date).Unix() / secondsPerDay,
			amount:  t.Amount,
			foreign: t.ForeignAmount,
		}
		p.order = append(p.order, t.ID)
	}

	slices.SortFunc(p.order, func(a, b string) int {
		ia, ib := p.items[a], p.items[b]
		if c := cmp.Compare(ia.day, ib.day); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return p
}

func (p *Pool) Len() int {
	return len(p.items)
}

func (p *Pool) Has(id string) bool {
	_, ok := p.items[id]
	return ok
}

// Remove drops ids from the pool. Unknown ids are ignored.
func (p *Pool) Remove(ids ...string) {
	if len(ids) == 0 {
		return
	}
	for _, id := range ids {
		delete(p.items, id)
	}
	kept := p.order[:0]
	for _, id := range p.order {
		if _, ok := p.items[id]; ok {
			kept = append(kept, id)
		}
	}
	p.order = kept
}

// view returns the entries of one set ordered by (day, id). Items without
// a foreign amount are left out of the foreign view.
func (p *Pool) view(set models.TransactionSet, cc models.CompareCurrency, skip func(string) bool) []entry {
	var out []entry
	for _, id := range p.order {
		it := p.items[id]
		if it.set != set || (skip != nil && skip(id)) {
			continue
		}

		amount := it.amount
		if cc == models.CompareCurrencyForeign {
			if !it.foreign.Valid {
				continue
			}
			amount = it.foreign.Decimal
		}

		out = append(out, entry{
			id:     id,
			set:    it.set,
			day:    it.day,
			cents:  common.ToCents(amount),
			amount: amount,
		})
	}
	return out
}
