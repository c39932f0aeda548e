package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"bitbucket.org/Amartha/go-recon-matching/internal/models"
)

// actorRef maps the system actor (empty id) to NULL.
func actorRef(actorID string) *string {
	if actorID == "" {
		return nil
	}
	return &actorID
}

func sumAmounts(txs []models.Transaction) decimal.Decimal {
	net := decimal.Zero
	for _, t := range txs {
		net = net.Add(t.Amount)
	}
	return net
}

func missingIDs(want []string, got []models.Transaction) []string {
	found := make(map[string]struct{}, len(got))
	for _, t := range got {
		found[strings.ToLower(t.ID)] = struct{}{}
	}

	var missing []string
	for _, id := range want {
		if _, ok := found[strings.ToLower(id)]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func membersByMatch(txs []models.Transaction) map[string][]string {
	index := make(map[string][]string)
	for _, t := range txs {
		if t.MatchID == nil {
			continue
		}
		index[*t.MatchID] = append(index[*t.MatchID], t.ID)
	}
	return index
}
