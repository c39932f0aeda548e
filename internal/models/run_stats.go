package models

// RunStats is the result of one selection pass. Apart from DurationMs it is
// identical for repeated runs over an unchanged pool.
type RunStats struct {
	TotalMatches      int         `json:"totalMatches"`
	TotalTransactions int         `json:"totalTransactions"`
	ByRule            []RuleStats `json:"byRule"`
	DurationMs        int64       `json:"durationMs"`
}

type RuleStats struct {
	RuleID           string   `json:"ruleId"`
	RuleName         string   `json:"ruleName"`
	RuleType         RuleType `json:"ruleType"`
	MatchCount       int      `json:"matchCount"`
	TransactionCount int      `json:"transactionCount"`
	SkippedBuckets   int      `json:"skippedBuckets"`
}

// MatchNotification is published after a successful auto commit.
type MatchNotification struct {
	ClientID         string `json:"clientId"`
	MatchCount       int    `json:"matchCount"`
	TransactionCount int    `json:"transactionCount"`
}
