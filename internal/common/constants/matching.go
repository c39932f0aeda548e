package constants

// Log prefixes
const (
	LogPrefixMatchingService = "[MATCHING-SERVICE]"
	LogPrefixRuleService     = "[RULE-SERVICE]"
	LogPrefixAutoMatchJob    = "[JOB-AUTO-MATCH]"
	LogPrefixDissolveJob     = "[JOB-DISSOLVE-ORPHAN-MATCHES]"
)

// Job names
const (
	JobAutoMatch             = "auto-match"
	JobDissolveOrphanMatches = "dissolve-orphan-matches"
)
