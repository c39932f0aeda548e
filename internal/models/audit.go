package models

import (
	"encoding/json"
	"time"
)

const (
	AuditActionAutoMatchCommit   = "auto_match.commit"
	AuditActionManualMatchCreate = "manual_match.create"
	AuditActionUnmatchMatch      = "unmatch.match"
	AuditActionUnmatchAll        = "unmatch.all"
	AuditActionUnmatchDetach     = "unmatch.transaction"
	AuditActionDissolveOrphans   = "unmatch.dissolve_orphans"

	AuditEntityMatch       = "match"
	AuditEntityClient      = "client"
	AuditEntityTransaction = "transaction"
)

type AuditEntry struct {
	TenantID   string
	UserID     *string
	Action     string
	EntityType string
	EntityID   *string
	Metadata   map[string]any
	CreatedAt  *time.Time
}

func (a AuditEntry) MetadataJSON() ([]byte, error) {
	if a.Metadata == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a.Metadata)
}
