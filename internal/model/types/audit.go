package types

import (
	"encoding/json"
	"time"
)

// AuditEvent is the message published to the audit stream on every tenant
// table mutation, later persisted as a model.AuditLog row by the consumer.
type AuditEvent struct {
	WorkspaceID string          `json:"workspace_id"`
	TableName   string          `json:"table_name"`
	RecordID    string          `json:"record_id"`
	Action      string          `json:"action"`
	BeforeData  json.RawMessage `json:"before_data,omitempty"`
	AfterData   json.RawMessage `json:"after_data,omitempty"`
	ActorID     string          `json:"actor_id"`
	ActorName   string          `json:"actor_name"`
	ActorRole   string          `json:"actor_role"`
	CreatedAt   time.Time       `json:"created_at"`
}
