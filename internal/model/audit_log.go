package model

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type AuditLog struct {
	bun.BaseModel `bun:"audit_log"`

	ID          string          `bun:"id,pk" json:"id"`
	WorkspaceID string          `bun:"workspace_id" json:"workspace_id"`
	TableName   string          `bun:"table_name" json:"table_name"`
	RecordID    string          `bun:"record_id" json:"record_id"`
	Action      string          `bun:"action" json:"action"`
	BeforeData  json.RawMessage `bun:"before_data,type:jsonb" json:"before_data" swaggertype:"object"`
	AfterData   json.RawMessage `bun:"after_data,type:jsonb" json:"after_data" swaggertype:"object"`
	ActorID     null.String     `bun:"actor_id" json:"actor_id"`
	ActorName   null.String     `bun:"actor_name" json:"actor_name"`
	ActorRole   null.String     `bun:"actor_role" json:"actor_role"`
	CreatedAt   time.Time       `bun:"created_at" json:"created_at"`
}
