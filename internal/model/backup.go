package model

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

// WorkspaceBackup is a stored snapshot of all tenant tables of one workspace.
// Payload holds the full serialized backup document.
type WorkspaceBackup struct {
	bun.BaseModel `bun:"workspace_backups"`

	ID             string          `bun:"id,pk" json:"id"`
	WorkspaceID    string          `bun:"workspace_id" json:"workspace_id"`
	FileName       string          `bun:"file_name" json:"file_name"`
	ChecksumSha256 string          `bun:"checksum_sha256" json:"checksum_sha256"`
	Payload        json.RawMessage `bun:"payload,type:jsonb" json:"-" swaggertype:"object"`
	CreatedAt      time.Time       `bun:"created_at" json:"created_at"`
	CreatedBy      string          `bun:"created_by" json:"created_by"`
}
