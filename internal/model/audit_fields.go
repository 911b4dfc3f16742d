package model

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// AuditFields is the authorship and soft-deletion footer shared by all tenant
// tables. Embedded structs are flattened into the owning table by bun.
type AuditFields struct {
	CreatedAt     time.Time   `bun:"created_at" json:"created_at"`
	CreatedBy     string      `bun:"created_by" json:"created_by"`
	CreatedByName string      `bun:"created_by_name" json:"created_by_name"`
	UpdatedAt     time.Time   `bun:"updated_at" json:"updated_at"`
	UpdatedBy     string      `bun:"updated_by" json:"updated_by"`
	UpdatedByName string      `bun:"updated_by_name" json:"updated_by_name"`
	DeletedAt     null.Time   `bun:"deleted_at" json:"deleted_at"`
	DeletedBy     null.String `bun:"deleted_by" json:"deleted_by"`
	DeletedByName null.String `bun:"deleted_by_name" json:"deleted_by_name"`
}
