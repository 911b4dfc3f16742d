package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// VisitAttachment is the metadata row of a file attached to a visit. The
// bytes themselves live in object storage under FilePath.
type VisitAttachment struct {
	bun.BaseModel `bun:"atendimento_attachments"`

	ID          string      `bun:"id,pk" json:"id"`
	WorkspaceID string      `bun:"workspace_id" json:"workspace_id"`
	VisitID     string      `bun:"atendimento_id" json:"atendimento_id"`
	FileName    string      `bun:"file_name" json:"file_name"`
	FilePath    string      `bun:"file_path" json:"file_path"`
	MimeType    null.String `bun:"mime_type" json:"mime_type"`
	SizeBytes   null.Int    `bun:"size_bytes" json:"size_bytes"`

	AuditFields
}
