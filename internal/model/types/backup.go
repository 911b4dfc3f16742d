package types

import (
	"time"

	"github.com/vetbase/backend/internal/model"
)

// BackupMeta identifies who took a snapshot, of which workspace, and which
// document schema version it follows.
type BackupMeta struct {
	WorkspaceID string    `json:"workspace_id"`
	GeneratedAt time.Time `json:"generated_at"`
	GeneratedBy string    `json:"generated_by"`
	Version     int       `json:"version"`
}

// BackupTables holds one ordered row sequence per tenant table. Key names are
// part of the persisted document format and must never change.
type BackupTables struct {
	Profiles         []model.Profile         `json:"profiles"`
	Tutors           []model.Tutor           `json:"tutores"`
	Pets             []model.Pet             `json:"pets"`
	Agenda           []model.AgendaEntry     `json:"agenda"`
	Visits           []model.Visit           `json:"atendimentos"`
	Vaccines         []model.Vaccine         `json:"vacinas"`
	FinanceEntries   []model.FinanceEntry    `json:"financeiro"`
	InventoryItems   []model.InventoryItem   `json:"estoque_itens"`
	VisitAttachments []model.VisitAttachment `json:"atendimento_attachments"`
	AuditLog         []model.AuditLog        `json:"audit_log"`
}

// BackupDocument is the unit of transfer and storage of a workspace snapshot.
type BackupDocument struct {
	Meta      BackupMeta      `json:"meta"`
	Workspace model.Workspace `json:"workspace"`
	Tables    BackupTables    `json:"tables"`
}

// BackupDownload is the response of fetching a stored backup for export.
type BackupDownload struct {
	FileName string `json:"fileName"`
	Checksum string `json:"checksum"`
	Content  string `json:"content"`
}

// RestoreReport is the per-table outcome of a successful restore. Restored
// includes zero counts for tables whose row sequence was empty.
type RestoreReport struct {
	Message  string         `json:"message"`
	Restored map[string]int `json:"restored"`
}

// BackupDiff is a binary patch between the serialized payloads of two stored
// backups of the same workspace.
type BackupDiff struct {
	FromID string `json:"fromId"`
	ToID   string `json:"toId"`
	Patch  []byte `json:"patch" swaggertype:"string" format:"base64"`
}
