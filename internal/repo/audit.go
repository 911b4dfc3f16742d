package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/repo/selector"
)

type Audit struct {
	db  *bun.DB
	sel selector.S[model.AuditLog]
}

func NewAudit(db *bun.DB) *Audit {
	return &Audit{db: db, sel: selector.New[model.AuditLog](db)}
}

func (r *Audit) CreateEntry(ctx context.Context, entry *model.AuditLog) error {
	_, err := r.db.NewInsert().
		Model(entry).
		Exec(ctx)
	return err
}

func (r *Audit) GetEntries(ctx context.Context, workspaceID string, limit int) ([]*model.AuditLog, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Order("created_at DESC").
			Limit(limit)
	})
}

// CaptureAll reads recent audit history for a snapshot, newest first,
// bounded so huge histories do not balloon the document.
func (r *Audit) CaptureAll(ctx context.Context, workspaceID string) ([]model.AuditLog, error) {
	rows := make([]model.AuditLog, 0)
	err := r.db.NewSelect().
		Model(&rows).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Limit(constant.BackupAuditCaptureLimit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
