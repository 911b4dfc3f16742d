package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/repo/selector"
)

type Backup struct {
	db  *bun.DB
	sel selector.S[model.WorkspaceBackup]
}

func NewBackup(db *bun.DB) *Backup {
	return &Backup{db: db, sel: selector.New[model.WorkspaceBackup](db)}
}

func (r *Backup) CreateBackup(ctx context.Context, backup *model.WorkspaceBackup) error {
	_, err := r.db.NewInsert().
		Model(backup).
		Exec(ctx)
	return err
}

// GetBackups lists the most recent records without their payloads, which can
// be large.
func (r *Backup) GetBackups(ctx context.Context, workspaceID string) ([]*model.WorkspaceBackup, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Column("id", "workspace_id", "file_name", "checksum_sha256", "created_at", "created_by").
			Where("workspace_id = ?", workspaceID).
			Order("created_at DESC").
			Limit(constant.BackupListLimit)
	})
}

func (r *Backup) GetBackupByID(ctx context.Context, workspaceID, id string) (*model.WorkspaceBackup, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id).
			Where("workspace_id = ?", workspaceID)
	})
}
