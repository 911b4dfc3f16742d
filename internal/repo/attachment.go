package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/repo/selector"
)

type Attachment struct {
	db  *bun.DB
	sel selector.S[model.VisitAttachment]
}

func NewAttachment(db *bun.DB) *Attachment {
	return &Attachment{db: db, sel: selector.New[model.VisitAttachment](db)}
}

func (r *Attachment) GetAttachmentsByVisitID(ctx context.Context, workspaceID, visitID string) ([]*model.VisitAttachment, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("atendimento_id = ?", visitID).
			Where("deleted_at IS NULL").
			Order("created_at DESC")
	})
}

func (r *Attachment) GetAttachmentByID(ctx context.Context, workspaceID, id string) (*model.VisitAttachment, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id).
			Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL")
	})
}

func (r *Attachment) CreateAttachment(ctx context.Context, attachment *model.VisitAttachment) error {
	_, err := r.db.NewInsert().
		Model(attachment).
		Exec(ctx)
	return err
}

func (r *Attachment) SoftDeleteAttachment(ctx context.Context, workspaceID, id string, deletion *model.Deletion) error {
	return softDelete(ctx, r.db, (*model.VisitAttachment)(nil), workspaceID, id, deletion)
}

func (r *Attachment) CaptureAll(ctx context.Context, workspaceID string) ([]model.VisitAttachment, error) {
	rows := make([]model.VisitAttachment, 0)
	err := r.db.NewSelect().
		Model(&rows).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Attachment) UpsertAttachments(ctx context.Context, attachments []model.VisitAttachment) error {
	_, err := r.db.NewInsert().
		On("CONFLICT (id) DO UPDATE").
		Model(&attachments).
		Exec(ctx)
	return err
}
