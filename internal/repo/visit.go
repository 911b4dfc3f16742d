package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/repo/selector"
)

type Visit struct {
	db  *bun.DB
	sel selector.S[model.Visit]
}

func NewVisit(db *bun.DB) *Visit {
	return &Visit{db: db, sel: selector.New[model.Visit](db)}
}

func (r *Visit) GetVisits(ctx context.Context, workspaceID string) ([]*model.Visit, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL").
			Order("updated_at DESC")
	})
}

func (r *Visit) GetVisitsByPetID(ctx context.Context, workspaceID, petID string) ([]*model.Visit, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("pet_id = ?", petID).
			Where("deleted_at IS NULL").
			Order("created_at DESC")
	})
}

func (r *Visit) GetVisitByID(ctx context.Context, workspaceID, id string) (*model.Visit, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id).
			Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL")
	})
}

func (r *Visit) CreateVisit(ctx context.Context, visit *model.Visit) error {
	_, err := r.db.NewInsert().
		Model(visit).
		Exec(ctx)
	return err
}

func (r *Visit) UpdateVisit(ctx context.Context, visit *model.Visit) error {
	_, err := r.db.NewUpdate().
		Model(visit).
		WherePK().
		Where("workspace_id = ?", visit.WorkspaceID).
		Exec(ctx)
	return err
}

func (r *Visit) SoftDeleteVisit(ctx context.Context, workspaceID, id string, deletion *model.Deletion) error {
	return softDelete(ctx, r.db, (*model.Visit)(nil), workspaceID, id, deletion)
}

func (r *Visit) CaptureAll(ctx context.Context, workspaceID string) ([]model.Visit, error) {
	rows := make([]model.Visit, 0)
	err := r.db.NewSelect().
		Model(&rows).
		Where("workspace_id = ?", workspaceID).
		Order("updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Visit) UpsertVisits(ctx context.Context, visits []model.Visit) error {
	_, err := r.db.NewInsert().
		On("CONFLICT (id) DO UPDATE").
		Model(&visits).
		Exec(ctx)
	return err
}
