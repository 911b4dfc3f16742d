package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/repo/selector"
)

type Tutor struct {
	db  *bun.DB
	sel selector.S[model.Tutor]
}

func NewTutor(db *bun.DB) *Tutor {
	return &Tutor{db: db, sel: selector.New[model.Tutor](db)}
}

func (r *Tutor) GetTutors(ctx context.Context, workspaceID string) ([]*model.Tutor, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL").
			Order("nome ASC")
	})
}

func (r *Tutor) GetTutorByID(ctx context.Context, workspaceID, id string) (*model.Tutor, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id).
			Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL")
	})
}

func (r *Tutor) CreateTutor(ctx context.Context, tutor *model.Tutor) error {
	_, err := r.db.NewInsert().
		Model(tutor).
		Exec(ctx)
	return err
}

func (r *Tutor) UpdateTutor(ctx context.Context, tutor *model.Tutor) error {
	_, err := r.db.NewUpdate().
		Model(tutor).
		WherePK().
		Where("workspace_id = ?", tutor.WorkspaceID).
		Exec(ctx)
	return err
}

func (r *Tutor) SoftDeleteTutor(ctx context.Context, workspaceID, id string, deletion *model.Deletion) error {
	return softDelete(ctx, r.db, (*model.Tutor)(nil), workspaceID, id, deletion)
}

// CaptureAll reads the full table unfiltered on deleted_at, so a snapshot
// carries soft-deleted rows too.
func (r *Tutor) CaptureAll(ctx context.Context, workspaceID string) ([]model.Tutor, error) {
	rows := make([]model.Tutor, 0)
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

func (r *Tutor) UpsertTutors(ctx context.Context, tutors []model.Tutor) error {
	_, err := r.db.NewInsert().
		On("CONFLICT (id) DO UPDATE").
		Model(&tutors).
		Exec(ctx)
	return err
}
