package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/repo/selector"
)

type Vaccine struct {
	db  *bun.DB
	sel selector.S[model.Vaccine]
}

func NewVaccine(db *bun.DB) *Vaccine {
	return &Vaccine{db: db, sel: selector.New[model.Vaccine](db)}
}

func (r *Vaccine) GetVaccines(ctx context.Context, workspaceID string) ([]*model.Vaccine, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL").
			Order("data_aplicacao DESC")
	})
}

func (r *Vaccine) GetVaccinesByPetID(ctx context.Context, workspaceID, petID string) ([]*model.Vaccine, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("pet_id = ?", petID).
			Where("deleted_at IS NULL").
			Order("data_aplicacao DESC")
	})
}

func (r *Vaccine) GetVaccineByID(ctx context.Context, workspaceID, id string) (*model.Vaccine, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id).
			Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL")
	})
}

func (r *Vaccine) CreateVaccine(ctx context.Context, vaccine *model.Vaccine) error {
	_, err := r.db.NewInsert().
		Model(vaccine).
		Exec(ctx)
	return err
}

func (r *Vaccine) UpdateVaccine(ctx context.Context, vaccine *model.Vaccine) error {
	_, err := r.db.NewUpdate().
		Model(vaccine).
		WherePK().
		Where("workspace_id = ?", vaccine.WorkspaceID).
		Exec(ctx)
	return err
}

func (r *Vaccine) SoftDeleteVaccine(ctx context.Context, workspaceID, id string, deletion *model.Deletion) error {
	return softDelete(ctx, r.db, (*model.Vaccine)(nil), workspaceID, id, deletion)
}

func (r *Vaccine) CaptureAll(ctx context.Context, workspaceID string) ([]model.Vaccine, error) {
	rows := make([]model.Vaccine, 0)
	err := r.db.NewSelect().
		Model(&rows).
		Where("workspace_id = ?", workspaceID).
		Order("data_aplicacao DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Vaccine) UpsertVaccines(ctx context.Context, vaccines []model.Vaccine) error {
	_, err := r.db.NewInsert().
		On("CONFLICT (id) DO UPDATE").
		Model(&vaccines).
		Exec(ctx)
	return err
}
