package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/repo/selector"
)

type Pet struct {
	db  *bun.DB
	sel selector.S[model.Pet]
}

func NewPet(db *bun.DB) *Pet {
	return &Pet{db: db, sel: selector.New[model.Pet](db)}
}

func (r *Pet) GetPets(ctx context.Context, workspaceID string) ([]*model.Pet, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL").
			Order("nome ASC")
	})
}

func (r *Pet) GetPetsByTutorID(ctx context.Context, workspaceID, tutorID string) ([]*model.Pet, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("tutor_id = ?", tutorID).
			Where("deleted_at IS NULL").
			Order("nome ASC")
	})
}

func (r *Pet) GetPetByID(ctx context.Context, workspaceID, id string) (*model.Pet, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id).
			Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL")
	})
}

func (r *Pet) CreatePet(ctx context.Context, pet *model.Pet) error {
	_, err := r.db.NewInsert().
		Model(pet).
		Exec(ctx)
	return err
}

func (r *Pet) UpdatePet(ctx context.Context, pet *model.Pet) error {
	_, err := r.db.NewUpdate().
		Model(pet).
		WherePK().
		Where("workspace_id = ?", pet.WorkspaceID).
		Exec(ctx)
	return err
}

func (r *Pet) SoftDeletePet(ctx context.Context, workspaceID, id string, deletion *model.Deletion) error {
	return softDelete(ctx, r.db, (*model.Pet)(nil), workspaceID, id, deletion)
}

func (r *Pet) CaptureAll(ctx context.Context, workspaceID string) ([]model.Pet, error) {
	rows := make([]model.Pet, 0)
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

func (r *Pet) UpsertPets(ctx context.Context, pets []model.Pet) error {
	_, err := r.db.NewInsert().
		On("CONFLICT (id) DO UPDATE").
		Model(&pets).
		Exec(ctx)
	return err
}
