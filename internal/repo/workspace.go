package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/repo/selector"
)

type Workspace struct {
	db  *bun.DB
	sel selector.S[model.Workspace]
}

func NewWorkspace(db *bun.DB) *Workspace {
	return &Workspace{db: db, sel: selector.New[model.Workspace](db)}
}

func (r *Workspace) GetWorkspaceByID(ctx context.Context, workspaceID string) (*model.Workspace, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", workspaceID)
	})
}

func (r *Workspace) CreateWorkspace(ctx context.Context, workspace *model.Workspace) error {
	_, err := r.db.NewInsert().
		Model(workspace).
		Exec(ctx)
	return err
}
