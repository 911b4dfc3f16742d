package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/repo/selector"
)

type Finance struct {
	db  *bun.DB
	sel selector.S[model.FinanceEntry]
}

func NewFinance(db *bun.DB) *Finance {
	return &Finance{db: db, sel: selector.New[model.FinanceEntry](db)}
}

func (r *Finance) GetEntries(ctx context.Context, workspaceID string) ([]*model.FinanceEntry, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL").
			Order("data_competencia DESC")
	})
}

func (r *Finance) GetEntriesByStatus(ctx context.Context, workspaceID, status string) ([]*model.FinanceEntry, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("status = ?", status).
			Where("deleted_at IS NULL").
			Order("data_competencia DESC")
	})
}

func (r *Finance) GetEntryByID(ctx context.Context, workspaceID, id string) (*model.FinanceEntry, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id).
			Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL")
	})
}

func (r *Finance) CreateEntry(ctx context.Context, entry *model.FinanceEntry) error {
	_, err := r.db.NewInsert().
		Model(entry).
		Exec(ctx)
	return err
}

func (r *Finance) UpdateEntry(ctx context.Context, entry *model.FinanceEntry) error {
	_, err := r.db.NewUpdate().
		Model(entry).
		WherePK().
		Where("workspace_id = ?", entry.WorkspaceID).
		Exec(ctx)
	return err
}

func (r *Finance) SoftDeleteEntry(ctx context.Context, workspaceID, id string, deletion *model.Deletion) error {
	return softDelete(ctx, r.db, (*model.FinanceEntry)(nil), workspaceID, id, deletion)
}

func (r *Finance) CaptureAll(ctx context.Context, workspaceID string) ([]model.FinanceEntry, error) {
	rows := make([]model.FinanceEntry, 0)
	err := r.db.NewSelect().
		Model(&rows).
		Where("workspace_id = ?", workspaceID).
		Order("data_competencia DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Finance) UpsertEntries(ctx context.Context, entries []model.FinanceEntry) error {
	_, err := r.db.NewInsert().
		On("CONFLICT (id) DO UPDATE").
		Model(&entries).
		Exec(ctx)
	return err
}
