package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/repo/selector"
)

type Agenda struct {
	db  *bun.DB
	sel selector.S[model.AgendaEntry]
}

func NewAgenda(db *bun.DB) *Agenda {
	return &Agenda{db: db, sel: selector.New[model.AgendaEntry](db)}
}

func (r *Agenda) GetEntries(ctx context.Context, workspaceID string) ([]*model.AgendaEntry, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL").
			Order("data_hora ASC")
	})
}

// GetEntriesBetween lists live entries scheduled within [from, to).
func (r *Agenda) GetEntriesBetween(ctx context.Context, workspaceID string, from, to time.Time) ([]*model.AgendaEntry, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL").
			Where("data_hora >= ?", from).
			Where("data_hora < ?", to).
			Order("data_hora ASC")
	})
}

func (r *Agenda) GetUpcoming(ctx context.Context, workspaceID string, after time.Time, limit int) ([]*model.AgendaEntry, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL").
			Where("data_hora >= ?", after).
			Order("data_hora ASC").
			Limit(limit)
	})
}

func (r *Agenda) GetEntryByID(ctx context.Context, workspaceID, id string) (*model.AgendaEntry, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id).
			Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL")
	})
}

func (r *Agenda) CreateEntry(ctx context.Context, entry *model.AgendaEntry) error {
	_, err := r.db.NewInsert().
		Model(entry).
		Exec(ctx)
	return err
}

func (r *Agenda) UpdateEntry(ctx context.Context, entry *model.AgendaEntry) error {
	_, err := r.db.NewUpdate().
		Model(entry).
		WherePK().
		Where("workspace_id = ?", entry.WorkspaceID).
		Exec(ctx)
	return err
}

func (r *Agenda) SoftDeleteEntry(ctx context.Context, workspaceID, id string, deletion *model.Deletion) error {
	return softDelete(ctx, r.db, (*model.AgendaEntry)(nil), workspaceID, id, deletion)
}

func (r *Agenda) CaptureAll(ctx context.Context, workspaceID string) ([]model.AgendaEntry, error) {
	rows := make([]model.AgendaEntry, 0)
	err := r.db.NewSelect().
		Model(&rows).
		Where("workspace_id = ?", workspaceID).
		Order("data_hora ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Agenda) UpsertEntries(ctx context.Context, entries []model.AgendaEntry) error {
	_, err := r.db.NewInsert().
		On("CONFLICT (id) DO UPDATE").
		Model(&entries).
		Exec(ctx)
	return err
}
