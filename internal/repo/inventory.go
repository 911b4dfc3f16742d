package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/repo/selector"
)

type Inventory struct {
	db  *bun.DB
	sel selector.S[model.InventoryItem]
}

func NewInventory(db *bun.DB) *Inventory {
	return &Inventory{db: db, sel: selector.New[model.InventoryItem](db)}
}

func (r *Inventory) GetItems(ctx context.Context, workspaceID string) ([]*model.InventoryItem, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL").
			Order("nome ASC")
	})
}

// GetItemsByQuantity lists live items with the scarcest first, feeding the
// low-stock panel of the dashboard.
func (r *Inventory) GetItemsByQuantity(ctx context.Context, workspaceID string, limit int) ([]*model.InventoryItem, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL").
			Order("quantidade_atual ASC").
			Limit(limit)
	})
}

func (r *Inventory) GetItemByID(ctx context.Context, workspaceID, id string) (*model.InventoryItem, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id).
			Where("workspace_id = ?", workspaceID).
			Where("deleted_at IS NULL")
	})
}

func (r *Inventory) CreateItem(ctx context.Context, item *model.InventoryItem) error {
	_, err := r.db.NewInsert().
		Model(item).
		Exec(ctx)
	return err
}

func (r *Inventory) UpdateItem(ctx context.Context, item *model.InventoryItem) error {
	_, err := r.db.NewUpdate().
		Model(item).
		WherePK().
		Where("workspace_id = ?", item.WorkspaceID).
		Exec(ctx)
	return err
}

func (r *Inventory) SoftDeleteItem(ctx context.Context, workspaceID, id string, deletion *model.Deletion) error {
	return softDelete(ctx, r.db, (*model.InventoryItem)(nil), workspaceID, id, deletion)
}

func (r *Inventory) CaptureAll(ctx context.Context, workspaceID string) ([]model.InventoryItem, error) {
	rows := make([]model.InventoryItem, 0)
	err := r.db.NewSelect().
		Model(&rows).
		Where("workspace_id = ?", workspaceID).
		Order("nome ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Inventory) UpsertItems(ctx context.Context, items []model.InventoryItem) error {
	_, err := r.db.NewInsert().
		On("CONFLICT (id) DO UPDATE").
		Model(&items).
		Exec(ctx)
	return err
}
