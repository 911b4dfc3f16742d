package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/pkg/vberr"
)

// softDelete stamps the deletion footer of one live row. Rows already
// deleted, or belonging to another workspace, are not touched.
func softDelete(ctx context.Context, db *bun.DB, m any, workspaceID, id string, deletion *model.Deletion) error {
	res, err := db.NewUpdate().
		Model(m).
		Set("deleted_at = ?", deletion.At).
		Set("deleted_by = ?", deletion.By).
		Set("deleted_by_name = ?", deletion.ByName).
		Set("updated_at = ?", deletion.At).
		Set("updated_by = ?", deletion.By).
		Set("updated_by_name = ?", deletion.ByName).
		Where("id = ?", id).
		Where("workspace_id = ?", workspaceID).
		Where("deleted_at IS NULL").
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return vberr.ErrNotFound
	}
	return nil
}
