package repo

import (
	"context"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/pkg/vberr"
	"github.com/vetbase/backend/internal/repo/selector"
)

type Profile struct {
	db  *bun.DB
	sel selector.S[model.Profile]
}

func NewProfile(db *bun.DB) *Profile {
	return &Profile{db: db, sel: selector.New[model.Profile](db)}
}

func (r *Profile) GetProfileByID(ctx context.Context, id string) (*model.Profile, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("id = ?", id)
	})
}

func (r *Profile) GetProfileByAuthToken(ctx context.Context, token string) (*model.Profile, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("auth_token = ?", token)
	})
}

func (r *Profile) GetProfiles(ctx context.Context, workspaceID string) ([]*model.Profile, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Order("created_at ASC")
	})
}

// GetVeterinarianOptions lists profiles holding a clinical role, for
// populating veterinarian selectors.
func (r *Profile) GetVeterinarianOptions(ctx context.Context, workspaceID string) ([]*model.Profile, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("workspace_id = ?", workspaceID).
			Where("role IN (?)", bun.In([]string{constant.RoleAdmin, constant.RoleVeterinarian})).
			Order("full_name ASC")
	})
}

func (r *Profile) UpdateFullName(ctx context.Context, id, fullName string) error {
	_, err := r.db.NewUpdate().
		Model((*model.Profile)(nil)).
		Set("full_name = ?", fullName).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *Profile) UpdateThemePreference(ctx context.Context, id, theme string) error {
	_, err := r.db.NewUpdate().
		Model((*model.Profile)(nil)).
		Set("theme_preference = ?", theme).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *Profile) UpdateRole(ctx context.Context, workspaceID, id, role string) error {
	_, err := r.db.NewUpdate().
		Model((*model.Profile)(nil)).
		Set("role = ?", role).
		Where("id = ?", id).
		Where("workspace_id = ?", workspaceID).
		Exec(ctx)
	return err
}

func (r *Profile) UpdateApproval(ctx context.Context, workspaceID, id string, approved bool, approvedBy null.String, approvedAt null.Time) error {
	_, err := r.db.NewUpdate().
		Model((*model.Profile)(nil)).
		Set("is_approved = ?", approved).
		Set("approved_by = ?", approvedBy).
		Set("approved_at = ?", approvedAt).
		Where("id = ?", id).
		Where("workspace_id = ?", workspaceID).
		Exec(ctx)
	return err
}

// CountAdmins counts how many administrators the workspace still has.
func (r *Profile) CountAdmins(ctx context.Context, workspaceID string) (int, error) {
	return r.db.NewSelect().
		Model((*model.Profile)(nil)).
		Where("workspace_id = ?", workspaceID).
		Where("role = ?", constant.RoleAdmin).
		Count(ctx)
}

// DeleteProfile removes a member's row entirely. Profiles carry no
// deletion footer, so this is not recoverable.
func (r *Profile) DeleteProfile(ctx context.Context, workspaceID, id string) error {
	res, err := r.db.NewDelete().
		Model((*model.Profile)(nil)).
		Where("id = ?", id).
		Where("workspace_id = ?", workspaceID).
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

// CaptureAll reads every profile of the workspace for a snapshot, oldest
// first to keep capture output stable.
func (r *Profile) CaptureAll(ctx context.Context, workspaceID string) ([]model.Profile, error) {
	rows := make([]model.Profile, 0)
	err := r.db.NewSelect().
		Model(&rows).
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
