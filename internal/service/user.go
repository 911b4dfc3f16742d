package service

import (
	"context"
	"time"

	"gopkg.in/guregu/null.v3"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/cache"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/pkg/vberr"
	"github.com/vetbase/backend/internal/repo"
)

// User covers workspace member administration and self-service profile
// updates.
type User struct {
	ProfileRepo  *repo.Profile
	AuditService *Audit
}

func NewUser(profileRepo *repo.Profile, auditService *Audit) *User {
	return &User{
		ProfileRepo:  profileRepo,
		AuditService: auditService,
	}
}

func (s *User) GetMembers(ctx context.Context, workspaceID string) ([]*model.Profile, error) {
	return s.ProfileRepo.GetProfiles(ctx, workspaceID)
}

func (s *User) UpdateFullName(ctx context.Context, actor *model.Profile, req *types.ProfileUpdateRequest) error {
	if err := s.ProfileRepo.UpdateFullName(ctx, actor.ID, req.FullName); err != nil {
		return err
	}
	s.flushProfile(actor)
	return nil
}

func (s *User) UpdateThemePreference(ctx context.Context, actor *model.Profile, req *types.ThemePreferenceRequest) error {
	if err := s.ProfileRepo.UpdateThemePreference(ctx, actor.ID, req.ThemePreference); err != nil {
		return err
	}
	s.flushProfile(actor)
	return nil
}

// UpdateRole changes a member's role. Admins may not demote themselves so a
// workspace can never end up without an administrator.
func (s *User) UpdateRole(ctx context.Context, actor *model.Profile, req *types.ProfileRoleRequest) error {
	if req.ID == actor.ID {
		return vberr.ErrInvalidReq.Msg("cannot change your own role")
	}

	target, err := s.ProfileRepo.GetProfileByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if target.WorkspaceID != actor.WorkspaceID {
		return vberr.ErrNotFound
	}

	if err := s.ProfileRepo.UpdateRole(ctx, actor.WorkspaceID, req.ID, req.Role); err != nil {
		return err
	}
	s.flushProfile(target)
	return nil
}

func (s *User) UpdateApproval(ctx context.Context, actor *model.Profile, req *types.ProfileApprovalRequest) error {
	if req.ID == actor.ID {
		return vberr.ErrInvalidReq.Msg("cannot change your own approval")
	}

	target, err := s.ProfileRepo.GetProfileByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if target.WorkspaceID != actor.WorkspaceID {
		return vberr.ErrNotFound
	}

	approvedBy := null.NewString(actor.ID, req.Approved)
	approvedAt := null.NewTime(time.Now(), req.Approved)
	if err := s.ProfileRepo.UpdateApproval(ctx, actor.WorkspaceID, req.ID, req.Approved, approvedBy, approvedAt); err != nil {
		return err
	}
	s.flushProfile(target)
	return nil
}

// DeleteMember removes a member from the workspace entirely. Profiles carry
// no deletion footer, so the row is gone for good; the target's cached
// sessions are flushed so a lingering token stops working immediately.
func (s *User) DeleteMember(ctx context.Context, actor *model.Profile, id string) error {
	if id == actor.ID {
		return vberr.ErrInvalidReq.Msg("cannot delete your own account")
	}

	target, err := s.ProfileRepo.GetProfileByID(ctx, id)
	if err != nil {
		return err
	}
	if target.WorkspaceID != actor.WorkspaceID {
		return vberr.ErrNotFound
	}

	if target.Role == constant.RoleAdmin {
		admins, err := s.ProfileRepo.CountAdmins(ctx, actor.WorkspaceID)
		if err != nil {
			return err
		}
		if err := guardLastAdmin(target, admins); err != nil {
			return err
		}
	}

	if err := s.ProfileRepo.DeleteProfile(ctx, actor.WorkspaceID, id); err != nil {
		return err
	}

	s.AuditService.RecordMutation(actor, constant.TableProfiles, id, constant.AuditActionDelete, target, nil)
	s.flushProfile(target)
	return nil
}

// guardLastAdmin rejects removing an administrator when the workspace would
// be left without one.
func guardLastAdmin(target *model.Profile, adminCount int) error {
	if target.Role != constant.RoleAdmin {
		return nil
	}
	if adminCount <= 1 {
		return vberr.ErrInvalidReq.Msg("cannot delete the last admin of the workspace")
	}
	return nil
}

func (s *User) flushProfile(profile *model.Profile) {
	cache.ProfileByID.Delete(profile.ID)
	if profile.AuthToken != "" {
		cache.ProfileByAuthToken.Delete(profile.AuthToken)
	}
}
