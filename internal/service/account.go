package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/cache"
	"github.com/vetbase/backend/internal/pkg/authtoken"
	"github.com/vetbase/backend/internal/pkg/vberr"
	"github.com/vetbase/backend/internal/repo"
)

type Account struct {
	ProfileRepo *repo.Profile
}

func NewAccount(profileRepo *repo.Profile) *Account {
	return &Account{
		ProfileRepo: profileRepo,
	}
}

// Cache: profile#profileId:{profileId}, 24hrs
func (s *Account) GetProfileByID(ctx context.Context, id string) (*model.Profile, error) {
	var profile model.Profile
	err := cache.ProfileByID.Get(id, &profile)
	if err == nil {
		return &profile, nil
	}

	dbProfile, err := s.ProfileRepo.GetProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}
	go cache.ProfileByID.Set(id, *dbProfile, time.Hour*24)
	return dbProfile, nil
}

// Cache: profile#authToken:{token}, 24hrs
func (s *Account) GetProfileByAuthToken(ctx context.Context, token string) (*model.Profile, error) {
	var profile model.Profile
	err := cache.ProfileByAuthToken.Get(token, &profile)
	if err == nil {
		return &profile, nil
	}

	dbProfile, err := s.ProfileRepo.GetProfileByAuthToken(ctx, token)
	if err != nil {
		return nil, err
	}
	go cache.ProfileByAuthToken.Set(token, *dbProfile, time.Hour*24)
	return dbProfile, nil
}

// GetProfileFromRequest resolves the caller from the Authorization header.
// Unapproved profiles are rejected regardless of role.
func (s *Account) GetProfileFromRequest(ctx *fiber.Ctx) (*model.Profile, error) {
	token := authtoken.Extract(ctx)
	if token == "" {
		return nil, vberr.ErrUnauthorized.Msg("account token not found in request")
	}

	profile, err := s.GetProfileByAuthToken(ctx.Context(), token)
	if err != nil {
		log.Warn().Err(err).Msg("failed to get profile from request")
		return nil, vberr.ErrUnauthorized.Msg("account token is invalid")
	}
	if !profile.IsApproved {
		return nil, vberr.ErrForbidden.Msg("account is pending approval")
	}
	return profile, nil
}

// RequireRole resolves the caller and asserts membership of one of the given
// roles. Both backup operations run behind this gate with RoleAdmin only.
func (s *Account) RequireRole(ctx *fiber.Ctx, roles ...string) (*model.Profile, error) {
	profile, err := s.GetProfileFromRequest(ctx)
	if err != nil {
		return nil, err
	}
	if !lo.Contains(roles, profile.Role) {
		return nil, vberr.ErrForbidden.Msg("role %s may not perform this operation", profile.Role)
	}
	return profile, nil
}
