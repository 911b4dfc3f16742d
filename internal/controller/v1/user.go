package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/server/svr"
	"github.com/vetbase/backend/internal/service"
	"github.com/vetbase/backend/internal/util/rekuest"
)

type User struct {
	fx.In

	AccountService *service.Account
	UserService    *service.User
}

func RegisterUser(v1 *svr.V1, c User) {
	v1.Get("/me", c.GetMe)
	v1.Put("/me/full-name", c.UpdateFullName)
	v1.Put("/me/theme", c.UpdateThemePreference)

	v1.Get("/equipe", c.GetMembers)
	v1.Put("/equipe/role", c.UpdateRole)
	v1.Put("/equipe/approval", c.UpdateApproval)
	v1.Delete("/equipe/:profileId", c.DeleteMember)
}

// @Summary	Get Current Profile
// @Tags		User
// @Produce	json
// @Success	200	{object}	model.Profile
// @Failure	401	{object}	vberr.VetError
// @Router		/api/v1/me [GET]
func (c *User) GetMe(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(account)
}

func (c *User) UpdateFullName(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	var request types.ProfileUpdateRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	if err := c.UserService.UpdateFullName(ctx.UserContext(), account, &request); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *User) UpdateThemePreference(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	var request types.ThemePreferenceRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	if err := c.UserService.UpdateThemePreference(ctx.UserContext(), account, &request); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *User) GetMembers(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin)
	if err != nil {
		return err
	}

	members, err := c.UserService.GetMembers(ctx.UserContext(), account.WorkspaceID)
	if err != nil {
		return err
	}
	return ctx.JSON(members)
}

func (c *User) UpdateRole(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin)
	if err != nil {
		return err
	}

	var request types.ProfileRoleRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	if err := c.UserService.UpdateRole(ctx.UserContext(), account, &request); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *User) UpdateApproval(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin)
	if err != nil {
		return err
	}

	var request types.ProfileApprovalRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	if err := c.UserService.UpdateApproval(ctx.UserContext(), account, &request); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary	Delete Workspace Member
// @Tags		User
// @Param		profileId	path	string	true	"Profile ID"
// @Success	204
// @Failure	400	{object}	vberr.VetError	"deleting yourself or the last admin"
// @Router		/api/v1/equipe/{profileId} [DELETE]
func (c *User) DeleteMember(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin)
	if err != nil {
		return err
	}

	if err := c.UserService.DeleteMember(ctx.UserContext(), account, ctx.Params("profileId")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
