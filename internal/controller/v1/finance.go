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

type Finance struct {
	fx.In

	AccountService *service.Account
	FinanceService *service.Finance
}

func RegisterFinance(v1 *svr.V1, c Finance) {
	v1.Get("/financeiro", c.GetEntries)
	v1.Post("/financeiro", c.CreateEntry)
	v1.Put("/financeiro/:entryId", c.UpdateEntry)
	v1.Delete("/financeiro/:entryId", c.DeleteEntry)
}

// @Summary	List Finance Entries
// @Tags		Finance
// @Produce	json
// @Success	200	{array}		model.FinanceEntry
// @Failure	403	{object}	vberr.VetError	"interns have no access to finance"
// @Router		/api/v1/financeiro [GET]
func (c *Finance) GetEntries(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin, constant.RoleVeterinarian)
	if err != nil {
		return err
	}

	entries, err := c.FinanceService.GetEntries(ctx.UserContext(), account.WorkspaceID)
	if err != nil {
		return err
	}
	return ctx.JSON(entries)
}

func (c *Finance) CreateEntry(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin, constant.RoleVeterinarian)
	if err != nil {
		return err
	}

	var request types.FinanceEntryRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	entry, err := c.FinanceService.CreateEntry(ctx.UserContext(), account, &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(entry)
}

func (c *Finance) UpdateEntry(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin, constant.RoleVeterinarian)
	if err != nil {
		return err
	}

	var request types.FinanceEntryRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	entry, err := c.FinanceService.UpdateEntry(ctx.UserContext(), account, ctx.Params("entryId"), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(entry)
}

func (c *Finance) DeleteEntry(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin, constant.RoleVeterinarian)
	if err != nil {
		return err
	}

	if err := c.FinanceService.DeleteEntry(ctx.UserContext(), account, ctx.Params("entryId")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
