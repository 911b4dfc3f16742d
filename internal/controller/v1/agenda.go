package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/server/svr"
	"github.com/vetbase/backend/internal/service"
	"github.com/vetbase/backend/internal/util/rekuest"
)

type Agenda struct {
	fx.In

	AccountService *service.Account
	AgendaService  *service.Agenda
}

func RegisterAgenda(v1 *svr.V1, c Agenda) {
	v1.Get("/agenda", c.GetEntries)
	v1.Get("/agenda/:entryId", c.GetEntryByID)
	v1.Post("/agenda", c.CreateEntry)
	v1.Put("/agenda/:entryId", c.UpdateEntry)
	v1.Delete("/agenda/:entryId", c.DeleteEntry)
}

// @Summary	List Agenda Entries
// @Tags		Agenda
// @Produce	json
// @Success	200	{array}		model.AgendaEntry
// @Failure	401	{object}	vberr.VetError
// @Router		/api/v1/agenda [GET]
func (c *Agenda) GetEntries(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	entries, err := c.AgendaService.GetEntries(ctx.UserContext(), account.WorkspaceID)
	if err != nil {
		return err
	}
	return ctx.JSON(entries)
}

func (c *Agenda) GetEntryByID(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	entry, err := c.AgendaService.GetEntryByID(ctx.UserContext(), account.WorkspaceID, ctx.Params("entryId"))
	if err != nil {
		return err
	}
	return ctx.JSON(entry)
}

func (c *Agenda) CreateEntry(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	var request types.AgendaRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	entry, err := c.AgendaService.CreateEntry(ctx.UserContext(), account, &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(entry)
}

func (c *Agenda) UpdateEntry(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	var request types.AgendaRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	entry, err := c.AgendaService.UpdateEntry(ctx.UserContext(), account, ctx.Params("entryId"), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(entry)
}

func (c *Agenda) DeleteEntry(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	if err := c.AgendaService.DeleteEntry(ctx.UserContext(), account, ctx.Params("entryId")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
