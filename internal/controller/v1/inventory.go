package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/server/svr"
	"github.com/vetbase/backend/internal/service"
	"github.com/vetbase/backend/internal/util/rekuest"
)

type Inventory struct {
	fx.In

	AccountService   *service.Account
	InventoryService *service.Inventory
}

func RegisterInventory(v1 *svr.V1, c Inventory) {
	v1.Get("/estoque", c.GetItems)
	v1.Post("/estoque", c.CreateItem)
	v1.Put("/estoque/:itemId", c.UpdateItem)
	v1.Delete("/estoque/:itemId", c.DeleteItem)
}

// @Summary	List Inventory Items
// @Tags		Inventory
// @Produce	json
// @Success	200	{array}		model.InventoryItem
// @Failure	401	{object}	vberr.VetError
// @Router		/api/v1/estoque [GET]
func (c *Inventory) GetItems(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	items, err := c.InventoryService.GetItems(ctx.UserContext(), account.WorkspaceID)
	if err != nil {
		return err
	}
	return ctx.JSON(items)
}

func (c *Inventory) CreateItem(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	var request types.InventoryItemRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	item, err := c.InventoryService.CreateItem(ctx.UserContext(), account, &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(item)
}

func (c *Inventory) UpdateItem(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	var request types.InventoryItemRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	item, err := c.InventoryService.UpdateItem(ctx.UserContext(), account, ctx.Params("itemId"), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(item)
}

func (c *Inventory) DeleteItem(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	if err := c.InventoryService.DeleteItem(ctx.UserContext(), account, ctx.Params("itemId")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
