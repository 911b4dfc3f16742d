package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/vetbase/backend/internal/server/svr"
	"github.com/vetbase/backend/internal/service"
)

type Options struct {
	fx.In

	AccountService *service.Account
	OptionsService *service.Options
}

func RegisterOptions(v1 *svr.V1, c Options) {
	v1.Get("/form-options", c.GetFormOptions)
}

// @Summary	Get Form Options
// @Tags		Options
// @Produce	json
// @Success	200	{object}	types.FormOptions
// @Failure	401	{object}	vberr.VetError
// @Router		/api/v1/form-options [GET]
func (c *Options) GetFormOptions(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	options, err := c.OptionsService.GetFormOptions(ctx.UserContext(), account.WorkspaceID)
	if err != nil {
		return err
	}
	return ctx.JSON(options)
}
