package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/vetbase/backend/internal/server/svr"
	"github.com/vetbase/backend/internal/service"
)

type Dashboard struct {
	fx.In

	AccountService   *service.Account
	DashboardService *service.Dashboard
}

func RegisterDashboard(v1 *svr.V1, c Dashboard) {
	v1.Get("/dashboard", c.GetStats)
}

// @Summary	Get Dashboard Stats
// @Tags		Dashboard
// @Produce	json
// @Success	200	{object}	types.DashboardStats	"profit and finance are redacted for interns"
// @Failure	401	{object}	vberr.VetError
// @Router		/api/v1/dashboard [GET]
func (c *Dashboard) GetStats(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	stats, err := c.DashboardService.GetStats(ctx.UserContext(), account)
	if err != nil {
		return err
	}
	return ctx.JSON(stats)
}
