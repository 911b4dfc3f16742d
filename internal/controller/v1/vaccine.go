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

type Vaccine struct {
	fx.In

	AccountService *service.Account
	VaccineService *service.Vaccine
}

func RegisterVaccine(v1 *svr.V1, c Vaccine) {
	v1.Get("/vacinas", c.GetVaccines)
	v1.Post("/vacinas", c.CreateVaccine)
	v1.Put("/vacinas/:vaccineId", c.UpdateVaccine)
	v1.Delete("/vacinas/:vaccineId", c.DeleteVaccine)
}

// @Summary	List Vaccines
// @Tags		Vaccine
// @Produce	json
// @Param		petId	query		string	false	"only vaccines of this pet"
// @Success	200		{array}		model.Vaccine
// @Failure	401		{object}	vberr.VetError
// @Router		/api/v1/vacinas [GET]
func (c *Vaccine) GetVaccines(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	if petID := ctx.Query("petId"); petID != "" {
		vaccines, err := c.VaccineService.GetVaccinesByPetID(ctx.UserContext(), account.WorkspaceID, petID)
		if err != nil {
			return err
		}
		return ctx.JSON(vaccines)
	}

	vaccines, err := c.VaccineService.GetVaccines(ctx.UserContext(), account.WorkspaceID)
	if err != nil {
		return err
	}
	return ctx.JSON(vaccines)
}

func (c *Vaccine) CreateVaccine(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin, constant.RoleVeterinarian)
	if err != nil {
		return err
	}

	var request types.VaccineRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	vaccine, err := c.VaccineService.CreateVaccine(ctx.UserContext(), account, &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(vaccine)
}

func (c *Vaccine) UpdateVaccine(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin, constant.RoleVeterinarian)
	if err != nil {
		return err
	}

	var request types.VaccineRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	vaccine, err := c.VaccineService.UpdateVaccine(ctx.UserContext(), account, ctx.Params("vaccineId"), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(vaccine)
}

func (c *Vaccine) DeleteVaccine(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin, constant.RoleVeterinarian)
	if err != nil {
		return err
	}

	if err := c.VaccineService.DeleteVaccine(ctx.UserContext(), account, ctx.Params("vaccineId")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
