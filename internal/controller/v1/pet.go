package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/server/svr"
	"github.com/vetbase/backend/internal/service"
	"github.com/vetbase/backend/internal/util/rekuest"
)

type Pet struct {
	fx.In

	AccountService *service.Account
	PetService     *service.Pet
}

func RegisterPet(v1 *svr.V1, c Pet) {
	v1.Get("/pets", c.GetPets)
	v1.Get("/pets/:petId", c.GetPetByID)
	v1.Post("/pets", c.CreatePet)
	v1.Put("/pets/:petId", c.UpdatePet)
	v1.Delete("/pets/:petId", c.DeletePet)
}

// @Summary	List Pets
// @Tags		Pet
// @Produce	json
// @Param		tutorId	query		string	false	"only pets of this tutor"
// @Success	200		{array}		model.Pet
// @Failure	401		{object}	vberr.VetError
// @Router		/api/v1/pets [GET]
func (c *Pet) GetPets(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	if tutorID := ctx.Query("tutorId"); tutorID != "" {
		pets, err := c.PetService.GetPetsByTutorID(ctx.UserContext(), account.WorkspaceID, tutorID)
		if err != nil {
			return err
		}
		return ctx.JSON(pets)
	}

	pets, err := c.PetService.GetPets(ctx.UserContext(), account.WorkspaceID)
	if err != nil {
		return err
	}
	return ctx.JSON(pets)
}

func (c *Pet) GetPetByID(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	pet, err := c.PetService.GetPetByID(ctx.UserContext(), account.WorkspaceID, ctx.Params("petId"))
	if err != nil {
		return err
	}
	return ctx.JSON(pet)
}

func (c *Pet) CreatePet(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	var request types.PetRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	pet, err := c.PetService.CreatePet(ctx.UserContext(), account, &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(pet)
}

func (c *Pet) UpdatePet(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	var request types.PetRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	pet, err := c.PetService.UpdatePet(ctx.UserContext(), account, ctx.Params("petId"), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(pet)
}

func (c *Pet) DeletePet(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	if err := c.PetService.DeletePet(ctx.UserContext(), account, ctx.Params("petId")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
