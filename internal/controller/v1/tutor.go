package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/server/svr"
	"github.com/vetbase/backend/internal/service"
	"github.com/vetbase/backend/internal/util/rekuest"
)

type Tutor struct {
	fx.In

	AccountService *service.Account
	TutorService   *service.Tutor
}

func RegisterTutor(v1 *svr.V1, c Tutor) {
	v1.Get("/tutores", c.GetTutors)
	v1.Get("/tutores/:tutorId", c.GetTutorByID)
	v1.Post("/tutores", c.CreateTutor)
	v1.Put("/tutores/:tutorId", c.UpdateTutor)
	v1.Delete("/tutores/:tutorId", c.DeleteTutor)
}

// @Summary	List Tutors
// @Tags		Tutor
// @Produce	json
// @Success	200	{array}		model.Tutor
// @Failure	401	{object}	vberr.VetError
// @Router		/api/v1/tutores [GET]
func (c *Tutor) GetTutors(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	tutors, err := c.TutorService.GetTutors(ctx.UserContext(), account.WorkspaceID)
	if err != nil {
		return err
	}
	return ctx.JSON(tutors)
}

func (c *Tutor) GetTutorByID(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	tutor, err := c.TutorService.GetTutorByID(ctx.UserContext(), account.WorkspaceID, ctx.Params("tutorId"))
	if err != nil {
		return err
	}
	return ctx.JSON(tutor)
}

func (c *Tutor) CreateTutor(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	var request types.TutorRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	tutor, err := c.TutorService.CreateTutor(ctx.UserContext(), account, &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(tutor)
}

func (c *Tutor) UpdateTutor(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	var request types.TutorRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	tutor, err := c.TutorService.UpdateTutor(ctx.UserContext(), account, ctx.Params("tutorId"), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(tutor)
}

func (c *Tutor) DeleteTutor(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	if err := c.TutorService.DeleteTutor(ctx.UserContext(), account, ctx.Params("tutorId")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
