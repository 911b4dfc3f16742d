package v1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/pkg/vberr"
	"github.com/vetbase/backend/internal/server/svr"
	"github.com/vetbase/backend/internal/service"
	"github.com/vetbase/backend/internal/util/rekuest"
)

type Visit struct {
	fx.In

	AccountService    *service.Account
	VisitService      *service.Visit
	AttachmentService *service.Attachment
}

func RegisterVisit(v1 *svr.V1, c Visit) {
	v1.Get("/atendimentos", c.GetVisits)
	v1.Get("/atendimentos/:visitId", c.GetVisitByID)
	v1.Post("/atendimentos", c.CreateVisit)
	v1.Put("/atendimentos/:visitId", c.UpdateVisit)
	v1.Delete("/atendimentos/:visitId", c.DeleteVisit)

	v1.Get("/atendimentos/:visitId/anexos", c.GetAttachments)
	v1.Post("/atendimentos/:visitId/anexos", c.UploadAttachment)
	v1.Get("/anexos/:attachmentId/download", c.DownloadAttachment)
	v1.Delete("/anexos/:attachmentId", c.DeleteAttachment)
}

// @Summary	List Clinical Visits
// @Tags		Visit
// @Produce	json
// @Param		petId	query		string	false	"only visits of this pet"
// @Success	200		{array}		model.Visit
// @Failure	401		{object}	vberr.VetError
// @Router		/api/v1/atendimentos [GET]
func (c *Visit) GetVisits(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	if petID := ctx.Query("petId"); petID != "" {
		visits, err := c.VisitService.GetVisitsByPetID(ctx.UserContext(), account.WorkspaceID, petID)
		if err != nil {
			return err
		}
		return ctx.JSON(visits)
	}

	visits, err := c.VisitService.GetVisits(ctx.UserContext(), account.WorkspaceID)
	if err != nil {
		return err
	}
	return ctx.JSON(visits)
}

func (c *Visit) GetVisitByID(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	visit, err := c.VisitService.GetVisitByID(ctx.UserContext(), account.WorkspaceID, ctx.Params("visitId"))
	if err != nil {
		return err
	}
	return ctx.JSON(visit)
}

func (c *Visit) CreateVisit(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin, constant.RoleVeterinarian)
	if err != nil {
		return err
	}

	var request types.VisitRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	visit, err := c.VisitService.CreateVisit(ctx.UserContext(), account, &request)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(visit)
}

func (c *Visit) UpdateVisit(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin, constant.RoleVeterinarian)
	if err != nil {
		return err
	}

	var request types.VisitRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	visit, err := c.VisitService.UpdateVisit(ctx.UserContext(), account, ctx.Params("visitId"), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(visit)
}

func (c *Visit) DeleteVisit(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin, constant.RoleVeterinarian)
	if err != nil {
		return err
	}

	if err := c.VisitService.DeleteVisit(ctx.UserContext(), account, ctx.Params("visitId")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Visit) GetAttachments(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	attachments, err := c.AttachmentService.GetAttachmentsByVisitID(ctx.UserContext(), account.WorkspaceID, ctx.Params("visitId"))
	if err != nil {
		return err
	}
	return ctx.JSON(attachments)
}

// @Summary	Upload Visit Attachment
// @Tags		Visit
// @Accept		multipart/form-data
// @Param		file	formData	file	true	"attachment content"
// @Success	201		{object}	model.VisitAttachment
// @Failure	400		{object}	vberr.VetError
// @Router		/api/v1/atendimentos/{visitId}/anexos [POST]
func (c *Visit) UploadAttachment(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin, constant.RoleVeterinarian)
	if err != nil {
		return err
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		return vberr.ErrInvalidReq.Msg("a `file` form field is required")
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	request := types.VisitAttachmentRequest{
		VisitID:   ctx.Params("visitId"),
		FileName:  header.Filename,
		MimeType:  header.Header.Get(fiber.HeaderContentType),
		SizeBytes: header.Size,
	}
	if err := rekuest.ValidStruct(ctx, &request); err != nil {
		return err
	}

	attachment, err := c.AttachmentService.UploadAttachment(ctx.UserContext(), account, &request, content)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(attachment)
}

func (c *Visit) DownloadAttachment(ctx *fiber.Ctx) error {
	account, err := c.AccountService.GetProfileFromRequest(ctx)
	if err != nil {
		return err
	}

	attachment, content, err := c.AttachmentService.DownloadAttachment(ctx.UserContext(), account.WorkspaceID, ctx.Params("attachmentId"))
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+attachment.FileName+`"`)
	if attachment.MimeType.Valid {
		ctx.Set(fiber.HeaderContentType, attachment.MimeType.String)
	}
	return ctx.Send(content)
}

func (c *Visit) DeleteAttachment(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin, constant.RoleVeterinarian)
	if err != nil {
		return err
	}

	if err := c.AttachmentService.DeleteAttachment(ctx.UserContext(), account, ctx.Params("attachmentId")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
