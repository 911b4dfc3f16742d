package meta

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model/cache"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/pkg/vberr"
	"github.com/vetbase/backend/internal/server/svr"
	"github.com/vetbase/backend/internal/service"
	"github.com/vetbase/backend/internal/util/rekuest"
)

type AdminController struct {
	fx.In

	AccountService *service.Account
	BackupService  *service.Backup
	AuditService   *service.Audit
	SeedService    *service.Seed
}

func RegisterAdmin(admin *svr.Admin, c AdminController) {
	admin.Post("/backups", c.CreateBackup)
	admin.Get("/backups", c.GetBackups)
	admin.Get("/backups/diff", c.GetBackupDiff)
	admin.Get("/backups/:backupId/download", c.DownloadBackup)
	admin.Post("/backups/restore", c.RestoreBackup)

	admin.Post("/seed", c.SeedWorkspace)
	admin.Get("/audit", c.GetAuditLog)
	admin.Post("/purge", c.PurgeCache)
}

// @Summary	Create Workspace Backup
// @Tags		Admin
// @Produce	json
// @Success	201	{object}	model.WorkspaceBackup
// @Failure	403	{object}	vberr.VetError
// @Router		/api/_/admin/backups [POST]
func (c *AdminController) CreateBackup(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin)
	if err != nil {
		return err
	}

	backup, err := c.BackupService.CreateBackup(ctx.UserContext(), account.WorkspaceID, account.ID)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(backup)
}

func (c *AdminController) GetBackups(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin)
	if err != nil {
		return err
	}

	backups, err := c.BackupService.GetBackups(ctx.UserContext(), account.WorkspaceID)
	if err != nil {
		return err
	}
	return ctx.JSON(backups)
}

// @Summary	Download Workspace Backup
// @Tags		Admin
// @Produce	json
// @Success	200	{string}	string	"the pretty-printed backup document"
// @Failure	400	{object}	vberr.VetError
// @Router		/api/_/admin/backups/{backupId}/download [GET]
func (c *AdminController) DownloadBackup(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin)
	if err != nil {
		return err
	}

	download, err := c.BackupService.GetBackupDownload(ctx.UserContext(), account.WorkspaceID, ctx.Params("backupId"))
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+download.FileName+`"`)
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	ctx.Set("X-Vetbase-Backup-Checksum", download.Checksum)
	return ctx.SendString(download.Content)
}

// RestoreBackup accepts either a multipart upload under the `file` field or
// the raw document as the request body.
func (c *AdminController) RestoreBackup(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin)
	if err != nil {
		return err
	}

	content := ctx.Body()
	if header, err := ctx.FormFile("file"); err == nil {
		file, err := header.Open()
		if err != nil {
			return err
		}
		defer file.Close()

		buf, err := io.ReadAll(file)
		if err != nil {
			return err
		}
		content = buf
	}
	if len(content) == 0 {
		return vberr.ErrInvalidDocument.Msg("uploaded file is empty")
	}

	report, err := c.BackupService.RestoreBackup(ctx.UserContext(), content, account.WorkspaceID)
	if err != nil {
		return err
	}
	return ctx.JSON(report)
}

func (c *AdminController) GetBackupDiff(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin)
	if err != nil {
		return err
	}

	fromID, toID := ctx.Query("from"), ctx.Query("to")
	if fromID == "" || toID == "" {
		return vberr.ErrInvalidReq.Msg("both `from` and `to` query params are required")
	}

	diff, err := c.BackupService.GetDiff(ctx.UserContext(), account.WorkspaceID, fromID, toID)
	if err != nil {
		return err
	}
	return ctx.JSON(diff)
}

func (c *AdminController) SeedWorkspace(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin)
	if err != nil {
		return err
	}

	if err := c.SeedService.SeedWorkspaceData(ctx.UserContext(), account); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *AdminController) GetAuditLog(ctx *fiber.Ctx) error {
	account, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin)
	if err != nil {
		return err
	}

	limit := 100
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > constant.BackupAuditCaptureLimit {
			return vberr.ErrInvalidReq.Msg("`limit` must be an integer between 1 and %d", constant.BackupAuditCaptureLimit)
		}
		limit = parsed
	}

	entries, err := c.AuditService.GetEntries(ctx.UserContext(), account.WorkspaceID, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(entries)
}

func (c *AdminController) PurgeCache(ctx *fiber.Ctx) error {
	if _, err := c.AccountService.RequireRole(ctx, constant.RoleAdmin); err != nil {
		return err
	}

	var request types.PurgeCacheRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	return cache.Delete(request.Name, request.Key)
}
