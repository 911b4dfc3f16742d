package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/gabstv/go-bsdiff/pkg/bsdiff"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/cache"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/pkg/async"
	"github.com/vetbase/backend/internal/pkg/vberr"
	"github.com/vetbase/backend/internal/repo"
)

type Backup struct {
	BackupRepo     *repo.Backup
	WorkspaceRepo  *repo.Workspace
	ProfileRepo    *repo.Profile
	TutorRepo      *repo.Tutor
	PetRepo        *repo.Pet
	AgendaRepo     *repo.Agenda
	VisitRepo      *repo.Visit
	VaccineRepo    *repo.Vaccine
	FinanceRepo    *repo.Finance
	InventoryRepo  *repo.Inventory
	AttachmentRepo *repo.Attachment
	AuditRepo      *repo.Audit
}

func NewBackup(
	backupRepo *repo.Backup,
	workspaceRepo *repo.Workspace,
	profileRepo *repo.Profile,
	tutorRepo *repo.Tutor,
	petRepo *repo.Pet,
	agendaRepo *repo.Agenda,
	visitRepo *repo.Visit,
	vaccineRepo *repo.Vaccine,
	financeRepo *repo.Finance,
	inventoryRepo *repo.Inventory,
	attachmentRepo *repo.Attachment,
	auditRepo *repo.Audit,
) *Backup {
	return &Backup{
		BackupRepo:     backupRepo,
		WorkspaceRepo:  workspaceRepo,
		ProfileRepo:    profileRepo,
		TutorRepo:      tutorRepo,
		PetRepo:        petRepo,
		AgendaRepo:     agendaRepo,
		VisitRepo:      visitRepo,
		VaccineRepo:    vaccineRepo,
		FinanceRepo:    financeRepo,
		InventoryRepo:  inventoryRepo,
		AttachmentRepo: attachmentRepo,
		AuditRepo:      auditRepo,
	}
}

// CreateBackup snapshots every tenant table of the workspace into one
// immutable record. Table reads fan out concurrently; any single read
// failure aborts the capture and nothing is persisted.
func (s *Backup) CreateBackup(ctx context.Context, workspaceID, actorID string) (*model.WorkspaceBackup, error) {
	var (
		workspace   *model.Workspace
		profiles    []model.Profile
		tutors      []model.Tutor
		pets        []model.Pet
		agenda      []model.AgendaEntry
		visits      []model.Visit
		vaccines    []model.Vaccine
		finance     []model.FinanceEntry
		inventory   []model.InventoryItem
		attachments []model.VisitAttachment
		auditLog    []model.AuditLog
	)

	err := async.WaitAll(
		async.Errable(func() (err error) {
			workspace, err = s.WorkspaceRepo.GetWorkspaceByID(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			profiles, err = s.ProfileRepo.CaptureAll(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			tutors, err = s.TutorRepo.CaptureAll(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			pets, err = s.PetRepo.CaptureAll(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			agenda, err = s.AgendaRepo.CaptureAll(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			visits, err = s.VisitRepo.CaptureAll(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			vaccines, err = s.VaccineRepo.CaptureAll(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			finance, err = s.FinanceRepo.CaptureAll(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			inventory, err = s.InventoryRepo.CaptureAll(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			attachments, err = s.AttachmentRepo.CaptureAll(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			auditLog, err = s.AuditRepo.CaptureAll(ctx, workspaceID)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	generatedAt := time.Now()
	document := &types.BackupDocument{
		Meta: types.BackupMeta{
			WorkspaceID: workspaceID,
			GeneratedAt: generatedAt,
			GeneratedBy: actorID,
			Version:     constant.BackupDocumentVersion,
		},
		Workspace: *workspace,
		Tables: types.BackupTables{
			Profiles:         profiles,
			Tutors:           tutors,
			Pets:             pets,
			Agenda:           agenda,
			Visits:           visits,
			Vaccines:         vaccines,
			FinanceEntries:   finance,
			InventoryItems:   inventory,
			VisitAttachments: attachments,
			AuditLog:         auditLog,
		},
	}

	serialized, err := json.Marshal(document)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize backup document")
	}

	checksum := sha256.Sum256(serialized)

	record := &model.WorkspaceBackup{
		ID:             uuid.New().String(),
		WorkspaceID:    workspaceID,
		FileName:       "backup-" + generatedAt.Format("20060102-150405") + ".json",
		ChecksumSha256: hex.EncodeToString(checksum[:]),
		Payload:        serialized,
		CreatedAt:      generatedAt,
		CreatedBy:      actorID,
	}
	if err := s.BackupRepo.CreateBackup(ctx, record); err != nil {
		return nil, err
	}

	cache.BackupsByWorkspaceID.Delete(workspaceID)
	return record, nil
}

// Cache: workspaceBackups#workspaceId:{workspaceId}, 5min
func (s *Backup) GetBackups(ctx context.Context, workspaceID string) ([]*model.WorkspaceBackup, error) {
	var records []*model.WorkspaceBackup
	err := cache.BackupsByWorkspaceID.Get(workspaceID, &records)
	if err == nil {
		return records, nil
	}

	records, err = s.BackupRepo.GetBackups(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	go cache.BackupsByWorkspaceID.Set(workspaceID, records, time.Minute*5)
	return records, nil
}

// GetBackupDownload returns a stored document pretty-printed for export,
// along with its capture-time checksum. The checksum seals the compact
// serialization, not the indented export.
func (s *Backup) GetBackupDownload(ctx context.Context, workspaceID, id string) (*types.BackupDownload, error) {
	record, err := s.BackupRepo.GetBackupByID(ctx, workspaceID, id)
	if err != nil {
		return nil, err
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, record.Payload, "", "  "); err != nil {
		return nil, errors.Wrap(err, "failed to format backup document")
	}

	return &types.BackupDownload{
		FileName: record.FileName,
		Checksum: record.ChecksumSha256,
		Content:  indented.String(),
	}, nil
}

// GetDiff computes a binary patch between the payloads of two stored
// backups, oldest as the base.
func (s *Backup) GetDiff(ctx context.Context, workspaceID, fromID, toID string) (*types.BackupDiff, error) {
	from, err := s.BackupRepo.GetBackupByID(ctx, workspaceID, fromID)
	if err != nil {
		return nil, err
	}
	to, err := s.BackupRepo.GetBackupByID(ctx, workspaceID, toID)
	if err != nil {
		return nil, err
	}

	patch, err := bsdiff.Bytes(from.Payload, to.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to diff backup documents")
	}

	return &types.BackupDiff{
		FromID: from.ID,
		ToID:   to.ID,
		Patch:  patch,
	}, nil
}

// RestoreBackup merges an uploaded document into the live tables of the
// caller's workspace. Tables are applied sequentially in a fixed order and
// the first failure aborts the merge, leaving earlier tables restored.
// The checksum of the record the document came from is deliberately not
// re-verified here; it seals the capture, it is not a restore gate.
func (s *Backup) RestoreBackup(ctx context.Context, content []byte, workspaceID string) (*types.RestoreReport, error) {
	if !gjson.ValidBytes(content) {
		return nil, vberr.ErrInvalidDocument.Msg("uploaded file is not valid JSON")
	}

	parsed := gjson.ParseBytes(content)
	if !parsed.IsObject() {
		return nil, vberr.ErrInvalidDocument
	}

	backupWorkspaceID := parsed.Get("meta.workspace_id").String()
	if backupWorkspaceID == "" || backupWorkspaceID != workspaceID {
		return nil, vberr.ErrWrongWorkspace
	}

	if version := parsed.Get("meta.version"); version.Exists() && version.Int() != constant.BackupDocumentVersion {
		return nil, vberr.ErrInvalidDocument.Msg("unsupported backup document version %d", version.Int())
	}

	tables := parsed.Get("tables")

	// The allow-list deliberately excludes profiles and audit_log: identity
	// and history are not restoreable from a tenant-data backup.
	steps := []restoreStep{
		{constant.TableTutors, func(raw gjson.Result) (int, error) {
			return restoreTable(ctx, raw, workspaceID, func(r *model.Tutor, ws string) { r.WorkspaceID = ws }, s.TutorRepo.UpsertTutors)
		}},
		{constant.TablePets, func(raw gjson.Result) (int, error) {
			return restoreTable(ctx, raw, workspaceID, func(r *model.Pet, ws string) { r.WorkspaceID = ws }, s.PetRepo.UpsertPets)
		}},
		{constant.TableAgenda, func(raw gjson.Result) (int, error) {
			return restoreTable(ctx, raw, workspaceID, func(r *model.AgendaEntry, ws string) { r.WorkspaceID = ws }, s.AgendaRepo.UpsertEntries)
		}},
		{constant.TableVisits, func(raw gjson.Result) (int, error) {
			return restoreTable(ctx, raw, workspaceID, func(r *model.Visit, ws string) { r.WorkspaceID = ws }, s.VisitRepo.UpsertVisits)
		}},
		{constant.TableVaccines, func(raw gjson.Result) (int, error) {
			return restoreTable(ctx, raw, workspaceID, func(r *model.Vaccine, ws string) { r.WorkspaceID = ws }, s.VaccineRepo.UpsertVaccines)
		}},
		{constant.TableFinanceEntries, func(raw gjson.Result) (int, error) {
			return restoreTable(ctx, raw, workspaceID, func(r *model.FinanceEntry, ws string) { r.WorkspaceID = ws }, s.FinanceRepo.UpsertEntries)
		}},
		{constant.TableInventoryItems, func(raw gjson.Result) (int, error) {
			return restoreTable(ctx, raw, workspaceID, func(r *model.InventoryItem, ws string) { r.WorkspaceID = ws }, s.InventoryRepo.UpsertItems)
		}},
		{constant.TableVisitAttachments, func(raw gjson.Result) (int, error) {
			return restoreTable(ctx, raw, workspaceID, func(r *model.VisitAttachment, ws string) { r.WorkspaceID = ws }, s.AttachmentRepo.UpsertAttachments)
		}},
	}

	restored, err := applyRestoreSteps(tables, steps)
	if err != nil {
		return nil, err
	}

	s.flushRestoredViews(workspaceID)

	return &types.RestoreReport{
		Message:  "backup restored successfully",
		Restored: restored,
	}, nil
}

type restoreStep struct {
	table string
	run   func(raw gjson.Result) (int, error)
}

// applyRestoreSteps runs each table's merge in order, stopping at the first
// failure and naming the failing table. Tables already applied stay applied.
func applyRestoreSteps(tables gjson.Result, steps []restoreStep) (map[string]int, error) {
	restored := make(map[string]int, len(steps))
	for _, step := range steps {
		count, err := step.run(tables.Get(step.table))
		if err != nil {
			return nil, vberr.ErrInternalError.Msg("failed to restore %s: %s", step.table, err)
		}
		restored[step.table] = count
	}
	return restored, nil
}

// restoreTable normalizes one table's untrusted row sequence, re-stamps the
// caller's workspace id on every row, and upserts them by id in bounded
// chunks. Absent or malformed sequences restore as zero rows, but a row
// object that fails to decode aborts the table so a type-corrupt document
// cannot restore partially behind a clean report.
func restoreTable[T any](ctx context.Context, raw gjson.Result, workspaceID string, stamp func(*T, string), upsert func(context.Context, []T) error) (int, error) {
	rows, err := asRows[T](raw)
	if err != nil {
		return 0, err
	}
	for i := range rows {
		stamp(&rows[i], workspaceID)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	for _, part := range lo.Chunk(rows, constant.RestoreChunkSize) {
		if err := upsert(ctx, part); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

// asRows decodes the array elements that are row objects. A missing key,
// a non-array value, or stray scalar elements yield fewer rows, but an
// object that does not decode into the row type is an error.
func asRows[T any](value gjson.Result) ([]T, error) {
	if !value.IsArray() {
		return nil, nil
	}

	items := value.Array()
	rows := make([]T, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		var row T
		if err := json.Unmarshal([]byte(item.Raw), &row); err != nil {
			return nil, errors.Wrap(err, "row decode")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Backup) flushRestoredViews(workspaceID string) {
	cache.TutorsByWorkspaceID.Delete(workspaceID)
	cache.PetsByWorkspaceID.Delete(workspaceID)
	cache.AgendaByWorkspaceID.Delete(workspaceID)
	cache.VisitsByWorkspaceID.Delete(workspaceID)
	cache.VaccinesByWorkspaceID.Delete(workspaceID)
	cache.FinanceEntriesByWorkspaceID.Delete(workspaceID)
	cache.InventoryItemsByWorkspaceID.Delete(workspaceID)
	cache.FormOptionsByWorkspaceID.Delete(workspaceID)
	cache.DashboardStatsByWorkspaceID.Delete(workspaceID)
}
