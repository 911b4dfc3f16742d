package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/cache"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/pkg/vberr"
	"github.com/vetbase/backend/internal/repo"
)

type Agenda struct {
	AgendaRepo   *repo.Agenda
	AuditService *Audit
}

func NewAgenda(agendaRepo *repo.Agenda, auditService *Audit) *Agenda {
	return &Agenda{
		AgendaRepo:   agendaRepo,
		AuditService: auditService,
	}
}

// Cache: agenda#workspaceId:{workspaceId}, 5min
func (s *Agenda) GetEntries(ctx context.Context, workspaceID string) ([]*model.AgendaEntry, error) {
	var entries []*model.AgendaEntry
	err := cache.AgendaByWorkspaceID.Get(workspaceID, &entries)
	if err == nil {
		return entries, nil
	}

	entries, err = s.AgendaRepo.GetEntries(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	go cache.AgendaByWorkspaceID.Set(workspaceID, entries, time.Minute*5)
	return entries, nil
}

func (s *Agenda) GetEntryByID(ctx context.Context, workspaceID, id string) (*model.AgendaEntry, error) {
	return s.AgendaRepo.GetEntryByID(ctx, workspaceID, id)
}

func (s *Agenda) CreateEntry(ctx context.Context, actor *model.Profile, req *types.AgendaRequest) (*model.AgendaEntry, error) {
	scheduledAt, err := parseAgendaTime(req.ScheduledAt)
	if err != nil {
		return nil, err
	}

	entry := &model.AgendaEntry{
		ID:             uuid.New().String(),
		WorkspaceID:    actor.WorkspaceID,
		TutorID:        optString(req.TutorID),
		PetID:          optString(req.PetID),
		VeterinarianID: optString(req.VeterinarianID),
		Scope:          req.Scope,
		EventType:      req.EventType,
		Title:          req.Title,
		Description:    optString(req.Description),
		ScheduledAt:    scheduledAt,
		Status:         req.Status,
		AuditFields:    stampCreate(actor, time.Now()),
	}
	if err := s.AgendaRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableAgenda, entry.ID, constant.AuditActionInsert, nil, entry)
	s.flushLists(actor.WorkspaceID)
	return entry, nil
}

func (s *Agenda) UpdateEntry(ctx context.Context, actor *model.Profile, id string, req *types.AgendaRequest) (*model.AgendaEntry, error) {
	entry, err := s.AgendaRepo.GetEntryByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	before := *entry

	scheduledAt, err := parseAgendaTime(req.ScheduledAt)
	if err != nil {
		return nil, err
	}

	entry.TutorID = optString(req.TutorID)
	entry.PetID = optString(req.PetID)
	entry.VeterinarianID = optString(req.VeterinarianID)
	entry.Scope = req.Scope
	entry.EventType = req.EventType
	entry.Title = req.Title
	entry.Description = optString(req.Description)
	entry.ScheduledAt = scheduledAt
	entry.Status = req.Status
	stampUpdate(&entry.AuditFields, actor, time.Now())

	if err := s.AgendaRepo.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableAgenda, entry.ID, constant.AuditActionUpdate, &before, entry)
	s.flushLists(actor.WorkspaceID)
	return entry, nil
}

func (s *Agenda) DeleteEntry(ctx context.Context, actor *model.Profile, id string) error {
	entry, err := s.AgendaRepo.GetEntryByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return err
	}

	if err := s.AgendaRepo.SoftDeleteEntry(ctx, actor.WorkspaceID, id, deletionBy(actor, time.Now())); err != nil {
		return err
	}

	s.AuditService.RecordMutation(actor, constant.TableAgenda, id, constant.AuditActionSoftDelete, entry, nil)
	s.flushLists(actor.WorkspaceID)
	return nil
}

func (s *Agenda) flushLists(workspaceID string) {
	cache.AgendaByWorkspaceID.Delete(workspaceID)
	cache.DashboardStatsByWorkspaceID.Delete(workspaceID)
}

func parseAgendaTime(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, vberr.ErrInvalidReq.Msg("data_hora %s is not a recognized timestamp", value)
}
