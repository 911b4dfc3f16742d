package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/cache"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/repo"
)

type Finance struct {
	FinanceRepo  *repo.Finance
	AuditService *Audit
}

func NewFinance(financeRepo *repo.Finance, auditService *Audit) *Finance {
	return &Finance{
		FinanceRepo:  financeRepo,
		AuditService: auditService,
	}
}

// Cache: financeiro#workspaceId:{workspaceId}, 5min
func (s *Finance) GetEntries(ctx context.Context, workspaceID string) ([]*model.FinanceEntry, error) {
	var entries []*model.FinanceEntry
	err := cache.FinanceEntriesByWorkspaceID.Get(workspaceID, &entries)
	if err == nil {
		return entries, nil
	}

	entries, err = s.FinanceRepo.GetEntries(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	go cache.FinanceEntriesByWorkspaceID.Set(workspaceID, entries, time.Minute*5)
	return entries, nil
}

func (s *Finance) CreateEntry(ctx context.Context, actor *model.Profile, req *types.FinanceEntryRequest) (*model.FinanceEntry, error) {
	entry := &model.FinanceEntry{
		ID:           uuid.New().String(),
		WorkspaceID:  actor.WorkspaceID,
		VisitID:      optString(req.VisitID),
		TutorID:      req.TutorID,
		PetID:        optString(req.PetID),
		Type:         req.Type,
		Category:     req.Category,
		Description:  optString(req.Description),
		Amount:       req.Amount,
		CompetencyAt: req.CompetencyAt,
		Status:       req.Status,
		PaidAt:       optString(req.PaidAt),
		AuditFields:  stampCreate(actor, time.Now()),
	}
	if err := s.FinanceRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableFinanceEntries, entry.ID, constant.AuditActionInsert, nil, entry)
	s.flushLists(actor.WorkspaceID)
	return entry, nil
}

func (s *Finance) UpdateEntry(ctx context.Context, actor *model.Profile, id string, req *types.FinanceEntryRequest) (*model.FinanceEntry, error) {
	entry, err := s.FinanceRepo.GetEntryByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	before := *entry

	entry.VisitID = optString(req.VisitID)
	entry.TutorID = req.TutorID
	entry.PetID = optString(req.PetID)
	entry.Type = req.Type
	entry.Category = req.Category
	entry.Description = optString(req.Description)
	entry.Amount = req.Amount
	entry.CompetencyAt = req.CompetencyAt
	entry.Status = req.Status
	entry.PaidAt = optString(req.PaidAt)
	stampUpdate(&entry.AuditFields, actor, time.Now())

	if err := s.FinanceRepo.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableFinanceEntries, entry.ID, constant.AuditActionUpdate, &before, entry)
	s.flushLists(actor.WorkspaceID)
	return entry, nil
}

func (s *Finance) DeleteEntry(ctx context.Context, actor *model.Profile, id string) error {
	entry, err := s.FinanceRepo.GetEntryByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return err
	}

	if err := s.FinanceRepo.SoftDeleteEntry(ctx, actor.WorkspaceID, id, deletionBy(actor, time.Now())); err != nil {
		return err
	}

	s.AuditService.RecordMutation(actor, constant.TableFinanceEntries, id, constant.AuditActionSoftDelete, entry, nil)
	s.flushLists(actor.WorkspaceID)
	return nil
}

func (s *Finance) flushLists(workspaceID string) {
	cache.FinanceEntriesByWorkspaceID.Delete(workspaceID)
	cache.DashboardStatsByWorkspaceID.Delete(workspaceID)
}
