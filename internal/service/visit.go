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

type Visit struct {
	VisitRepo    *repo.Visit
	PetRepo      *repo.Pet
	AuditService *Audit
}

func NewVisit(visitRepo *repo.Visit, petRepo *repo.Pet, auditService *Audit) *Visit {
	return &Visit{
		VisitRepo:    visitRepo,
		PetRepo:      petRepo,
		AuditService: auditService,
	}
}

// Cache: atendimentos#workspaceId:{workspaceId}, 5min
func (s *Visit) GetVisits(ctx context.Context, workspaceID string) ([]*model.Visit, error) {
	var visits []*model.Visit
	err := cache.VisitsByWorkspaceID.Get(workspaceID, &visits)
	if err == nil {
		return visits, nil
	}

	visits, err = s.VisitRepo.GetVisits(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	go cache.VisitsByWorkspaceID.Set(workspaceID, visits, time.Minute*5)
	return visits, nil
}

func (s *Visit) GetVisitsByPetID(ctx context.Context, workspaceID, petID string) ([]*model.Visit, error) {
	return s.VisitRepo.GetVisitsByPetID(ctx, workspaceID, petID)
}

func (s *Visit) GetVisitByID(ctx context.Context, workspaceID, id string) (*model.Visit, error) {
	return s.VisitRepo.GetVisitByID(ctx, workspaceID, id)
}

func (s *Visit) CreateVisit(ctx context.Context, actor *model.Profile, req *types.VisitRequest) (*model.Visit, error) {
	if _, err := s.PetRepo.GetPetByID(ctx, actor.WorkspaceID, req.PetID); err != nil {
		return nil, err
	}

	visit := &model.Visit{
		ID:             uuid.New().String(),
		WorkspaceID:    actor.WorkspaceID,
		TutorID:        req.TutorID,
		PetID:          req.PetID,
		VeterinarianID: req.VeterinarianID,
		AgendaID:       optString(req.AgendaID),
		ChiefComplaint: optString(req.ChiefComplaint),
		Anamnesis:      optString(req.Anamnesis),
		Diagnosis:      optString(req.Diagnosis),
		Treatment:      optString(req.Treatment),
		Prescription:   optString(req.Prescription),
		FollowUpAt:     optString(req.FollowUpAt),
		AuditFields:    stampCreate(actor, time.Now()),
	}
	if err := s.VisitRepo.CreateVisit(ctx, visit); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableVisits, visit.ID, constant.AuditActionInsert, nil, visit)
	s.flushLists(actor.WorkspaceID)
	return visit, nil
}

func (s *Visit) UpdateVisit(ctx context.Context, actor *model.Profile, id string, req *types.VisitRequest) (*model.Visit, error) {
	visit, err := s.VisitRepo.GetVisitByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	before := *visit

	visit.TutorID = req.TutorID
	visit.PetID = req.PetID
	visit.VeterinarianID = req.VeterinarianID
	visit.AgendaID = optString(req.AgendaID)
	visit.ChiefComplaint = optString(req.ChiefComplaint)
	visit.Anamnesis = optString(req.Anamnesis)
	visit.Diagnosis = optString(req.Diagnosis)
	visit.Treatment = optString(req.Treatment)
	visit.Prescription = optString(req.Prescription)
	visit.FollowUpAt = optString(req.FollowUpAt)
	stampUpdate(&visit.AuditFields, actor, time.Now())

	if err := s.VisitRepo.UpdateVisit(ctx, visit); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableVisits, visit.ID, constant.AuditActionUpdate, &before, visit)
	s.flushLists(actor.WorkspaceID)
	return visit, nil
}

func (s *Visit) DeleteVisit(ctx context.Context, actor *model.Profile, id string) error {
	visit, err := s.VisitRepo.GetVisitByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return err
	}

	if err := s.VisitRepo.SoftDeleteVisit(ctx, actor.WorkspaceID, id, deletionBy(actor, time.Now())); err != nil {
		return err
	}

	s.AuditService.RecordMutation(actor, constant.TableVisits, id, constant.AuditActionSoftDelete, visit, nil)
	s.flushLists(actor.WorkspaceID)
	return nil
}

func (s *Visit) flushLists(workspaceID string) {
	cache.VisitsByWorkspaceID.Delete(workspaceID)
	cache.FormOptionsByWorkspaceID.Delete(workspaceID)
	cache.DashboardStatsByWorkspaceID.Delete(workspaceID)
}
