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

type Tutor struct {
	TutorRepo    *repo.Tutor
	AuditService *Audit
}

func NewTutor(tutorRepo *repo.Tutor, auditService *Audit) *Tutor {
	return &Tutor{
		TutorRepo:    tutorRepo,
		AuditService: auditService,
	}
}

// Cache: tutores#workspaceId:{workspaceId}, 5min
func (s *Tutor) GetTutors(ctx context.Context, workspaceID string) ([]*model.Tutor, error) {
	var tutors []*model.Tutor
	err := cache.TutorsByWorkspaceID.Get(workspaceID, &tutors)
	if err == nil {
		return tutors, nil
	}

	tutors, err = s.TutorRepo.GetTutors(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	go cache.TutorsByWorkspaceID.Set(workspaceID, tutors, time.Minute*5)
	return tutors, nil
}

func (s *Tutor) GetTutorByID(ctx context.Context, workspaceID, id string) (*model.Tutor, error) {
	return s.TutorRepo.GetTutorByID(ctx, workspaceID, id)
}

func (s *Tutor) CreateTutor(ctx context.Context, actor *model.Profile, req *types.TutorRequest) (*model.Tutor, error) {
	tutor := &model.Tutor{
		ID:          uuid.New().String(),
		WorkspaceID: actor.WorkspaceID,
		Name:        req.Name,
		CpfCnpj:     optString(req.CpfCnpj),
		Phone:       optString(req.Phone),
		Address:     optString(req.Address),
		Notes:       optString(req.Notes),
		AuditFields: stampCreate(actor, time.Now()),
	}
	if err := s.TutorRepo.CreateTutor(ctx, tutor); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableTutors, tutor.ID, constant.AuditActionInsert, nil, tutor)
	s.flushLists(actor.WorkspaceID)
	return tutor, nil
}

func (s *Tutor) UpdateTutor(ctx context.Context, actor *model.Profile, id string, req *types.TutorRequest) (*model.Tutor, error) {
	tutor, err := s.TutorRepo.GetTutorByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	before := *tutor

	tutor.Name = req.Name
	tutor.CpfCnpj = optString(req.CpfCnpj)
	tutor.Phone = optString(req.Phone)
	tutor.Address = optString(req.Address)
	tutor.Notes = optString(req.Notes)
	stampUpdate(&tutor.AuditFields, actor, time.Now())

	if err := s.TutorRepo.UpdateTutor(ctx, tutor); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableTutors, tutor.ID, constant.AuditActionUpdate, &before, tutor)
	s.flushLists(actor.WorkspaceID)
	return tutor, nil
}

func (s *Tutor) DeleteTutor(ctx context.Context, actor *model.Profile, id string) error {
	tutor, err := s.TutorRepo.GetTutorByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return err
	}

	if err := s.TutorRepo.SoftDeleteTutor(ctx, actor.WorkspaceID, id, deletionBy(actor, time.Now())); err != nil {
		return err
	}

	s.AuditService.RecordMutation(actor, constant.TableTutors, id, constant.AuditActionSoftDelete, tutor, nil)
	s.flushLists(actor.WorkspaceID)
	return nil
}

func (s *Tutor) flushLists(workspaceID string) {
	cache.TutorsByWorkspaceID.Delete(workspaceID)
	cache.FormOptionsByWorkspaceID.Delete(workspaceID)
	cache.DashboardStatsByWorkspaceID.Delete(workspaceID)
}
