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

type Vaccine struct {
	VaccineRepo  *repo.Vaccine
	PetRepo      *repo.Pet
	AuditService *Audit
}

func NewVaccine(vaccineRepo *repo.Vaccine, petRepo *repo.Pet, auditService *Audit) *Vaccine {
	return &Vaccine{
		VaccineRepo:  vaccineRepo,
		PetRepo:      petRepo,
		AuditService: auditService,
	}
}

// Cache: vacinas#workspaceId:{workspaceId}, 5min
func (s *Vaccine) GetVaccines(ctx context.Context, workspaceID string) ([]*model.Vaccine, error) {
	var vaccines []*model.Vaccine
	err := cache.VaccinesByWorkspaceID.Get(workspaceID, &vaccines)
	if err == nil {
		return vaccines, nil
	}

	vaccines, err = s.VaccineRepo.GetVaccines(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	go cache.VaccinesByWorkspaceID.Set(workspaceID, vaccines, time.Minute*5)
	return vaccines, nil
}

func (s *Vaccine) GetVaccinesByPetID(ctx context.Context, workspaceID, petID string) ([]*model.Vaccine, error) {
	return s.VaccineRepo.GetVaccinesByPetID(ctx, workspaceID, petID)
}

func (s *Vaccine) CreateVaccine(ctx context.Context, actor *model.Profile, req *types.VaccineRequest) (*model.Vaccine, error) {
	if _, err := s.PetRepo.GetPetByID(ctx, actor.WorkspaceID, req.PetID); err != nil {
		return nil, err
	}

	vaccine := &model.Vaccine{
		ID:           uuid.New().String(),
		WorkspaceID:  actor.WorkspaceID,
		PetID:        req.PetID,
		VisitID:      optString(req.VisitID),
		Name:         req.Name,
		Batch:        optString(req.Batch),
		Manufacturer: optString(req.Manufacturer),
		AppliedAt:    req.AppliedAt,
		NextDoseAt:   optString(req.NextDoseAt),
		Notes:        optString(req.Notes),
		AuditFields:  stampCreate(actor, time.Now()),
	}
	if err := s.VaccineRepo.CreateVaccine(ctx, vaccine); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableVaccines, vaccine.ID, constant.AuditActionInsert, nil, vaccine)
	s.flushLists(actor.WorkspaceID)
	return vaccine, nil
}

func (s *Vaccine) UpdateVaccine(ctx context.Context, actor *model.Profile, id string, req *types.VaccineRequest) (*model.Vaccine, error) {
	vaccine, err := s.VaccineRepo.GetVaccineByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	before := *vaccine

	vaccine.PetID = req.PetID
	vaccine.VisitID = optString(req.VisitID)
	vaccine.Name = req.Name
	vaccine.Batch = optString(req.Batch)
	vaccine.Manufacturer = optString(req.Manufacturer)
	vaccine.AppliedAt = req.AppliedAt
	vaccine.NextDoseAt = optString(req.NextDoseAt)
	vaccine.Notes = optString(req.Notes)
	stampUpdate(&vaccine.AuditFields, actor, time.Now())

	if err := s.VaccineRepo.UpdateVaccine(ctx, vaccine); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TableVaccines, vaccine.ID, constant.AuditActionUpdate, &before, vaccine)
	s.flushLists(actor.WorkspaceID)
	return vaccine, nil
}

func (s *Vaccine) DeleteVaccine(ctx context.Context, actor *model.Profile, id string) error {
	vaccine, err := s.VaccineRepo.GetVaccineByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return err
	}

	if err := s.VaccineRepo.SoftDeleteVaccine(ctx, actor.WorkspaceID, id, deletionBy(actor, time.Now())); err != nil {
		return err
	}

	s.AuditService.RecordMutation(actor, constant.TableVaccines, id, constant.AuditActionSoftDelete, vaccine, nil)
	s.flushLists(actor.WorkspaceID)
	return nil
}

func (s *Vaccine) flushLists(workspaceID string) {
	cache.VaccinesByWorkspaceID.Delete(workspaceID)
	cache.DashboardStatsByWorkspaceID.Delete(workspaceID)
}
