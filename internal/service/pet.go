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

type Pet struct {
	PetRepo      *repo.Pet
	TutorRepo    *repo.Tutor
	AuditService *Audit
}

func NewPet(petRepo *repo.Pet, tutorRepo *repo.Tutor, auditService *Audit) *Pet {
	return &Pet{
		PetRepo:      petRepo,
		TutorRepo:    tutorRepo,
		AuditService: auditService,
	}
}

// Cache: pets#workspaceId:{workspaceId}, 5min
func (s *Pet) GetPets(ctx context.Context, workspaceID string) ([]*model.Pet, error) {
	var pets []*model.Pet
	err := cache.PetsByWorkspaceID.Get(workspaceID, &pets)
	if err == nil {
		return pets, nil
	}

	pets, err = s.PetRepo.GetPets(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	go cache.PetsByWorkspaceID.Set(workspaceID, pets, time.Minute*5)
	return pets, nil
}

func (s *Pet) GetPetsByTutorID(ctx context.Context, workspaceID, tutorID string) ([]*model.Pet, error) {
	return s.PetRepo.GetPetsByTutorID(ctx, workspaceID, tutorID)
}

func (s *Pet) GetPetByID(ctx context.Context, workspaceID, id string) (*model.Pet, error) {
	return s.PetRepo.GetPetByID(ctx, workspaceID, id)
}

func (s *Pet) CreatePet(ctx context.Context, actor *model.Profile, req *types.PetRequest) (*model.Pet, error) {
	// the referenced tutor must be alive in the same workspace
	if _, err := s.TutorRepo.GetTutorByID(ctx, actor.WorkspaceID, req.TutorID); err != nil {
		return nil, err
	}

	pet := &model.Pet{
		ID:          uuid.New().String(),
		WorkspaceID: actor.WorkspaceID,
		TutorID:     req.TutorID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       optString(req.Breed),
		Sex:         optString(req.Sex),
		Color:       optString(req.Color),
		BirthDate:   optString(req.BirthDate),
		WeightKg:    optFloat(req.WeightKg),
		Microchip:   optString(req.Microchip),
		Notes:       optString(req.Notes),
		AuditFields: stampCreate(actor, time.Now()),
	}
	if err := s.PetRepo.CreatePet(ctx, pet); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TablePets, pet.ID, constant.AuditActionInsert, nil, pet)
	s.flushLists(actor.WorkspaceID)
	return pet, nil
}

func (s *Pet) UpdatePet(ctx context.Context, actor *model.Profile, id string, req *types.PetRequest) (*model.Pet, error) {
	pet, err := s.PetRepo.GetPetByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	before := *pet

	pet.TutorID = req.TutorID
	pet.Name = req.Name
	pet.Species = req.Species
	pet.Breed = optString(req.Breed)
	pet.Sex = optString(req.Sex)
	pet.Color = optString(req.Color)
	pet.BirthDate = optString(req.BirthDate)
	pet.WeightKg = optFloat(req.WeightKg)
	pet.Microchip = optString(req.Microchip)
	pet.Notes = optString(req.Notes)
	stampUpdate(&pet.AuditFields, actor, time.Now())

	if err := s.PetRepo.UpdatePet(ctx, pet); err != nil {
		return nil, err
	}

	s.AuditService.RecordMutation(actor, constant.TablePets, pet.ID, constant.AuditActionUpdate, &before, pet)
	s.flushLists(actor.WorkspaceID)
	return pet, nil
}

func (s *Pet) DeletePet(ctx context.Context, actor *model.Profile, id string) error {
	pet, err := s.PetRepo.GetPetByID(ctx, actor.WorkspaceID, id)
	if err != nil {
		return err
	}

	if err := s.PetRepo.SoftDeletePet(ctx, actor.WorkspaceID, id, deletionBy(actor, time.Now())); err != nil {
		return err
	}

	s.AuditService.RecordMutation(actor, constant.TablePets, id, constant.AuditActionSoftDelete, pet, nil)
	s.flushLists(actor.WorkspaceID)
	return nil
}

func (s *Pet) flushLists(workspaceID string) {
	cache.PetsByWorkspaceID.Delete(workspaceID)
	cache.FormOptionsByWorkspaceID.Delete(workspaceID)
	cache.DashboardStatsByWorkspaceID.Delete(workspaceID)
}
