package service

import (
	"context"
	"time"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/cache"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/pkg/async"
	"github.com/vetbase/backend/internal/repo"
)

type Options struct {
	TutorRepo   *repo.Tutor
	PetRepo     *repo.Pet
	ProfileRepo *repo.Profile
	VisitRepo   *repo.Visit
}

func NewOptions(tutorRepo *repo.Tutor, petRepo *repo.Pet, profileRepo *repo.Profile, visitRepo *repo.Visit) *Options {
	return &Options{
		TutorRepo:   tutorRepo,
		PetRepo:     petRepo,
		ProfileRepo: profileRepo,
		VisitRepo:   visitRepo,
	}
}

// Cache: formOptions#workspaceId:{workspaceId}, 5min
func (s *Options) GetFormOptions(ctx context.Context, workspaceID string) (*types.FormOptions, error) {
	var cached types.FormOptions
	err := cache.FormOptionsByWorkspaceID.Get(workspaceID, &cached)
	if err == nil {
		return &cached, nil
	}

	var (
		tutors        []*model.Tutor
		pets          []*model.Pet
		veterinarians []*model.Profile
		visits        []*model.Visit
	)
	err = async.WaitAll(
		async.Errable(func() (err error) {
			tutors, err = s.TutorRepo.GetTutors(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			pets, err = s.PetRepo.GetPets(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			veterinarians, err = s.ProfileRepo.GetVeterinarianOptions(ctx, workspaceID)
			return err
		}),
		async.Errable(func() (err error) {
			visits, err = s.VisitRepo.GetVisits(ctx, workspaceID)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	options := &types.FormOptions{
		Tutors:        make([]types.TutorOption, 0, len(tutors)),
		Pets:          make([]types.PetOption, 0, len(pets)),
		Veterinarians: make([]types.VeterinarianOption, 0, len(veterinarians)),
		Visits:        make([]types.VisitOption, 0, len(visits)),
	}
	for _, tutor := range tutors {
		options.Tutors = append(options.Tutors, types.TutorOption{ID: tutor.ID, Name: tutor.Name})
	}
	for _, pet := range pets {
		options.Pets = append(options.Pets, types.PetOption{ID: pet.ID, Name: pet.Name, TutorID: pet.TutorID})
	}
	for _, vet := range veterinarians {
		options.Veterinarians = append(options.Veterinarians, types.VeterinarianOption{ID: vet.ID, FullName: vet.FullName.ValueOrZero(), Role: vet.Role})
	}
	for _, visit := range visits {
		options.Visits = append(options.Visits, types.VisitOption{ID: visit.ID, PetID: visit.PetID, CreatedAt: visit.CreatedAt.Format(time.RFC3339)})
	}

	go cache.FormOptionsByWorkspaceID.Set(workspaceID, *options, time.Minute*5)
	return options, nil
}
