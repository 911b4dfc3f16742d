package service

import (
	"context"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/types"
)

// Seed creates a small example dataset so a fresh workspace has something
// to look at.
type Seed struct {
	TutorService  *Tutor
	PetService    *Pet
	AgendaService *Agenda
}

func NewSeed(tutorService *Tutor, petService *Pet, agendaService *Agenda) *Seed {
	return &Seed{
		TutorService:  tutorService,
		PetService:    petService,
		AgendaService: agendaService,
	}
}

func (s *Seed) SeedWorkspaceData(ctx context.Context, actor *model.Profile) error {
	tutor, err := s.TutorService.CreateTutor(ctx, actor, &types.TutorRequest{
		Name:  "Cliente Exemplo",
		Phone: "(11) 99999-0000",
	})
	if err != nil {
		return err
	}

	pet, err := s.PetService.CreatePet(ctx, actor, &types.PetRequest{
		TutorID: tutor.ID,
		Name:    "Rex",
		Species: "Canino",
		Breed:   "SRD",
	})
	if err != nil {
		return err
	}

	entry := &types.AgendaRequest{
		TutorID:     tutor.ID,
		PetID:       pet.ID,
		Scope:       model.AgendaScopeGeneral,
		EventType:   model.AgendaEventConsultation,
		Title:       "Consulta inicial",
		ScheduledAt: nowRFC3339(),
		Status:      model.AgendaStatusScheduled,
	}
	if _, err := s.AgendaService.CreateEntry(ctx, actor, entry); err != nil {
		return err
	}
	return nil
}
