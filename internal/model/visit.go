package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Visit is a clinical consultation record (atendimento).
type Visit struct {
	bun.BaseModel `bun:"atendimentos"`

	ID             string      `bun:"id,pk" json:"id"`
	WorkspaceID    string      `bun:"workspace_id" json:"workspace_id"`
	TutorID        string      `bun:"tutor_id" json:"tutor_id"`
	PetID          string      `bun:"pet_id" json:"pet_id"`
	VeterinarianID string      `bun:"veterinario_id" json:"veterinario_id"`
	AgendaID       null.String `bun:"agenda_id" json:"agenda_id"`
	ChiefComplaint null.String `bun:"queixa_principal" json:"queixa_principal"`
	Anamnesis      null.String `bun:"anamnese" json:"anamnese"`
	Diagnosis      null.String `bun:"diagnostico" json:"diagnostico"`
	Treatment      null.String `bun:"conduta" json:"conduta"`
	Prescription   null.String `bun:"prescricao" json:"prescricao"`
	FollowUpAt     null.String `bun:"retorno_em" json:"retorno_em"`

	AuditFields
}
