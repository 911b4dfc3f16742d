package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Agenda entry statuses.
const (
	AgendaStatusScheduled  = "AGENDADO"
	AgendaStatusConfirmed  = "CONFIRMADO"
	AgendaStatusInProgress = "EM_ATENDIMENTO"
	AgendaStatusDone       = "CONCLUIDO"
	AgendaStatusCancelled  = "CANCELADO"
)

const (
	AgendaScopePersonal = "PESSOAL"
	AgendaScopeGeneral  = "GERAL"
)

const (
	AgendaEventConsultation = "CONSULTA"
	AgendaEventAppointment  = "COMPROMISSO"
)

type AgendaEntry struct {
	bun.BaseModel `bun:"agenda"`

	ID             string      `bun:"id,pk" json:"id"`
	WorkspaceID    string      `bun:"workspace_id" json:"workspace_id"`
	TutorID        null.String `bun:"tutor_id" json:"tutor_id"`
	PetID          null.String `bun:"pet_id" json:"pet_id"`
	VeterinarianID null.String `bun:"veterinario_id" json:"veterinario_id"`
	Scope          string      `bun:"tipo" json:"tipo"`
	EventType      string      `bun:"tipo_evento" json:"tipo_evento"`
	Title          string      `bun:"titulo" json:"titulo"`
	Description    null.String `bun:"descricao" json:"descricao"`
	ScheduledAt    time.Time   `bun:"data_hora" json:"data_hora"`
	Status         string      `bun:"status" json:"status"`

	AuditFields
}
