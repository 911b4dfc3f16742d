package types

type AgendaRequest struct {
	TutorID        string `json:"tutor_id" validate:"omitempty,uuid"`
	PetID          string `json:"pet_id" validate:"omitempty,uuid"`
	VeterinarianID string `json:"veterinario_id" validate:"omitempty,uuid"`
	Scope          string `json:"tipo" validate:"required,oneof=PESSOAL GERAL"`
	EventType      string `json:"tipo_evento" validate:"required,oneof=CONSULTA COMPROMISSO"`
	Title          string `json:"titulo" validate:"required,min=2,max=200"`
	Description    string `json:"descricao" validate:"omitempty,max=1200"`
	ScheduledAt    string `json:"data_hora" validate:"required,min=10"`
	Status         string `json:"status" validate:"required,oneof=AGENDADO CONFIRMADO EM_ATENDIMENTO CONCLUIDO CANCELADO"`
}
