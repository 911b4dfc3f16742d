package types

type FinanceEntryRequest struct {
	VisitID      string  `json:"atendimento_id" validate:"omitempty,uuid"`
	TutorID      string  `json:"tutor_id" validate:"required,uuid"`
	PetID        string  `json:"pet_id" validate:"omitempty,uuid"`
	Type         string  `json:"tipo" validate:"required,oneof=RECEITA DESPESA"`
	Category     string  `json:"categoria" validate:"required,min=2,max=120"`
	Description  string  `json:"descricao" validate:"omitempty,max=2000"`
	Amount       float64 `json:"valor" validate:"gte=0"`
	CompetencyAt string  `json:"data_competencia" validate:"required,min=8"`
	Status       string  `json:"status" validate:"required,oneof=PENDENTE PAGO CANCELADO"`
	PaidAt       string  `json:"data_pagamento" validate:"omitempty,datetime=2006-01-02"`
}
