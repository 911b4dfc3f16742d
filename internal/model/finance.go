package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

const (
	FinanceTypeIncome  = "RECEITA"
	FinanceTypeExpense = "DESPESA"
)

const (
	FinanceStatusPending   = "PENDENTE"
	FinanceStatusPaid      = "PAGO"
	FinanceStatusCancelled = "CANCELADO"
)

type FinanceEntry struct {
	bun.BaseModel `bun:"financeiro"`

	ID           string      `bun:"id,pk" json:"id"`
	WorkspaceID  string      `bun:"workspace_id" json:"workspace_id"`
	VisitID      null.String `bun:"atendimento_id" json:"atendimento_id"`
	TutorID      string      `bun:"tutor_id" json:"tutor_id"`
	PetID        null.String `bun:"pet_id" json:"pet_id"`
	Type         string      `bun:"tipo" json:"tipo"`
	Category     string      `bun:"categoria" json:"categoria"`
	Description  null.String `bun:"descricao" json:"descricao"`
	Amount       float64     `bun:"valor" json:"valor"`
	CompetencyAt string      `bun:"data_competencia" json:"data_competencia"`
	Status       string      `bun:"status" json:"status"`
	PaidAt       null.String `bun:"data_pagamento" json:"data_pagamento"`

	AuditFields
}
