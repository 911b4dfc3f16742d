package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Vaccine struct {
	bun.BaseModel `bun:"vacinas"`

	ID           string      `bun:"id,pk" json:"id"`
	WorkspaceID  string      `bun:"workspace_id" json:"workspace_id"`
	PetID        string      `bun:"pet_id" json:"pet_id"`
	VisitID      null.String `bun:"atendimento_id" json:"atendimento_id"`
	Name         string      `bun:"nome" json:"nome"`
	Batch        null.String `bun:"lote" json:"lote"`
	Manufacturer null.String `bun:"fabricante" json:"fabricante"`
	AppliedAt    string      `bun:"data_aplicacao" json:"data_aplicacao"`
	NextDoseAt   null.String `bun:"proxima_dose" json:"proxima_dose"`
	Notes        null.String `bun:"observacoes" json:"observacoes"`

	AuditFields
}
