package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Pet struct {
	bun.BaseModel `bun:"pets"`

	ID          string      `bun:"id,pk" json:"id"`
	WorkspaceID string      `bun:"workspace_id" json:"workspace_id"`
	TutorID     string      `bun:"tutor_id" json:"tutor_id"`
	Name        string      `bun:"nome" json:"nome"`
	Species     string      `bun:"especie" json:"especie"`
	Breed       null.String `bun:"raca" json:"raca"`
	Sex         null.String `bun:"sexo" json:"sexo"`
	Color       null.String `bun:"cor" json:"cor"`
	BirthDate   null.String `bun:"data_nascimento" json:"data_nascimento"`
	WeightKg    null.Float  `bun:"peso_kg" json:"peso_kg"`
	Microchip   null.String `bun:"microchip" json:"microchip"`
	Notes       null.String `bun:"observacoes" json:"observacoes"`

	AuditFields
}
