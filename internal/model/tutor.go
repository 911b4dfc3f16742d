package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Tutor is a pet owner. Column names stay in Portuguese to match the wire
// format of exported backup documents.
type Tutor struct {
	bun.BaseModel `bun:"tutores"`

	ID          string      `bun:"id,pk" json:"id"`
	WorkspaceID string      `bun:"workspace_id" json:"workspace_id"`
	Name        string      `bun:"nome" json:"nome"`
	CpfCnpj     null.String `bun:"cpf_cnpj" json:"cpf_cnpj"`
	Phone       null.String `bun:"telefone" json:"telefone"`
	Address     null.String `bun:"endereco" json:"endereco"`
	Notes       null.String `bun:"observacoes" json:"observacoes"`

	AuditFields
}
