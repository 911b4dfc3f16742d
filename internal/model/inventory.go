package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type InventoryItem struct {
	bun.BaseModel `bun:"estoque_itens"`

	ID          string      `bun:"id,pk" json:"id"`
	WorkspaceID string      `bun:"workspace_id" json:"workspace_id"`
	Name        string      `bun:"nome" json:"nome"`
	Category    null.String `bun:"categoria" json:"categoria"`
	SKU         null.String `bun:"sku" json:"sku"`
	Unit        string      `bun:"unidade" json:"unidade"`
	Quantity    float64     `bun:"quantidade_atual" json:"quantidade_atual"`
	MinQuantity float64     `bun:"quantidade_minima" json:"quantidade_minima"`
	AvgCost     null.Float  `bun:"custo_medio" json:"custo_medio"`
	SalePrice   null.Float  `bun:"valor_venda" json:"valor_venda"`
	ExpiresAt   null.String `bun:"validade" json:"validade"`
	Batch       null.String `bun:"lote" json:"lote"`
	Supplier    null.String `bun:"fornecedor" json:"fornecedor"`
	Notes       null.String `bun:"observacoes" json:"observacoes"`

	AuditFields
}
