package types

type InventoryItemRequest struct {
	Name        string  `json:"nome" validate:"required,min=2,max=160"`
	Category    string  `json:"categoria" validate:"omitempty,max=120"`
	SKU         string  `json:"sku" validate:"omitempty,max=80"`
	Unit        string  `json:"unidade" validate:"required,min=1,max=20"`
	Quantity    float64 `json:"quantidade_atual" validate:"gte=0"`
	MinQuantity float64 `json:"quantidade_minima" validate:"gte=0"`
	AvgCost     float64 `json:"custo_medio" validate:"omitempty,gte=0"`
	SalePrice   float64 `json:"valor_venda" validate:"omitempty,gte=0"`
	ExpiresAt   string  `json:"validade" validate:"omitempty,datetime=2006-01-02"`
	Batch       string  `json:"lote" validate:"omitempty,max=120"`
	Supplier    string  `json:"fornecedor" validate:"omitempty,max=160"`
	Notes       string  `json:"observacoes" validate:"omitempty,max=2000"`
}
