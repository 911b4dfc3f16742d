package types

type VaccineRequest struct {
	PetID        string `json:"pet_id" validate:"required,uuid"`
	VisitID      string `json:"atendimento_id" validate:"omitempty,uuid"`
	Name         string `json:"nome" validate:"required,min=2,max=160"`
	Batch        string `json:"lote" validate:"omitempty,max=120"`
	Manufacturer string `json:"fabricante" validate:"omitempty,max=120"`
	AppliedAt    string `json:"data_aplicacao" validate:"required,min=8"`
	NextDoseAt   string `json:"proxima_dose" validate:"omitempty,datetime=2006-01-02"`
	Notes        string `json:"observacoes" validate:"omitempty,max=2000"`
}
