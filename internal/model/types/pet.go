package types

type PetRequest struct {
	TutorID   string  `json:"tutor_id" validate:"required,uuid"`
	Name      string  `json:"nome" validate:"required,min=2,max=160"`
	Species   string  `json:"especie" validate:"required,min=2,max=80"`
	Breed     string  `json:"raca" validate:"omitempty,max=120"`
	Sex       string  `json:"sexo" validate:"omitempty,max=20"`
	Color     string  `json:"cor" validate:"omitempty,max=80"`
	BirthDate string  `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	WeightKg  float64 `json:"peso_kg" validate:"omitempty,gte=0"`
	Microchip string  `json:"microchip" validate:"omitempty,max=80"`
	Notes     string  `json:"observacoes" validate:"omitempty,max=2000"`
}
