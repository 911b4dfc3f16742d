package types

type TutorRequest struct {
	Name    string `json:"nome" validate:"required,min=2,max=160"`
	CpfCnpj string `json:"cpf_cnpj" validate:"omitempty,max=30"`
	Phone   string `json:"telefone" validate:"omitempty,max=30"`
	Address string `json:"endereco" validate:"omitempty,max=300"`
	Notes   string `json:"observacoes" validate:"omitempty,max=2000"`
}
