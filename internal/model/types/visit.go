package types

type VisitRequest struct {
	TutorID        string `json:"tutor_id" validate:"required,uuid"`
	PetID          string `json:"pet_id" validate:"required,uuid"`
	VeterinarianID string `json:"veterinario_id" validate:"required,uuid"`
	AgendaID       string `json:"agenda_id" validate:"omitempty,uuid"`
	ChiefComplaint string `json:"queixa_principal" validate:"omitempty,max=2000"`
	Anamnesis      string `json:"anamnese" validate:"omitempty,max=4000"`
	Diagnosis      string `json:"diagnostico" validate:"omitempty,max=4000"`
	Treatment      string `json:"conduta" validate:"omitempty,max=4000"`
	Prescription   string `json:"prescricao" validate:"omitempty,max=4000"`
	FollowUpAt     string `json:"retorno_em" validate:"omitempty,datetime=2006-01-02"`
}

type VisitAttachmentRequest struct {
	VisitID   string `json:"atendimento_id" validate:"required,uuid"`
	FileName  string `json:"file_name" validate:"required,min=1,max=300"`
	MimeType  string `json:"mime_type" validate:"omitempty,max=120"`
	SizeBytes int64  `json:"size_bytes" validate:"omitempty,gte=0"`
}
