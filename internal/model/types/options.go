package types

// Form option fragments used by clients to populate selectors.

type TutorOption struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

type PetOption struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	TutorID string `json:"tutor_id"`
}

type VeterinarianOption struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type VisitOption struct {
	ID        string `json:"id"`
	PetID     string `json:"pet_id"`
	CreatedAt string `json:"created_at"`
}

type FormOptions struct {
	Tutors        []TutorOption        `json:"tutores"`
	Pets          []PetOption          `json:"pets"`
	Veterinarians []VeterinarianOption `json:"veterinarios"`
	Visits        []VisitOption        `json:"atendimentos"`
}
