package types

type ProfileUpdateRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=120"`
}

type ThemePreferenceRequest struct {
	ThemePreference string `json:"theme_preference" validate:"required,oneof=light dark"`
}

type ProfileRoleRequest struct {
	ID   string `json:"id" validate:"required,uuid"`
	Role string `json:"role" validate:"required,oneof=ADMIN VETERINARIO ESTAGIARIO"`
}

type ProfileApprovalRequest struct {
	ID       string `json:"id" validate:"required,uuid"`
	Approved bool   `json:"approved"`
}
