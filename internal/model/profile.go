package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Profile struct {
	bun.BaseModel `bun:"profiles"`

	ID              string      `bun:"id,pk" json:"id"`
	WorkspaceID     string      `bun:"workspace_id" json:"workspace_id"`
	FullName        null.String `bun:"full_name" json:"full_name"`
	AvatarURL       null.String `bun:"avatar_url" json:"avatar_url"`
	Role            string      `bun:"role" json:"role"`
	IsApproved      bool        `bun:"is_approved" json:"is_approved"`
	ApprovedAt      null.Time   `bun:"approved_at" json:"approved_at"`
	ApprovedBy      null.String `bun:"approved_by" json:"approved_by"`
	ThemePreference string      `bun:"theme_preference" json:"theme_preference"`
	CreatedAt       time.Time   `bun:"created_at" json:"created_at"`

	// AuthToken is the bearer credential presented via the Authorization
	// header. Never serialized into responses or backup documents.
	AuthToken string `bun:"auth_token" json:"-"`
}
