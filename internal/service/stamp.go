package service

import (
	"time"

	"gopkg.in/guregu/null.v3"

	"github.com/vetbase/backend/internal/model"
)

func actorName(actor *model.Profile) string {
	if actor.FullName.Valid {
		return actor.FullName.String
	}
	return actor.ID
}

func stampCreate(actor *model.Profile, now time.Time) model.AuditFields {
	name := actorName(actor)
	return model.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor.ID,
		CreatedByName: name,
		UpdatedAt:     now,
		UpdatedBy:     actor.ID,
		UpdatedByName: name,
	}
}

func stampUpdate(fields *model.AuditFields, actor *model.Profile, now time.Time) {
	fields.UpdatedAt = now
	fields.UpdatedBy = actor.ID
	fields.UpdatedByName = actorName(actor)
}

func deletionBy(actor *model.Profile, now time.Time) *model.Deletion {
	return &model.Deletion{
		At:     now,
		By:     actor.ID,
		ByName: actorName(actor),
	}
}

func nowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

// optString maps an empty request field to SQL NULL.
func optString(s string) null.String {
	return null.NewString(s, s != "")
}

func optFloat(f float64) null.Float {
	return null.NewFloat(f, f != 0)
}
