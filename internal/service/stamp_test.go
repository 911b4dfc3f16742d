package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/vetbase/backend/internal/model"
)

func TestStamping(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC)
	named := &model.Profile{ID: "profile-1", FullName: null.StringFrom("Dra. Ana")}
	anonymous := &model.Profile{ID: "profile-2"}

	t.Run("create stamps both sides", func(t *testing.T) {
		fields := stampCreate(named, now)
		assert.Equal(t, "profile-1", fields.CreatedBy)
		assert.Equal(t, "Dra. Ana", fields.CreatedByName)
		assert.Equal(t, "profile-1", fields.UpdatedBy)
		assert.Equal(t, now, fields.UpdatedAt)
	})

	t.Run("actor without a name falls back to id", func(t *testing.T) {
		fields := stampCreate(anonymous, now)
		assert.Equal(t, "profile-2", fields.CreatedByName)
	})

	t.Run("update leaves create side untouched", func(t *testing.T) {
		fields := stampCreate(named, now)
		later := now.Add(time.Hour)
		stampUpdate(&fields, anonymous, later)
		assert.Equal(t, "profile-1", fields.CreatedBy)
		assert.Equal(t, now, fields.CreatedAt)
		assert.Equal(t, "profile-2", fields.UpdatedBy)
		assert.Equal(t, later, fields.UpdatedAt)
	})

	t.Run("deletion records the actor", func(t *testing.T) {
		deletion := deletionBy(named, now)
		assert.Equal(t, "profile-1", deletion.By)
		assert.Equal(t, "Dra. Ana", deletion.ByName)
		assert.Equal(t, now, deletion.At)
	})
}

func TestParseAgendaTime(t *testing.T) {
	t.Parallel()

	t.Run("accepted layouts", func(t *testing.T) {
		for _, value := range []string{
			"2026-03-14T09:05:00Z",
			"2026-03-14T09:05:00-03:00",
			"2026-03-14T09:05:00",
			"2026-03-14T09:05",
		} {
			parsed, err := parseAgendaTime(value)
			require.NoError(t, err, value)
			assert.Equal(t, 2026, parsed.Year())
		}
	})

	t.Run("rejects dates without time", func(t *testing.T) {
		_, err := parseAgendaTime("2026-03-14")
		assert.Error(t, err)
	})
}

func TestOptionalFields(t *testing.T) {
	t.Parallel()

	assert.False(t, optString("").Valid)
	assert.True(t, optString("x").Valid)
	assert.False(t, optFloat(0).Valid)
	assert.True(t, optFloat(12.5).Valid)
}
