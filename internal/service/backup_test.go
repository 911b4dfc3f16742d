package service

import (
	"context"
	"crypto/sha256"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/pkg/vberr"
)

func emptyDocument(workspaceID string) *types.BackupDocument {
	return &types.BackupDocument{
		Meta: types.BackupMeta{
			WorkspaceID: workspaceID,
			GeneratedAt: time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC),
			GeneratedBy: "profile-1",
			Version:     constant.BackupDocumentVersion,
		},
		Workspace: model.Workspace{ID: workspaceID, Name: "Clinica Exemplo"},
		Tables: types.BackupTables{
			Profiles:         make([]model.Profile, 0),
			Tutors:           make([]model.Tutor, 0),
			Pets:             make([]model.Pet, 0),
			Agenda:           make([]model.AgendaEntry, 0),
			Visits:           make([]model.Visit, 0),
			Vaccines:         make([]model.Vaccine, 0),
			FinanceEntries:   make([]model.FinanceEntry, 0),
			InventoryItems:   make([]model.InventoryItem, 0),
			VisitAttachments: make([]model.VisitAttachment, 0),
			AuditLog:         make([]model.AuditLog, 0),
		},
	}
}

func TestBackupDocumentSerialization(t *testing.T) {
	t.Parallel()

	serialized, err := json.Marshal(emptyDocument("ws-1"))
	require.NoError(t, err)

	parsed := gjson.ParseBytes(serialized)

	t.Run("meta", func(t *testing.T) {
		assert.Equal(t, "ws-1", parsed.Get("meta.workspace_id").String())
		assert.Equal(t, "profile-1", parsed.Get("meta.generated_by").String())
		assert.Equal(t, int64(1), parsed.Get("meta.version").Int())
		assert.True(t, parsed.Get("meta.generated_at").Exists())
	})

	t.Run("empty tables serialize as arrays", func(t *testing.T) {
		tables := []string{
			constant.TableProfiles,
			constant.TableTutors,
			constant.TablePets,
			constant.TableAgenda,
			constant.TableVisits,
			constant.TableVaccines,
			constant.TableFinanceEntries,
			constant.TableInventoryItems,
			constant.TableVisitAttachments,
			constant.TableAuditLog,
		}
		for _, table := range tables {
			value := parsed.Get("tables." + table)
			assert.True(t, value.IsArray(), "tables.%s must be an array", table)
			assert.Equal(t, "[]", value.Raw, "tables.%s must never be null", table)
		}
	})

	t.Run("workspace row embedded", func(t *testing.T) {
		assert.Equal(t, "Clinica Exemplo", parsed.Get("workspace.name").String())
	})
}

func TestBackupChecksum(t *testing.T) {
	t.Parallel()

	first, err := json.Marshal(emptyDocument("ws-1"))
	require.NoError(t, err)
	second, err := json.Marshal(emptyDocument("ws-1"))
	require.NoError(t, err)

	// identical captures hash identically
	assert.Equal(t, sha256.Sum256(first), sha256.Sum256(second))

	changed := emptyDocument("ws-1")
	changed.Tables.Tutors = append(changed.Tables.Tutors, model.Tutor{ID: "t1", WorkspaceID: "ws-1", Name: "Ana"})
	third, err := json.Marshal(changed)
	require.NoError(t, err)

	assert.NotEqual(t, sha256.Sum256(first), sha256.Sum256(third))
}

func TestBackupFileNameFormat(t *testing.T) {
	t.Parallel()

	generatedAt := time.Date(2026, 3, 14, 9, 5, 42, 0, time.UTC)
	assert.Equal(t, "20260314-090542", generatedAt.Format("20060102-150405"))
}

func TestAsRows(t *testing.T) {
	t.Parallel()

	t.Run("missing key yields empty", func(t *testing.T) {
		rows, err := asRows[model.Tutor](gjson.Parse("{}").Get("tutores"))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("non-array yields empty", func(t *testing.T) {
		for _, doc := range []string{`{"tutores":{"id":"t1"}}`, `{"tutores":"bogus"}`, `{"tutores":42}`} {
			rows, err := asRows[model.Tutor](gjson.Parse(doc).Get("tutores"))
			require.NoError(t, err)
			assert.Empty(t, rows)
		}
	})

	t.Run("skips scalar noise between row objects", func(t *testing.T) {
		raw := gjson.Parse(`{"tutores":[{"id":"t1","nome":"Ana"},42,"noise",null,{"id":"t2","nome":"Bia"}]}`).Get("tutores")
		rows, err := asRows[model.Tutor](raw)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "t1", rows[0].ID)
		assert.Equal(t, "Bia", rows[1].Name)
	})

	t.Run("object with wrong field type is an error", func(t *testing.T) {
		raw := gjson.Parse(`{"tutores":[{"id":"t1"},{"id":{"nested":true}}]}`).Get("tutores")
		rows, err := asRows[model.Tutor](raw)
		assert.Error(t, err)
		assert.Empty(t, rows)
	})
}

func TestRestoreTable(t *testing.T) {
	t.Parallel()

	stamp := func(r *model.Tutor, ws string) { r.WorkspaceID = ws }

	t.Run("restamps workspace on every row", func(t *testing.T) {
		raw := gjson.Parse(`[{"id":"t1","workspace_id":"ws-other"},{"id":"t2"}]`)

		var upserted []model.Tutor
		count, err := restoreTable(context.Background(), raw, "ws-1", stamp, func(_ context.Context, rows []model.Tutor) error {
			upserted = append(upserted, rows...)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		require.Len(t, upserted, 2)
		for _, row := range upserted {
			assert.Equal(t, "ws-1", row.WorkspaceID)
		}
	})

	t.Run("chunks upserts", func(t *testing.T) {
		rows := make([]model.Tutor, 450)
		for i := range rows {
			rows[i] = model.Tutor{ID: "t" + string(rune('a'+i%26))}
		}
		serialized, err := json.Marshal(rows)
		require.NoError(t, err)

		var chunkSizes []int
		count, err := restoreTable(context.Background(), gjson.ParseBytes(serialized), "ws-1", stamp, func(_ context.Context, part []model.Tutor) error {
			chunkSizes = append(chunkSizes, len(part))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 450, count)
		assert.Equal(t, []int{constant.RestoreChunkSize, constant.RestoreChunkSize, 50}, chunkSizes)
	})

	t.Run("empty sequence skips upsert", func(t *testing.T) {
		called := false
		count, err := restoreTable(context.Background(), gjson.Parse(`[]`), "ws-1", stamp, func(_ context.Context, _ []model.Tutor) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.False(t, called)
	})

	t.Run("upsert failure propagates", func(t *testing.T) {
		count, err := restoreTable(context.Background(), gjson.Parse(`[{"id":"t1"}]`), "ws-1", stamp, func(_ context.Context, _ []model.Tutor) error {
			return errors.New("duplicate key")
		})
		assert.Error(t, err)
		assert.Zero(t, count)
	})

	t.Run("corrupt row aborts before any upsert", func(t *testing.T) {
		called := false
		count, err := restoreTable(context.Background(), gjson.Parse(`[{"id":"t1"},{"id":[1,2]}]`), "ws-1", stamp, func(_ context.Context, _ []model.Tutor) error {
			called = true
			return nil
		})
		assert.Error(t, err)
		assert.Zero(t, count)
		assert.False(t, called)
	})
}

func TestApplyRestoreSteps(t *testing.T) {
	t.Parallel()

	t.Run("reports zero counts for empty tables", func(t *testing.T) {
		steps := []restoreStep{
			{"tutores", func(raw gjson.Result) (int, error) { return 3, nil }},
			{"pets", func(raw gjson.Result) (int, error) { return 0, nil }},
		}
		restored, err := applyRestoreSteps(gjson.Parse(`{"tutores":[]}`), steps)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"tutores": 3, "pets": 0}, restored)
	})

	t.Run("first failure aborts naming the table", func(t *testing.T) {
		ran := make([]string, 0, 3)
		record := func(table string, err error) restoreStep {
			return restoreStep{table, func(raw gjson.Result) (int, error) {
				ran = append(ran, table)
				return 0, err
			}}
		}
		steps := []restoreStep{
			record("tutores", nil),
			record("pets", errors.New("column mismatch")),
			record("agenda", nil),
		}

		restored, err := applyRestoreSteps(gjson.Parse(`{}`), steps)
		require.Error(t, err)
		assert.Nil(t, restored)
		assert.Equal(t, []string{"tutores", "pets"}, ran)

		var vetErr *vberr.VetError
		require.ErrorAs(t, err, &vetErr)
		assert.Equal(t, vberr.CodeInternalError, vetErr.ErrorCode)
		assert.Contains(t, vetErr.Message, "failed to restore pets")
		assert.Contains(t, vetErr.Message, "column mismatch")
	})
}

func TestRestoreBackupValidation(t *testing.T) {
	t.Parallel()

	// every rejection below happens before any table is touched, so a
	// zero-value service is enough
	s := &Backup{}

	expectCode := func(t *testing.T, err error, code string) {
		t.Helper()
		var vetErr *vberr.VetError
		require.ErrorAs(t, err, &vetErr)
		assert.Equal(t, code, vetErr.ErrorCode)
	}

	t.Run("malformed json", func(t *testing.T) {
		report, err := s.RestoreBackup(context.Background(), []byte(`{"meta":`), "ws-1")
		assert.Nil(t, report)
		expectCode(t, err, vberr.CodeInvalidDocument)
	})

	t.Run("valid json but not an object", func(t *testing.T) {
		report, err := s.RestoreBackup(context.Background(), []byte(`[1,2,3]`), "ws-1")
		assert.Nil(t, report)
		expectCode(t, err, vberr.CodeInvalidDocument)
	})

	t.Run("missing workspace id", func(t *testing.T) {
		report, err := s.RestoreBackup(context.Background(), []byte(`{"meta":{},"tables":{}}`), "ws-1")
		assert.Nil(t, report)
		expectCode(t, err, vberr.CodeWrongWorkspace)
	})

	t.Run("foreign workspace", func(t *testing.T) {
		report, err := s.RestoreBackup(context.Background(), []byte(`{"meta":{"workspace_id":"ws-other"},"tables":{}}`), "ws-1")
		assert.Nil(t, report)
		expectCode(t, err, vberr.CodeWrongWorkspace)
	})

	t.Run("unsupported version", func(t *testing.T) {
		report, err := s.RestoreBackup(context.Background(), []byte(`{"meta":{"workspace_id":"ws-1","version":2},"tables":{}}`), "ws-1")
		assert.Nil(t, report)
		expectCode(t, err, vberr.CodeInvalidDocument)
	})
}
