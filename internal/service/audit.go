package service

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/repo"
)

type Audit struct {
	AuditRepo *repo.Audit
	NatsJS    nats.JetStreamContext
}

func NewAudit(auditRepo *repo.Audit, natsJs nats.JetStreamContext) *Audit {
	return &Audit{
		AuditRepo: auditRepo,
		NatsJS:    natsJs,
	}
}

func (s *Audit) GetEntries(ctx context.Context, workspaceID string, limit int) ([]*model.AuditLog, error) {
	return s.AuditRepo.GetEntries(ctx, workspaceID, limit)
}

// RecordMutation publishes an audit event for one tenant table mutation.
// Best effort: a publish failure is logged but never fails the mutation
// itself, so the trail may lag the data under broker outages.
func (s *Audit) RecordMutation(actor *model.Profile, tableName, recordID, action string, before, after any) {
	event := types.AuditEvent{
		WorkspaceID: actor.WorkspaceID,
		TableName:   tableName,
		RecordID:    recordID,
		Action:      action,
		ActorID:     actor.ID,
		ActorName:   actorName(actor),
		ActorRole:   actor.Role,
		CreatedAt:   time.Now(),
	}

	if before != nil {
		data, err := json.Marshal(before)
		if err == nil {
			event.BeforeData = data
		}
	}
	if after != nil {
		data, err := json.Marshal(after)
		if err == nil {
			event.AfterData = data
		}
	}

	eventJson, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("table", tableName).Msg("audit: failed to marshal event")
		return
	}

	_, err = s.NatsJS.PublishAsync(constant.AuditSubjectPrefix+tableName, eventJson, nats.MsgId(xid.New().String()))
	if err != nil {
		log.Warn().Err(err).Str("table", tableName).Msg("audit: failed to publish event")
	}
}
