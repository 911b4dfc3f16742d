package auditwkr

import (
	"context"
	"runtime"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gopkg.in/guregu/null.v3"

	"github.com/vetbase/backend/internal/app/appconfig"
	"github.com/vetbase/backend/internal/constant"
	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/types"
	"github.com/vetbase/backend/internal/repo"
	"github.com/vetbase/backend/internal/service"
)

type WorkerDeps struct {
	fx.In

	AuditService *service.Audit
	AuditRepo    *repo.Audit
}

type Worker struct {
	// count is the number of running consumers
	count int

	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.AuditWorkerEnabled {
		log.Info().Msg("audit worker: disabled, skipping")
		return
	}

	ch := make(chan error)
	// handle & dump errors from workers
	go func() {
		for {
			err := <-ch
			if err != nil {
				log.Error().Err(err).Msg("audit worker error")
			}
		}
	}()
	auditWorkers := &Worker{
		count:      0,
		WorkerDeps: deps,
	}
	for i := 0; i < runtime.NumCPU(); i++ {
		go func() {
			err := auditWorkers.Consumer(context.Background(), ch)
			if err != nil {
				ch <- err
			}
		}()
		auditWorkers.count += 1
	}
}

func (w *Worker) Consumer(ctx context.Context, ch chan error) error {
	msgChan := make(chan *nats.Msg, 16)

	_, err := w.AuditService.NatsJS.ChanQueueSubscribe(constant.AuditSubjectPrefix+"*", "vetbase-audit-trail", msgChan, nats.AckWait(time.Second*10), nats.MaxAckPending(128))
	if err != nil {
		log.Err(err).Msg("failed to subscribe to audit subjects")
		return err
	}

	for {
		select {
		case msg := <-msgChan:
			func() {
				taskCtx, cancelTask := context.WithDeadline(ctx, time.Now().Add(time.Second*10))
				defer func() {
					cancelTask()
					if err := msg.Ack(); err != nil {
						log.Error().Err(err).Msg("failed to ack")
					}
				}()

				event := &types.AuditEvent{}
				if err := json.Unmarshal(msg.Data, event); err != nil {
					ch <- err
					return
				}

				if err := w.consumeEvent(taskCtx, event); err != nil {
					log.Error().
						Err(err).
						Str("table", event.TableName).
						Str("recordId", event.RecordID).
						Msg("failed to persist audit event")
					ch <- err
					return
				}
			}()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Worker) consumeEvent(ctx context.Context, event *types.AuditEvent) error {
	entry := &model.AuditLog{
		ID:          uuid.New().String(),
		WorkspaceID: event.WorkspaceID,
		TableName:   event.TableName,
		RecordID:    event.RecordID,
		Action:      event.Action,
		BeforeData:  event.BeforeData,
		AfterData:   event.AfterData,
		ActorID:     null.NewString(event.ActorID, event.ActorID != ""),
		ActorName:   null.NewString(event.ActorName, event.ActorName != ""),
		ActorRole:   null.NewString(event.ActorRole, event.ActorRole != ""),
		CreatedAt:   event.CreatedAt,
	}
	return w.AuditRepo.CreateEntry(ctx, entry)
}
