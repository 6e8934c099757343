package jobs

import (
	"context"
	"log/slog"

	"foodorders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes pending order events every second.
type OutboxRelayJob struct {
	handler outboxRelayer
	cmd     commands.RelayOutboxCommand
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOutboxRelayJob creates the relay job. Each tick relays at most one batch.
func NewOutboxRelayJob(handler outboxRelayer, cmd commands.RelayOutboxCommand, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler: handler,
		cmd:     cmd,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Name() string {
	return "outbox relay job"
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", j.tick)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job and waits for a running tick to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) tick() {
	ctx := context.Background()

	published, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		// the failed message stays pending and is retried on the next tick
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err, "published", published)
		return
	}
	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox messages published", "count", published)
	}
}
