package jobs

import (
	"fmt"
	"log/slog"

	"foodorders/internal/core/application/usecases/commands"
)

// Job is a background task the manager can start and stop.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager starts its jobs in order and stops them in reverse order.
type JobManager struct {
	jobs    []Job
	started []Job
}

// NewJobManager wires the outbox relay job.
func NewJobManager(
	relayHandler outboxRelayer,
	relayCmd commands.RelayOutboxCommand,
	logger *slog.Logger,
) *JobManager {
	return NewJobManagerOf(NewOutboxRelayJob(relayHandler, relayCmd, logger))
}

func NewJobManagerOf(jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts every job. When one fails the jobs already running are stopped.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s: %w", job.Name(), err)
		}
		jm.started = append(jm.started, job)
	}
	return nil
}

// StopAll stops the running jobs and waits for them.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
