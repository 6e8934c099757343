// Package jobs runs the service's background work on github.com/robfig/cron/v3.
//
// OutboxRelayJob ticks every second and relays one batch of pending order events from
// the outbox to the configured publisher. A failed publish ends the batch; the message
// stays pending and is the first one retried on the next tick. A tick that is still
// running when the next one is due causes that one to be skipped.
//
//	manager := jobs.NewJobManager(&relayHandler, relayCmd, logger)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
package jobs
