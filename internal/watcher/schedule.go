package watcher

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/wazigov-narrator/internal/logger"
	"github.com/robfig/cron/v3"
)

type scheduledWatcher struct {
	spec    string
	handler EventHandler
	logger  logger.Logger
	cron    *cron.Cron
}

// NewScheduled creates a Watcher that signals on a cron schedule.
// Voices installed outside the watched directory are still picked up this way.
func NewScheduled(spec string, handler EventHandler, log logger.Logger) (Watcher, error) {
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}

	return &scheduledWatcher{
		spec:    spec,
		handler: handler,
		logger:  log,
		cron:    cron.New(),
	}, nil
}

// Start runs the schedule until ctx is cancelled
func (s *scheduledWatcher) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.handler(ctx, s.spec); err != nil {
			s.logger.Error(ctx, "Scheduled voice rescan failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule rescan: %w", err)
	}

	s.logger.Info(ctx, "Voice rescan scheduled: %s", s.spec)
	s.cron.Start()

	<-ctx.Done()
	<-s.cron.Stop().Done()
	return ctx.Err()
}

// Stop halts the schedule and waits for a running rescan to finish
func (s *scheduledWatcher) Stop() error {
	<-s.cron.Stop().Done()
	return nil
}
