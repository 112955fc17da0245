// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
)

// Scheduler reconciles every installed workspace on a fixed interval, which
// catches channel changes whose events were missed.
type Scheduler struct {
	scheduler gocron.Scheduler
	resolver  ReconcilerInterface

	logger logging.LoggerInterface
}

func (s *Scheduler) Start() {
	s.logger.Info("starting channel reconciliation scheduler")
	s.scheduler.Start()
}

func (s *Scheduler) Shutdown() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) run(ctx context.Context) {
	if err := s.resolver.ReconcileAll(ctx); err != nil {
		s.logger.Errorf("periodic reconciliation failed: %v", err)
	}
}

// NewScheduler registers the reconciliation job, it does not start it.
func NewScheduler(resolver ReconcilerInterface, interval time.Duration, logger logging.LoggerInterface) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("reconcile interval must be positive, got %s", interval)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	s := &Scheduler{
		scheduler: scheduler,
		resolver:  resolver,
		logger:    logger,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.run, context.Background()),
		gocron.WithName("channel-reconciliation"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register reconciliation job: %w", err)
	}

	return s, nil
}
