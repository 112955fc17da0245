// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	ory "github.com/ory/client-go"

	"github.com/lighthouse-hq/lighthouse/internal/kratos"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
)

var ErrInvalidIdentity = errors.New("identity has no id or email")

type Service struct {
	storage StorageInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration mirrors a registered or updated identity into the local
// user directory, which installations resolve their installer against.
func (s *Service) HandleRegistration(ctx context.Context, identity *ory.Identity) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	email := kratos.TraitEmail(identity)
	if identity.Id == "" || email == "" {
		return nil, ErrInvalidIdentity
	}

	user := kratos.ToUser(identity, email)

	if err := s.storage.UpsertUser(ctx, user); err != nil {
		s.count("failure")
		return nil, fmt.Errorf("failed to store user: %w", err)
	}

	s.count("success")
	s.logger.Infof("Recorded user %s, email verified: %v", user.ID, user.EmailVerified)

	return user, nil
}

func (s *Service) count(outcome string) {
	if err := s.monitor.IncrementEventCounter(map[string]string{"event": "user_registration", "outcome": outcome}); err != nil {
		s.logger.Debugf("failed to record user registration: %v", err)
	}
}
