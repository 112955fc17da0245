// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package brands manages the tenants whose analytics accounts channels get
// routed to.
package brands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/storage"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
)

var (
	ErrNotFound  = errors.New("brand not found")
	ErrForbidden = errors.New("brand owned by another user")
)

type Service struct {
	storage     StorageInterface
	authz       AuthzInterface
	accounts    AccountsInterface
	credentials CredentialsInterface
	tracer      tracing.TracingInterface
	monitor     monitoring.MonitorInterface
	logger      logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	accounts AccountsInterface,
	credentials CredentialsInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		authz:       authz,
		accounts:    accounts,
		credentials: credentials,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// CreateBrand stores a brand owned by the caller and returns the link that
// connects it to the analytics provider.
func (s *Service) CreateBrand(ctx context.Context, ownerUserID, name, website string) (*types.Brand, string, error) {
	ctx, span := s.tracer.Start(ctx, "brands.Service.CreateBrand")
	defer span.End()

	created, err := s.storage.CreateBrand(ctx, &types.Brand{
		ID:          uuid.NewString(),
		Name:        name,
		Website:     website,
		OwnerUserID: ownerUserID,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create brand: %w", err)
	}

	if err := s.authz.AssignBrandOwner(ctx, created.ID, ownerUserID); err != nil {
		// a stored brand always has an owner tuple
		if derr := s.storage.DeleteBrand(ctx, created.ID); derr != nil {
			s.logger.Errorf("failed to remove unowned brand %s: %v", created.ID, derr)
		}

		return nil, "", fmt.Errorf("failed to assign brand owner: %w", err)
	}

	// registration is best effort
	if err := s.accounts.RegisterAccount(ctx, created.ID, created.Name); err != nil {
		s.logger.Warnf("failed to register brand %s with the analytics provider: %v", created.ID, err)
	}

	url, err := s.credentials.AuthorizationURL(ctx, created.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build authorization link: %w", err)
	}

	if err := s.monitor.IncrementEventCounter(map[string]string{"event": "brand", "outcome": "created"}); err != nil {
		s.logger.Debugf("failed to record brand event: %v", err)
	}

	return created, url, nil
}

func (s *Service) ListBrands(ctx context.Context, ownerUserID string) ([]*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "brands.Service.ListBrands")
	defer span.End()

	brands, err := s.storage.ListBrandsByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	return brands, nil
}

func (s *Service) AuthorizationURL(ctx context.Context, userID, brandID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "brands.Service.AuthorizationURL")
	defer span.End()

	if err := s.checkOwner(ctx, userID, brandID); err != nil {
		return "", err
	}

	return s.credentials.AuthorizationURL(ctx, brandID)
}

// DeleteBrand removes a brand. Channels routed to it become unmapped and its
// workspace associations go with it.
func (s *Service) DeleteBrand(ctx context.Context, userID, brandID string) error {
	ctx, span := s.tracer.Start(ctx, "brands.Service.DeleteBrand")
	defer span.End()

	if err := s.checkOwner(ctx, userID, brandID); err != nil {
		return err
	}

	if err := s.storage.DeleteBrand(ctx, brandID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("brand %s: %w", brandID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete brand from storage: %w", err)
	}

	if err := s.authz.DeleteBrand(ctx, brandID); err != nil {
		s.logger.Errorf("failed to delete brand from authz: %v", err)
	}

	return nil
}

// checkOwner compares against the stored owner, the authorization mirror may
// be disabled.
func (s *Service) checkOwner(ctx context.Context, userID, brandID string) error {
	b, err := s.storage.GetBrand(ctx, brandID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("brand %s: %w", brandID, ErrNotFound)
	}

	if err != nil {
		return fmt.Errorf("failed to load brand %s: %w", brandID, err)
	}

	if b.OwnerUserID != userID {
		return fmt.Errorf("brand %s: %w", brandID, ErrForbidden)
	}

	return nil
}
