// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package credentials owns the provider token pair of every brand and
// refreshes it on demand, with at most one refresh in flight per brand.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/state"
	"github.com/lighthouse-hq/lighthouse/internal/storage"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultRefreshWindow        = 5 * time.Minute
	DefaultRefreshTokenLifetime = 30 * 24 * time.Hour
	DefaultLockWait             = 30 * time.Second

	lockPrefix = "refresh:"
)

type Config struct {
	// RefreshWindow is the minimum remaining lifetime of a returned token.
	RefreshWindow time.Duration
	// RefreshTokenLifetime is assumed for every refresh token the provider
	// hands out, it does not report one.
	RefreshTokenLifetime time.Duration
	// LockWait bounds how long a refresh waits for the cross-process lock.
	LockWait time.Duration
}

type Store struct {
	storage  StorageInterface
	provider ProviderInterface
	locker   LockerInterface
	state    StateInterface

	flights singleflight.Group
	config  Config
	now     func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ StoreInterface = (*Store)(nil)

// GetValidAccessToken returns an access token that stays valid for at least
// the refresh window, refreshing it first when needed. Concurrent callers for
// the same brand share a single refresh.
func (s *Store) GetValidAccessToken(ctx context.Context, brandID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "credentials.Store.GetValidAccessToken")
	defer span.End()

	brand, err := s.getBrand(ctx, brandID)
	if err != nil {
		return "", err
	}

	if s.usable(brand) {
		return *brand.AccessToken, nil
	}

	if !s.refreshable(brand) {
		return "", fmt.Errorf("brand %s has no usable refresh token: %w", brandID, ErrReauthRequired)
	}

	// the flight outlives any single caller, a cancelled waiter must not
	// abort a refresh the others are waiting for
	flight := s.flights.DoChan(brandID, func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx), brandID)
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for token refresh: %w: %w", ErrTransientProvider, ctx.Err())
	case res := <-flight:
		if res.Err != nil {
			return "", res.Err
		}

		return res.Val.(string), nil
	}
}

// refresh runs inside the flight. The brand is read again under the lock so
// a refresh completed by another caller or process is reused, not repeated.
func (s *Store) refresh(ctx context.Context, brandID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "credentials.Store.refresh")
	defer span.End()

	release, err := s.acquire(ctx, brandID)
	if err != nil {
		s.countRefresh("lock_failed")
		return "", err
	}
	defer release()

	brand, err := s.getBrand(ctx, brandID)
	if err != nil {
		return "", err
	}

	if s.usable(brand) {
		return *brand.AccessToken, nil
	}

	if !s.refreshable(brand) {
		return "", fmt.Errorf("brand %s has no usable refresh token: %w", brandID, ErrReauthRequired)
	}

	now := s.now()

	grant, err := s.provider.Refresh(ctx, *brand.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrReauthRequired) {
			s.countRefresh("reauth_required")
			s.revoke(ctx, brand)
		} else {
			s.countRefresh("transient")
		}

		return "", err
	}

	pair := types.TokenPair{
		AccessToken:      grant.AccessToken,
		RefreshToken:     grant.RefreshToken,
		AccessExpiresAt:  grant.Expiry,
		RefreshExpiresAt: now.Add(s.config.RefreshTokenLifetime),
	}

	if pair.RefreshToken == "" {
		pair.RefreshToken = *brand.RefreshToken
	}

	if err := s.storage.UpdateBrandTokens(ctx, brandID, pair); err != nil {
		s.countRefresh("persist_failed")
		s.logger.Errorf("failed to persist refreshed tokens for brand %s: %v", brandID, err)
		return "", fmt.Errorf("failed to persist refreshed tokens: %w", err)
	}

	s.countRefresh("success")
	s.logger.Infof("refreshed tokens for brand %s, access token valid until %s", brandID, pair.AccessExpiresAt.Format(time.RFC3339))

	return pair.AccessToken, nil
}

// revoke clears the stored pair so the brand stays in reauthorization until
// a new authorization completes.
func (s *Store) revoke(ctx context.Context, brand *types.Brand) {
	if err := s.storage.RevokeBrandTokens(ctx, brand.ID); err != nil {
		s.logger.Errorf("failed to clear rejected tokens for brand %s: %v", brand.ID, err)
		return
	}

	s.logger.Security().CredentialRevoked(brand.OwnerUserID, brand.ID)
}

// AuthorizationURL returns the provider link that starts a fresh
// authorization for the brand.
func (s *Store) AuthorizationURL(ctx context.Context, brandID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "credentials.Store.AuthorizationURL")
	defer span.End()

	if _, err := s.getBrand(ctx, brandID); err != nil {
		return "", err
	}

	st, err := s.state.Issue(state.PurposeBrandAuthorization, brandID)
	if err != nil {
		return "", err
	}

	return s.provider.AuthorizationURL(brandID, st), nil
}

// CompleteAuthorization exchanges the code returned by the provider and
// resets the pair of the brand named by the signed state. It is the only
// way out of the reauthorization state.
func (s *Store) CompleteAuthorization(ctx context.Context, code, st string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "credentials.Store.CompleteAuthorization")
	defer span.End()

	brandID, err := s.state.Verify(state.PurposeBrandAuthorization, st)
	if err != nil {
		return "", err
	}

	if code == "" {
		return "", fmt.Errorf("missing authorization code: %w", ErrConfig)
	}

	if _, err := s.getBrand(ctx, brandID); err != nil {
		return "", err
	}

	release, err := s.acquire(ctx, brandID)
	if err != nil {
		return "", err
	}
	defer release()

	now := s.now()

	grant, err := s.provider.Exchange(ctx, code)
	if err != nil {
		s.countAuthorization("failed")
		return "", err
	}

	pair := types.TokenPair{
		AccessToken:      grant.AccessToken,
		RefreshToken:     grant.RefreshToken,
		AccessExpiresAt:  grant.Expiry,
		RefreshExpiresAt: now.Add(s.config.RefreshTokenLifetime),
	}

	if err := s.storage.UpdateBrandTokens(ctx, brandID, pair); err != nil {
		s.countAuthorization("failed")
		return "", fmt.Errorf("failed to persist authorized tokens: %w", err)
	}

	s.countAuthorization("success")
	s.logger.Infof("brand %s authorized", brandID)

	return brandID, nil
}

func (s *Store) getBrand(ctx context.Context, brandID string) (*types.Brand, error) {
	brand, err := s.storage.GetBrand(ctx, brandID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("brand %s: %w", brandID, ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load brand %s: %w", brandID, err)
	}

	return brand, nil
}

func (s *Store) acquire(ctx context.Context, brandID string) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, s.config.LockWait)
	defer cancel()

	release, err := s.locker.Acquire(lockCtx, lockPrefix+brandID)
	if err != nil {
		s.logger.Errorf("failed to lock brand %s for refresh: %v", brandID, err)
		return nil, fmt.Errorf("failed to lock brand %s: %w: %w", brandID, ErrTransientProvider, err)
	}

	return release, nil
}

// usable reports whether the access token outlives the refresh window.
func (s *Store) usable(b *types.Brand) bool {
	if b.AccessToken == nil || *b.AccessToken == "" || b.AccessExpiresAt == nil {
		return false
	}

	return !b.AccessExpiresAt.Before(s.now().Add(s.config.RefreshWindow))
}

// refreshable reports whether a refresh can be attempted at all. A refresh
// token with no recorded expiry is tried and left to the provider to judge.
func (s *Store) refreshable(b *types.Brand) bool {
	if b.RefreshToken == nil || *b.RefreshToken == "" {
		return false
	}

	return b.RefreshExpiresAt == nil || b.RefreshExpiresAt.After(s.now())
}

func (s *Store) countRefresh(outcome string) {
	if err := s.monitor.IncrementEventCounter(map[string]string{"event": "token_refresh", "outcome": outcome}); err != nil {
		s.logger.Debugf("failed to record token refresh: %v", err)
	}
}

func (s *Store) countAuthorization(outcome string) {
	if err := s.monitor.IncrementEventCounter(map[string]string{"event": "brand_authorization", "outcome": outcome}); err != nil {
		s.logger.Debugf("failed to record brand authorization: %v", err)
	}
}

func NewStore(
	storage StorageInterface,
	provider ProviderInterface,
	locker LockerInterface,
	signer StateInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Store {
	s := new(Store)

	s.storage = storage
	s.provider = provider
	s.locker = locker
	s.state = signer

	if config.RefreshWindow <= 0 {
		config.RefreshWindow = DefaultRefreshWindow
	}

	if config.RefreshTokenLifetime <= 0 {
		config.RefreshTokenLifetime = DefaultRefreshTokenLifetime
	}

	if config.LockWait <= 0 {
		config.LockWait = DefaultLockWait
	}

	s.config = config
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
