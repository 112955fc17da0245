// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"context"

	"github.com/lighthouse-hq/lighthouse/internal/analytics"
	"github.com/lighthouse-hq/lighthouse/internal/types"
)

// StorageInterface is the subset of internal/storage the store needs.
type StorageInterface interface {
	GetBrand(ctx context.Context, id string) (*types.Brand, error)
	UpdateBrandTokens(ctx context.Context, id string, pair types.TokenPair) error
	RevokeBrandTokens(ctx context.Context, id string) error
}

// ProviderInterface talks to the analytics provider token endpoint.
type ProviderInterface interface {
	AuthorizationURL(brandID, state string) string
	Exchange(ctx context.Context, code string) (*analytics.Grant, error)
	Refresh(ctx context.Context, refreshToken string) (*analytics.Grant, error)
}

// LockerInterface serializes refreshes of the same brand across processes.
type LockerInterface interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

type StateInterface interface {
	Issue(purpose, subject string) (string, error)
	Verify(purpose, token string) (string, error)
}

type StoreInterface interface {
	GetValidAccessToken(ctx context.Context, brandID string) (string, error)
	AuthorizationURL(ctx context.Context, brandID string) (string, error)
	CompleteAuthorization(ctx context.Context, code, state string) (string, error)
}
