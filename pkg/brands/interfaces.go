// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package brands

import (
	"context"

	"github.com/lighthouse-hq/lighthouse/internal/types"
)

type ServiceInterface interface {
	CreateBrand(ctx context.Context, ownerUserID, name, website string) (*types.Brand, string, error)
	ListBrands(ctx context.Context, ownerUserID string) ([]*types.Brand, error)
	AuthorizationURL(ctx context.Context, userID, brandID string) (string, error)
	DeleteBrand(ctx context.Context, userID, brandID string) error
}

type StorageInterface interface {
	CreateBrand(ctx context.Context, b *types.Brand) (*types.Brand, error)
	GetBrand(ctx context.Context, id string) (*types.Brand, error)
	ListBrandsByOwner(ctx context.Context, ownerUserID string) ([]*types.Brand, error)
	DeleteBrand(ctx context.Context, id string) error
}

type AuthzInterface interface {
	AssignBrandOwner(ctx context.Context, brandID, userID string) error
	CanManageBrand(ctx context.Context, userID, brandID string) (bool, error)
	DeleteBrand(ctx context.Context, brandID string) error
}

// AccountsInterface registers brands with the analytics provider.
type AccountsInterface interface {
	RegisterAccount(ctx context.Context, accountID, accountName string) error
}

type CredentialsInterface interface {
	AuthorizationURL(ctx context.Context, brandID string) (string, error)
}
