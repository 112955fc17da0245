// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/lighthouse-hq/lighthouse/internal/types"
)

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

	CreateBrand(ctx context.Context, b *types.Brand) (*types.Brand, error)
	GetBrand(ctx context.Context, id string) (*types.Brand, error)
	ListBrandsByOwner(ctx context.Context, ownerUserID string) ([]*types.Brand, error)
	UpdateBrandTokens(ctx context.Context, id string, pair types.TokenPair) error
	RevokeBrandTokens(ctx context.Context, id string) error
	DeleteBrand(ctx context.Context, id string) error

	UpsertWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error)
	GetWorkspace(ctx context.Context, id string) (*types.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]*types.Workspace, error)
	DeleteWorkspace(ctx context.Context, id string) error

	UpsertMembership(ctx context.Context, workspaceID, userID, role string) error
	GetMembership(ctx context.Context, workspaceID, userID string) (*types.Membership, error)
	DeleteMemberships(ctx context.Context, workspaceID string) error

	ListChannelMappings(ctx context.Context, workspaceID string) ([]*types.ChannelMapping, error)
	GetChannelMapping(ctx context.Context, workspaceID, channelID string) (*types.ChannelMapping, error)
	UpsertChannelMapping(ctx context.Context, workspaceID, channelID, channelName string) error
	SetChannelBrand(ctx context.Context, workspaceID, channelID string, brandID *string) error
	DeleteChannelMappings(ctx context.Context, workspaceID string, channelIDs []string) (int64, error)
	DeleteWorkspaceChannelMappings(ctx context.Context, workspaceID string) error

	LinkBrandToWorkspace(ctx context.Context, workspaceID, brandID string) error
	DeleteWorkspaceBrands(ctx context.Context, workspaceID string) error

	UpsertUser(ctx context.Context, u *types.User) error
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}
