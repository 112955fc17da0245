// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"context"

	"github.com/lighthouse-hq/lighthouse/internal/types"
)

// StorageInterface is the subset of internal/storage the resolver needs.
type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

	GetBrand(ctx context.Context, id string) (*types.Brand, error)
	GetMembership(ctx context.Context, workspaceID, userID string) (*types.Membership, error)
	GetWorkspace(ctx context.Context, id string) (*types.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]*types.Workspace, error)

	ListChannelMappings(ctx context.Context, workspaceID string) ([]*types.ChannelMapping, error)
	GetChannelMapping(ctx context.Context, workspaceID, channelID string) (*types.ChannelMapping, error)
	UpsertChannelMapping(ctx context.Context, workspaceID, channelID, channelName string) error
	SetChannelBrand(ctx context.Context, workspaceID, channelID string, brandID *string) error
	DeleteChannelMappings(ctx context.Context, workspaceID string, channelIDs []string) (int64, error)
	LinkBrandToWorkspace(ctx context.Context, workspaceID, brandID string) error
}

// ChatInterface lists the live channels of a workspace.
type ChatInterface interface {
	ListChannels(ctx context.Context, botToken string) ([]types.Channel, error)
}

type AuthorizerInterface interface {
	LinkBrandToWorkspace(ctx context.Context, brandID, workspaceID string) error
	CanManageWorkspace(ctx context.Context, userID, workspaceID string) (bool, error)
	CanManageBrand(ctx context.Context, userID, brandID string) (bool, error)
}

type ResolverInterface interface {
	ResolveBrand(ctx context.Context, workspaceID, channelID string) (string, error)
	Reconcile(ctx context.Context, workspaceID string, live []types.Channel) (*ReconcileResult, error)
	ReconcileWorkspace(ctx context.Context, workspaceID string) (*ReconcileResult, error)
	ReconcileAll(ctx context.Context) error
	Assign(ctx context.Context, workspaceID, channelID, brandID string) error
	Unassign(ctx context.Context, workspaceID, channelID string) error
	ListMappings(ctx context.Context, workspaceID string) ([]*types.ChannelMapping, error)
	IsWorkspaceAdmin(ctx context.Context, userID, workspaceID string) (bool, error)
	OwnsBrand(ctx context.Context, userID, brandID string) (bool, error)
}

// ReconcilerInterface is what the periodic job drives.
type ReconcilerInterface interface {
	ReconcileAll(ctx context.Context) error
}
