// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package installation

import (
	"context"

	"github.com/lighthouse-hq/lighthouse/internal/types"
	"github.com/lighthouse-hq/lighthouse/pkg/routing"
)

// RegistryInterface is the contract the chat adapter drives on install,
// token lookup and uninstall. It knows nothing about any chat SDK.
type RegistryInterface interface {
	StoreInstallation(ctx context.Context, inst types.Installation) error
	FetchInstallation(ctx context.Context, workspaceID string) (*types.BotCredential, error)
	DeleteInstallation(ctx context.Context, workspaceID string) error
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

	UpsertWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error)
	GetWorkspace(ctx context.Context, id string) (*types.Workspace, error)
	DeleteWorkspace(ctx context.Context, id string) error

	UpsertMembership(ctx context.Context, workspaceID, userID, role string) error
	DeleteMemberships(ctx context.Context, workspaceID string) error
	DeleteWorkspaceChannelMappings(ctx context.Context, workspaceID string) error
	DeleteWorkspaceBrands(ctx context.Context, workspaceID string) error
}

// UserDirectoryInterface resolves an installer to an existing user account.
type UserDirectoryInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}

type ChatInterface interface {
	ListChannels(ctx context.Context, botToken string) ([]types.Channel, error)
	JoinChannel(ctx context.Context, botToken, channelID string) error
}

// InstallerInterface is the chat platform side of the install flow.
type InstallerInterface interface {
	AuthorizeURL(state string) string
	CompleteInstall(ctx context.Context, code string) (*types.Installation, error)
	ListChannels(ctx context.Context, botToken string) ([]types.Channel, error)
	PostMessage(ctx context.Context, botToken, channelID, threadTS, text string) error
}

type ReconcilerInterface interface {
	Reconcile(ctx context.Context, workspaceID string, live []types.Channel) (*routing.ReconcileResult, error)
}

type AuthorizerInterface interface {
	AssignWorkspaceAdmin(ctx context.Context, workspaceID, userID string) error
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}

type StateInterface interface {
	Issue(purpose, subject string) (string, error)
	Verify(purpose, token string) (string, error)
}
