// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"context"
	"net/http"

	"github.com/lighthouse-hq/lighthouse/internal/analytics"
	"github.com/lighthouse-hq/lighthouse/internal/types"
	"github.com/lighthouse-hq/lighthouse/pkg/routing"
)

type ResolverInterface interface {
	ResolveBrand(ctx context.Context, workspaceID, channelID string) (string, error)
	ReconcileWorkspace(ctx context.Context, workspaceID string) (*routing.ReconcileResult, error)
}

type CredentialsInterface interface {
	GetValidAccessToken(ctx context.Context, brandID string) (string, error)
	AuthorizationURL(ctx context.Context, brandID string) (string, error)
}

type AnalyticsInterface interface {
	Query(ctx context.Context, accessToken, question string) (*analytics.QueryResponse, error)
	IntegrationsURL(ctx context.Context, accountID string) (string, error)
}

type RegistryInterface interface {
	FetchInstallation(ctx context.Context, workspaceID string) (*types.BotCredential, error)
	DeleteInstallation(ctx context.Context, workspaceID string) error
}

type ChatInterface interface {
	PostMessage(ctx context.Context, botToken, channelID, threadTS, text string) error
	Respond(ctx context.Context, responseURL, text string) error
}

// VerifierInterface authenticates inbound platform requests and returns the
// raw body.
type VerifierInterface interface {
	VerifyRequest(r *http.Request) ([]byte, error)
}

type DispatcherInterface interface {
	HandleMention(ctx context.Context, ev MentionEvent) error
	HandleCommand(ctx context.Context, cmd CommandEvent) error
	HandleChannelEvent(ctx context.Context, ev ChannelEvent) error
	HandleUninstall(ctx context.Context, ev UninstallEvent) error
}
