// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package installation records which chat workspaces installed the bot, who
// administers them and which bot credential to use when talking to them.
package installation

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lighthouse-hq/lighthouse/internal/kratos"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/storage"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
)

type Registry struct {
	storage   StorageInterface
	users     UserDirectoryInterface
	chat      ChatInterface
	routing   ReconcilerInterface
	authz     AuthorizerInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ RegistryInterface = (*Registry)(nil)

// StoreInstallation records a completed install. The installer must already
// own an account with a verified email and becomes workspace admin. Repeating
// an install only refreshes the workspace and its bot credential.
func (r *Registry) StoreInstallation(ctx context.Context, inst types.Installation) error {
	ctx, span := r.tracer.Start(ctx, "installation.Registry.StoreInstallation")
	defer span.End()

	if err := r.validator.Struct(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInstallation, err)
	}

	user, err := r.users.GetUserByEmail(ctx, inst.InstallerEmail)
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, kratos.ErrIdentityNotFound) {
		r.logger.Security().AuthnFailure(inst.InstallerID, "installer has no account")
		return fmt.Errorf("installer of workspace %s: %w", inst.WorkspaceID, ErrUserNotFound)
	}

	if err != nil {
		return fmt.Errorf("failed to look up installer: %w", err)
	}

	if !user.EmailVerified {
		r.logger.Security().AuthnFailure(user.ID, "installer email not verified")
		return fmt.Errorf("installer of workspace %s has no verified email: %w", inst.WorkspaceID, ErrUserNotFound)
	}

	err = r.storage.WithTx(ctx, func(ctx context.Context) error {
		_, err := r.storage.UpsertWorkspace(ctx, &types.Workspace{
			ID:          inst.WorkspaceID,
			Name:        inst.WorkspaceName,
			BotToken:    inst.BotToken,
			BotUserID:   inst.BotUserID,
			OwnerUserID: user.ID,
		})
		if err != nil {
			return err
		}

		return r.storage.UpsertMembership(ctx, inst.WorkspaceID, user.ID, types.RoleAdmin)
	})

	if err != nil {
		return fmt.Errorf("failed to store installation of workspace %s: %w", inst.WorkspaceID, err)
	}

	if err := r.authz.AssignWorkspaceAdmin(ctx, inst.WorkspaceID, user.ID); err != nil {
		r.logger.Errorf("failed to grant workspace %s admin to %s in authz: %v", inst.WorkspaceID, user.ID, err)
	}

	r.syncChannels(ctx, inst.WorkspaceID, inst.BotToken)

	r.count("installed")
	r.logger.Infof("workspace %s installed by user %s", inst.WorkspaceID, user.ID)

	return nil
}

// syncChannels reconciles the channel list and joins public channels the bot
// is not in yet. Failures are logged, the installation stands either way.
func (r *Registry) syncChannels(ctx context.Context, workspaceID, botToken string) {
	ctx, span := r.tracer.Start(ctx, "installation.Registry.syncChannels")
	defer span.End()

	live, err := r.chat.ListChannels(ctx, botToken)
	if err != nil {
		r.logger.Warnf("failed to list channels of workspace %s: %v", workspaceID, err)
		return
	}

	if _, err := r.routing.Reconcile(ctx, workspaceID, live); err != nil {
		r.logger.Warnf("failed to reconcile workspace %s after install: %v", workspaceID, err)
	}

	for _, c := range live {
		if c.IsMember {
			continue
		}

		if err := r.chat.JoinChannel(ctx, botToken, c.ID); err != nil {
			r.logger.Warnf("failed to join channel %s in workspace %s: %v", c.ID, workspaceID, err)
		}
	}
}

func (r *Registry) FetchInstallation(ctx context.Context, workspaceID string) (*types.BotCredential, error) {
	ctx, span := r.tracer.Start(ctx, "installation.Registry.FetchInstallation")
	defer span.End()

	ws, err := r.storage.GetWorkspace(ctx, workspaceID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("workspace %s: %w", workspaceID, ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load workspace %s: %w", workspaceID, err)
	}

	if ws.BotToken == "" {
		return nil, fmt.Errorf("workspace %s: %w", workspaceID, ErrNoBotToken)
	}

	return &types.BotCredential{
		WorkspaceID: ws.ID,
		BotToken:    ws.BotToken,
		BotUserID:   ws.BotUserID,
	}, nil
}

// DeleteInstallation removes a workspace and everything hanging off it in a
// single transaction. Brands themselves are kept, they may serve other
// workspaces.
func (r *Registry) DeleteInstallation(ctx context.Context, workspaceID string) error {
	ctx, span := r.tracer.Start(ctx, "installation.Registry.DeleteInstallation")
	defer span.End()

	err := r.storage.WithTx(ctx, func(ctx context.Context) error {
		if err := r.storage.DeleteWorkspaceChannelMappings(ctx, workspaceID); err != nil {
			return err
		}

		if err := r.storage.DeleteWorkspaceBrands(ctx, workspaceID); err != nil {
			return err
		}

		if err := r.storage.DeleteMemberships(ctx, workspaceID); err != nil {
			return err
		}

		return r.storage.DeleteWorkspace(ctx, workspaceID)
	})

	if err != nil {
		return fmt.Errorf("failed to delete installation of workspace %s: %w", workspaceID, err)
	}

	if err := r.authz.DeleteWorkspace(ctx, workspaceID); err != nil {
		r.logger.Errorf("failed to drop authz tuples of workspace %s: %v", workspaceID, err)
	}

	r.count("uninstalled")
	r.logger.Infof("workspace %s uninstalled", workspaceID)

	return nil
}

func (r *Registry) count(outcome string) {
	if err := r.monitor.IncrementEventCounter(map[string]string{"event": "installation", "outcome": outcome}); err != nil {
		r.logger.Debugf("failed to record installation event: %v", err)
	}
}

func NewRegistry(
	storage StorageInterface,
	users UserDirectoryInterface,
	chat ChatInterface,
	routing ReconcilerInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Registry {
	r := new(Registry)

	r.storage = storage
	r.users = users
	r.chat = chat
	r.routing = routing
	r.authz = authz
	r.validator = validator.New(validator.WithRequiredStructEnabled())

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
