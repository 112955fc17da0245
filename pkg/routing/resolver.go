// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package routing maps chat channels onto brands and keeps the mapping table
// in line with the channels that actually exist in each workspace.
package routing

import (
	"context"
	"errors"
	"fmt"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/storage"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
)

// ReconcileResult counts the writes a reconciliation performed.
type ReconcileResult struct {
	Added   int `json:"added"`
	Renamed int `json:"renamed"`
	Removed int `json:"removed"`
}

func (r *ReconcileResult) Changed() bool {
	return r.Added+r.Renamed+r.Removed > 0
}

type Resolver struct {
	storage StorageInterface
	chat    ChatInterface
	authz   AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ResolverInterface = (*Resolver)(nil)

// ResolveBrand returns the brand a channel is routed to. A known channel with
// no brand yields ErrUnmapped, an unknown one ErrNotFound.
func (r *Resolver) ResolveBrand(ctx context.Context, workspaceID, channelID string) (string, error) {
	ctx, span := r.tracer.Start(ctx, "routing.Resolver.ResolveBrand")
	defer span.End()

	m, err := r.storage.GetChannelMapping(ctx, workspaceID, channelID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", fmt.Errorf("channel %s in workspace %s: %w", channelID, workspaceID, ErrNotFound)
	}

	if err != nil {
		return "", fmt.Errorf("failed to resolve channel %s: %w", channelID, err)
	}

	if m.BrandID == nil || *m.BrandID == "" {
		return "", fmt.Errorf("channel %s in workspace %s: %w", channelID, workspaceID, ErrUnmapped)
	}

	return *m.BrandID, nil
}

// Reconcile brings the stored mappings of a workspace in line with live.
// Rows of vanished channels are deleted, renamed channels get their new name
// and new channels are inserted unassigned. Brand assignments of surviving
// channels are kept. Nothing is written when live matches the stored rows.
func (r *Resolver) Reconcile(ctx context.Context, workspaceID string, live []types.Channel) (*ReconcileResult, error) {
	ctx, span := r.tracer.Start(ctx, "routing.Resolver.Reconcile")
	defer span.End()

	stored, err := r.storage.ListChannelMappings(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load channel mappings: %w", err)
	}

	current := make(map[string]string, len(stored))
	for _, m := range stored {
		current[m.ChannelID] = m.ChannelName
	}

	seen := make(map[string]bool, len(live))
	upserts := make([]types.Channel, 0)
	result := new(ReconcileResult)

	for _, c := range live {
		if c.ID == "" || seen[c.ID] {
			continue
		}
		seen[c.ID] = true

		name, ok := current[c.ID]
		switch {
		case !ok:
			result.Added++
			upserts = append(upserts, c)
		case name != c.Name:
			result.Renamed++
			upserts = append(upserts, c)
		}
	}

	removed := make([]string, 0)
	for _, m := range stored {
		if !seen[m.ChannelID] {
			removed = append(removed, m.ChannelID)
		}
	}
	result.Removed = len(removed)

	if !result.Changed() {
		return result, nil
	}

	err = r.storage.WithTx(ctx, func(ctx context.Context) error {
		if _, err := r.storage.DeleteChannelMappings(ctx, workspaceID, removed); err != nil {
			return err
		}

		for _, c := range upserts {
			if err := r.storage.UpsertChannelMapping(ctx, workspaceID, c.ID, c.Name); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to reconcile workspace %s: %w", workspaceID, err)
	}

	r.logger.Infof(
		"reconciled workspace %s: %d added, %d renamed, %d removed",
		workspaceID, result.Added, result.Renamed, result.Removed,
	)

	return result, nil
}

// ReconcileWorkspace fetches the live channel list with the workspace bot
// token and reconciles against it.
func (r *Resolver) ReconcileWorkspace(ctx context.Context, workspaceID string) (*ReconcileResult, error) {
	ctx, span := r.tracer.Start(ctx, "routing.Resolver.ReconcileWorkspace")
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

	live, err := r.chat.ListChannels(ctx, ws.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels of workspace %s: %w", workspaceID, err)
	}

	return r.Reconcile(ctx, workspaceID, live)
}

// ReconcileAll reconciles every installed workspace. A failing workspace is
// logged and skipped.
func (r *Resolver) ReconcileAll(ctx context.Context) error {
	ctx, span := r.tracer.Start(ctx, "routing.Resolver.ReconcileAll")
	defer span.End()

	workspaces, err := r.storage.ListWorkspaces(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	failed := 0
	for _, ws := range workspaces {
		if _, err := r.ReconcileWorkspace(ctx, ws.ID); err != nil {
			failed++
			r.logger.Errorf("failed to reconcile workspace %s: %v", ws.ID, err)
		}
	}

	if err := r.monitor.IncrementEventCounter(map[string]string{"event": "reconcile_all", "outcome": outcome(failed)}); err != nil {
		r.logger.Debugf("failed to record reconciliation: %v", err)
	}

	return nil
}

// Assign routes an existing channel to a brand and records the association
// between the brand and the workspace.
func (r *Resolver) Assign(ctx context.Context, workspaceID, channelID, brandID string) error {
	ctx, span := r.tracer.Start(ctx, "routing.Resolver.Assign")
	defer span.End()

	if _, err := r.storage.GetChannelMapping(ctx, workspaceID, channelID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("channel %s in workspace %s: %w", channelID, workspaceID, ErrNotFound)
		}
		return fmt.Errorf("failed to load channel %s: %w", channelID, err)
	}

	if _, err := r.storage.GetBrand(ctx, brandID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("brand %s: %w", brandID, ErrNotFound)
		}
		return fmt.Errorf("failed to load brand %s: %w", brandID, err)
	}

	err := r.storage.WithTx(ctx, func(ctx context.Context) error {
		if err := r.storage.SetChannelBrand(ctx, workspaceID, channelID, &brandID); err != nil {
			return err
		}

		return r.storage.LinkBrandToWorkspace(ctx, workspaceID, brandID)
	})

	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("channel %s in workspace %s: %w", channelID, workspaceID, ErrNotFound)
	}

	if err != nil {
		return fmt.Errorf("failed to assign channel %s: %w", channelID, err)
	}

	if err := r.authz.LinkBrandToWorkspace(ctx, brandID, workspaceID); err != nil {
		r.logger.Errorf("failed to link brand %s to workspace %s in authz: %v", brandID, workspaceID, err)
	}

	r.logger.Infof("channel %s in workspace %s routed to brand %s", channelID, workspaceID, brandID)

	return nil
}

// Unassign clears the brand of a channel, the channel row stays.
func (r *Resolver) Unassign(ctx context.Context, workspaceID, channelID string) error {
	ctx, span := r.tracer.Start(ctx, "routing.Resolver.Unassign")
	defer span.End()

	err := r.storage.SetChannelBrand(ctx, workspaceID, channelID, nil)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("channel %s in workspace %s: %w", channelID, workspaceID, ErrNotFound)
	}

	if err != nil {
		return fmt.Errorf("failed to unassign channel %s: %w", channelID, err)
	}

	return nil
}

// IsWorkspaceAdmin reads the stored membership of userID, it holds whether
// or not the authorization mirror is enabled.
func (r *Resolver) IsWorkspaceAdmin(ctx context.Context, userID, workspaceID string) (bool, error) {
	ctx, span := r.tracer.Start(ctx, "routing.Resolver.IsWorkspaceAdmin")
	defer span.End()

	m, err := r.storage.GetMembership(ctx, workspaceID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to load membership of %s in %s: %w", userID, workspaceID, err)
	}

	return m.Role == types.RoleAdmin, nil
}

// OwnsBrand reports whether userID is the stored owner of brandID. An unknown
// brand is owned by nobody.
func (r *Resolver) OwnsBrand(ctx context.Context, userID, brandID string) (bool, error) {
	ctx, span := r.tracer.Start(ctx, "routing.Resolver.OwnsBrand")
	defer span.End()

	b, err := r.storage.GetBrand(ctx, brandID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to load brand %s: %w", brandID, err)
	}

	return b.OwnerUserID == userID, nil
}

func (r *Resolver) ListMappings(ctx context.Context, workspaceID string) ([]*types.ChannelMapping, error) {
	ctx, span := r.tracer.Start(ctx, "routing.Resolver.ListMappings")
	defer span.End()

	if _, err := r.storage.GetWorkspace(ctx, workspaceID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("workspace %s: %w", workspaceID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load workspace %s: %w", workspaceID, err)
	}

	return r.storage.ListChannelMappings(ctx, workspaceID)
}

func outcome(failed int) string {
	if failed > 0 {
		return "partial"
	}

	return "success"
}

func NewResolver(
	storage StorageInterface,
	chat ChatInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Resolver {
	r := new(Resolver)

	r.storage = storage
	r.chat = chat
	r.authz = authz

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
