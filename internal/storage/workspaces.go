// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lighthouse-hq/lighthouse/internal/types"
)

// UpsertWorkspace inserts or refreshes a workspace. The owner recorded on
// first install is kept across reinstalls.
func (s *Storage) UpsertWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertWorkspace")
	defer span.End()

	var ws types.Workspace
	err := s.db.Statement(ctx).
		Insert("workspace").
		Columns("id", "name", "bot_token", "bot_user_id", "owner_user_id").
		Values(w.ID, w.Name, w.BotToken, w.BotUserID, w.OwnerUserID).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			bot_token = EXCLUDED.bot_token,
			bot_user_id = EXCLUDED.bot_user_id,
			updated_at = NOW()
		RETURNING id, name, bot_token, bot_user_id, owner_user_id, created_at, updated_at`).
		QueryRowContext(ctx).
		Scan(&ws.ID, &ws.Name, &ws.BotToken, &ws.BotUserID, &ws.OwnerUserID, &ws.CreatedAt, &ws.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert workspace: %w", err)
	}

	return &ws, nil
}

func (s *Storage) GetWorkspace(ctx context.Context, id string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkspace")
	defer span.End()

	var ws types.Workspace
	err := s.db.Statement(ctx).
		Select("id", "name", "bot_token", "bot_user_id", "owner_user_id", "created_at", "updated_at").
		From("workspace").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&ws.ID, &ws.Name, &ws.BotToken, &ws.BotUserID, &ws.OwnerUserID, &ws.CreatedAt, &ws.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return &ws, nil
}

func (s *Storage) ListWorkspaces(ctx context.Context) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkspaces")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "bot_token", "bot_user_id", "owner_user_id", "created_at", "updated_at").
		From("workspace").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []*types.Workspace
	for rows.Next() {
		var ws types.Workspace
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.BotToken, &ws.BotUserID, &ws.OwnerUserID, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, &ws)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workspaces, nil
}

func (s *Storage) DeleteWorkspace(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWorkspace")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("workspace").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return WrapForeignKeyError(err, "workspace still referenced")
		}
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	return nil
}

func (s *Storage) UpsertMembership(ctx context.Context, workspaceID, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertMembership")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("membership").
		Columns("workspace_id", "user_id", "role").
		Values(workspaceID, userID, role).
		Suffix("ON CONFLICT (workspace_id, user_id) DO UPDATE SET role = EXCLUDED.role, updated_at = NOW()").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to upsert membership: %w", err)
	}

	return nil
}

func (s *Storage) GetMembership(ctx context.Context, workspaceID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("workspace_id", "user_id", "role", "created_at", "updated_at").
		From("membership").
		Where(sq.Eq{"workspace_id": workspaceID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) DeleteMemberships(ctx context.Context, workspaceID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMemberships")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("membership").
		Where(sq.Eq{"workspace_id": workspaceID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete memberships: %w", err)
	}

	return nil
}

func (s *Storage) LinkBrandToWorkspace(ctx context.Context, workspaceID, brandID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LinkBrandToWorkspace")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("workspace_brand").
		Columns("workspace_id", "brand_id").
		Values(workspaceID, brandID).
		Suffix("ON CONFLICT (workspace_id, brand_id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to link brand to workspace: %w", err)
	}

	return nil
}

func (s *Storage) DeleteWorkspaceBrands(ctx context.Context, workspaceID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWorkspaceBrands")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("workspace_brand").
		Where(sq.Eq{"workspace_id": workspaceID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete workspace brands: %w", err)
	}

	return nil
}
