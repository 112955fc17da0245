// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lighthouse-hq/lighthouse/internal/types"
)

func (s *Storage) ListChannelMappings(ctx context.Context, workspaceID string) ([]*types.ChannelMapping, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListChannelMappings")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("workspace_id", "channel_id", "channel_name", "brand_id", "created_at", "updated_at").
		From("channel_mapping").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("channel_name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel mappings: %w", err)
	}
	defer rows.Close()

	mappings := make([]*types.ChannelMapping, 0)
	for rows.Next() {
		var m types.ChannelMapping
		if err := rows.Scan(&m.WorkspaceID, &m.ChannelID, &m.ChannelName, &m.BrandID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan channel mapping: %w", err)
		}
		mappings = append(mappings, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return mappings, nil
}

func (s *Storage) GetChannelMapping(ctx context.Context, workspaceID, channelID string) (*types.ChannelMapping, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetChannelMapping")
	defer span.End()

	var m types.ChannelMapping
	err := s.db.Statement(ctx).
		Select("workspace_id", "channel_id", "channel_name", "brand_id", "created_at", "updated_at").
		From("channel_mapping").
		Where(sq.Eq{"workspace_id": workspaceID, "channel_id": channelID}).
		QueryRowContext(ctx).
		Scan(&m.WorkspaceID, &m.ChannelID, &m.ChannelName, &m.BrandID, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get channel mapping: %w", err)
	}

	return &m, nil
}

// UpsertChannelMapping relies on the (workspace_id, channel_id) key so a
// second insert for the same channel only refreshes its name. The brand
// reference is never touched here.
func (s *Storage) UpsertChannelMapping(ctx context.Context, workspaceID, channelID, channelName string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertChannelMapping")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("channel_mapping").
		Columns("workspace_id", "channel_id", "channel_name").
		Values(workspaceID, channelID, channelName).
		Suffix("ON CONFLICT (workspace_id, channel_id) DO UPDATE SET channel_name = EXCLUDED.channel_name, updated_at = NOW()").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return WrapForeignKeyError(err, "unknown workspace")
		}
		return fmt.Errorf("failed to upsert channel mapping: %w", err)
	}

	return nil
}

func (s *Storage) SetChannelBrand(ctx context.Context, workspaceID, channelID string, brandID *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetChannelBrand")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("channel_mapping").
		Set("brand_id", brandID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"workspace_id": workspaceID, "channel_id": channelID}).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return WrapForeignKeyError(err, "unknown brand")
		}
		return fmt.Errorf("failed to set channel brand: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) DeleteChannelMappings(ctx context.Context, workspaceID string, channelIDs []string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteChannelMappings")
	defer span.End()

	if len(channelIDs) == 0 {
		return 0, nil
	}

	res, err := s.db.Statement(ctx).
		Delete("channel_mapping").
		Where(sq.Eq{"workspace_id": workspaceID, "channel_id": channelIDs}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete channel mappings: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n, nil
}

func (s *Storage) DeleteWorkspaceChannelMappings(ctx context.Context, workspaceID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWorkspaceChannelMappings")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("channel_mapping").
		Where(sq.Eq{"workspace_id": workspaceID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete workspace channel mappings: %w", err)
	}

	return nil
}
