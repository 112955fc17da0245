// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lighthouse-hq/lighthouse/internal/db"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var brandColumns = []string{
	"id",
	"name",
	"website",
	"owner_user_id",
	"access_token",
	"refresh_token",
	"access_expires_at",
	"refresh_expires_at",
	"created_at",
	"updated_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// WithTx runs fn inside a single transaction, every Storage call made with
// the context passed to fn joins it.
func (s *Storage) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return s.db.WithTx(ctx, fn)
}

func scanBrand(row sq.RowScanner) (*types.Brand, error) {
	var b types.Brand
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Website,
		&b.OwnerUserID,
		&b.AccessToken,
		&b.RefreshToken,
		&b.AccessExpiresAt,
		&b.RefreshExpiresAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Storage) CreateBrand(ctx context.Context, b *types.Brand) (*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBrand")
	defer span.End()

	created, err := scanBrand(
		s.db.Statement(ctx).
			Insert("brand").
			Columns("id", "name", "website", "owner_user_id").
			Values(b.ID, b.Name, b.Website, b.OwnerUserID).
			Suffix("RETURNING id, name, website, owner_user_id, access_token, refresh_token, access_expires_at, refresh_expires_at, created_at, updated_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "brand")
		}
		return nil, fmt.Errorf("failed to insert brand: %w", err)
	}

	return created, nil
}

func (s *Storage) GetBrand(ctx context.Context, id string) (*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBrand")
	defer span.End()

	b, err := scanBrand(
		s.db.Statement(ctx).
			Select(brandColumns...).
			From("brand").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	return b, nil
}

func (s *Storage) ListBrandsByOwner(ctx context.Context, ownerUserID string) ([]*types.Brand, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBrandsByOwner")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(brandColumns...).
		From("brand").
		Where(sq.Eq{"owner_user_id": ownerUserID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	brands := make([]*types.Brand, 0)
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return brands, nil
}

// UpdateBrandTokens persists a full token grant in a single statement so the
// access token and its expiry never diverge.
func (s *Storage) UpdateBrandTokens(ctx context.Context, id string, pair types.TokenPair) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateBrandTokens")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("brand").
		SetMap(map[string]interface{}{
			"access_token":       pair.AccessToken,
			"refresh_token":      pair.RefreshToken,
			"access_expires_at":  pair.AccessExpiresAt,
			"refresh_expires_at": pair.RefreshExpiresAt,
			"updated_at":         sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update brand tokens: %w", wrapTokenPairError(err))
	}

	return expectAffected(res)
}

// RevokeBrandTokens clears the credential pair after the provider rejected
// it. The brand stays disconnected until a new authorization.
func (s *Storage) RevokeBrandTokens(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeBrandTokens")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("brand").
		Set("access_token", nil).
		Set("access_expires_at", nil).
		Set("refresh_token", nil).
		Set("refresh_expires_at", nil).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to revoke brand tokens: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) DeleteBrand(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteBrand")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("brand").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}

	return expectAffected(res)
}

func expectAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
