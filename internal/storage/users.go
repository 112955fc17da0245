// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/lighthouse-hq/lighthouse/internal/types"
)

// UpsertUser records an identity of the user directory, keyed by its id.
func (s *Storage) UpsertUser(ctx context.Context, u *types.User) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertUser")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "name", "email_verified").
		Values(u.ID, u.Email, u.Name, u.EmailVerified).
		Suffix("ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, name = EXCLUDED.name, email_verified = EXCLUDED.email_verified").
		ExecContext(ctx)

	if err != nil {
		return WrapDuplicateKeyError(fmt.Errorf("failed to upsert user: %w", err), "email already used by another user")
	}

	return nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "email", "name", "email_verified", "created_at").
		From("users").
		Where(sq.Expr("LOWER(email) = LOWER(?)", email)).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.Name, &u.EmailVerified, &u.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}
