// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	// ErrInvalidTokenPair is returned when an access token and its expiry
	// would be stored without each other.
	ErrInvalidTokenPair = errors.New("access token and expiry must be set together")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"

	brandTokenPairConstraint = "brand_access_token_expiry"
)

func pgCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", ""
	}

	return pgErr.Code, pgErr.ConstraintName
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

func IsDuplicateKeyError(err error) bool {
	code, _ := pgCode(err)
	return code == pgUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	code, _ := pgCode(err)
	return code == pgForeignKeyViolation
}

// WrapDuplicateKeyError replaces a unique violation with ErrDuplicateKey,
// other errors pass through.
func WrapDuplicateKeyError(err error, what string) error {
	if !IsDuplicateKeyError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", what, ErrDuplicateKey)
}

func WrapForeignKeyError(err error, what string) error {
	if !IsForeignKeyViolation(err) {
		return err
	}
	return fmt.Errorf("%s: %w", what, ErrForeignKeyViolation)
}

func wrapTokenPairError(err error) error {
	code, constraint := pgCode(err)
	if code == pgCheckViolation && constraint == brandTokenPairConstraint {
		return ErrInvalidTokenPair
	}
	return err
}
