// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lighthouse-hq/lighthouse/internal/db"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
)

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	c := db.NewDBClientFromDB(conn, tracer, monitor, logger)

	return NewStorage(c, tracer, monitor, logger), mock
}

func TestStorage_GetBrand(t *testing.T) {
	now := time.Now()
	token := "access"

	testCases := []struct {
		name        string
		setup       func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "found",
			setup: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(brandColumns).
					AddRow("brand-1", "Acme", "acme.com", "user-1", token, "refresh", now, now, now, now)
				m.ExpectQuery(regexp.QuoteMeta("FROM brand WHERE id = $1")).WithArgs("brand-1").WillReturnRows(rows)
			},
		},
		{
			name: "missing",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM brand WHERE id = $1")).WithArgs("brand-1").WillReturnRows(sqlmock.NewRows(brandColumns))
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStorage(t)
			tc.setup(mock)

			b, err := s.GetBrand(context.Background(), "brand-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if b.AccessToken == nil || *b.AccessToken != token {
					t.Errorf("expected access token to be loaded, got %v", b.AccessToken)
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_GetBrandNullTokens(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	rows := sqlmock.NewRows(brandColumns).
		AddRow("brand-1", "Acme", "", "user-1", nil, nil, nil, nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM brand WHERE id = $1")).WillReturnRows(rows)

	b, err := s.GetBrand(context.Background(), "brand-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.AccessToken != nil || b.AccessExpiresAt != nil {
		t.Errorf("expected nil access token and expiry, got %v %v", b.AccessToken, b.AccessExpiresAt)
	}
	if b.Connected() {
		t.Errorf("expected brand without refresh token to be disconnected")
	}
}

func TestStorage_UpdateBrandTokens(t *testing.T) {
	pair := types.TokenPair{
		AccessToken:      "a",
		RefreshToken:     "r",
		AccessExpiresAt:  time.Now().Add(time.Hour),
		RefreshExpiresAt: time.Now().Add(720 * time.Hour),
	}

	testCases := []struct {
		name        string
		result      driver.Result
		execErr     error
		expectedErr error
	}{
		{name: "updated", result: sqlmock.NewResult(0, 1)},
		{name: "missing brand", result: sqlmock.NewResult(0, 0), expectedErr: ErrNotFound},
		{
			name:        "token without expiry",
			execErr:     &pgconn.PgError{Code: "23514", ConstraintName: "brand_access_token_expiry"},
			expectedErr: ErrInvalidTokenPair,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStorage(t)

			exec := mock.ExpectExec(regexp.QuoteMeta("UPDATE brand SET")).
				WithArgs(pair.AccessExpiresAt, pair.AccessToken, pair.RefreshExpiresAt, pair.RefreshToken, "brand-1")
			if tc.execErr != nil {
				exec.WillReturnError(tc.execErr)
			} else {
				exec.WillReturnResult(tc.result)
			}

			err := s.UpdateBrandTokens(context.Background(), "brand-1", pair)

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_UpsertChannelMappingKeepsBrand(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (workspace_id, channel_id) DO UPDATE SET channel_name = EXCLUDED.channel_name, updated_at = NOW()")).
		WithArgs("T1", "C1", "general").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.UpsertChannelMapping(context.Background(), "T1", "C1", "general"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_SetChannelBrand(t *testing.T) {
	brandID := "brand-1"

	testCases := []struct {
		name        string
		result      driver.Result
		expectedErr error
	}{
		{name: "assigned", result: sqlmock.NewResult(0, 1)},
		{name: "no mapping row", result: sqlmock.NewResult(0, 0), expectedErr: ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := newTestStorage(t)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE channel_mapping SET brand_id = $1")).
				WithArgs(&brandID, "C1", "T1").
				WillReturnResult(tc.result)

			err := s.SetChannelBrand(context.Background(), "T1", "C1", &brandID)

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestStorage_DeleteChannelMappingsEmpty(t *testing.T) {
	s, mock := newTestStorage(t)

	n, err := s.DeleteChannelMappings(context.Background(), "T1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deleted rows, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected no statements, got: %v", err)
	}
}

func TestStorage_ListChannelMappings(t *testing.T) {
	s, mock := newTestStorage(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"workspace_id", "channel_id", "channel_name", "brand_id", "created_at", "updated_at"}).
		AddRow("T1", "C1", "general", "brand-1", now, now).
		AddRow("T1", "C2", "random", nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM channel_mapping WHERE workspace_id = $1")).WithArgs("T1").WillReturnRows(rows)

	mappings, err := s.ListChannelMappings(context.Background(), "T1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mappings) != 2 {
		t.Fatalf("expected 2 mappings, got %d", len(mappings))
	}
	if mappings[0].BrandID == nil || *mappings[0].BrandID != "brand-1" {
		t.Errorf("expected first mapping to carry brand-1, got %v", mappings[0].BrandID)
	}
	if mappings[1].BrandID != nil {
		t.Errorf("expected second mapping to be unassigned, got %v", *mappings[1].BrandID)
	}
}

func TestStorage_WithTxRollsBackOnError(t *testing.T) {
	s, mock := newTestStorage(t)
	failure := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM channel_mapping WHERE workspace_id = $1")).
		WithArgs("T1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectRollback()

	err := s.WithTx(context.Background(), func(ctx context.Context) error {
		if err := s.DeleteWorkspaceChannelMappings(ctx, "T1"); err != nil {
			return err
		}
		return failure
	})

	if !errors.Is(err, failure) {
		t.Errorf("expected error %v, got %v", failure, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_GetUserByEmailMissing(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE LOWER(email) = LOWER($1)")).
		WithArgs("ops@acme.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "email_verified", "created_at"}))

	_, err := s.GetUserByEmail(context.Background(), "ops@acme.com")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected error %v, got %v", ErrNotFound, err)
	}
}

func TestStorage_UpsertUser(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id,email,name,email_verified) VALUES ($1,$2,$3,$4) ON CONFLICT (id) DO UPDATE")).
		WithArgs("user-1", "ops@acme.com", "Ops", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.UpsertUser(context.Background(), &types.User{ID: "user-1", Email: "ops@acme.com", Name: "Ops", EmailVerified: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
