// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
)

func newTestClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	logger := logging.NewNoopLogger()

	return NewDBClientFromDB(conn, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), mock
}

func exec(ctx context.Context, d *DBClient) error {
	_, err := d.Statement(ctx).Delete("brand").Where("id = ?", "brand-1").ExecContext(ctx)
	return err
}

func TestDBClient_WithTx(t *testing.T) {
	testCases := []struct {
		name        string
		setup       func(sqlmock.Sqlmock)
		fn          func(context.Context, *DBClient) error
		expectedErr bool
	}{
		{
			name: "commits",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM brand").WithArgs("brand-1").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectExec("DELETE FROM brand").WithArgs("brand-1").WillReturnResult(sqlmock.NewResult(0, 0))
				m.ExpectCommit()
			},
			fn: func(ctx context.Context, d *DBClient) error {
				if err := exec(ctx, d); err != nil {
					return err
				}
				return exec(ctx, d)
			},
		},
		{
			name: "rolls back",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM brand").WithArgs("brand-1").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectRollback()
			},
			fn: func(ctx context.Context, d *DBClient) error {
				if err := exec(ctx, d); err != nil {
					return err
				}
				return errors.New("abort")
			},
			expectedErr: true,
		},
		{
			name:  "no statements opens no transaction",
			setup: func(m sqlmock.Sqlmock) {},
			fn: func(ctx context.Context, d *DBClient) error {
				return nil
			},
		},
		{
			name: "nested calls share the transaction",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM brand").WithArgs("brand-1").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn: func(ctx context.Context, d *DBClient) error {
				return d.WithTx(ctx, func(ctx context.Context) error {
					return exec(ctx, d)
				})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, mock := newTestClient(t)
			tc.setup(mock)

			err := d.WithTx(context.Background(), func(ctx context.Context) error {
				return tc.fn(ctx, d)
			})

			if (err != nil) != tc.expectedErr {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestDBClient_StatementOutsideTx(t *testing.T) {
	d, mock := newTestClient(t)

	mock.ExpectExec("DELETE FROM brand").WithArgs("brand-1").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := exec(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
