// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package installation

import (
	"context"
	"errors"
	"testing"

	"github.com/lighthouse-hq/lighthouse/internal/kratos"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/storage"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
	"github.com/lighthouse-hq/lighthouse/pkg/routing"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package installation -destination ./mock_interfaces.go -source=./interfaces.go

type registryMocks struct {
	storage *MockStorageInterface
	users   *MockUserDirectoryInterface
	chat    *MockChatInterface
	routing *MockReconcilerInterface
	authz   *MockAuthorizerInterface
}

func newTestRegistry(ctrl *gomock.Controller) (*Registry, *registryMocks) {
	m := &registryMocks{
		storage: NewMockStorageInterface(ctrl),
		users:   NewMockUserDirectoryInterface(ctrl),
		chat:    NewMockChatInterface(ctrl),
		routing: NewMockReconcilerInterface(ctrl),
		authz:   NewMockAuthorizerInterface(ctrl),
	}

	logger := logging.NewNoopLogger()
	r := NewRegistry(m.storage, m.users, m.chat, m.routing, m.authz, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	return r, m
}

func runTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func validInstallation() types.Installation {
	return types.Installation{
		WorkspaceID:    "T1",
		WorkspaceName:  "Acme",
		BotToken:       "xoxb-1",
		BotUserID:      "UBOT",
		InstallerID:    "U1",
		InstallerEmail: "owner@acme.test",
	}
}

func TestRegistry_StoreInstallation(t *testing.T) {
	verified := &types.User{ID: "user-1", Email: "owner@acme.test", EmailVerified: true}

	tests := []struct {
		name        string
		inst        types.Installation
		setupMocks  func(*registryMocks)
		expectedErr error
	}{
		{
			name: "success joins channels the bot is not in",
			inst: validInstallation(),
			setupMocks: func(m *registryMocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.test").Return(verified, nil)
				m.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.storage.EXPECT().UpsertWorkspace(gomock.Any(), &types.Workspace{
					ID:          "T1",
					Name:        "Acme",
					BotToken:    "xoxb-1",
					BotUserID:   "UBOT",
					OwnerUserID: "user-1",
				}).Return(&types.Workspace{ID: "T1"}, nil)
				m.storage.EXPECT().UpsertMembership(gomock.Any(), "T1", "user-1", types.RoleAdmin).Return(nil)
				m.authz.EXPECT().AssignWorkspaceAdmin(gomock.Any(), "T1", "user-1").Return(nil)

				live := []types.Channel{{ID: "C1", Name: "general", IsMember: true}, {ID: "C2", Name: "sales"}}
				m.chat.EXPECT().ListChannels(gomock.Any(), "xoxb-1").Return(live, nil)
				m.routing.EXPECT().Reconcile(gomock.Any(), "T1", live).Return(&routing.ReconcileResult{Added: 2}, nil)
				m.chat.EXPECT().JoinChannel(gomock.Any(), "xoxb-1", "C2").Return(nil)
			},
		},
		{
			name: "channel sync failures do not fail the install",
			inst: validInstallation(),
			setupMocks: func(m *registryMocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.test").Return(verified, nil)
				m.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.storage.EXPECT().UpsertWorkspace(gomock.Any(), gomock.Any()).Return(&types.Workspace{ID: "T1"}, nil)
				m.storage.EXPECT().UpsertMembership(gomock.Any(), "T1", "user-1", types.RoleAdmin).Return(nil)
				m.authz.EXPECT().AssignWorkspaceAdmin(gomock.Any(), "T1", "user-1").Return(errors.New("tuple exists"))

				live := []types.Channel{{ID: "C2", Name: "sales"}}
				m.chat.EXPECT().ListChannels(gomock.Any(), "xoxb-1").Return(live, nil)
				m.routing.EXPECT().Reconcile(gomock.Any(), "T1", live).Return(nil, errors.New("db busy"))
				m.chat.EXPECT().JoinChannel(gomock.Any(), "xoxb-1", "C2").Return(errors.New("not_allowed"))
			},
		},
		{
			name: "channel listing failure is logged",
			inst: validInstallation(),
			setupMocks: func(m *registryMocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.test").Return(verified, nil)
				m.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.storage.EXPECT().UpsertWorkspace(gomock.Any(), gomock.Any()).Return(&types.Workspace{ID: "T1"}, nil)
				m.storage.EXPECT().UpsertMembership(gomock.Any(), "T1", "user-1", types.RoleAdmin).Return(nil)
				m.authz.EXPECT().AssignWorkspaceAdmin(gomock.Any(), "T1", "user-1").Return(nil)
				m.chat.EXPECT().ListChannels(gomock.Any(), "xoxb-1").Return(nil, errors.New("ratelimited"))
			},
		},
		{
			name: "unknown installer in local directory",
			inst: validInstallation(),
			setupMocks: func(m *registryMocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.test").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name: "unknown installer in kratos",
			inst: validInstallation(),
			setupMocks: func(m *registryMocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.test").Return(nil, kratos.ErrIdentityNotFound)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name: "unverified installer email",
			inst: validInstallation(),
			setupMocks: func(m *registryMocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.test").Return(&types.User{ID: "user-1"}, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name: "missing bot token",
			inst: func() types.Installation {
				i := validInstallation()
				i.BotToken = ""
				return i
			}(),
			setupMocks:  func(m *registryMocks) {},
			expectedErr: ErrInvalidInstallation,
		},
		{
			name: "storage failure",
			inst: validInstallation(),
			setupMocks: func(m *registryMocks) {
				m.users.EXPECT().GetUserByEmail(gomock.Any(), "owner@acme.test").Return(verified, nil)
				m.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.storage.EXPECT().UpsertWorkspace(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedErr: errors.New("any"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r, m := newTestRegistry(ctrl)
			tt.setupMocks(m)

			err := r.StoreInstallation(context.Background(), tt.inst)

			switch {
			case tt.expectedErr == nil:
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			case errors.Is(tt.expectedErr, ErrUserNotFound), errors.Is(tt.expectedErr, ErrInvalidInstallation):
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
			default:
				if err == nil {
					t.Error("expected error")
				}
			}
		})
	}
}

func TestRegistry_FetchInstallation(t *testing.T) {
	tests := []struct {
		name        string
		workspace   *types.Workspace
		storageErr  error
		expectedErr error
	}{
		{
			name:      "installed",
			workspace: &types.Workspace{ID: "T1", BotToken: "xoxb-1", BotUserID: "UBOT"},
		},
		{
			name:        "not installed",
			storageErr:  storage.ErrNotFound,
			expectedErr: ErrNotFound,
		},
		{
			name:        "no bot token",
			workspace:   &types.Workspace{ID: "T1"},
			expectedErr: ErrNoBotToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r, m := newTestRegistry(ctrl)
			m.storage.EXPECT().GetWorkspace(gomock.Any(), "T1").Return(tt.workspace, tt.storageErr)

			cred, err := r.FetchInstallation(context.Background(), "T1")

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if cred.BotToken != "xoxb-1" || cred.BotUserID != "UBOT" || cred.WorkspaceID != "T1" {
				t.Errorf("unexpected credential %+v", cred)
			}
		})
	}
}

func TestRegistry_DeleteInstallation(t *testing.T) {
	t.Run("deletes dependents before the workspace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r, m := newTestRegistry(ctrl)

		m.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		gomock.InOrder(
			m.storage.EXPECT().DeleteWorkspaceChannelMappings(gomock.Any(), "T1").Return(nil),
			m.storage.EXPECT().DeleteWorkspaceBrands(gomock.Any(), "T1").Return(nil),
			m.storage.EXPECT().DeleteMemberships(gomock.Any(), "T1").Return(nil),
			m.storage.EXPECT().DeleteWorkspace(gomock.Any(), "T1").Return(nil),
		)
		m.authz.EXPECT().DeleteWorkspace(gomock.Any(), "T1").Return(nil)

		if err := r.DeleteInstallation(context.Background(), "T1"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r, m := newTestRegistry(ctrl)

		m.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		m.storage.EXPECT().DeleteWorkspaceChannelMappings(gomock.Any(), "T1").Return(nil)
		m.storage.EXPECT().DeleteWorkspaceBrands(gomock.Any(), "T1").Return(errors.New("lock timeout"))

		if err := r.DeleteInstallation(context.Background(), "T1"); err == nil {
			t.Error("expected error")
		}
	})
}
