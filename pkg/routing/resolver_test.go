// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/storage"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package routing -destination ./mock_interfaces.go -source=./interfaces.go

func ptr[T any](v T) *T {
	return &v
}

func newTestResolver(s StorageInterface, c ChatInterface, a AuthorizerInterface) *Resolver {
	logger := logging.NewNoopLogger()
	return NewResolver(s, c, a, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func runTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func TestResolver_ResolveBrand(t *testing.T) {
	tests := []struct {
		name        string
		mapping     *types.ChannelMapping
		storageErr  error
		expected    string
		expectedErr error
		wantErr     bool
	}{
		{
			name:     "mapped channel",
			mapping:  &types.ChannelMapping{WorkspaceID: "T1", ChannelID: "C1", BrandID: ptr("brand-1")},
			expected: "brand-1",
		},
		{
			name:        "known channel without brand",
			mapping:     &types.ChannelMapping{WorkspaceID: "T1", ChannelID: "C1"},
			expectedErr: ErrUnmapped,
		},
		{
			name:        "unknown channel",
			storageErr:  storage.ErrNotFound,
			expectedErr: ErrNotFound,
		},
		{
			name:       "storage failure",
			storageErr: errors.New("connection reset"),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().GetChannelMapping(gomock.Any(), "T1", "C1").Return(tt.mapping, tt.storageErr)

			r := newTestResolver(mockStorage, NewMockChatInterface(ctrl), NewMockAuthorizerInterface(ctrl))

			brandID, err := r.ResolveBrand(context.Background(), "T1", "C1")

			if tt.expectedErr != nil || tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got brand %q", brandID)
				}
				if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				if errors.Is(err, ErrUnmapped) && errors.Is(err, ErrNotFound) {
					t.Errorf("unmapped and not found must stay distinct, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if brandID != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, brandID)
			}
		})
	}
}

func TestResolver_Reconcile(t *testing.T) {
	stored := []*types.ChannelMapping{
		{WorkspaceID: "T1", ChannelID: "C1", ChannelName: "general", BrandID: ptr("brand-1")},
		{WorkspaceID: "T1", ChannelID: "C2", ChannelName: "sales"},
		{WorkspaceID: "T1", ChannelID: "C3", ChannelName: "old"},
	}

	tests := []struct {
		name       string
		live       []types.Channel
		setupMocks func(*MockStorageInterface)
		expected   ReconcileResult
	}{
		{
			name: "unchanged list performs no writes",
			live: []types.Channel{
				{ID: "C1", Name: "general"},
				{ID: "C2", Name: "sales"},
				{ID: "C3", Name: "old"},
			},
			setupMocks: func(s *MockStorageInterface) {},
			expected:   ReconcileResult{},
		},
		{
			name: "order and duplicates do not matter",
			live: []types.Channel{
				{ID: "C3", Name: "old"},
				{ID: "C1", Name: "general"},
				{ID: "C2", Name: "sales"},
				{ID: "C1", Name: "general"},
			},
			setupMocks: func(s *MockStorageInterface) {},
			expected:   ReconcileResult{},
		},
		{
			name: "added renamed and removed",
			live: []types.Channel{
				{ID: "C1", Name: "general"},
				{ID: "C2", Name: "sales-emea"},
				{ID: "C4", Name: "marketing"},
			},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().DeleteChannelMappings(gomock.Any(), "T1", []string{"C3"}).Return(int64(1), nil)
				s.EXPECT().UpsertChannelMapping(gomock.Any(), "T1", "C2", "sales-emea").Return(nil)
				s.EXPECT().UpsertChannelMapping(gomock.Any(), "T1", "C4", "marketing").Return(nil)
			},
			expected: ReconcileResult{Added: 1, Renamed: 1, Removed: 1},
		},
		{
			name: "one removed channel deletes only its row",
			live: []types.Channel{
				{ID: "C1", Name: "general"},
				{ID: "C3", Name: "old"},
			},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().DeleteChannelMappings(gomock.Any(), "T1", []string{"C2"}).Return(int64(1), nil)
			},
			expected: ReconcileResult{Removed: 1},
		},
		{
			name: "empty live list removes everything",
			live: nil,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().DeleteChannelMappings(gomock.Any(), "T1", []string{"C1", "C2", "C3"}).Return(int64(3), nil)
			},
			expected: ReconcileResult{Removed: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().ListChannelMappings(gomock.Any(), "T1").Return(stored, nil)
			tt.setupMocks(mockStorage)

			r := newTestResolver(mockStorage, NewMockChatInterface(ctrl), NewMockAuthorizerInterface(ctrl))

			result, err := r.Reconcile(context.Background(), "T1", tt.live)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(*result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, *result)
			}
		})
	}
}

func TestResolver_ReconcileRollsBackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListChannelMappings(gomock.Any(), "T1").Return(nil, nil)
	mockStorage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	mockStorage.EXPECT().DeleteChannelMappings(gomock.Any(), "T1", []string{}).Return(int64(0), nil)
	mockStorage.EXPECT().UpsertChannelMapping(gomock.Any(), "T1", "C1", "general").Return(errors.New("boom"))

	r := newTestResolver(mockStorage, NewMockChatInterface(ctrl), NewMockAuthorizerInterface(ctrl))

	if _, err := r.Reconcile(context.Background(), "T1", []types.Channel{{ID: "C1", Name: "general"}}); err == nil {
		t.Fatal("expected error")
	}
}

func TestResolver_ReconcileWorkspace(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockChatInterface)
		expectedErr error
	}{
		{
			name: "fetches live channels with the bot token",
			setupMocks: func(s *MockStorageInterface, c *MockChatInterface) {
				s.EXPECT().GetWorkspace(gomock.Any(), "T1").Return(&types.Workspace{ID: "T1", BotToken: "xoxb-1"}, nil)
				c.EXPECT().ListChannels(gomock.Any(), "xoxb-1").Return([]types.Channel{{ID: "C1", Name: "general"}}, nil)
				s.EXPECT().ListChannelMappings(gomock.Any(), "T1").Return([]*types.ChannelMapping{{ChannelID: "C1", ChannelName: "general"}}, nil)
			},
		},
		{
			name: "unknown workspace",
			setupMocks: func(s *MockStorageInterface, c *MockChatInterface) {
				s.EXPECT().GetWorkspace(gomock.Any(), "T1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "workspace without bot token",
			setupMocks: func(s *MockStorageInterface, c *MockChatInterface) {
				s.EXPECT().GetWorkspace(gomock.Any(), "T1").Return(&types.Workspace{ID: "T1"}, nil)
			},
			expectedErr: ErrNoBotToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockChat := NewMockChatInterface(ctrl)
			tt.setupMocks(mockStorage, mockChat)

			r := newTestResolver(mockStorage, mockChat, NewMockAuthorizerInterface(ctrl))

			_, err := r.ReconcileWorkspace(context.Background(), "T1")

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolver_ReconcileAllSkipsFailingWorkspaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockChat := NewMockChatInterface(ctrl)

	mockStorage.EXPECT().ListWorkspaces(gomock.Any()).Return([]*types.Workspace{{ID: "T1"}, {ID: "T2"}}, nil)
	mockStorage.EXPECT().GetWorkspace(gomock.Any(), "T1").Return(&types.Workspace{ID: "T1", BotToken: "xoxb-1"}, nil)
	mockChat.EXPECT().ListChannels(gomock.Any(), "xoxb-1").Return(nil, errors.New("rate limited"))
	mockStorage.EXPECT().GetWorkspace(gomock.Any(), "T2").Return(&types.Workspace{ID: "T2", BotToken: "xoxb-2"}, nil)
	mockChat.EXPECT().ListChannels(gomock.Any(), "xoxb-2").Return(nil, nil)
	mockStorage.EXPECT().ListChannelMappings(gomock.Any(), "T2").Return(nil, nil)

	r := newTestResolver(mockStorage, mockChat, NewMockAuthorizerInterface(ctrl))

	if err := r.ReconcileAll(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolver_Assign(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				s.EXPECT().GetChannelMapping(gomock.Any(), "T1", "C1").Return(&types.ChannelMapping{ChannelID: "C1"}, nil)
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(&types.Brand{ID: "brand-1"}, nil)
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().SetChannelBrand(gomock.Any(), "T1", "C1", ptr("brand-1")).Return(nil)
				s.EXPECT().LinkBrandToWorkspace(gomock.Any(), "T1", "brand-1").Return(nil)
				a.EXPECT().LinkBrandToWorkspace(gomock.Any(), "brand-1", "T1").Return(nil)
			},
		},
		{
			name: "authz mirror failure is not fatal",
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				s.EXPECT().GetChannelMapping(gomock.Any(), "T1", "C1").Return(&types.ChannelMapping{ChannelID: "C1"}, nil)
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(&types.Brand{ID: "brand-1"}, nil)
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().SetChannelBrand(gomock.Any(), "T1", "C1", ptr("brand-1")).Return(nil)
				s.EXPECT().LinkBrandToWorkspace(gomock.Any(), "T1", "brand-1").Return(nil)
				a.EXPECT().LinkBrandToWorkspace(gomock.Any(), "brand-1", "T1").Return(errors.New("fga down"))
			},
		},
		{
			name: "unknown channel",
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				s.EXPECT().GetChannelMapping(gomock.Any(), "T1", "C1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "unknown brand",
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				s.EXPECT().GetChannelMapping(gomock.Any(), "T1", "C1").Return(&types.ChannelMapping{ChannelID: "C1"}, nil)
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "channel removed concurrently",
			setupMocks: func(s *MockStorageInterface, a *MockAuthorizerInterface) {
				s.EXPECT().GetChannelMapping(gomock.Any(), "T1", "C1").Return(&types.ChannelMapping{ChannelID: "C1"}, nil)
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(&types.Brand{ID: "brand-1"}, nil)
				s.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				s.EXPECT().SetChannelBrand(gomock.Any(), "T1", "C1", ptr("brand-1")).Return(storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			tt.setupMocks(mockStorage, mockAuthz)

			r := newTestResolver(mockStorage, NewMockChatInterface(ctrl), mockAuthz)

			err := r.Assign(context.Background(), "T1", "C1", "brand-1")

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolver_Unassign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().SetChannelBrand(gomock.Any(), "T1", "C1", nil).Return(nil)
	mockStorage.EXPECT().SetChannelBrand(gomock.Any(), "T1", "C9", nil).Return(storage.ErrNotFound)

	r := newTestResolver(mockStorage, NewMockChatInterface(ctrl), NewMockAuthorizerInterface(ctrl))

	if err := r.Unassign(context.Background(), "T1", "C1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := r.Unassign(context.Background(), "T1", "C9"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestResolver_IsWorkspaceAdmin(t *testing.T) {
	tests := []struct {
		name        string
		membership  *types.Membership
		storageErr  error
		expected    bool
		expectedErr bool
	}{
		{name: "admin", membership: &types.Membership{Role: types.RoleAdmin}, expected: true},
		{name: "member", membership: &types.Membership{Role: types.RoleMember}},
		{name: "no membership", storageErr: storage.ErrNotFound},
		{name: "storage failure", storageErr: errors.New("db down"), expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().GetMembership(gomock.Any(), "T1", "user-1").Return(tt.membership, tt.storageErr)

			r := newTestResolver(mockStorage, NewMockChatInterface(ctrl), NewMockAuthorizerInterface(ctrl))

			ok, err := r.IsWorkspaceAdmin(context.Background(), "user-1", "T1")
			if (err != nil) != tt.expectedErr {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}

			if ok != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, ok)
			}
		})
	}
}

func TestResolver_OwnsBrand(t *testing.T) {
	tests := []struct {
		name        string
		brand       *types.Brand
		storageErr  error
		expected    bool
		expectedErr bool
	}{
		{name: "owner", brand: &types.Brand{ID: "brand-1", OwnerUserID: "user-1"}, expected: true},
		{name: "someone else's brand", brand: &types.Brand{ID: "brand-1", OwnerUserID: "user-2"}},
		{name: "unknown brand", storageErr: storage.ErrNotFound},
		{name: "storage failure", storageErr: errors.New("db down"), expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(tt.brand, tt.storageErr)

			r := newTestResolver(mockStorage, NewMockChatInterface(ctrl), NewMockAuthorizerInterface(ctrl))

			ok, err := r.OwnsBrand(context.Background(), "user-1", "brand-1")
			if (err != nil) != tt.expectedErr {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}

			if ok != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, ok)
			}
		})
	}
}
