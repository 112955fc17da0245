// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/lighthouse-hq/lighthouse/internal/openfga"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

type testMocks struct {
	client  *MockAuthzClientInterface
	tracer  *MockTracingInterface
	monitor *MockMonitorInterface
	logger  *MockLoggerInterface
}

func newTestAuthorizer(ctrl *gomock.Controller) (*Authorizer, testMocks) {
	m := testMocks{
		client:  NewMockAuthzClientInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		monitor: NewMockMonitorInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	return NewAuthorizer(m.client, m.tracer, m.monitor, m.logger), m
}

func expectSpan(m testMocks, name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).
		Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestAuthorizer_Check(t *testing.T) {
	user := "user:123"
	relation := "admin"
	object := "workspace:T1"
	contextualTuples := []openfga.Tuple{*openfga.NewTuple("user:789", "owner", "brand:456")}

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzClientInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "success - allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(true, nil)
			},
			expectedResult: true,
		},
		{
			name: "success - not allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(false, nil)
			},
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(false, errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, m := newTestAuthorizer(ctrl)

			expectSpan(m, "authorization.Authorizer.Check")
			tc.setupMocks(m.client)

			result, err := a.Check(context.Background(), user, relation, object, contextualTuples...)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_ValidateModel(t *testing.T) {
	clientErr := errors.New("client error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr error
	}{
		{
			name: "success - models match",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "error - models do not match",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedErr: ErrInvalidAuthModel,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, clientErr)
			},
			expectedErr: clientErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, m := newTestAuthorizer(ctrl)

			expectSpan(m, "authorization.Authorizer.ValidateModel")
			tc.setupMocks(m.client)

			err := a.ValidateModel(context.Background())

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAuthorizer_WriteRelations(t *testing.T) {
	writeErr := errors.New("write error")

	testCases := []struct {
		name     string
		span     string
		user     string
		relation string
		object   string
		call     func(*Authorizer) error
	}{
		{
			name:     "workspace admin",
			span:     "authorization.Authorizer.AssignWorkspaceAdmin",
			user:     UserTuple("user-1"),
			relation: ADMIN_RELATION,
			object:   WorkspaceTuple("T1"),
			call: func(a *Authorizer) error {
				return a.AssignWorkspaceAdmin(context.Background(), "T1", "user-1")
			},
		},
		{
			name:     "brand owner",
			span:     "authorization.Authorizer.AssignBrandOwner",
			user:     UserTuple("user-1"),
			relation: OWNER_RELATION,
			object:   BrandTuple("brand-1"),
			call: func(a *Authorizer) error {
				return a.AssignBrandOwner(context.Background(), "brand-1", "user-1")
			},
		},
		{
			name:     "brand to workspace link",
			span:     "authorization.Authorizer.LinkBrandToWorkspace",
			user:     WorkspaceTuple("T1"),
			relation: WORKSPACE_RELATION,
			object:   BrandTuple("brand-1"),
			call: func(a *Authorizer) error {
				return a.LinkBrandToWorkspace(context.Background(), "brand-1", "T1")
			},
		},
	}

	for _, tc := range testCases {
		for _, failing := range []bool{false, true} {
			name := tc.name + " - success"
			if failing {
				name = tc.name + " - write error"
			}

			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				a, m := newTestAuthorizer(ctrl)

				var ret error
				if failing {
					ret = writeErr
				}

				expectSpan(m, tc.span)
				m.client.EXPECT().WriteTuple(gomock.Any(), tc.user, tc.relation, tc.object).Return(ret)

				err := tc.call(a)

				if !errors.Is(err, ret) {
					t.Errorf("expected error %v, got %v", ret, err)
				}
			})
		}
	}
}

func TestAuthorizer_CanManage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestAuthorizer(ctrl)

	expectSpan(m, "authorization.Authorizer.CanManageWorkspace")
	expectSpan(m, "authorization.Authorizer.CanManageBrand")
	m.tracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.Check").
		Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)

	m.client.EXPECT().Check(gomock.Any(), UserTuple("user-1"), CAN_MANAGE_PERMISSION, WorkspaceTuple("T1")).Return(true, nil)
	m.client.EXPECT().Check(gomock.Any(), UserTuple("user-1"), CAN_MANAGE_PERMISSION, BrandTuple("brand-1")).Return(false, nil)

	ok, err := a.CanManageWorkspace(context.Background(), "user-1", "T1")
	if err != nil || !ok {
		t.Errorf("expected workspace check to pass, got %v %v", ok, err)
	}

	ok, err = a.CanManageBrand(context.Background(), "user-1", "brand-1")
	if err != nil || ok {
		t.Errorf("expected brand check to fail, got %v %v", ok, err)
	}
}

func TestAuthorizer_DeleteWorkspace(t *testing.T) {
	workspaceID := "T1"

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name: "success - object and brand links",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				gomock.InOrder(
					mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", WorkspaceTuple(workspaceID), "").Return(&client.ClientReadResponse{
						Tuples: []fga.Tuple{
							{Key: fga.TupleKey{User: "user:1", Relation: ADMIN_RELATION, Object: WorkspaceTuple(workspaceID)}},
						},
						ContinuationToken: "token1",
					}, nil),
					mockClient.EXPECT().DeleteTuples(gomock.Any(), *openfga.NewTuple("user:1", ADMIN_RELATION, WorkspaceTuple(workspaceID))).Return(nil),
					mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", WorkspaceTuple(workspaceID), "token1").Return(&client.ClientReadResponse{
						Tuples: []fga.Tuple{},
					}, nil),
					mockClient.EXPECT().ReadTuples(gomock.Any(), WorkspaceTuple(workspaceID), WORKSPACE_RELATION, "brand:", "").Return(&client.ClientReadResponse{
						Tuples: []fga.Tuple{
							{Key: fga.TupleKey{User: WorkspaceTuple(workspaceID), Relation: WORKSPACE_RELATION, Object: BrandTuple("brand-1")}},
						},
					}, nil),
					mockClient.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "error - read tuples error",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", WorkspaceTuple(workspaceID), "").Return(nil, errors.New("read error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name: "error - delete tuples error",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", WorkspaceTuple(workspaceID), "").Return(&client.ClientReadResponse{
					Tuples: []fga.Tuple{
						{Key: fga.TupleKey{User: "user:1", Relation: ADMIN_RELATION, Object: WorkspaceTuple(workspaceID)}},
					},
				}, nil)
				mockClient.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(errors.New("delete error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, m := newTestAuthorizer(ctrl)

			expectSpan(m, "authorization.Authorizer.DeleteWorkspace")
			tc.setupMocks(m.client, m.logger)

			err := a.DeleteWorkspace(context.Background(), workspaceID)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			} else if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_DeleteBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestAuthorizer(ctrl)

	expectSpan(m, "authorization.Authorizer.DeleteBrand")
	m.client.EXPECT().ReadTuples(gomock.Any(), "", "", BrandTuple("brand-1"), "").Return(&client.ClientReadResponse{
		Tuples: []fga.Tuple{
			{Key: fga.TupleKey{User: "user:1", Relation: OWNER_RELATION, Object: BrandTuple("brand-1")}},
			{Key: fga.TupleKey{User: WorkspaceTuple("T1"), Relation: WORKSPACE_RELATION, Object: BrandTuple("brand-1")}},
		},
	}, nil)
	m.client.EXPECT().DeleteTuples(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	if err := a.DeleteBrand(context.Background(), "brand-1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthorizationModelProvider(t *testing.T) {
	model := NewAuthorizationModelProvider("v0").GetModel()

	if model.SchemaVersion != "1.1" {
		t.Errorf("expected schema 1.1, got %s", model.SchemaVersion)
	}

	types := map[string]bool{}
	for _, td := range model.TypeDefinitions {
		types[td.Type] = true
	}

	for _, expected := range []string{"user", "workspace", "brand"} {
		if !types[expected] {
			t.Errorf("expected type %s in model", expected)
		}
	}
}

func TestAuthorizationModelBrandRelations(t *testing.T) {
	model := NewAuthorizationModelProvider("v0").GetModel()

	expected := map[string]bool{OWNER_RELATION: true, WORKSPACE_RELATION: true, CAN_MANAGE_PERMISSION: true}

	for _, td := range model.TypeDefinitions {
		if td.Type != "brand" {
			continue
		}

		if td.Relations == nil || len(*td.Relations) != len(expected) {
			t.Fatalf("expected brand relations %v, got %v", expected, td.Relations)
		}

		for name := range *td.Relations {
			if !expected[name] {
				t.Errorf("unexpected brand relation %s", name)
			}
		}

		return
	}

	t.Fatal("brand type missing from model")
}
