// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package brands

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/lighthouse-hq/lighthouse/internal/authorization"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/openfga"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
	"github.com/lighthouse-hq/lighthouse/pkg/authentication"
)

func TestAPI_Endpoints(t *testing.T) {
	refresh := "refresh"

	testCases := []struct {
		name           string
		method         string
		path           string
		body           string
		userID         string
		setupMocks     func(*MockServiceInterface, *MockAuthzInterface)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "create returns the authorization link",
			method: http.MethodPost,
			path:   "/api/v0/brands",
			body:   `{"name":"Acme","website":"https://acme.test"}`,
			userID: "user-1",
			setupMocks: func(s *MockServiceInterface, a *MockAuthzInterface) {
				s.EXPECT().CreateBrand(gomock.Any(), "user-1", "Acme", "https://acme.test").
					Return(&types.Brand{ID: "brand-1", Name: "Acme"}, "https://provider/authorize", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"authorization_url":"https://provider/authorize"`,
		},
		{
			name:           "create without a name",
			method:         http.MethodPost,
			path:           "/api/v0/brands",
			body:           `{"website":"https://acme.test"}`,
			userID:         "user-1",
			setupMocks:     func(s *MockServiceInterface, a *MockAuthzInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "create unauthenticated",
			method:         http.MethodPost,
			path:           "/api/v0/brands",
			body:           `{"name":"Acme"}`,
			setupMocks:     func(s *MockServiceInterface, a *MockAuthzInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "list never exposes tokens",
			method: http.MethodGet,
			path:   "/api/v0/brands",
			userID: "user-1",
			setupMocks: func(s *MockServiceInterface, a *MockAuthzInterface) {
				s.EXPECT().ListBrands(gomock.Any(), "user-1").Return([]*types.Brand{
					{ID: "brand-1", Name: "Acme", RefreshToken: &refresh, AccessToken: &refresh},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"connected":true`,
		},
		{
			name:   "delete owned brand",
			method: http.MethodDelete,
			path:   "/api/v0/brands/brand-1",
			userID: "user-1",
			setupMocks: func(s *MockServiceInterface, a *MockAuthzInterface) {
				a.EXPECT().CanManageBrand(gomock.Any(), "user-1", "brand-1").Return(true, nil)
				s.EXPECT().DeleteBrand(gomock.Any(), "user-1", "brand-1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "delete someone else's brand",
			method: http.MethodDelete,
			path:   "/api/v0/brands/brand-1",
			userID: "user-2",
			setupMocks: func(s *MockServiceInterface, a *MockAuthzInterface) {
				a.EXPECT().CanManageBrand(gomock.Any(), "user-2", "brand-1").Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "delete a brand the service refuses",
			method: http.MethodDelete,
			path:   "/api/v0/brands/brand-1",
			userID: "user-1",
			setupMocks: func(s *MockServiceInterface, a *MockAuthzInterface) {
				a.EXPECT().CanManageBrand(gomock.Any(), "user-1", "brand-1").Return(true, nil)
				s.EXPECT().DeleteBrand(gomock.Any(), "user-1", "brand-1").Return(ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "delete unknown brand",
			method: http.MethodDelete,
			path:   "/api/v0/brands/brand-1",
			userID: "user-1",
			setupMocks: func(s *MockServiceInterface, a *MockAuthzInterface) {
				a.EXPECT().CanManageBrand(gomock.Any(), "user-1", "brand-1").Return(true, nil)
				s.EXPECT().DeleteBrand(gomock.Any(), "user-1", "brand-1").Return(ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "reconnect link",
			method: http.MethodGet,
			path:   "/api/v0/brands/brand-1/authorize",
			userID: "user-1",
			setupMocks: func(s *MockServiceInterface, a *MockAuthzInterface) {
				a.EXPECT().CanManageBrand(gomock.Any(), "user-1", "brand-1").Return(true, nil)
				s.EXPECT().AuthorizationURL(gomock.Any(), "user-1", "brand-1").Return("https://provider/authorize?state=s", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"authorization_url":"https://provider/authorize?state=s"`,
		},
		{
			name:   "authorization check failure",
			method: http.MethodGet,
			path:   "/api/v0/brands/brand-1/authorize",
			userID: "user-1",
			setupMocks: func(s *MockServiceInterface, a *MockAuthzInterface) {
				a.EXPECT().CanManageBrand(gomock.Any(), "user-1", "brand-1").Return(false, errors.New("fga down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			tc.setupMocks(mockService, mockAuthz)

			mux := chi.NewMux()
			NewAPI(mockService, mockAuthz, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.userID != "" {
				req = req.WithContext(authentication.WithUserID(context.Background(), tc.userID))
			}

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}

			if tc.expectedBody != "" && !strings.Contains(w.Body.String(), tc.expectedBody) {
				t.Errorf("expected body to contain %s, got %s", tc.expectedBody, w.Body.String())
			}

			if strings.Contains(w.Body.String(), refresh+`"`) {
				t.Errorf("response leaked a token: %s", w.Body.String())
			}

			if w.Code != http.StatusNoContent && !json.Valid(w.Body.Bytes()) {
				t.Errorf("expected json body, got %s", w.Body.String())
			}
		})
	}
}

func TestAPI_OwnershipWithoutAuthorizationMirror(t *testing.T) {
	alices := &types.Brand{ID: "brand-alice", Name: "Acme", OwnerUserID: "alice"}

	testCases := []struct {
		name           string
		method         string
		path           string
		userID         string
		setupMocks     func(*MockStorageInterface, *MockCredentialsInterface)
		expectedStatus int
	}{
		{
			name:   "owner deletes",
			method: http.MethodDelete,
			path:   "/api/v0/brands/brand-alice",
			userID: "alice",
			setupMocks: func(s *MockStorageInterface, c *MockCredentialsInterface) {
				s.EXPECT().GetBrand(gomock.Any(), "brand-alice").Return(alices, nil)
				s.EXPECT().DeleteBrand(gomock.Any(), "brand-alice").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "another user cannot delete",
			method: http.MethodDelete,
			path:   "/api/v0/brands/brand-alice",
			userID: "mallory",
			setupMocks: func(s *MockStorageInterface, c *MockCredentialsInterface) {
				s.EXPECT().GetBrand(gomock.Any(), "brand-alice").Return(alices, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "another user gets no authorization link",
			method: http.MethodGet,
			path:   "/api/v0/brands/brand-alice/authorize",
			userID: "mallory",
			setupMocks: func(s *MockStorageInterface, c *MockCredentialsInterface) {
				s.EXPECT().GetBrand(gomock.Any(), "brand-alice").Return(alices, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := logging.NewNoopLogger()
			tracer := tracing.NewNoopTracer()
			monitor := monitoring.NewNoopMonitor("test", logger)
			authz := authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger)

			mockStorage := NewMockStorageInterface(ctrl)
			mockCredentials := NewMockCredentialsInterface(ctrl)
			tc.setupMocks(mockStorage, mockCredentials)

			service := NewService(mockStorage, authz, NewMockAccountsInterface(ctrl), mockCredentials, tracer, monitor, logger)

			mux := chi.NewMux()
			NewAPI(service, authz, logger).RegisterEndpoints(mux)

			req := httptest.NewRequest(tc.method, tc.path, nil)
			req = req.WithContext(authentication.WithUserID(context.Background(), tc.userID))

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
