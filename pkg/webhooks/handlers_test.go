// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/types"
)

const identityPayload = `{
	"id": "user-1",
	"schema_id": "default",
	"schema_url": "https://id.example.com/schemas/default",
	"traits": {"email": "ops@acme.com"},
	"verifiable_addresses": [{"value": "ops@acme.com", "verified": true, "via": "email", "status": "completed"}]
}`

func TestAPI_Registration(t *testing.T) {
	tests := []struct {
		name           string
		key            string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			key:  "hook-secret",
			body: identityPayload,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(&types.User{ID: "user-1", Email: "ops@acme.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong key",
			key:            "guess",
			body:           identityPayload,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing key",
			body:           identityPayload,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid body",
			key:            "hook-secret",
			body:           "not-json",
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "identity without email",
			key:  "hook-secret",
			body: identityPayload,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, ErrInvalidIdentity)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service error",
			key:  "hook-secret",
			body: identityPayload,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, "hook-secret", logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", strings.NewReader(tt.body))
			if tt.key != "" {
				req.Header.Set("Authorization", tt.key)
			}

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_RegistrationDisabledWithoutKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux := chi.NewMux()
	NewAPI(NewMockServiceInterface(ctrl), "", logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", strings.NewReader(identityPayload))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}
