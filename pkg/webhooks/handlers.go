// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	ory "github.com/ory/client-go"

	"github.com/lighthouse-hq/lighthouse/internal/http/types"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
)

const apiKeyHeader = "Authorization"

type API struct {
	service ServiceInterface
	apiKey  string

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/webhooks/registration", a.registration)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get(apiKeyHeader)
	if a.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(a.apiKey)) != 1 {
		a.logger.Security().AuthnFailure("", "registration webhook key rejected")
		_ = types.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	identity := new(ory.Identity)
	if err := json.NewDecoder(r.Body).Decode(identity); err != nil {
		a.logger.Errorf("failed to decode registration payload: %v", err)
		_ = types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.service.HandleRegistration(r.Context(), identity)
	if err != nil {
		if errors.Is(err, ErrInvalidIdentity) {
			_ = types.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		a.logger.Errorf("failed to handle registration: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "failed to record user")
		return
	}

	_ = types.WriteJSON(w, http.StatusOK, user)
}

// NewAPI serves the identity provider hooks, every call must carry apiKey.
func NewAPI(service ServiceInterface, apiKey string, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		apiKey:  apiKey,
		logger:  logger,
	}
}
