// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/state"
)

type API struct {
	store  StoreInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/oauth/callback", a.callback)
}

// callback is where the provider sends the brand owner back after granting
// access.
func (a *API) callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if e := q.Get("error"); e != "" {
		a.logger.Warnf("provider authorization denied: %s", e)
		http.Error(w, "Authorization was not granted.", http.StatusBadRequest)
		return
	}

	brandID, err := a.store.CompleteAuthorization(r.Context(), q.Get("code"), q.Get("state"))

	switch {
	case err == nil:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "Brand %s is connected. You can close this window.\n", brandID)
	case errors.Is(err, state.ErrInvalidState):
		a.logger.Security().AuthnFailure("", "invalid provider oauth state")
		http.Error(w, "The authorization link is invalid or has expired.", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "Brand not found.", http.StatusNotFound)
	case errors.Is(err, ErrConfig), errors.Is(err, ErrReauthRequired):
		a.logger.Errorf("provider authorization failed: %v", err)
		http.Error(w, "The provider returned an unusable grant, please try again.", http.StatusBadGateway)
	default:
		a.logger.Errorf("provider authorization failed: %v", err)
		http.Error(w, "Authorization could not be completed, please try again later.", http.StatusBadGateway)
	}
}

func NewAPI(store StoreInterface, logger logging.LoggerInterface) *API {
	return &API{
		store:  store,
		logger: logger,
	}
}
