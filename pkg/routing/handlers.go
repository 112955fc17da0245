// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/lighthouse-hq/lighthouse/internal/http/types"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/pkg/authentication"
)

type AssignRequest struct {
	BrandID string `json:"brand_id" validate:"required"`
}

type API struct {
	resolver  ResolverInterface
	authz     AuthorizerInterface
	validator *validator.Validate

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/workspaces/{workspace}/channels", a.listChannels)
	mux.Put("/api/v0/workspaces/{workspace}/channels/{channel}", a.assign)
	mux.Delete("/api/v0/workspaces/{workspace}/channels/{channel}", a.unassign)
	mux.Post("/api/v0/workspaces/{workspace}/reconcile", a.reconcile)
}

func (a *API) listChannels(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspace")
	if !a.canManageWorkspace(w, r, workspaceID) {
		return
	}

	mappings, err := a.resolver.ListMappings(r.Context(), workspaceID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = types.WriteJSON(w, http.StatusOK, mappings)
}

func (a *API) assign(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspace")
	channelID := chi.URLParam(r, "channel")

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.Struct(req); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, "brand_id is required")
		return
	}

	if !a.canManageWorkspace(w, r, workspaceID) {
		return
	}

	userID, _ := authentication.GetUserID(r.Context())

	allowed, err := a.authz.CanManageBrand(r.Context(), userID, req.BrandID)
	if err == nil && allowed {
		allowed, err = a.resolver.OwnsBrand(r.Context(), userID, req.BrandID)
	}

	if err != nil {
		a.logger.Errorf("failed to check brand permission: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "authorization check failed")
		return
	}

	if !allowed {
		a.logger.Security().AuthzFailure(userID, "brand:"+req.BrandID)
		_ = types.WriteError(w, http.StatusForbidden, "forbidden")
		return
	}

	if err := a.resolver.Assign(r.Context(), workspaceID, channelID, req.BrandID); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) unassign(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspace")
	if !a.canManageWorkspace(w, r, workspaceID) {
		return
	}

	if err := a.resolver.Unassign(r.Context(), workspaceID, chi.URLParam(r, "channel")); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) reconcile(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspace")
	if !a.canManageWorkspace(w, r, workspaceID) {
		return
	}

	result, err := a.resolver.ReconcileWorkspace(r.Context(), workspaceID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	_ = types.WriteJSON(w, http.StatusOK, result)
}

// canManageWorkspace writes the failure response itself and reports whether
// the handler may proceed. Both the authorization mirror and the stored
// admin membership must agree.
func (a *API) canManageWorkspace(w http.ResponseWriter, r *http.Request, workspaceID string) bool {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok || userID == "" {
		_ = types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return false
	}

	allowed, err := a.authz.CanManageWorkspace(r.Context(), userID, workspaceID)
	if err == nil && allowed {
		allowed, err = a.resolver.IsWorkspaceAdmin(r.Context(), userID, workspaceID)
	}

	if err != nil {
		a.logger.Errorf("failed to check workspace permission: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "authorization check failed")
		return false
	}

	if !allowed {
		a.logger.Security().AuthzFailure(userID, "workspace:"+workspaceID)
		_ = types.WriteError(w, http.StatusForbidden, "forbidden")
		return false
	}

	return true
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		_ = types.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNoBotToken):
		_ = types.WriteError(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("routing request failed: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func NewAPI(resolver ResolverInterface, authz AuthorizerInterface, logger logging.LoggerInterface) *API {
	return &API{
		resolver:  resolver,
		authz:     authz,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}
