// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package brands

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/lighthouse-hq/lighthouse/internal/http/types"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/pkg/authentication"
	"github.com/lighthouse-hq/lighthouse/pkg/credentials"
)

type CreateBrandRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Website string `json:"website" validate:"omitempty,url"`
}

type BrandResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Website          string `json:"website,omitempty"`
	Connected        bool   `json:"connected"`
	AuthorizationURL string `json:"authorization_url,omitempty"`
}

type API struct {
	service   ServiceInterface
	authz     AuthzInterface
	validator *validator.Validate

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/brands", a.create)
	mux.Get("/api/v0/brands", a.list)
	mux.Get("/api/v0/brands/{brand}/authorize", a.authorize)
	mux.Delete("/api/v0/brands/{brand}", a.delete)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok || userID == "" {
		_ = types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req CreateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := a.validator.Struct(req); err != nil {
		_ = types.WriteError(w, http.StatusBadRequest, "name is required and website must be a url")
		return
	}

	brand, url, err := a.service.CreateBrand(r.Context(), userID, req.Name, req.Website)
	if err != nil {
		a.logger.Errorf("failed to create brand: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "failed to create brand")
		return
	}

	_ = types.WriteJSON(w, http.StatusCreated, BrandResponse{
		ID:               brand.ID,
		Name:             brand.Name,
		Website:          brand.Website,
		AuthorizationURL: url,
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok || userID == "" {
		_ = types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	brands, err := a.service.ListBrands(r.Context(), userID)
	if err != nil {
		a.logger.Errorf("failed to list brands: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "failed to list brands")
		return
	}

	resp := make([]BrandResponse, 0, len(brands))
	for _, b := range brands {
		resp = append(resp, BrandResponse{
			ID:        b.ID,
			Name:      b.Name,
			Website:   b.Website,
			Connected: b.Connected(),
		})
	}

	_ = types.WriteJSON(w, http.StatusOK, resp)
}

func (a *API) authorize(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brand")
	if !a.canManageBrand(w, r, brandID) {
		return
	}

	userID, _ := authentication.GetUserID(r.Context())

	url, err := a.service.AuthorizationURL(r.Context(), userID, brandID)
	if err != nil {
		a.writeError(w, userID, brandID, err)
		return
	}

	_ = types.WriteJSON(w, http.StatusOK, BrandResponse{ID: brandID, AuthorizationURL: url})
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	brandID := chi.URLParam(r, "brand")
	if !a.canManageBrand(w, r, brandID) {
		return
	}

	userID, _ := authentication.GetUserID(r.Context())

	if err := a.service.DeleteBrand(r.Context(), userID, brandID); err != nil {
		a.writeError(w, userID, brandID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) canManageBrand(w http.ResponseWriter, r *http.Request, brandID string) bool {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok || userID == "" {
		_ = types.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return false
	}

	allowed, err := a.authz.CanManageBrand(r.Context(), userID, brandID)
	if err != nil {
		a.logger.Errorf("failed to check brand permission: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "authorization check failed")
		return false
	}

	if !allowed {
		a.logger.Security().AuthzFailure(userID, "brand:"+brandID)
		_ = types.WriteError(w, http.StatusForbidden, "forbidden")
		return false
	}

	return true
}

func (a *API) writeError(w http.ResponseWriter, userID, brandID string, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		a.logger.Security().AuthzFailure(userID, "brand:"+brandID)
		_ = types.WriteError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, ErrNotFound), errors.Is(err, credentials.ErrNotFound):
		_ = types.WriteError(w, http.StatusNotFound, "brand not found")
	default:
		a.logger.Errorf("brand request failed: %v", err)
		_ = types.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func NewAPI(service ServiceInterface, authz AuthzInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		authz:     authz,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}
