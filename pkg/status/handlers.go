// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lighthouse-hq/lighthouse/internal/http/types"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_ = types.WriteJSON(w, http.StatusOK, Status{Status: "ok", Version: version.Version})
}

// ready reports whether the database answers, the only dependency every
// request path needs.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database is not reachable: %v", err)
		a.setAvailability(0)
		_ = types.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	a.setAvailability(1)

	_ = types.WriteJSON(w, http.StatusOK, Status{Status: "ready", Version: version.Version})
}

func (a *API) setAvailability(v float64) {
	if err := a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, v); err != nil {
		a.logger.Debugf("failed to record availability: %v", err)
	}
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
