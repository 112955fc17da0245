// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/pkg/metrics"
	"github.com/lighthouse-hq/lighthouse/pkg/status"
)

// APIInterface is implemented by every package exposing http endpoints.
type APIInterface interface {
	RegisterEndpoints(mux chi.Router)
}

type Config struct {
	CORSAllowedOrigins []string
	// AdminRateLimit is the admin API budget per client IP and minute, zero disables it
	AdminRateLimit int
}

// NewRouter mounts the platform callbacks, which authenticate themselves, next
// to the admin API, which sits behind authenticate.
func NewRouter(
	cfg Config,
	db status.PingerInterface,
	authenticate func(http.Handler) http.Handler,
	callbacks []APIInterface,
	admin []APIInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(db, tracer, monitor, logger).RegisterEndpoints(router)

	for _, api := range callbacks {
		api.RegisterEndpoints(router)
	}

	router.Group(func(r chi.Router) {
		r.Use(middlewareCORS(cfg.CORSAllowedOrigins))

		if cfg.AdminRateLimit > 0 {
			r.Use(httprate.LimitByIP(cfg.AdminRateLimit, time.Minute))
		}

		r.Use(authenticate)

		for _, api := range admin {
			api.RegisterEndpoints(r)
		}
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           300,
		},
	)
}
