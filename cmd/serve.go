// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/lighthouse-hq/lighthouse/internal/analytics"
	"github.com/lighthouse-hq/lighthouse/internal/authorization"
	"github.com/lighthouse-hq/lighthouse/internal/config"
	"github.com/lighthouse-hq/lighthouse/internal/db"
	"github.com/lighthouse-hq/lighthouse/internal/kratos"
	"github.com/lighthouse-hq/lighthouse/internal/locking"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring/prometheus"
	"github.com/lighthouse-hq/lighthouse/internal/openfga"
	"github.com/lighthouse-hq/lighthouse/internal/slack"
	"github.com/lighthouse-hq/lighthouse/internal/state"
	"github.com/lighthouse-hq/lighthouse/internal/storage"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/pkg/authentication"
	"github.com/lighthouse-hq/lighthouse/pkg/brands"
	"github.com/lighthouse-hq/lighthouse/pkg/credentials"
	"github.com/lighthouse-hq/lighthouse/pkg/dispatch"
	"github.com/lighthouse-hq/lighthouse/pkg/installation"
	"github.com/lighthouse-hq/lighthouse/pkg/routing"
	"github.com/lighthouse-hq/lighthouse/pkg/web"
	"github.com/lighthouse-hq/lighthouse/pkg/webhooks"
)

const serviceName = "lighthouse"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// services holds the components the server is built from.
type services struct {
	specs *config.EnvSpec

	dbClient   *db.DBClient
	storage    *storage.Storage
	authorizer *authorization.Authorizer
	locker     credentials.LockerInterface

	slack     *slack.Client
	analytics *analytics.Client
	signer    *state.Signer

	credentials  *credentials.Store
	resolver     *routing.Resolver
	registry     *installation.Registry
	dispatcher   *dispatch.Dispatcher
	brandService *brands.Service

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *services) Close() {
	if closer, ok := s.locker.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			s.logger.Errorf("failed to close locker: %v", err)
		}
	}

	s.dbClient.Close()
	s.logger.Sync()
}

func loadSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	return specs, nil
}

func newServices(ctx context.Context, specs *config.EnvSpec) (*services, error) {
	s := new(services)
	s.specs = specs

	logger := logging.NewLogger(specs.LogLevel)
	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	s.logger = logger
	s.monitor = monitor
	s.tracer = tracer

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	s.dbClient = dbClient
	s.storage = storage.NewStorage(dbClient, tracer, monitor, logger)

	authorizer, err := newAuthorizer(ctx, specs, tracer, monitor, logger)
	if err != nil {
		dbClient.Close()
		return nil, err
	}

	s.authorizer = authorizer

	if specs.RedisURL != "" {
		locker, err := locking.NewRedisLocker(specs.RedisURL, specs.RefreshLockTTL, tracer, monitor, logger)
		if err != nil {
			dbClient.Close()
			return nil, fmt.Errorf("failed to create refresh locker: %w", err)
		}

		logger.Info("Using redis refresh locker")
		s.locker = locker
	} else {
		logger.Info("Using in-process refresh locking only")
		s.locker = locking.NewNoopLocker()
	}

	s.signer = state.NewSigner(specs.StateSecret, specs.StateLifetime)

	s.slack = slack.NewClient(
		slack.Config{
			ClientID:      specs.SlackClientID,
			ClientSecret:  specs.SlackClientSecret,
			SigningSecret: specs.SlackSigningSecret,
			RedirectURI:   specs.SlackRedirectURI,
			APIURL:        specs.SlackAPIURL,
			Scopes:        specs.SlackScopes,
		},
		tracer,
		monitor,
		logger,
	)

	s.analytics = analytics.NewClient(
		analytics.Config{
			APIURL:          specs.ProviderAPIURL,
			AppURL:          specs.ProviderAppURL,
			ClientID:        specs.ProviderClientID,
			ClientSecret:    specs.ProviderClientSecret,
			RedirectURI:     specs.ProviderRedirectURI,
			APIKey:          specs.ProviderAPIKey,
			Scopes:          specs.ProviderScopes,
			Timezone:        specs.ProviderTimezone,
			Currency:        specs.ProviderCurrency,
			ExchangeTimeout: specs.TokenExchangeTimeout,
			QueryTimeout:    specs.AnalyticsQueryTimeout,
		},
		tracer,
		monitor,
		logger,
	)

	s.credentials = credentials.NewStore(
		s.storage,
		s.analytics,
		s.locker,
		s.signer,
		credentials.Config{
			RefreshWindow:        specs.TokenRefreshWindow,
			RefreshTokenLifetime: specs.RefreshTokenLifetime,
		},
		tracer,
		monitor,
		logger,
	)

	s.resolver = routing.NewResolver(s.storage, s.slack, authorizer, tracer, monitor, logger)

	var users installation.UserDirectoryInterface = s.storage
	if specs.KratosAdminURL != "" {
		logger.Info("Resolving installers through the identity admin API")
		users = kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)
	}

	s.registry = installation.NewRegistry(s.storage, users, s.slack, s.resolver, authorizer, tracer, monitor, logger)
	s.dispatcher = dispatch.NewDispatcher(s.registry, s.resolver, s.credentials, s.analytics, s.slack, tracer, monitor, logger)
	s.brandService = brands.NewService(s.storage, authorizer, s.analytics, s.credentials, tracer, monitor, logger)

	return s, nil
}

func newAuthorizer(
	ctx context.Context,
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*authorization.Authorizer, error) {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger), nil
	}

	ofga, err := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openfga client: %w", err)
	}

	authorizer := authorization.NewAuthorizer(ofga, tracer, monitor, logger)
	logger.Info("Authorization is enabled")

	if err := authorizer.ValidateModel(ctx); err != nil {
		return nil, fmt.Errorf("invalid authorization model provided: %w", err)
	}

	return authorizer, nil
}

func newAuthentication(ctx context.Context, s *services) (func(http.Handler) http.Handler, error) {
	var verifier authentication.TokenVerifierInterface = authentication.NewNoopVerifier()

	if s.specs.AuthenticationEnabled {
		v, err := authentication.NewJWTVerifier(
			ctx,
			authentication.Config{
				Issuer:          s.specs.AuthenticationIssuer,
				JWKSURL:         s.specs.AuthenticationJWKSURL,
				AllowedSubjects: s.specs.AuthenticationAllowedSubject,
				RequiredScope:   s.specs.AuthenticationRequiredScope,
			},
			s.tracer,
			s.monitor,
			s.logger,
		)
		if err != nil {
			return nil, err
		}

		s.logger.Info("JWT authentication is enabled")
		verifier = v
	} else {
		s.logger.Info("Admin API authentication is disabled")
	}

	return authentication.NewMiddleware(verifier, s.tracer, s.monitor, s.logger).Authenticate(), nil
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	ctx := context.Background()

	s, err := newServices(ctx, specs)
	if err != nil {
		return err
	}
	defer s.Close()

	authenticate, err := newAuthentication(ctx, s)
	if err != nil {
		return fmt.Errorf("failed to set up authentication: %w", err)
	}

	var scheduler *routing.Scheduler
	if specs.ReconcilePeriod > 0 {
		if scheduler, err = routing.NewScheduler(s.resolver, specs.ReconcilePeriod, s.logger); err != nil {
			return err
		}
	} else {
		s.logger.Info("Periodic channel reconciliation is disabled")
	}

	callbacks := []web.APIInterface{
		credentials.NewAPI(s.credentials, s.logger),
		installation.NewAPI(s.registry, s.slack, s.signer, s.logger),
		dispatch.NewAPI(s.dispatcher, s.slack, s.logger),
	}

	if specs.WebhookAPIKey != "" {
		users := webhooks.NewService(s.storage, s.tracer, s.monitor, s.logger)
		callbacks = append(callbacks, webhooks.NewAPI(users, specs.WebhookAPIKey, s.logger))
	}

	router := web.NewRouter(
		web.Config{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			AdminRateLimit:     specs.AdminRateLimit,
		},
		s.dbClient,
		authenticate,
		callbacks,
		[]web.APIInterface{
			brands.NewAPI(s.brandService, s.authorizer, s.logger),
			routing.NewAPI(s.resolver, s.authorizer, s.logger),
		},
		s.tracer,
		s.monitor,
		s.logger,
	)

	s.logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	if scheduler != nil {
		scheduler.Start()
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	s.logger.Security().SystemShutdown()

	if scheduler != nil {
		if err := scheduler.Shutdown(); err != nil {
			s.logger.Errorf("failed to stop scheduler: %v", err)
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
