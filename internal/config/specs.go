// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port    int    `envconfig:"port" default:"8080"`
	BaseURL string `envconfig:"base_url" default:"http://localhost:8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
	// AdminRateLimit is the number of admin API requests allowed per client IP and minute
	AdminRateLimit int `envconfig:"admin_rate_limit" default:"120"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// RedisURL enables the cross-replica refresh lock when set
	RedisURL       string        `envconfig:"redis_url"`
	RefreshLockTTL time.Duration `envconfig:"refresh_lock_ttl" default:"30s"`
	KratosAdminURL string        `envconfig:"kratos_admin_url"`
	// WebhookAPIKey enables the identity registration hook when set
	WebhookAPIKey   string        `envconfig:"webhook_api_key"`
	StateSecret     string        `envconfig:"state_secret" required:"true"`
	StateLifetime   time.Duration `envconfig:"state_lifetime" default:"15m"`
	ReconcilePeriod time.Duration `envconfig:"reconcile_interval" default:"30m"`

	ProviderClientID      string        `envconfig:"provider_client_id" required:"true"`
	ProviderClientSecret  string        `envconfig:"provider_client_secret" required:"true"`
	ProviderRedirectURI   string        `envconfig:"provider_redirect_uri" required:"true"`
	ProviderAPIKey        string        `envconfig:"provider_api_key"`
	ProviderAPIURL        string        `envconfig:"provider_api_url" default:"https://api.triplewhale.com/api/v2"`
	ProviderAppURL        string        `envconfig:"provider_app_url" default:"https://app.triplewhale.com"`
	ProviderScopes        []string      `envconfig:"provider_scopes" default:"offline_access,offline"`
	ProviderTimezone      string        `envconfig:"provider_timezone" default:"America/New_York"`
	ProviderCurrency      string        `envconfig:"provider_currency" default:"USD"`
	TokenRefreshWindow    time.Duration `envconfig:"token_refresh_window" default:"5m"`
	RefreshTokenLifetime  time.Duration `envconfig:"refresh_token_lifetime" default:"720h"`
	TokenExchangeTimeout  time.Duration `envconfig:"token_exchange_timeout" default:"15s"`
	AnalyticsQueryTimeout time.Duration `envconfig:"analytics_query_timeout" default:"90s"`

	SlackClientID      string   `envconfig:"slack_client_id" required:"true"`
	SlackClientSecret  string   `envconfig:"slack_client_secret" required:"true"`
	SlackSigningSecret string   `envconfig:"slack_signing_secret" required:"true"`
	SlackRedirectURI   string   `envconfig:"slack_redirect_uri"`
	SlackAPIURL        string   `envconfig:"slack_api_url"`
	SlackScopes        []string `envconfig:"slack_scopes" default:"app_mentions:read,channels:read,channels:join,chat:write,commands,groups:read,team:read,users:read,users:read.email"`

	AuthenticationEnabled        bool     `envconfig:"authentication_enabled" default:"false"`
	AuthenticationIssuer         string   `envconfig:"authentication_issuer"`
	AuthenticationJWKSURL        string   `envconfig:"authentication_jwks_url"`
	AuthenticationAllowedSubject []string `envconfig:"authentication_allowed_subjects"`
	AuthenticationRequiredScope  string   `envconfig:"authentication_required_scope"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`
}
