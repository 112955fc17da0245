// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
)

var (
	ErrNoAccessPolicy = errors.New("no admin access policy configured")
	ErrAccessDenied   = errors.New("token subject not allowed and required scope missing")
)

// Config selects the issuer admin tokens come from and who may use them. A
// token is accepted when its subject is listed or it carries RequiredScope.
type Config struct {
	Issuer string
	// JWKSURL skips OIDC discovery when set
	JWKSURL         string
	AllowedSubjects []string
	RequiredScope   string
}

type claims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

func (c claims) hasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	config   Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ TokenVerifierInterface = (*JWTVerifier)(nil)

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		v.count("invalid")
		return "", err
	}

	var c claims
	if err := token.Claims(&c); err != nil {
		v.count("invalid")
		return "", fmt.Errorf("failed to extract claims: %w", err)
	}

	if err := v.authorize(c); err != nil {
		v.count("denied")
		v.logger.Security().AuthzFailure(c.Subject, "admin_api")
		return "", err
	}

	v.count("accepted")

	return c.Subject, nil
}

func (v *JWTVerifier) authorize(c claims) error {
	if len(v.config.AllowedSubjects) == 0 && v.config.RequiredScope == "" {
		return ErrNoAccessPolicy
	}

	if slices.Contains(v.config.AllowedSubjects, c.Subject) {
		return nil
	}

	if v.config.RequiredScope != "" && c.hasScope(v.config.RequiredScope) {
		return nil
	}

	return ErrAccessDenied
}

func (v *JWTVerifier) count(outcome string) {
	if err := v.monitor.IncrementEventCounter(map[string]string{"event": "admin_token", "outcome": outcome}); err != nil {
		v.logger.Debugf("failed to record admin token verification: %v", err)
	}
}

// NewJWTVerifier builds a verifier for cfg.Issuer, fetching its keys from
// cfg.JWKSURL or from the issuer discovery document.
func NewJWTVerifier(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*JWTVerifier, error) {
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	ctx = oidc.ClientContext(ctx, tracing.NewHTTPClient(0))
	oidcConfig := &oidc.Config{SkipClientIDCheck: true}

	var idVerifier *oidc.IDTokenVerifier

	if cfg.JWKSURL != "" {
		logger.Infof("Using manual JWKS URL: %s", cfg.JWKSURL)
		idVerifier = oidc.NewVerifier(cfg.Issuer, oidc.NewRemoteKeySet(ctx, cfg.JWKSURL), oidcConfig)
	} else {
		logger.Infof("Using OIDC discovery for issuer: %s", cfg.Issuer)
		provider, err := oidc.NewProvider(ctx, cfg.Issuer)
		if err != nil {
			return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
		}
		idVerifier = provider.Verifier(oidcConfig)
	}

	return newJWTVerifier(idVerifier, cfg, tracer, monitor, logger), nil
}

func newJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier: verifier,
		config:   cfg,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
