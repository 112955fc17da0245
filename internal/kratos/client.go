// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	ory "github.com/ory/client-go"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
)

var ErrIdentityNotFound = errors.New("identity not found")

// Client resolves users against the Kratos admin API.
type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	conf.HTTPClient = tracing.NewHTTPClient(0)

	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GetUserByEmail returns the identity owning email. EmailVerified reflects
// the verification state of that exact address.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetUserByEmail")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}
		c.setAvailability(0)
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	c.setAvailability(1)

	if len(ids) == 0 {
		return nil, ErrIdentityNotFound
	}

	return ToUser(&ids[0], email), nil
}

// ToUser maps an identity to a user of the directory, email is the address
// the user was looked up or registered with.
func ToUser(identity *ory.Identity, email string) *types.User {
	u := &types.User{
		ID:    identity.Id,
		Email: email,
	}

	if identity.CreatedAt != nil {
		u.CreatedAt = *identity.CreatedAt
	}

	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if name, ok := traits["name"].(string); ok {
			u.Name = name
		}
	}

	for _, addr := range identity.VerifiableAddresses {
		if strings.EqualFold(addr.Value, email) && addr.Verified {
			u.EmailVerified = true
		}
	}

	return u
}

// TraitEmail returns the email trait of an identity, empty when missing.
func TraitEmail(identity *ory.Identity) string {
	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return ""
	}

	email, _ := traits["email"].(string)

	return email
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, v); err != nil {
		c.logger.Debugf("failed to record availability: %v", err)
	}
}
