// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package analytics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"golang.org/x/oauth2"
)

const (
	authPath  = "/orcabase/dev/auth"
	tokenPath = "/auth/oauth2/token"

	invalidGrant = "invalid_grant"
)

func newOAuth2Config(cfg Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes:       cfg.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   cfg.APIURL + authPath,
			TokenURL:  cfg.APIURL + tokenPath,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthorizationURL builds the link a brand owner follows to grant access. The
// brand id doubles as the provider account id.
func (c *Client) AuthorizationURL(brandID, state string) string {
	return c.oauth2.AuthCodeURL(state, oauth2.SetAuthURLParam("account_id", brandID))
}

// Exchange trades an authorization code for a fresh grant. Every field of the
// response is required.
func (c *Client) Exchange(ctx context.Context, code string) (*Grant, error) {
	ctx, span := c.tracer.Start(ctx, "analytics.Client.Exchange")
	defer span.End()

	ctx, cancel := c.tokenContext(ctx)
	defer cancel()

	token, err := c.oauth2.Exchange(ctx, code)
	if err != nil {
		c.setAvailability(err)
		return nil, c.classifyGrantError(err, ErrConfig)
	}

	c.setAvailability(nil)

	if token.RefreshToken == "" {
		return nil, fmt.Errorf("token response missing refresh_token: %w", ErrConfig)
	}

	if token.Expiry.IsZero() || !token.Expiry.After(time.Now()) {
		return nil, fmt.Errorf("token response missing a positive expires_in: %w", ErrConfig)
	}

	return &Grant{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}, nil
}

// Refresh redeems a refresh token. The provider rotates the refresh token on
// every call, the previous one is kept only if the response omits it.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Grant, error) {
	ctx, span := c.tracer.Start(ctx, "analytics.Client.Refresh")
	defer span.End()

	ctx, cancel := c.tokenContext(ctx)
	defer cancel()

	// a past expiry forces the token source to hit the endpoint
	source := c.oauth2.TokenSource(ctx, &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Unix(1, 0),
	})

	token, err := source.Token()
	if err != nil {
		c.setAvailability(err)
		return nil, c.classifyGrantError(err, ErrTransientProvider)
	}

	c.setAvailability(nil)

	if token.Expiry.IsZero() || !token.Expiry.After(time.Now()) {
		return nil, fmt.Errorf("refresh response missing a positive expires_in: %w", ErrConfig)
	}

	return &Grant{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}, nil
}

func (c *Client) tokenContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.tokenClient)

	if c.config.ExchangeTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.config.ExchangeTimeout)
}

// classifyGrantError maps token endpoint failures onto the package sentinels.
// malformed is returned for responses the library refused to parse.
func (c *Client) classifyGrantError(err error, malformed error) error {
	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) {
		status := 0
		if rErr.Response != nil {
			status = rErr.Response.StatusCode
		}

		if rErr.ErrorCode == invalidGrant {
			c.logger.Warnf("provider rejected grant with status %d", status)
			return fmt.Errorf("provider rejected grant: %w", ErrReauthRequired)
		}

		c.logger.Errorf("token endpoint returned status %d (%s)", status, rErr.ErrorCode)
		return fmt.Errorf("token endpoint returned status %d: %w", status, ErrTransientProvider)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		c.logger.Errorf("token endpoint unreachable: %v", err)
		return fmt.Errorf("token endpoint unreachable: %w", ErrTransientProvider)
	}

	c.logger.Errorf("unusable token response: %v", err)
	return fmt.Errorf("unusable token response: %w", malformed)
}
