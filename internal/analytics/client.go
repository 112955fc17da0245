// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
)

const (
	queryPath        = "/orcabase/api/moby"
	registerPath     = "/orcabase/dev/register-account"
	signInPath       = "/orcabase/dev/sign-in-account"
	integrationsPath = "/orcabase/integrations"

	apiKeyHeader = "x-api-key"
	dependency   = "analytics"
)

// Client talks to the analytics provider, both its OAuth endpoints and the
// question answering API.
type Client struct {
	config Config
	oauth2 *oauth2.Config

	tokenClient *http.Client
	apiClient   *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Query asks a question on behalf of a brand. Non-2xx answers and timeouts
// are reported as ErrTransientProvider, the body is logged and never
// returned.
func (c *Client) Query(ctx context.Context, accessToken, question string) (*QueryResponse, error) {
	ctx, span := c.tracer.Start(ctx, "analytics.Client.Query")
	defer span.End()

	if c.config.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.QueryTimeout)
		defer cancel()
	}

	body, err := json.Marshal(QueryRequest{Question: question})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIURL+queryPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp := new(QueryResponse)
	if err := c.do(req, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// RegisterAccount creates the provider side account for a brand. An already
// registered account comes back as an error, callers treat it as best effort.
func (c *Client) RegisterAccount(ctx context.Context, accountID, accountName string) error {
	ctx, span := c.tracer.Start(ctx, "analytics.Client.RegisterAccount")
	defer span.End()

	req, err := c.apiKeyRequest(ctx, registerPath, registerAccountRequest{
		AppID:       c.config.ClientID,
		AccountID:   accountID,
		AccountName: accountName,
		Timezone:    c.config.Timezone,
		Currency:    c.config.Currency,
	})
	if err != nil {
		return err
	}

	return c.do(req, nil)
}

func (c *Client) signInToken(ctx context.Context, accountID string) (string, error) {
	req, err := c.apiKeyRequest(ctx, signInPath, signInRequest{
		AccountID: accountID,
		AppID:     c.config.ClientID,
	})
	if err != nil {
		return "", err
	}

	resp := new(signInResponse)
	if err := c.do(req, resp); err != nil {
		return "", err
	}

	if resp.Token == "" {
		return "", fmt.Errorf("sign-in response missing token: %w", ErrTransientProvider)
	}

	return resp.Token, nil
}

// IntegrationsURL returns a signed link to the provider integrations page of
// the given account.
func (c *Client) IntegrationsURL(ctx context.Context, accountID string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "analytics.Client.IntegrationsURL")
	defer span.End()

	token, err := c.signInToken(ctx, accountID)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("account-id", accountID)
	params.Set("app-id", c.config.ClientID)
	params.Set("token", token)

	return c.config.AppURL + integrationsPath + "?" + params.Encode(), nil
}

func (c *Client) apiKeyRequest(ctx context.Context, path string, payload any) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.config.APIKey)

	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.apiClient.Do(req)
	if err != nil {
		c.setAvailability(err)
		c.logger.Errorf("request to %s failed: %v", req.URL.Path, err)
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, ErrTransientProvider)
	}
	defer resp.Body.Close()

	c.setAvailability(nil)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// response bodies are never read or logged
		c.logger.Errorw("provider returned an error", "path", req.URL.Path, "status", resp.StatusCode)
		return fmt.Errorf("%s returned status %d: %w", req.URL.Path, resp.StatusCode, ErrTransientProvider)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Errorf("failed to decode %s response: %v", req.URL.Path, err)
		return fmt.Errorf("failed to decode %s response: %w", req.URL.Path, ErrTransientProvider)
	}

	return nil
}

func (c *Client) setAvailability(err error) {
	v := 1.0
	var rErr *oauth2.RetrieveError
	if err != nil && !errors.As(err, &rErr) {
		v = 0.0
	}

	if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": dependency}, v); mErr != nil {
		c.logger.Debugf("failed to record availability: %v", mErr)
	}
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.config = cfg
	c.oauth2 = newOAuth2Config(cfg)

	c.tokenClient = tracing.NewHTTPClient(0)
	c.apiClient = tracing.NewHTTPClient(0)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
