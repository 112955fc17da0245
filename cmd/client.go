// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lighthouse-hq/lighthouse/internal/types"
	"github.com/lighthouse-hq/lighthouse/pkg/brands"
	"github.com/lighthouse-hq/lighthouse/pkg/routing"
)

// adminClient talks to the admin HTTP API of a running server.
type adminClient struct {
	endpoint string
	token    string
	client   *http.Client
}

func newAdminClient(endpoint, token string) *adminClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	return &adminClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		token:    token,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// getClient builds the admin client from the persistent flags.
func getClient() *adminClient {
	return newAdminClient(httpEndpoint, accessToken)
}

func (c *adminClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func (c *adminClient) CreateBrand(ctx context.Context, name, website string) (*brands.BrandResponse, error) {
	out := new(brands.BrandResponse)
	err := c.do(ctx, http.MethodPost, "/api/v0/brands", brands.CreateBrandRequest{Name: name, Website: website}, out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *adminClient) ListBrands(ctx context.Context) ([]brands.BrandResponse, error) {
	var out []brands.BrandResponse
	if err := c.do(ctx, http.MethodGet, "/api/v0/brands", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *adminClient) AuthorizationURL(ctx context.Context, brandID string) (string, error) {
	out := new(brands.BrandResponse)
	if err := c.do(ctx, http.MethodGet, "/api/v0/brands/"+url.PathEscape(brandID)+"/authorize", nil, out); err != nil {
		return "", err
	}

	return out.AuthorizationURL, nil
}

func (c *adminClient) DeleteBrand(ctx context.Context, brandID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v0/brands/"+url.PathEscape(brandID), nil, nil)
}

func (c *adminClient) ListChannels(ctx context.Context, workspaceID string) ([]*types.ChannelMapping, error) {
	var out []*types.ChannelMapping
	if err := c.do(ctx, http.MethodGet, channelsPath(workspaceID), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *adminClient) AssignChannel(ctx context.Context, workspaceID, channelID, brandID string) error {
	path := channelsPath(workspaceID) + "/" + url.PathEscape(channelID)
	return c.do(ctx, http.MethodPut, path, routing.AssignRequest{BrandID: brandID}, nil)
}

func (c *adminClient) UnassignChannel(ctx context.Context, workspaceID, channelID string) error {
	return c.do(ctx, http.MethodDelete, channelsPath(workspaceID)+"/"+url.PathEscape(channelID), nil, nil)
}

func (c *adminClient) Reconcile(ctx context.Context, workspaceID string) (*routing.ReconcileResult, error) {
	out := new(routing.ReconcileResult)
	path := "/api/v0/workspaces/" + url.PathEscape(workspaceID) + "/reconcile"
	if err := c.do(ctx, http.MethodPost, path, nil, out); err != nil {
		return nil, err
	}

	return out, nil
}

func channelsPath(workspaceID string) string {
	return "/api/v0/workspaces/" + url.PathEscape(workspaceID) + "/channels"
}
