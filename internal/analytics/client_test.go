// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
)

func newTestClient(serverURL string, queryTimeout time.Duration) *Client {
	logger := logging.NewNoopLogger()

	cfg := Config{
		APIURL:          serverURL,
		AppURL:          "https://app.example.com",
		ClientID:        "client-id",
		ClientSecret:    "client-secret",
		RedirectURI:     "https://bot.example.com/oauth/callback",
		APIKey:          "api-key",
		Scopes:          []string{"offline_access", "offline"},
		Timezone:        "America/New_York",
		Currency:        "USD",
		ExchangeTimeout: time.Second,
		QueryTimeout:    queryTimeout,
	}

	return NewClient(cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func tokenServer(t *testing.T, status int, body string, check func(*http.Request)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != tokenPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse form: %v", err)
		}
		if check != nil {
			check(r)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestClient_Refresh(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		expectedErr error
	}{
		{
			name:   "rotated tokens",
			status: http.StatusOK,
			body:   `{"access_token":"new-access","refresh_token":"new-refresh","expires_in":3600,"token_type":"Bearer"}`,
		},
		{
			name:        "invalid grant",
			status:      http.StatusBadRequest,
			body:        `{"error":"invalid_grant","error_description":"refresh token expired"}`,
			expectedErr: ErrReauthRequired,
		},
		{
			name:        "server error",
			status:      http.StatusBadGateway,
			body:        `{"error":"upstream"}`,
			expectedErr: ErrTransientProvider,
		},
		{
			name:        "other client error",
			status:      http.StatusUnauthorized,
			body:        `{"error":"invalid_client"}`,
			expectedErr: ErrTransientProvider,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := tokenServer(t, tc.status, tc.body, func(r *http.Request) {
				if r.PostForm.Get("grant_type") != "refresh_token" {
					t.Errorf("expected refresh_token grant, got %q", r.PostForm.Get("grant_type"))
				}
				if r.PostForm.Get("refresh_token") != "old-refresh" {
					t.Errorf("expected old refresh token, got %q", r.PostForm.Get("refresh_token"))
				}
				if r.PostForm.Get("client_id") != "client-id" || r.PostForm.Get("client_secret") != "client-secret" {
					t.Errorf("expected client credentials in the form body")
				}
			})

			c := newTestClient(srv.URL, time.Second)
			before := time.Now()

			grant, err := c.Refresh(context.Background(), "old-refresh")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if grant.AccessToken != "new-access" || grant.RefreshToken != "new-refresh" {
				t.Errorf("unexpected grant %+v", grant)
			}
			if grant.Expiry.Before(before.Add(59 * time.Minute)) {
				t.Errorf("expected expiry about an hour from now, got %v", grant.Expiry)
			}
		})
	}
}

func TestClient_RefreshUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := newTestClient(srv.URL, time.Second)

	if _, err := c.Refresh(context.Background(), "old-refresh"); !errors.Is(err, ErrTransientProvider) {
		t.Errorf("expected error %v, got %v", ErrTransientProvider, err)
	}
}

func TestClient_Exchange(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		expectedErr error
	}{
		{
			name:   "complete response",
			status: http.StatusOK,
			body:   `{"access_token":"a","refresh_token":"r","expires_in":7200}`,
		},
		{
			name:        "missing refresh token",
			status:      http.StatusOK,
			body:        `{"access_token":"a","expires_in":7200}`,
			expectedErr: ErrConfig,
		},
		{
			name:        "missing expires_in",
			status:      http.StatusOK,
			body:        `{"access_token":"a","refresh_token":"r"}`,
			expectedErr: ErrConfig,
		},
		{
			name:        "missing access token",
			status:      http.StatusOK,
			body:        `{"refresh_token":"r","expires_in":7200}`,
			expectedErr: ErrConfig,
		},
		{
			name:        "provider failure",
			status:      http.StatusInternalServerError,
			body:        `{"error":"server_error"}`,
			expectedErr: ErrTransientProvider,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := tokenServer(t, tc.status, tc.body, func(r *http.Request) {
				if r.PostForm.Get("grant_type") != "authorization_code" {
					t.Errorf("expected authorization_code grant, got %q", r.PostForm.Get("grant_type"))
				}
				if r.PostForm.Get("code") != "the-code" {
					t.Errorf("expected code to be forwarded, got %q", r.PostForm.Get("code"))
				}
				if r.PostForm.Get("redirect_uri") != "https://bot.example.com/oauth/callback" {
					t.Errorf("expected redirect uri to be forwarded, got %q", r.PostForm.Get("redirect_uri"))
				}
			})

			c := newTestClient(srv.URL, time.Second)

			grant, err := c.Exchange(context.Background(), "the-code")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if grant.RefreshToken != "r" {
				t.Errorf("expected refresh token r, got %q", grant.RefreshToken)
			}
		})
	}
}

func TestClient_AuthorizationURL(t *testing.T) {
	c := newTestClient("https://api.example.com/api/v2", time.Second)

	u, err := url.Parse(c.AuthorizationURL("brand-1", "signed-state"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Path != "/api/v2"+authPath {
		t.Errorf("unexpected path %s", u.Path)
	}

	q := u.Query()
	expected := map[string]string{
		"client_id":     "client-id",
		"response_type": "code",
		"scope":         "offline_access offline",
		"state":         "signed-state",
		"account_id":    "brand-1",
	}
	for k, v := range expected {
		if q.Get(k) != v {
			t.Errorf("expected %s=%q, got %q", k, v, q.Get(k))
		}
	}
}

func TestClient_Query(t *testing.T) {
	var gotAuth, gotQuestion string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req QueryRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotQuestion = req.Question

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"isError":false,"assistantConclusion":"Spend was $120","responses":[{"assistant":"step one"},{}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second)

	resp, err := c.Query(context.Background(), "tok", "how much did we spend?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer tok" {
		t.Errorf("expected bearer token, got %q", gotAuth)
	}
	if gotQuestion != "how much did we spend?" {
		t.Errorf("expected question to be forwarded, got %q", gotQuestion)
	}
	if resp.AssistantConclusion != "Spend was $120" || len(resp.Responses) != 2 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestClient_QueryFailures(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "secret internal detail", http.StatusInternalServerError)
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := newTestClient(srv.URL, 50*time.Millisecond)

			_, err := c.Query(context.Background(), "tok", "question")

			if !errors.Is(err, ErrTransientProvider) {
				t.Errorf("expected error %v, got %v", ErrTransientProvider, err)
			}
			if err != nil && strings.Contains(err.Error(), "secret internal detail") {
				t.Errorf("provider body leaked into error: %v", err)
			}
		})
	}
}

func TestClient_IntegrationsURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != signInPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get(apiKeyHeader) != "api-key" {
			t.Errorf("expected api key header")
		}

		var req signInRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.AccountID != "brand-1" || req.AppID != "client-id" {
			t.Errorf("unexpected sign-in request %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"sign-in"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second)

	link, err := c.IntegrationsURL(context.Background(), "brand-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, _ := url.Parse(link)
	if u.Host != "app.example.com" || u.Path != integrationsPath {
		t.Errorf("unexpected link %s", link)
	}
	if u.Query().Get("token") != "sign-in" || u.Query().Get("account-id") != "brand-1" || u.Query().Get("app-id") != "client-id" {
		t.Errorf("unexpected query %s", u.RawQuery)
	}
}

func TestClient_RegisterAccount(t *testing.T) {
	var got registerAccountRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != registerPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second)

	err := c.RegisterAccount(context.Background(), "brand-1", "Acme")

	if !errors.Is(err, ErrTransientProvider) {
		t.Errorf("expected error %v, got %v", ErrTransientProvider, err)
	}
	if got.AccountID != "brand-1" || got.AccountName != "Acme" || got.Timezone != "America/New_York" || got.Currency != "USD" {
		t.Errorf("unexpected registration payload %+v", got)
	}
}

func TestClient_ProviderErrorBodiesAreNotLogged(t *testing.T) {
	const leaked = "upstream detail token=provider-secret"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"detail":"` + leaked + `"}`))
	}))
	defer srv.Close()

	testCases := []struct {
		name string
		call func(*Client) error
	}{
		{
			name: "query",
			call: func(c *Client) error {
				_, err := c.Query(context.Background(), "tok", "question")
				return err
			},
		},
		{
			name: "integrations url",
			call: func(c *Client) error {
				_, err := c.IntegrationsURL(context.Background(), "brand-1")
				return err
			},
		},
		{
			name: "register account",
			call: func(c *Client) error {
				return c.RegisterAccount(context.Background(), "brand-1", "Acme")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			logger := logging.NewLoggerFromZap(zap.New(core))

			c := newTestClient(srv.URL, time.Second)
			c.logger = logger

			if err := tc.call(c); !errors.Is(err, ErrTransientProvider) {
				t.Errorf("expected error %v, got %v", ErrTransientProvider, err)
			} else if strings.Contains(err.Error(), leaked) {
				t.Errorf("provider body leaked into error: %v", err)
			}

			if logs.Len() == 0 {
				t.Fatalf("expected the failure to be logged")
			}

			for _, entry := range logs.All() {
				if strings.Contains(entry.Message, leaked) {
					t.Errorf("provider body leaked into log message %q", entry.Message)
				}

				for k, v := range entry.ContextMap() {
					if strings.Contains(fmt.Sprint(v), leaked) {
						t.Errorf("provider body leaked into log field %q of %q", k, entry.Message)
					}
				}
			}
		})
	}
}
