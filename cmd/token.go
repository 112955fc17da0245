// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/lighthouse-hq/lighthouse/internal/tracing"
)

const tokenRequestTimeout = 30 * time.Second

type tokenRequest struct {
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	scopes       []string
}

var adminToken tokenRequest

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an admin API access token",
	Long:  `Get an admin API access token with the client credentials grant. Pass it to the brand and channel commands with --token or LIGHTHOUSE_TOKEN`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := fetchToken(cmd.Context(), adminToken)
		if err != nil {
			return err
		}

		cmd.Println(token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&adminToken.clientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&adminToken.clientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&adminToken.tokenURL, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&adminToken.issuerURL, "issuer-url", "", "Issuer URL, the token URL is discovered from it")
	tokenCmd.Flags().StringSliceVar(&adminToken.scopes, "scopes", nil, "Scopes (comma-separated)")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
	tokenCmd.MarkFlagsMutuallyExclusive("token-url", "issuer-url")
}

// fetchToken runs the client credentials grant. Without a token URL the
// endpoint is read from the issuer's discovery document.
func fetchToken(ctx context.Context, req tokenRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, tokenRequestTimeout)
	defer cancel()

	// both oidc discovery and the token exchange pick the client up from ctx
	ctx = oidc.ClientContext(ctx, tracing.NewHTTPClient(0))

	tokenURL := req.tokenURL
	if tokenURL == "" {
		if req.issuerURL == "" {
			return "", errors.New("either --token-url or --issuer-url must be provided")
		}

		provider, err := oidc.NewProvider(ctx, req.issuerURL)
		if err != nil {
			return "", fmt.Errorf("failed to discover issuer %s: %w", req.issuerURL, err)
		}
		tokenURL = provider.Endpoint().TokenURL
	}

	config := &clientcredentials.Config{
		ClientID:     req.clientID,
		ClientSecret: req.clientSecret,
		TokenURL:     tokenURL,
		Scopes:       req.scopes,
		AuthStyle:    oauth2.AuthStyleAutoDetect,
	}

	token, err := config.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token.AccessToken, nil
}
