// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"

	"github.com/lighthouse-hq/lighthouse/internal/authorization"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/openfga"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
)

const StoreName = "lighthouse"

// createFgaModelCmd represents the createFgaModel command
var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Creates an openfga model",
	Long:  `Creates the workspace and brand authorization model, and the store when none is given`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeID, _ := cmd.Flags().GetString("fga-store-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")

		modelID, finalStoreID, err := createModel(cmd.Context(), apiURL, apiToken, storeID, verbose)
		if err != nil {
			return err
		}

		if format == "json" {
			output := struct {
				StoreID string `json:"store_id"`
				ModelID string `json:"model_id"`
			}{
				StoreID: finalStoreID,
				ModelID: modelID,
			}

			return json.NewEncoder(cmd.OutOrStdout()).Encode(output)
		}

		cmd.Printf("Created model: %s\n", modelID)
		if storeID == "" {
			cmd.Printf("Created store: %s\n", finalStoreID)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-url")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-token")
}

func createModel(ctx context.Context, apiURL, apiToken, storeID string, verbose bool) (string, string, error) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("", logger)

	u, err := url.Parse(apiURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse url: %w", err)
	}

	fgaClient, err := openfga.NewClient(openfga.NewConfig(u.Scheme, u.Host, storeID, apiToken, "", verbose, tracer, monitor, logger))
	if err != nil {
		return "", "", fmt.Errorf("failed to create openfga client: %w", err)
	}

	if storeID == "" {
		storeID, err = fgaClient.CreateStore(ctx, StoreName)
		if err != nil {
			return "", "", fmt.Errorf("failed to create store: %w", err)
		}

		if err := fgaClient.SetStoreID(ctx, storeID); err != nil {
			return "", "", fmt.Errorf("failed to select store: %w", err)
		}
	}

	authzModel := authorization.NewAuthorizationModelProvider("v0").GetModel()

	modelID, err := fgaClient.WriteModel(
		ctx,
		&client.ClientWriteAuthorizationModelRequest{
			TypeDefinitions: authzModel.TypeDefinitions,
			SchemaVersion:   authzModel.SchemaVersion,
			Conditions:      authzModel.Conditions,
		},
	)
	if err != nil {
		return "", "", fmt.Errorf("failed to write model: %w", err)
	}

	return modelID, storeID, nil
}
