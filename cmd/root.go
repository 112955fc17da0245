// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	httpEndpoint string
	accessToken  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lighthouse",
	Short: "Lighthouse",
	Long:  `Lighthouse answers analytics questions asked in Slack channels, one brand per channel.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a missing .env file is expected outside local development
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8080", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&accessToken, "token", os.Getenv("LIGHTHOUSE_TOKEN"), "Bearer token for the admin API")
}
