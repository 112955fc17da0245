// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var brandCmd = &cobra.Command{
	Use:   "brand",
	Short: "Manage brands",
}

var createBrandCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a brand and print the link that connects it to the analytics provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		website, _ := cmd.Flags().GetString("website")

		brand, err := getClient().CreateBrand(cmd.Context(), args[0], website)
		if err != nil {
			return fmt.Errorf("failed to create brand: %w", err)
		}

		cmd.Printf("Brand created: %s (ID: %s)\n", brand.Name, brand.ID)
		cmd.Printf("Connect it at: %s\n", brand.AuthorizationURL)
		return nil
	},
}

var listBrandsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the brands owned by the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		brands, err := getClient().ListBrands(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list brands: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tWEBSITE\tCONNECTED")
		for _, b := range brands {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", b.ID, b.Name, b.Website, b.Connected)
		}
		return w.Flush()
	},
}

var authorizeBrandCmd = &cobra.Command{
	Use:   "authorize-url [id]",
	Short: "Print a fresh authorization link for a brand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := getClient().AuthorizationURL(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get authorization link: %w", err)
		}

		cmd.Println(url)
		return nil
	},
}

var deleteBrandCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a brand, its credentials and its channel assignments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().DeleteBrand(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete brand: %w", err)
		}

		cmd.Printf("Brand deleted: %s\n", args[0])
		return nil
	},
}

func init() {
	createBrandCmd.Flags().String("website", "", "Website of the brand")

	brandCmd.AddCommand(createBrandCmd)
	brandCmd.AddCommand(listBrandsCmd)
	brandCmd.AddCommand(authorizeBrandCmd)
	brandCmd.AddCommand(deleteBrandCmd)

	rootCmd.AddCommand(brandCmd)
}
