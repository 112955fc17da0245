// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Manage channel to brand routing of a workspace",
}

var listChannelsCmd = &cobra.Command{
	Use:   "list [workspace-id]",
	Short: "List the known channels of a workspace and their brand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mappings, err := getClient().ListChannels(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to list channels: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CHANNEL_ID\tNAME\tBRAND_ID")
		for _, m := range mappings {
			brand := "-"
			if m.BrandID != nil {
				brand = *m.BrandID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.ChannelID, m.ChannelName, brand)
		}
		return w.Flush()
	},
}

var assignChannelCmd = &cobra.Command{
	Use:   "assign [workspace-id] [channel-id] [brand-id]",
	Short: "Route the questions of a channel to a brand",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().AssignChannel(cmd.Context(), args[0], args[1], args[2]); err != nil {
			return fmt.Errorf("failed to assign channel: %w", err)
		}

		cmd.Printf("Channel %s routed to brand %s\n", args[1], args[2])
		return nil
	},
}

var unassignChannelCmd = &cobra.Command{
	Use:   "unassign [workspace-id] [channel-id]",
	Short: "Remove the brand of a channel",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().UnassignChannel(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("failed to unassign channel: %w", err)
		}

		cmd.Printf("Channel %s unassigned\n", args[1])
		return nil
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile [workspace-id]",
	Short: "Synchronize the known channels of a workspace with the live channel list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := getClient().Reconcile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to reconcile workspace: %w", err)
		}

		cmd.Printf("Channels added: %d, renamed: %d, removed: %d\n", result.Added, result.Renamed, result.Removed)
		return nil
	},
}

func init() {
	channelCmd.AddCommand(listChannelsCmd)
	channelCmd.AddCommand(assignChannelCmd)
	channelCmd.AddCommand(unassignChannelCmd)
	channelCmd.AddCommand(reconcileCmd)

	rootCmd.AddCommand(channelCmd)
}
