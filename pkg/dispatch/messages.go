// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import "fmt"

const (
	unmappedMessage = "This channel is not linked to a brand yet. Ask a workspace admin to assign one " +
		"in Lighthouse, then mention me again."
	reauthMessage    = "The analytics connection of this channel's brand has expired. Please use `/connect` to reconnect."
	transientMessage = "Sorry, I couldn't reach the analytics service. Please try again in a moment."
	noAnswerMessage  = "Sorry, I couldn't find an answer to that question."
	genericMessage   = "Sorry, something went wrong. Please try again."

	debugHeading = "\n\n*Debug:*\n"
)

func helpMessage(userID string) string {
	greeting := "Hey!"
	if userID != "" {
		greeting = fmt.Sprintf("Hey <@%s>!", userID)
	}

	return greeting + " Use these commands to interact with Lighthouse:\n" +
		"• `/connect` - connect or reconnect the analytics account of this channel's brand\n" +
		"• `/integrations` - manage the data integrations of this channel's brand\n" +
		"• Or just ask me questions about your data like \"How much did we spend on meta ads?\""
}

func connectMessage(url string) string {
	return "Click this link to connect the analytics account of this channel's brand:\n" + url
}

func integrationsMessage(url string) string {
	return "Click here to manage the integrations of this channel's brand:\n" + url
}
