// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	CommandConnect      = "/connect"
	CommandIntegrations = "/integrations"
)

// MentionEvent is a message addressed to the bot.
type MentionEvent struct {
	WorkspaceID string `validate:"required"`
	ChannelID   string `validate:"required"`
	UserID      string
	Text        string
	TS          string `validate:"required"`
	ThreadTS    string
}

// Thread is the thread replies go to, a top level message starts its own.
func (e MentionEvent) Thread() string {
	if e.ThreadTS != "" {
		return e.ThreadTS
	}

	return e.TS
}

// CommandEvent is a slash command invocation.
type CommandEvent struct {
	WorkspaceID string `validate:"required"`
	ChannelID   string `validate:"required"`
	UserID      string
	Command     string `validate:"required,oneof=/connect /integrations"`
	Text        string
	ResponseURL string `validate:"required,url"`
}

// ChannelEvent reports a change to the channel list of a workspace.
type ChannelEvent struct {
	WorkspaceID string `validate:"required"`
	Type        string `validate:"required"`
}

// UninstallEvent reports the bot lost access to a workspace.
type UninstallEvent struct {
	WorkspaceID string `validate:"required"`
	Type        string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateEvent(ev any) error {
	if err := validate.Struct(ev); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	return nil
}
