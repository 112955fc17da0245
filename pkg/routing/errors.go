// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import "errors"

var (
	// ErrNotFound means the channel, workspace or brand is unknown.
	ErrNotFound = errors.New("not found")
	// ErrUnmapped means the channel is known but has no brand assigned yet.
	ErrUnmapped   = errors.New("channel has no brand assigned")
	ErrNoBotToken = errors.New("workspace has no bot token")
)
