// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package installation

import "errors"

var (
	// ErrUserNotFound means the installer has no account with a verified
	// email. Accounts are never created implicitly.
	ErrUserNotFound = errors.New("installing user not found")
	ErrNotFound     = errors.New("workspace not installed")
	ErrNoBotToken   = errors.New("workspace has no bot token")
	// ErrInvalidInstallation means the chat platform handed over an
	// incomplete installation.
	ErrInvalidInstallation = errors.New("invalid installation")
)
