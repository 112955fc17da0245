// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"errors"

	"github.com/lighthouse-hq/lighthouse/internal/analytics"
)

var (
	ErrNotFound = errors.New("brand not found")

	ErrReauthRequired    = analytics.ErrReauthRequired
	ErrTransientProvider = analytics.ErrTransientProvider
	ErrConfig            = analytics.ErrConfig
)
