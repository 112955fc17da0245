// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package analytics

import "errors"

var (
	// ErrReauthRequired means the provider rejected the grant, only a new
	// authorization can recover the brand.
	ErrReauthRequired = errors.New("reauthorization required")
	// ErrTransientProvider covers non-2xx answers, network failures and
	// timeouts. Callers may retry on a later request.
	ErrTransientProvider = errors.New("transient provider error")
	// ErrConfig means a grant response was missing a required field.
	ErrConfig = errors.New("provider configuration error")
)
