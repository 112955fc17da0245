// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type TokenVerifierInterface interface {
	// VerifyToken returns the subject of an admin API token once the token is
	// verified and its claims grant access
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}
