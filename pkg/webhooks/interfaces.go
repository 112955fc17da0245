// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	ory "github.com/ory/client-go"

	"github.com/lighthouse-hq/lighthouse/internal/types"
)

// StorageInterface is the part of the user directory the registration hook writes.
type StorageInterface interface {
	UpsertUser(ctx context.Context, u *types.User) error
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identity *ory.Identity) (*types.User, error)
}
