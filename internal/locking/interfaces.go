// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import "context"

// LockerInterface serialises work on a key across replicas. The returned
// release func must be called once the critical section is over.
type LockerInterface interface {
	Acquire(ctx context.Context, key string) (func(), error)
}
