// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import "context"

var _ LockerInterface = (*NoopLocker)(nil)

// NoopLocker is used on single replica deployments where the in-process
// single flight is enough.
type NoopLocker struct{}

func (l *NoopLocker) Acquire(ctx context.Context, _ string) (func(), error) {
	return func() {}, ctx.Err()
}

func NewNoopLocker() *NoopLocker {
	return new(NoopLocker)
}
