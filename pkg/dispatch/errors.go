// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import "errors"

var ErrInvalidEvent = errors.New("invalid event")
