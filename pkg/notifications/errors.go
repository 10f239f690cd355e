// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import "errors"

// ErrNotFound covers both a missing notification and one owned by another
// account. The two cases are indistinguishable on purpose.
var ErrNotFound = errors.New("notification not found")
