// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import "errors"

// ErrResolutionFailed means neither creation nor the retry lookup produced an
// account. Callers must treat it as a hard authentication failure, never
// fabricate an account for it.
var ErrResolutionFailed = errors.New("identity resolution failed")
