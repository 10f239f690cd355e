// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"encoding/json"
	"fmt"
)

// jsonbValue encodes a payload map for a jsonb column. A nil map is stored as
// an empty object so scans never deal with NULL.
func jsonbValue(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode jsonb payload: %w", err)
	}
	return data, nil
}

func jsonbScan(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode jsonb payload: %w", err)
	}
	return m, nil
}
