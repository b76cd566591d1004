// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package traces

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/elastic/txcat/internal/transactions"
)

// EncodeCursor packs the sort values of the last hit of a page into an
// opaque cursor.
func EncodeCursor(sort []json.RawMessage) (transactions.Cursor, error) {
	if len(sort) == 0 {
		return transactions.NoCursor, nil
	}
	raw, err := json.Marshal(sort)
	if err != nil {
		return transactions.NoCursor, fmt.Errorf("encode cursor: %w", err)
	}
	return transactions.Cursor(base64.RawURLEncoding.EncodeToString(raw)), nil
}

// DecodeCursor returns the search_after values carried by c.
func DecodeCursor(c transactions.Cursor) ([]json.RawMessage, error) {
	if c.Absent() {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(string(c))
	if err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	var sort []json.RawMessage
	if err := json.Unmarshal(raw, &sort); err != nil {
		return nil, fmt.Errorf("decode cursor: %w", err)
	}
	if len(sort) == 0 {
		return nil, fmt.Errorf("decode cursor: no sort values")
	}
	return sort, nil
}
