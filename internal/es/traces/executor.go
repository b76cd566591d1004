// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package traces

import (
	"context"

	"github.com/elastic/txcat/internal/es/shared"
)

// Executor defines the Elasticsearch operations needed for traces
type Executor interface {
	// SearchForTraces executes a search query and returns the raw response
	SearchForTraces(ctx context.Context, index string, body []byte) (*shared.SearchResponse, error)

	// GetIndex returns the trace index pattern
	GetIndex() string
}
