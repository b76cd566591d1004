// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

// Package metrics runs aggregations over trace documents.
package metrics

import (
	"context"

	"github.com/elastic/txcat/internal/es/shared"
)

// Executor defines the Elasticsearch operations needed for metrics
type Executor interface {
	// SearchForMetrics executes an aggregation query and returns the raw response
	SearchForMetrics(ctx context.Context, index string, body []byte) (*shared.SearchResponse, error)

	// GetIndex returns the trace index pattern
	GetIndex() string
}
