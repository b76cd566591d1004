// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"

	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/es"
	"github.com/elastic/txcat/internal/traceapi"
	"github.com/elastic/txcat/internal/transactions"
)

// DataSource defines the data operations required by the TUI.
// This interface decouples the TUI from the concrete backends,
// enabling easier testing with mock implementations.
type DataSource interface {
	// ListTransactions returns one page of the transaction list.
	ListTransactions(ctx context.Context, q transactions.Query) (*transactions.Page, error)

	// StatusCodes returns per status code transaction counts.
	StatusCodes(ctx context.Context, f chart.Filter) ([]chart.Bucket, error)

	// GetTrace returns the spans of one trace.
	GetTrace(ctx context.Context, traceID string) (*transactions.Trace, error)
}

// Compile-time checks that both backends implement DataSource.
var (
	_ DataSource = (*es.Client)(nil)
	_ DataSource = (*traceapi.Client)(nil)
)
