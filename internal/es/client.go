// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

// Package es reads transactions, traces and status-code aggregates from
// APM trace data streams.
//
// Operations are organized by concern:
//   - traces/: transaction pages (search_after cursor) and trace spans
//   - metrics/: status-code aggregation
//   - shared/: query filters and document field helpers
//   - errfmt/: query error formatting
package es

import (
	"bytes"
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/es/metrics"
	"github.com/elastic/txcat/internal/es/shared"
	"github.com/elastic/txcat/internal/es/traces"
	"github.com/elastic/txcat/internal/transactions"
)

// New creates a new Elasticsearch client
func New(opts Options) (*Client, error) {
	if len(opts.Addresses) == 0 {
		return nil, fmt.Errorf("at least one Elasticsearch address is required")
	}
	cfg := elasticsearch.Config{
		Addresses: opts.Addresses,
		APIKey:    opts.APIKey,
		Username:  opts.Username,
		Password:  opts.Password,
		Transport: opts.Transport,
	}

	es, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create ES client: %w", err)
	}

	return &Client{
		es:    es,
		index: opts.Index,
	}, nil
}

// GetIndex returns the trace index pattern
func (c *Client) GetIndex() string {
	return c.index
}

// Ping checks if Elasticsearch is reachable
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to ping ES: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("ES ping failed: %s", res.Status())
	}
	return nil
}

// SearchRaw executes a search and returns the raw response. The caller
// closes the body.
func (c *Client) SearchRaw(ctx context.Context, index string, body []byte) (*shared.SearchResponse, error) {
	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	return &shared.SearchResponse{
		Body:       res.Body,
		StatusCode: res.StatusCode,
		Status:     res.Status(),
		IsError:    res.IsError(),
	}, nil
}

// SearchForTraces implements traces.Executor interface
func (c *Client) SearchForTraces(ctx context.Context, index string, body []byte) (*shared.SearchResponse, error) {
	return c.SearchRaw(ctx, index, body)
}

// SearchForMetrics implements metrics.Executor interface
func (c *Client) SearchForMetrics(ctx context.Context, index string, body []byte) (*shared.SearchResponse, error) {
	return c.SearchRaw(ctx, index, body)
}

// === Thin wrappers for domain operations ===

// ListTransactions returns one page of transactions, newest first.
func (c *Client) ListTransactions(ctx context.Context, q transactions.Query) (*transactions.Page, error) {
	return traces.List(ctx, c, q)
}

// GetTrace returns the transactions and spans of one trace.
func (c *Client) GetTrace(ctx context.Context, traceID string) (*transactions.Trace, error) {
	return traces.GetTrace(ctx, c, traceID)
}

// StatusCodes returns per status code transaction counts.
func (c *Client) StatusCodes(ctx context.Context, f chart.Filter) ([]chart.Bucket, error) {
	return metrics.StatusCodes(ctx, c, f)
}
