// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/config"
	"github.com/elastic/txcat/internal/transactions"
)

// pagedFetcher serves pages keyed by the cursor they answer.
type pagedFetcher struct {
	pages   map[transactions.Cursor]transactions.Page
	queries []transactions.Query
	err     error
}

func (f *pagedFetcher) ListTransactions(_ context.Context, q transactions.Query) (*transactions.Page, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	p := f.pages[q.AfterKey]
	return &p, nil
}

func twoPages() *pagedFetcher {
	return &pagedFetcher{pages: map[transactions.Cursor]transactions.Page{
		transactions.NoCursor: {
			Results:    []transactions.Item{{TraceID: "t1", EndPoint: "/a"}, {TraceID: "t2", EndPoint: "/b"}},
			AfterKey:   "k1",
			TotalCount: 3,
		},
		"k1": {
			Results:    []transactions.Item{{TraceID: "t3", EndPoint: "/c"}},
			TotalCount: 3,
		},
	}}
}

func TestPrintTransactions_SinglePage(t *testing.T) {
	t.Parallel()

	f := twoPages()
	var buf bytes.Buffer
	err := printTransactions(context.Background(), &buf, f, transactions.NewController(2), transactions.Range{}, printOptions{width: 160})
	require.NoError(t, err)

	out := buf.String()
	assert.Len(t, f.queries, 1)
	assert.Contains(t, out, "TRACE ID")
	assert.Contains(t, out, "t2")
	assert.NotContains(t, out, "t3")
	assert.Contains(t, out, "2 of 3 transactions (use --all for more)")
}

func TestPrintTransactions_All(t *testing.T) {
	t.Parallel()

	f := twoPages()
	var buf bytes.Buffer
	err := printTransactions(context.Background(), &buf, f, transactions.NewController(2), transactions.Range{}, printOptions{all: true, width: 160})
	require.NoError(t, err)

	require.Len(t, f.queries, 2)
	assert.Equal(t, transactions.Cursor("k1"), f.queries[1].AfterKey)
	assert.Contains(t, buf.String(), "t3")
	assert.Contains(t, buf.String(), "End of list: 3 of 3 transactions")
}

func TestPrintTransactions_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printTransactions(context.Background(), &buf, twoPages(), transactions.NewController(2), transactions.Range{}, printOptions{all: true, json: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	var it transactions.Item
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &it))
	assert.Equal(t, "t3", it.TraceID)
	assert.NotContains(t, buf.String(), "transactions")
}

func TestPrintTransactions_RangeIsSent(t *testing.T) {
	t.Parallel()

	f := twoPages()
	r := transactions.NewRange(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	var buf bytes.Buffer
	require.NoError(t, printTransactions(context.Background(), &buf, f, transactions.NewController(2), r, printOptions{width: 120}))

	require.Len(t, f.queries, 1)
	assert.Equal(t, r, f.queries[0].Range)
}

func TestPrintTransactions_FetchError(t *testing.T) {
	t.Parallel()

	f := &pagedFetcher{err: errors.New("connection refused")}
	var buf bytes.Buffer
	err := printTransactions(context.Background(), &buf, f, transactions.NewController(2), transactions.Range{}, printOptions{width: 120})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotContains(t, buf.String(), "End of list")
}

func TestPrintStatusChart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printStatusChart(&buf, chart.Project([]chart.Bucket{{StatusCode: "200", Count: 10}, {StatusCode: "500", Count: 1}}), 40)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "200"))
	assert.True(t, strings.HasSuffix(lines[0], " 10"))
	assert.Contains(t, lines[1], "█")
	assert.Less(t, strings.Count(lines[1], "█"), strings.Count(lines[0], "█"))
	assert.Equal(t, "total 11", lines[3])
}

func TestPrintStatusChart_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printStatusChart(&buf, chart.Project(nil), 80)
	assert.Equal(t, "No status codes in the selected range.\n", buf.String())
}

func TestPrintTrace(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tr := &transactions.Trace{TraceID: "abc", Spans: []transactions.Span{
		{ID: "root", Name: "GET /orders", ServiceName: "shop", Duration: 10, Start: start, StatusCode: 200},
		{ID: "db", ParentID: "root", Name: "SELECT orders", ServiceName: "shop", Duration: 4, Start: start.Add(time.Millisecond), Outcome: "failure"},
	}}

	var buf bytes.Buffer
	printTrace(&buf, tr)

	out := buf.String()
	assert.Contains(t, out, "Trace abc (2 spans, 10ms)")
	assert.Contains(t, out, "GET /orders  shop  10 ms [200]")
	assert.Contains(t, out, "\n  SELECT orders  shop  4 ms [failure]")
}

func TestFormatProfileSummary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(empty)", formatProfileSummary(config.Profile{}))

	p := config.Profile{Source: config.SourceAPI}
	p.API.URL = "https://traces.example.com"
	p.OTLP.Endpoint = "localhost:4318"
	assert.Equal(t, "source=api, api=https://traces.example.com, otlp=localhost:4318", formatProfileSummary(p))
}

func TestPrintProfiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printProfiles(&buf, &config.ProfileConfig{})
	assert.Contains(t, buf.String(), "No profiles configured.")

	buf.Reset()
	printProfiles(&buf, &config.ProfileConfig{
		CurrentProfile: "prod",
		Profiles: map[string]config.Profile{
			"prod":  {Source: config.SourceES},
			"local": {},
		},
	})
	out := buf.String()
	assert.Less(t, strings.Index(out, "local"), strings.Index(out, "prod"))
	assert.Contains(t, out, "* prod")
	assert.Contains(t, out, "  local")
}

func TestNewBackend(t *testing.T) {
	t.Parallel()

	_, _, err := newBackend(config.Config{Source: "kafka"})
	assert.ErrorContains(t, err, `unknown source "kafka"`)

	cfg := config.Config{Source: config.SourceAPI}
	cfg.API.URL = "http://localhost:8080"
	b, label, err := newBackend(cfg)
	require.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, "http://localhost:8080", label)

	cfg = config.Config{Source: config.SourceES}
	cfg.ES.URL = "http://localhost:9200"
	cfg.ES.Index = "traces-apm*"
	_, label, err = newBackend(cfg)
	require.NoError(t, err)
	assert.Equal(t, "traces-apm* @ http://localhost:9200", label)
}

func TestApplyProfileFlags_RejectsUnknownSource(t *testing.T) {
	setProfileSource = "kafka"
	t.Cleanup(func() { setProfileSource = "" })

	var p config.Profile
	assert.Error(t, applyProfileFlags(setProfileCmd, &p))
	assert.Empty(t, p.Source)
}
