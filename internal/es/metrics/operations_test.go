// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/es/errfmt"
	"github.com/elastic/txcat/internal/es/shared"
	"github.com/elastic/txcat/internal/transactions"
)

// mockExecutor implements the Executor interface for testing
type mockExecutor struct {
	index          string
	responseBody   string
	isError        bool
	searchErr      error
	lastSearchBody []byte
}

func (m *mockExecutor) GetIndex() string {
	return m.index
}

func (m *mockExecutor) SearchForMetrics(ctx context.Context, index string, body []byte) (*shared.SearchResponse, error) {
	m.lastSearchBody = body
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return &shared.SearchResponse{
		Body:    io.NopCloser(strings.NewReader(m.responseBody)),
		Status:  "400 Bad Request",
		IsError: m.isError,
	}, nil
}

func TestBuildStatusCodeQuery(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	q := BuildStatusCodeQuery(chart.Filter{Range: transactions.NewRange(start, end), Service: "orders"})
	out, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"size":0`,
		`"field":"http.response.status_code"`,
		`"service.name":"orders"`,
		`"gte":"2024-01-01T00:00:00Z"`,
		`"processor.event":"transaction"`,
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("query %s missing %s", out, want)
		}
	}

	unfiltered, _ := json.Marshal(BuildStatusCodeQuery(chart.Filter{}))
	if strings.Contains(string(unfiltered), "@timestamp") {
		t.Errorf("unbounded query should not filter on time: %s", unfiltered)
	}
}

func TestStatusCodes(t *testing.T) {
	body := `{"aggregations":{"status_codes":{"buckets":[
		{"key":200,"doc_count":10},
		{"key":404,"doc_count":2},
		{"key":"500","key_as_string":"500","doc_count":1}
	]}}}`
	exec := &mockExecutor{index: "traces-apm*", responseBody: body}

	got, err := StatusCodes(context.Background(), exec, chart.Filter{})
	if err != nil {
		t.Fatalf("StatusCodes error: %v", err)
	}
	want := []chart.Bucket{{StatusCode: "200", Count: 10}, {StatusCode: "404", Count: 2}, {StatusCode: "500", Count: 1}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	s := chart.Project(got)
	if s.Colors[0] != "#2DB400" || s.Colors[2] != "#dc3545" {
		t.Errorf("colors = %v", s.Colors)
	}
}

func TestStatusCodes_NoAggregation(t *testing.T) {
	exec := &mockExecutor{responseBody: `{"hits":{"total":{"value":0}}}`}
	got, err := StatusCodes(context.Background(), exec, chart.Filter{})
	if err != nil {
		t.Fatalf("StatusCodes error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestStatusCodes_Errors(t *testing.T) {
	boom := errors.New("timeout")
	if _, err := StatusCodes(context.Background(), &mockExecutor{searchErr: boom}, chart.Filter{}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped transport error", err)
	}

	_, err := StatusCodes(context.Background(), &mockExecutor{isError: true, responseBody: `{}`}, chart.Filter{})
	var qe *errfmt.QueryError
	if !errors.As(err, &qe) || qe.Op != "status codes" {
		t.Errorf("err = %v, want status codes QueryError", err)
	}
}
