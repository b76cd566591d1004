// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package traces

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

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
	lastIndex      string
}

func (m *mockExecutor) GetIndex() string {
	return m.index
}

func (m *mockExecutor) SearchForTraces(ctx context.Context, index string, body []byte) (*shared.SearchResponse, error) {
	m.lastSearchBody = body
	m.lastIndex = index
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	status := "200 OK"
	if m.isError {
		status = "400 Bad Request"
	}
	return &shared.SearchResponse{
		Body:    io.NopCloser(strings.NewReader(m.responseBody)),
		Status:  status,
		IsError: m.isError,
	}, nil
}

const twoHits = `{
  "hits": {
    "total": {"value": 3, "relation": "eq"},
    "hits": [
      {"_id": "1", "sort": [1704067200000, "tx-1"], "_source": {
        "@timestamp": "2024-01-01T00:00:00.000Z",
        "processor": {"event": "transaction"},
        "trace": {"id": "trace-1"},
        "transaction": {"id": "tx-1", "name": "GET /orders", "duration": {"us": 12500}},
        "url": {"path": "/orders"},
        "service": {"name": "orders"},
        "http": {"response": {"status_code": 200}},
        "event": {"outcome": "success"}
      }},
      {"_id": "2", "sort": [1704067100000, "tx-2"], "_source": {
        "@timestamp": "2023-12-31T23:58:20.000Z",
        "trace_id": "trace-2",
        "name": "POST /pay",
        "duration": 3000000,
        "resource": {"attributes": {"service.name": "payments"}},
        "attributes": {"http.response.status_code": 502},
        "status": {"code": "Error"}
      }}
    ]
  }
}`

func TestBuildListQuery(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	body, err := BuildListQuery(transactions.Query{Range: transactions.NewRange(start, end), Size: 20})
	if err != nil {
		t.Fatalf("BuildListQuery error: %v", err)
	}
	if _, ok := body["search_after"]; ok {
		t.Error("first page must not send search_after")
	}
	if body["size"] != 20 || body["track_total_hits"] != true {
		t.Errorf("size/track_total_hits = %v/%v", body["size"], body["track_total_hits"])
	}
	out, _ := json.Marshal(body)
	for _, want := range []string{`"processor.event":"transaction"`, `"gte":"2024-01-01T00:00:00Z"`, `"lte":"2024-01-02T00:00:00Z"`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("query %s missing %s", out, want)
		}
	}

	cursor, _ := EncodeCursor([]json.RawMessage{json.RawMessage(`1704067100000`), json.RawMessage(`"tx-2"`)})
	body, err = BuildListQuery(transactions.Query{AfterKey: cursor, Size: 20})
	if err != nil {
		t.Fatalf("BuildListQuery error: %v", err)
	}
	out, _ = json.Marshal(body)
	if !strings.Contains(string(out), `"search_after":[1704067100000,"tx-2"]`) {
		t.Errorf("query %s missing search_after", out)
	}

	if _, err := BuildListQuery(transactions.Query{AfterKey: "!!not-base64!!"}); err == nil {
		t.Error("expected error for malformed cursor")
	}
}

func TestList_FullPageHasCursor(t *testing.T) {
	t.Parallel()

	exec := &mockExecutor{index: "traces-apm*", responseBody: twoHits}
	page, err := List(context.Background(), exec, transactions.Query{Size: 2})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if exec.lastIndex != "traces-apm*" {
		t.Errorf("index = %q", exec.lastIndex)
	}
	if page.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", page.TotalCount)
	}
	if len(page.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(page.Results))
	}
	if page.AfterKey.Absent() {
		t.Fatal("full page must carry a cursor")
	}
	sort, err := DecodeCursor(page.AfterKey)
	if err != nil {
		t.Fatalf("DecodeCursor error: %v", err)
	}
	if string(sort[0]) != "1704067100000" || string(sort[1]) != `"tx-2"` {
		t.Errorf("cursor sort = %s", sort)
	}

	ecs, otel := page.Results[0], page.Results[1]
	if ecs.TraceID != "trace-1" || ecs.EndPoint != "/orders" || ecs.ServiceName != "orders" ||
		ecs.Duration != 12.5 || ecs.StatusCode != 200 || ecs.Abnormal {
		t.Errorf("ECS item = %+v", ecs)
	}
	if !ecs.StartDateTime.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ECS StartDateTime = %v", ecs.StartDateTime)
	}
	if otel.TraceID != "trace-2" || otel.EndPoint != "POST /pay" || otel.ServiceName != "payments" ||
		otel.Duration != 3 || otel.StatusCode != 502 || !otel.Abnormal {
		t.Errorf("OTel item = %+v", otel)
	}
}

func TestList_ShortPageHasNoCursor(t *testing.T) {
	t.Parallel()

	exec := &mockExecutor{responseBody: twoHits}
	page, err := List(context.Background(), exec, transactions.Query{Size: 50})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if !page.AfterKey.Absent() {
		t.Errorf("AfterKey = %q, want absent", page.AfterKey)
	}
}

func TestList_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	_, err := List(context.Background(), &mockExecutor{searchErr: boom}, transactions.Query{Size: 1})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped transport error", err)
	}

	_, err = List(context.Background(), &mockExecutor{isError: true, responseBody: `{"error":{"reason":"index_not_found"}}`}, transactions.Query{Size: 1})
	var qe *errfmt.QueryError
	if !errors.As(err, &qe) {
		t.Fatalf("err = %v, want QueryError", err)
	}
	if qe.Op != "list transactions" || qe.Reason != "index_not_found" {
		t.Errorf("QueryError = %+v", qe)
	}

	_, err = List(context.Background(), &mockExecutor{responseBody: `not json`}, transactions.Query{Size: 1})
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Errorf("err = %v, want decode error", err)
	}
}

func TestGetTrace(t *testing.T) {
	t.Parallel()

	body := `{"hits":{"total":{"value":2},"hits":[
	  {"_source":{"@timestamp":"2024-01-01T00:00:00Z","processor":{"event":"transaction"},
	    "trace":{"id":"t1"},"transaction":{"id":"tx-1","name":"GET /orders","duration":{"us":10000}},
	    "service":{"name":"orders"},"http":{"response":{"status_code":200}}}},
	  {"_source":{"@timestamp":"2024-01-01T00:00:00.002Z","processor":{"event":"span"},
	    "trace":{"id":"t1"},"transaction":{"id":"tx-1"},"span":{"id":"sp-1","name":"SELECT orders","duration":{"us":4000}},
	    "parent":{"id":"tx-1"},"service":{"name":"orders"},"event":{"outcome":"failure"}}}
	]}}`
	exec := &mockExecutor{responseBody: body}

	tr, err := GetTrace(context.Background(), exec, "t1")
	if err != nil {
		t.Fatalf("GetTrace error: %v", err)
	}
	if !strings.Contains(string(exec.lastSearchBody), `"trace.id":"t1"`) {
		t.Errorf("query %s missing trace filter", exec.lastSearchBody)
	}
	if len(tr.Spans) != 2 {
		t.Fatalf("len(Spans) = %d", len(tr.Spans))
	}
	root, child := tr.Spans[0], tr.Spans[1]
	if root.ID != "tx-1" || root.Kind != "transaction" || root.Duration != 10 || root.StatusCode != 200 {
		t.Errorf("root = %+v", root)
	}
	if child.ID != "sp-1" || child.ParentID != "tx-1" || child.Name != "SELECT orders" || child.Duration != 4 || child.Outcome != "failure" {
		t.Errorf("child = %+v", child)
	}

	tree := tr.Tree()
	if len(tree) != 2 || tree[1].Depth != 1 {
		t.Errorf("Tree() = %+v", tree)
	}

	if _, err := GetTrace(context.Background(), exec, " "); err == nil {
		t.Error("expected error for empty trace id")
	}
}

func TestCursorRoundTrip(t *testing.T) {
	t.Parallel()

	c, err := EncodeCursor(nil)
	if err != nil || !c.Absent() {
		t.Errorf("EncodeCursor(nil) = %q, %v", c, err)
	}
	got, err := DecodeCursor(transactions.NoCursor)
	if err != nil || got != nil {
		t.Errorf("DecodeCursor(absent) = %v, %v", got, err)
	}

	in := []json.RawMessage{json.RawMessage(`1`), json.RawMessage(`"a/b+c"`)}
	c, err = EncodeCursor(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := DecodeCursor(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || string(out[0]) != "1" || string(out[1]) != `"a/b+c"` {
		t.Errorf("round trip = %s", out)
	}

	empty := transactions.Cursor("W10") // base64url of "[]"
	if _, err := DecodeCursor(empty); err == nil {
		t.Error("expected error for cursor without sort values")
	}
}
