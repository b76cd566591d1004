// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package traces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/txcat/internal/es/errfmt"
	"github.com/elastic/txcat/internal/es/shared"
	"github.com/elastic/txcat/internal/transactions"
)

// MaxSpans caps the number of documents fetched for one trace.
const MaxSpans = 1000

// listSort orders transactions newest first. The transaction id breaks ties
// so that search_after never skips or repeats documents with equal
// timestamps.
var listSort = []map[string]interface{}{
	{"@timestamp": map[string]interface{}{"order": "desc"}},
	{"transaction.id": map[string]interface{}{"order": "asc", "unmapped_type": "keyword"}},
}

// BuildListQuery returns the search body for one page of q.
func BuildListQuery(q transactions.Query) (map[string]interface{}, error) {
	filters := shared.NewFilterBuilder().
		AddProcessorEventFilter("transaction").
		AddRangeFilter(q.Range)

	body := map[string]interface{}{
		"size":             q.Size,
		"track_total_hits": true,
		"query":            filters.Build(),
		"sort":             listSort,
	}
	after, err := DecodeCursor(q.AfterKey)
	if err != nil {
		return nil, err
	}
	if after != nil {
		body["search_after"] = after
	}
	return body, nil
}

// List fetches one page of transactions. The returned cursor is absent when
// the page came back short, which ends pagination.
func List(ctx context.Context, exec Executor, q transactions.Query) (*transactions.Page, error) {
	body, err := BuildListQuery(q)
	if err != nil {
		return nil, err
	}
	env, err := search(ctx, exec, "list transactions", body)
	if err != nil {
		return nil, err
	}

	hits := env.Hits.Hits
	page := &transactions.Page{
		Results:    make([]transactions.Item, 0, len(hits)),
		TotalCount: env.Hits.Total.Value,
	}
	for _, h := range hits {
		page.Results = append(page.Results, ItemFromSource(h.Source))
	}
	if q.Size > 0 && len(hits) >= q.Size {
		page.AfterKey, err = EncodeCursor(hits[len(hits)-1].Sort)
		if err != nil {
			return nil, err
		}
	}
	return page, nil
}

// BuildTraceQuery returns the search body for all documents of one trace.
func BuildTraceQuery(traceID string) map[string]interface{} {
	filters := shared.NewFilterBuilder().
		AddTraceIDFilter(traceID).
		AddProcessorEventFilter("transaction", "span")
	return map[string]interface{}{
		"size":  MaxSpans,
		"query": filters.Build(),
		"sort":  []map[string]interface{}{{"@timestamp": map[string]interface{}{"order": "asc"}}},
	}
}

// GetTrace fetches the transactions and spans of traceID.
func GetTrace(ctx context.Context, exec Executor, traceID string) (*transactions.Trace, error) {
	if strings.TrimSpace(traceID) == "" {
		return nil, fmt.Errorf("trace id is required")
	}
	env, err := search(ctx, exec, "trace spans", BuildTraceQuery(traceID))
	if err != nil {
		return nil, err
	}
	tr := &transactions.Trace{TraceID: traceID, Spans: make([]transactions.Span, 0, len(env.Hits.Hits))}
	for _, h := range env.Hits.Hits {
		tr.Spans = append(tr.Spans, SpanFromSource(h.Source))
	}
	return tr, nil
}

func search(ctx context.Context, exec Executor, op string, body map[string]interface{}) (*shared.HitsEnvelope, error) {
	queryJSON, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal query: %w", op, err)
	}

	res, err := exec.SearchForTraces(ctx, exec.GetIndex(), queryJSON)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	if res.IsError {
		respBody, _ := io.ReadAll(res.Body)
		return nil, errfmt.FormatQueryError(op, res.Status, respBody, queryJSON)
	}

	var env shared.HitsEnvelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return &env, nil
}

// ItemFromSource maps an APM transaction document to a list item. Both ECS
// and OTel-native field layouts are read.
func ItemFromSource(src map[string]interface{}) transactions.Item {
	status, _ := shared.FirstFloat(src, shared.StatusCodeFields...)
	outcome := shared.FirstString(src, "event.outcome", "status.code")
	return transactions.Item{
		TraceID:       shared.FirstString(src, shared.TraceIDFields...),
		EndPoint:      shared.FirstString(src, "url.path", "attributes.url.path", "transaction.name", "name"),
		ServiceName:   shared.FirstString(src, shared.ServiceNameFields...),
		Duration:      durationMillis(src, "transaction.duration.us"),
		StartDateTime: shared.GetTimestamp(src, "@timestamp"),
		StatusCode:    int(status),
		Abnormal:      isFailure(outcome),
	}
}

// SpanFromSource maps a transaction or span document to a detail span.
func SpanFromSource(src map[string]interface{}) transactions.Span {
	kind := shared.GetNestedString(src, shared.ProcessorEventField)
	if kind == "" {
		kind = "span"
	}
	durField := "span.duration.us"
	if kind == "transaction" {
		durField = "transaction.duration.us"
	}
	status, _ := shared.FirstFloat(src, shared.StatusCodeFields...)
	return transactions.Span{
		// span.id must win: span documents also carry their transaction's id
		ID:          shared.FirstString(src, "span.id", "transaction.id", "span_id"),
		ParentID:    shared.FirstString(src, "parent.id", "parent_span_id"),
		Name:        shared.FirstString(src, "span.name", "transaction.name", "name"),
		ServiceName: shared.FirstString(src, shared.ServiceNameFields...),
		Kind:        kind,
		Duration:    durationMillis(src, durField),
		Start:       shared.GetTimestamp(src, "@timestamp"),
		StatusCode:  int(status),
		Outcome:     shared.FirstString(src, "event.outcome", "status.code"),
	}
}

// durationMillis reads an ECS microsecond field, falling back to the
// OTel-native nanosecond "duration".
func durationMillis(src map[string]interface{}, usField string) float64 {
	if us, ok := shared.GetNestedFloat(src, usField); ok {
		return us / 1e3
	}
	if ns, ok := shared.GetNestedFloat(src, "duration"); ok {
		return ns / 1e6
	}
	return 0
}

func isFailure(outcome string) bool {
	switch strings.ToLower(outcome) {
	case "failure", "error", "status_code_error":
		return true
	}
	return false
}
