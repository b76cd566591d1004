// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"time"

	"github.com/elastic/txcat/internal/transactions"
)

// Field names used by APM trace documents. Each concept lists the ECS field
// first and the OTel-native field second.
var (
	TraceIDFields     = []string{"trace.id", "trace_id"}
	ServiceNameFields = []string{"service.name", "resource.attributes.service.name"}
	StatusCodeFields  = []string{"http.response.status_code", "attributes.http.response.status_code"}
)

// ProcessorEventField tells transactions apart from spans.
const ProcessorEventField = "processor.event"

// FilterBuilder provides a fluent interface for constructing
// Elasticsearch bool query clauses with filter/must_not logic.
type FilterBuilder struct {
	filter  []map[string]interface{}
	mustNot []map[string]interface{}
}

// NewFilterBuilder creates a new FilterBuilder.
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{
		filter:  []map[string]interface{}{},
		mustNot: []map[string]interface{}{},
	}
}

// AddFilter adds a non-scoring clause.
func (fb *FilterBuilder) AddFilter(clause map[string]interface{}) *FilterBuilder {
	fb.filter = append(fb.filter, clause)
	return fb
}

// AddMustNot adds a clause to the must_not array.
func (fb *FilterBuilder) AddMustNot(clause map[string]interface{}) *FilterBuilder {
	fb.mustNot = append(fb.mustNot, clause)
	return fb
}

// anyTerm matches value in any of fields.
func anyTerm(fields []string, value interface{}) map[string]interface{} {
	if len(fields) == 1 {
		return map[string]interface{}{"term": map[string]interface{}{fields[0]: value}}
	}
	should := make([]map[string]interface{}, 0, len(fields))
	for _, f := range fields {
		should = append(should, map[string]interface{}{"term": map[string]interface{}{f: value}})
	}
	return map[string]interface{}{
		"bool": map[string]interface{}{
			"should":               should,
			"minimum_should_match": 1,
		},
	}
}

// AddServiceFilter restricts results to one service.
func (fb *FilterBuilder) AddServiceFilter(service string) *FilterBuilder {
	if service == "" {
		return fb
	}
	return fb.AddFilter(anyTerm(ServiceNameFields, service))
}

// AddTraceIDFilter restricts results to one trace.
func (fb *FilterBuilder) AddTraceIDFilter(traceID string) *FilterBuilder {
	if traceID == "" {
		return fb
	}
	return fb.AddFilter(anyTerm(TraceIDFields, traceID))
}

// AddProcessorEventFilter keeps documents whose processor.event is one of
// events (e.g. "transaction", "span").
func (fb *FilterBuilder) AddProcessorEventFilter(events ...string) *FilterBuilder {
	switch len(events) {
	case 0:
		return fb
	case 1:
		return fb.AddFilter(map[string]interface{}{
			"term": map[string]interface{}{ProcessorEventField: events[0]},
		})
	}
	return fb.AddFilter(map[string]interface{}{
		"terms": map[string]interface{}{ProcessorEventField: events},
	})
}

// AddRangeFilter adds an inclusive @timestamp range for the set bounds of r.
func (fb *FilterBuilder) AddRangeFilter(r transactions.Range) *FilterBuilder {
	if r.IsZero() {
		return fb
	}
	bounds := map[string]interface{}{}
	if r.Start != nil {
		bounds["gte"] = r.Start.Format(time.RFC3339Nano)
	}
	if r.End != nil {
		bounds["lte"] = r.End.Format(time.RFC3339Nano)
	}
	bounds["format"] = "strict_date_optional_time"
	return fb.AddFilter(map[string]interface{}{
		"range": map[string]interface{}{"@timestamp": bounds},
	})
}

// Build returns the completed bool query.
func (fb *FilterBuilder) Build() map[string]interface{} {
	boolQuery := map[string]interface{}{
		"filter": fb.filter,
	}
	if len(fb.mustNot) > 0 {
		boolQuery["must_not"] = fb.mustNot
	}
	return map[string]interface{}{"bool": boolQuery}
}

// Filters returns the filter clauses (for inspection/testing).
func (fb *FilterBuilder) Filters() []map[string]interface{} {
	return fb.filter
}

// MustNot returns the must_not clauses (for inspection/testing).
func (fb *FilterBuilder) MustNot() []map[string]interface{} {
	return fb.mustNot
}
