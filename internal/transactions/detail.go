// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package transactions

import (
	"context"
	"sort"
	"time"
)

// Span is one unit of work in a trace, either a transaction or a span.
type Span struct {
	ID          string    `json:"spanId"`
	ParentID    string    `json:"parentSpanId,omitempty"`
	Name        string    `json:"name"`
	ServiceName string    `json:"serviceName"`
	Kind        string    `json:"kind"`     // "transaction" or "span"
	Duration    float64   `json:"duration"` // milliseconds
	Start       time.Time `json:"startDateTime"`
	StatusCode  int       `json:"statusCode,omitempty"`
	Outcome     string    `json:"outcome,omitempty"`
}

// Trace is everything fetched for one detail view.
type Trace struct {
	TraceID string `json:"traceId"`
	Spans   []Span `json:"spans"`
}

// SpanNode is a span with its depth in the call tree.
type SpanNode struct {
	Span
	Depth int
}

// TraceFetcher is implemented by backends that can serve trace details.
type TraceFetcher interface {
	GetTrace(ctx context.Context, traceID string) (*Trace, error)
}

// Tree flattens the spans depth-first. Siblings are ordered by start time;
// spans whose parent is not part of the trace are treated as roots.
func (t Trace) Tree() []SpanNode {
	ids := make(map[string]bool, len(t.Spans))
	for _, s := range t.Spans {
		ids[s.ID] = true
	}
	children := make(map[string][]Span)
	var roots []Span
	for _, s := range t.Spans {
		if s.ParentID == "" || !ids[s.ParentID] || s.ParentID == s.ID {
			roots = append(roots, s)
			continue
		}
		children[s.ParentID] = append(children[s.ParentID], s)
	}

	byStart := func(spans []Span) {
		sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start.Before(spans[j].Start) })
	}

	out := make([]SpanNode, 0, len(t.Spans))
	visited := make(map[string]bool, len(t.Spans))
	var walk func(s Span, depth int)
	walk = func(s Span, depth int) {
		if visited[s.ID] {
			return
		}
		visited[s.ID] = true
		out = append(out, SpanNode{Span: s, Depth: depth})
		kids := children[s.ID]
		byStart(kids)
		for _, c := range kids {
			walk(c, depth+1)
		}
	}
	byStart(roots)
	for _, r := range roots {
		walk(r, 0)
	}
	return out
}

// Duration returns the span of time covered by the trace.
func (t Trace) Duration() time.Duration {
	var first, last time.Time
	for _, s := range t.Spans {
		end := s.Start.Add(time.Duration(s.Duration * float64(time.Millisecond)))
		if first.IsZero() || s.Start.Before(first) {
			first = s.Start
		}
		if end.After(last) {
			last = end
		}
	}
	if first.IsZero() {
		return 0
	}
	return last.Sub(first)
}
