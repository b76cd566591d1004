// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package transactions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(ms int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(ms) * time.Millisecond)
}

func TestTrace_Tree(t *testing.T) {
	t.Parallel()

	tr := Trace{
		TraceID: "t1",
		Spans: []Span{
			{ID: "c2", ParentID: "root", Name: "db", Start: at(20)},
			{ID: "root", Name: "GET /orders", Start: at(0)},
			{ID: "c1", ParentID: "root", Name: "cache", Start: at(5)},
			{ID: "g1", ParentID: "c1", Name: "redis", Start: at(6)},
			{ID: "orphan", ParentID: "gone", Name: "late", Start: at(30)},
		},
	}

	var got []string
	var depths []int
	for _, n := range tr.Tree() {
		got = append(got, n.ID)
		depths = append(depths, n.Depth)
	}
	assert.Equal(t, []string{"root", "c1", "g1", "c2", "orphan"}, got)
	assert.Equal(t, []int{0, 1, 2, 1, 0}, depths)
}

func TestTrace_TreeSelfParent(t *testing.T) {
	t.Parallel()

	tr := Trace{Spans: []Span{{ID: "a", ParentID: "a"}}}
	assert.Len(t, tr.Tree(), 1)
}

func TestTrace_Duration(t *testing.T) {
	t.Parallel()

	tr := Trace{Spans: []Span{
		{ID: "root", Start: at(0), Duration: 100},
		{ID: "child", Start: at(50), Duration: 80},
	}}
	assert.Equal(t, 130*time.Millisecond, tr.Duration())
	assert.Zero(t, Trace{}.Duration())
}
