// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

// Package chart projects HTTP status-code aggregates into a chart series.
package chart

import "github.com/elastic/txcat/internal/transactions"

// Bucket is one aggregate entry of the status-code query.
type Bucket struct {
	StatusCode string `json:"statusCode"`
	Count      int64  `json:"count"`
}

// Filter scopes the status-code query.
type Filter struct {
	Range   transactions.Range
	Service string
}

// Palette colors are assigned to series entries by index and repeat after
// the third entry.
var Palette = [...]string{"#2DB400", "#ffc107", "#dc3545"}

// Series is the chart model. Labels, Values and Colors always have the same
// length and the same order as the buckets they came from.
type Series struct {
	Labels []string
	Values []int64
	Colors []string
}

// Len returns the number of entries.
func (s Series) Len() int { return len(s.Labels) }

// Total returns the sum of all values.
func (s Series) Total() int64 {
	var total int64
	for _, v := range s.Values {
		total += v
	}
	return total
}

// Color returns the palette color for entry i.
func Color(i int) string {
	return Palette[i%len(Palette)]
}

// Project maps buckets to a series. Duplicate status codes are kept as
// separate entries.
func Project(buckets []Bucket) Series {
	s := Series{
		Labels: make([]string, len(buckets)),
		Values: make([]int64, len(buckets)),
		Colors: make([]string, len(buckets)),
	}
	for i, b := range buckets {
		s.Labels[i] = b.StatusCode
		s.Values[i] = b.Count
		s.Colors[i] = Color(i)
	}
	return s
}

// Projector memoizes Project for the most recent input. A new slice, or the
// same backing array with a different length, is projected again.
type Projector struct {
	last   []Bucket
	series Series
	valid  bool
}

// Project returns the series for buckets, reusing the cached one when
// buckets is the slice seen last time.
func (p *Projector) Project(buckets []Bucket) Series {
	if p.valid && sameSlice(p.last, buckets) {
		return p.series
	}
	p.last = buckets
	p.series = Project(buckets)
	p.valid = true
	return p.series
}

func sameSlice(a, b []Bucket) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
