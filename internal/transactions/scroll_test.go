// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package transactions

import "testing"

func TestBoundaryTrigger(t *testing.T) {
	t.Parallel()

	type step struct {
		selected, rows int
		want           bool
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "fires once per crossing",
			steps: []step{
				{5, 10, false},
				{8, 10, true},
				{9, 10, false},
				{8, 10, false},
			},
		},
		{
			name: "re-arms after leaving the threshold",
			steps: []step{
				{8, 10, true},
				{4, 10, false},
				{8, 10, true},
			},
		},
		{
			name: "re-arms when the list grows",
			steps: []step{
				{9, 10, true},
				{9, 11, true},
				{10, 11, false},
				{10, 30, false},
				{28, 30, true},
			},
		},
		{
			name:  "empty list never fires",
			steps: []step{{0, 0, false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := BoundaryTrigger{Threshold: 2}
			for i, s := range tt.steps {
				if got := b.Check(s.selected, s.rows); got != s.want {
					t.Fatalf("step %d: Check(%d, %d) = %v, want %v", i, s.selected, s.rows, got, s.want)
				}
			}
		})
	}
}
