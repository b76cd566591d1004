// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package transactions

// BoundaryTrigger fires once each time the selection enters the bottom
// threshold of the list. It re-arms when the selection leaves the threshold
// or when the list grows.
type BoundaryTrigger struct {
	Threshold int

	firedAt int
	fired   bool
}

// Check reports whether selecting row selected out of rows crosses into the
// threshold.
func (b *BoundaryTrigger) Check(selected, rows int) bool {
	threshold := b.Threshold
	if threshold < 1 {
		threshold = 1
	}
	near := rows > 0 && selected >= rows-threshold
	if !near {
		b.fired = false
		return false
	}
	if b.fired && b.firedAt == rows {
		return false
	}
	b.fired, b.firedAt = true, rows
	return true
}

// Reset re-arms the trigger, for example when a new session starts.
func (b *BoundaryTrigger) Reset() {
	b.fired = false
	b.firedAt = 0
}
