// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package transactions

import (
	"errors"
	"fmt"
	"time"
)

// ValidationError is returned when a range commit is attempted with an
// incomplete or unreadable selection.
type ValidationError struct {
	Field  string // "start", "end" or "" when both are missing
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s date: %s", e.Field, e.Reason)
}

// RangeOrderError is returned when the start of a range is after its end.
type RangeOrderError struct {
	Start time.Time
	End   time.Time
}

func (e *RangeOrderError) Error() string {
	return fmt.Sprintf("start date %s is after end date %s",
		e.Start.Format(InputLayout), e.End.Format(InputLayout))
}

// IsRangeError reports whether err rejects a range commit.
func IsRangeError(err error) bool {
	var ve *ValidationError
	var oe *RangeOrderError
	return errors.As(err, &ve) || errors.As(err, &oe)
}
