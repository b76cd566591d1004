// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/elastic/txcat/internal/transactions"
)

// addRangeFlags registers --from and --to on cmd.
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "Range start, "+transactions.InputLayout+" or "+transactions.InputDateLayout+" (local time)")
	cmd.Flags().String("to", "", "Range end, same formats as --from")
}

// rangeFromFlags reads --from/--to. Leaving both empty selects all time;
// anything else must form a valid range.
func rangeFromFlags(cmd *cobra.Command, loc *time.Location) (transactions.Range, error) {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	return parseRangeArgs(from, to, loc)
}

func parseRangeArgs(from, to string, loc *time.Location) (transactions.Range, error) {
	r, err := transactions.ParseRange(from, to, loc)
	if err != nil {
		return transactions.Range{}, err
	}
	if r.IsZero() {
		return r, nil
	}
	if err := r.Validate(); err != nil {
		return transactions.Range{}, err
	}
	return r, nil
}
