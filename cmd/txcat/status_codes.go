// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/elastic/txcat/internal/chart"
)

var (
	statusService string
	statusJSON    bool
)

var statusCodesCmd = &cobra.Command{
	Use:     "status-codes",
	Aliases: []string{"status"},
	Short:   "Print transaction counts per HTTP status code",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, _, err := backendFromContext(cmd.Context())
		if err != nil {
			return err
		}
		r, err := rangeFromFlags(cmd, time.Local)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.TUI.ChartTimeout)
		defer cancel()

		buckets, err := client.StatusCodes(ctx, chart.Filter{Range: r, Service: statusService})
		if err != nil {
			return err
		}
		if statusJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(buckets)
		}
		printStatusChart(cmd.OutOrStdout(), chart.Project(buckets), detectTerminalWidth())
		return nil
	},
}

// printStatusChart draws one text bar per series entry, scaled to the
// largest count.
func printStatusChart(out io.Writer, s chart.Series, width int) {
	if s.Len() == 0 {
		fmt.Fprintln(out, "No status codes in the selected range.")
		return
	}

	const labelWidth = 6
	countWidth := len(fmt.Sprint(s.Total()))
	barSpace := max(width-labelWidth-countWidth-2, 1)

	var peak int64
	for _, v := range s.Values {
		peak = max(peak, v)
	}
	for i := 0; i < s.Len(); i++ {
		n := 0
		if peak > 0 {
			n = int(s.Values[i] * int64(barSpace) / peak)
		}
		if s.Values[i] > 0 && n == 0 {
			n = 1
		}
		fmt.Fprintf(out, "%s%s %d\n", padOrTruncate(s.Labels[i], labelWidth), strings.Repeat("█", n), s.Values[i])
	}
	fmt.Fprintf(out, "\ntotal %d\n", s.Total())
}

func init() {
	statusCodesCmd.Flags().StringVar(&statusService, "service", "", "Only count transactions of this service")
	statusCodesCmd.Flags().BoolVar(&statusJSON, "json", false, "Write the raw buckets as JSON")
	addRangeFlags(statusCodesCmd)
	rootCmd.AddCommand(statusCodesCmd)
}
