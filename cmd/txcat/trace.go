// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elastic/txcat/internal/transactions"
)

var traceJSON bool

var traceCmd = &cobra.Command{
	Use:   "trace <traceId|/transactions/traceId>",
	Short: "Print the span tree of one trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, _, err := backendFromContext(cmd.Context())
		if err != nil {
			return err
		}

		id := args[0]
		if fromPath, ok := transactions.TraceIDFromPath(id); ok {
			id = fromPath
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.TUI.DetailTimeout)
		defer cancel()

		tr, err := client.GetTrace(ctx, id)
		if err != nil {
			return err
		}
		if traceJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tr)
		}
		printTrace(cmd.OutOrStdout(), tr)
		return nil
	},
}

func printTrace(out io.Writer, tr *transactions.Trace) {
	fmt.Fprintf(out, "Trace %s (%d spans, %s)\n\n", tr.TraceID, len(tr.Spans), tr.Duration())
	for _, node := range tr.Tree() {
		status := ""
		switch {
		case node.StatusCode != 0:
			status = fmt.Sprintf(" [%d]", node.StatusCode)
		case node.Outcome != "":
			status = " [" + node.Outcome + "]"
		}
		fmt.Fprintf(out, "%s%s  %s  %s%s\n",
			strings.Repeat("  ", node.Depth),
			node.Name,
			node.ServiceName,
			transactions.FormatDuration(node.Duration),
			status,
		)
	}
}

func init() {
	traceCmd.Flags().BoolVar(&traceJSON, "json", false, "Write the trace as JSON")
	rootCmd.AddCommand(traceCmd)
}
