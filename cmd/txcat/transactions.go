// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/elastic/txcat/internal/transactions"
)

var (
	transactionsAll  bool
	transactionsJSON bool
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx", "list"},
	Short:   "Print transactions (CLI)",
	Long: `Print transactions newest first.

By default one page is printed. With --all the cursor is followed until the
backend reports no more transactions. --json writes one JSON object per line.

For the interactive dashboard, use 'txcat ui'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, _, err := backendFromContext(cmd.Context())
		if err != nil {
			return err
		}
		r, err := rangeFromFlags(cmd, time.Local)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		ctl := transactions.NewController(cfg.TUI.PageSize)
		return printTransactions(ctx, cmd.OutOrStdout(), client, ctl, r, printOptions{
			all:   transactionsAll,
			json:  transactionsJSON,
			width: detectTerminalWidth(),
		})
	},
}

type printOptions struct {
	all   bool
	json  bool
	width int
}

// printTransactions drives ctl through the pages of r and writes them to out.
func printTransactions(ctx context.Context, out io.Writer, f transactions.Fetcher, ctl *transactions.Controller, r transactions.Range, opts printOptions) error {
	var first transactions.Request
	if r.IsZero() {
		first = ctl.Start()
	} else {
		var err error
		if first, err = ctl.CommitRange(r); err != nil {
			return err
		}
	}

	var onPage func(transactions.Page) error
	if opts.json {
		enc := json.NewEncoder(out)
		onPage = func(p transactions.Page) error {
			for _, it := range p.Results {
				if err := enc.Encode(it); err != nil {
					return err
				}
			}
			return nil
		}
	} else {
		table := newTableRenderer(out, opts.width)
		table.RenderHeader()
		onPage = func(p transactions.Page) error {
			table.RenderRows(p.Results)
			return nil
		}
	}

	if err := transactions.Drain(ctx, f, ctl, first, opts.all, onPage); err != nil {
		return err
	}

	if !opts.json {
		state := ctl.State()
		if state.EndOfData() {
			fmt.Fprintf(out, "\nEnd of list: %d of %d transactions\n", state.Len(), state.TotalCount)
		} else {
			fmt.Fprintf(out, "\n%d of %d transactions (use --all for more)\n", state.Len(), state.TotalCount)
		}
	}
	return nil
}

func init() {
	transactionsCmd.Flags().BoolVarP(&transactionsAll, "all", "a", false, "Follow the cursor until no transactions are left")
	transactionsCmd.Flags().BoolVar(&transactionsJSON, "json", false, "Write newline-delimited JSON")
	addRangeFlags(transactionsCmd)
	rootCmd.AddCommand(transactionsCmd)
}
