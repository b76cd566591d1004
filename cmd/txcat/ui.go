// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	osSignal "os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/elastic/txcat/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive transaction dashboard",
	Long: `Opens the interactive terminal UI: the transaction list with infinite
scroll, a date range filter, the HTTP status code chart and trace details.

Diagnostics are written to --log-file while the UI runs.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{tuiAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func init() {
	uiCmd.Flags().Int("scroll-threshold", 5, "Rows from the bottom that trigger the next page")
	uiCmd.Flags().Duration("list-timeout", 15*time.Second, "Timeout for one page request")
	uiCmd.Flags().Duration("chart-timeout", 15*time.Second, "Timeout for the status code aggregate")
	uiCmd.Flags().Duration("detail-timeout", 15*time.Second, "Timeout for one trace request")
	rootCmd.AddCommand(uiCmd)
}

func runTUI(parentCtx context.Context) error {
	cfg, client, label, err := backendFromContext(parentCtx)
	if err != nil {
		return err
	}

	notifyCtx, stop := osSignal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var log logrus.FieldLogger = logrus.StandardLogger()
	if appLogger != nil {
		log = appLogger.WithField("source", cfg.Source)
	}

	// Check connection
	ctx, cancel := context.WithTimeout(notifyCtx, cfg.ES.PingTimeout)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		log.WithError(err).Warn("backend ping failed")
		fmt.Fprintf(os.Stderr, "Warning: could not reach %s: %v\n\n", label, err)
	}

	model := tui.NewModel(notifyCtx, client, cfg.TUI, tui.Options{
		WebURL: cfg.API.WebURL,
		Source: cfg.Source + " " + label,
		Logger: log,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(notifyCtx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
