// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/elastic/txcat/internal/config"
	"github.com/elastic/txcat/internal/logging"
)

// tuiAnnotation marks commands that take over the terminal; their logs never
// go to the console.
const tuiAnnotation = "txcat/tui"

// appLogger is set up once per run by PersistentPreRunE.
var appLogger *logging.Logger

var rootCmd = &cobra.Command{
	Use:   "txcat",
	Short: "Terminal dashboard for application transactions",
	Long: `txcat - Browse application transactions in your terminal.

Transactions are read either directly from Elasticsearch APM trace data
streams (--source es) or from a trace HTTP API (--source api).
Open the dashboard with 'txcat ui', or print pages with 'txcat transactions'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}

		var console io.Writer = cmd.ErrOrStderr()
		if cmd.Annotations[tuiAnnotation] != "" {
			console = nil
		}
		l, err := logging.Setup(cfg, console)
		if err != nil {
			return err
		}
		appLogger = l

		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func closeLogger(ctx context.Context) error {
	if appLogger == nil {
		return nil
	}
	err := appLogger.Close(ctx)
	appLogger = nil
	return err
}

func init() {
	// Global flags (Viper precedence: flags > env > profile > defaults)
	pf := rootCmd.PersistentFlags()
	pf.String("source", config.DefaultSource, "Data source: es or api (env: TXCAT_SOURCE)")
	pf.StringP("profile", "p", "", "Configuration profile to use (env: TXCAT_PROFILE)")
	pf.String("es-url", config.DefaultESURL, "Elasticsearch URL (env: TXCAT_ES_URL)")
	pf.StringP("index", "i", config.DefaultIndex, "Trace data stream pattern (env: TXCAT_ES_INDEX)")
	pf.Duration("ping-timeout", config.DefaultPingTimeout, "Backend ping timeout")
	pf.String("api-url", config.DefaultAPIURL, "Trace API base URL (env: TXCAT_API_URL)")
	pf.String("web-url", config.DefaultWebURL, "Web dashboard URL used to open transactions in a browser")
	pf.String("otlp", config.DefaultOTLPEndpoint, "OTLP HTTP endpoint for diagnostics export")
	pf.Bool("otlp-export", false, "Export diagnostics logs over OTLP")
	pf.String("log-file", "", "Write diagnostics to this file")
	pf.String("log-level", config.DefaultLogLevel, "Diagnostics log level")
	pf.Int("page-size", config.DefaultPageSize, "Transactions per page")
}
