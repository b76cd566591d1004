// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elastic/txcat/internal/config"
)

// Flags for set-profile command
var (
	setProfileSource     string
	setProfileESURL      string
	setProfileESIndex    string
	setProfileESAPIKey   string
	setProfileESUsername string
	setProfileESPassword string
	setProfileAPIURL     string
	setProfileWebURL     string
	setProfileAPIToken   string
	setProfileOTLP       string
	setProfileOTLPInsec  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage txcat configuration and profiles",
	Long: `Manage txcat configuration profiles.

Profiles hold connection settings for one environment (Elasticsearch or the
trace API, plus OTLP) and can be switched like kubectl contexts.

Configuration is stored in ~/.config/txcat/config.yaml`,
	// Profile commands must work even when the active profile is broken.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

var useProfileCmd = &cobra.Command{
	Use:   "use-profile <name>",
	Short: "Set the current profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := config.LoadProfiles()
		if err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}
		if _, err := cfg.GetProfile(name); err != nil {
			return fmt.Errorf("profile %q does not exist", name)
		}

		cfg.CurrentProfile = name
		if err := config.SaveProfiles(cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Switched to profile %q\n", name)
		return nil
	},
}

var setProfileCmd = &cobra.Command{
	Use:   "set-profile <name>",
	Short: "Create or update a profile",
	Long: `Create or update a named profile with connection settings.

Examples:
  # Read straight from a local Elasticsearch
  txcat config set-profile local --source es --es-url http://localhost:9200

  # Use the trace API with a token kept in the environment
  txcat config set-profile staging \
    --source api \
    --api-url https://traces.staging.example.com \
    --web-url https://apm.staging.example.com \
    --api-token '${STAGING_TRACE_TOKEN}'

Credentials can be stored as:
  - Environment variable references: ${MY_SECRET} (recommended)
  - Plain text values (warning will be shown)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := config.LoadProfiles()
		if err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}

		profile, _ := cfg.GetProfile(name)
		if err := applyProfileFlags(cmd, &profile); err != nil {
			return err
		}
		cfg.SetProfile(name, profile)

		if err := config.SaveProfiles(cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		if profile.HasPlainTextCredentials() {
			fmt.Fprintln(cmd.ErrOrStderr(), config.PlainTextCredentialWarning())
			fmt.Fprintln(cmd.ErrOrStderr())
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile %q saved\n", name)
		return nil
	},
}

// applyProfileFlags copies the set-profile flags that were given onto p.
func applyProfileFlags(cmd *cobra.Command, p *config.Profile) error {
	if setProfileSource != "" {
		if setProfileSource != config.SourceES && setProfileSource != config.SourceAPI {
			return fmt.Errorf("source must be %q or %q", config.SourceES, config.SourceAPI)
		}
		p.Source = setProfileSource
	}
	set := func(dst *string, val string) {
		if val != "" {
			*dst = val
		}
	}
	set(&p.Elasticsearch.URL, setProfileESURL)
	set(&p.Elasticsearch.Index, setProfileESIndex)
	set(&p.Elasticsearch.APIKey, setProfileESAPIKey)
	set(&p.Elasticsearch.Username, setProfileESUsername)
	set(&p.Elasticsearch.Password, setProfileESPassword)
	set(&p.API.URL, setProfileAPIURL)
	set(&p.API.WebURL, setProfileWebURL)
	set(&p.API.Token, setProfileAPIToken)
	set(&p.OTLP.Endpoint, setProfileOTLP)
	if cmd.Flags().Changed("otlp-insecure") {
		insecure := setProfileOTLPInsec
		p.OTLP.Insecure = &insecure
	}
	return nil
}

var getProfilesCmd = &cobra.Command{
	Use:     "get-profiles",
	Aliases: []string{"list-profiles", "profiles"},
	Short:   "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadProfiles()
		if err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}
		printProfiles(cmd.OutOrStdout(), cfg)
		return nil
	},
}

func printProfiles(out io.Writer, cfg *config.ProfileConfig) {
	names := cfg.ListProfiles()
	if len(names) == 0 {
		fmt.Fprintln(out, "No profiles configured.")
		fmt.Fprintln(out, "Create one with: txcat config set-profile <name> --es-url <url>")
		return
	}
	sort.Strings(names)

	fmt.Fprintln(out, "PROFILES:")
	for _, name := range names {
		marker := "  "
		if name == cfg.CurrentProfile {
			marker = "* "
		}
		profile, _ := cfg.GetProfile(name)
		fmt.Fprintf(out, "%s%-20s  %s\n", marker, name, formatProfileSummary(profile))
	}
	if cfg.CurrentProfile != "" {
		fmt.Fprintf(out, "\n* = current profile\n")
	}
}

var currentProfileCmd = &cobra.Command{
	Use:   "current-profile",
	Short: "Show the current profile name",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadProfiles()
		if err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}
		if cfg.CurrentProfile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No profile selected (using defaults)")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.CurrentProfile)
		return nil
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete-profile <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := config.LoadProfiles()
		if err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}
		if err := cfg.DeleteProfile(name); err != nil {
			return err
		}
		if err := config.SaveProfiles(cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Profile %q deleted\n", name)
		return nil
	},
}

var viewConfigCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the full configuration (credentials masked)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadProfiles()
		if err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}
		if len(cfg.Profiles) == 0 && cfg.CurrentProfile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No configuration found.")
			fmt.Fprintln(cmd.OutOrStdout(), "Create a profile with: txcat config set-profile <name> --es-url <url>")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.String())
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("get config path: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	f := setProfileCmd.Flags()
	f.StringVar(&setProfileSource, "source", "", "Data source: es or api")
	f.StringVar(&setProfileESURL, "es-url", "", "Elasticsearch URL")
	f.StringVar(&setProfileESIndex, "index", "", "Trace data stream pattern")
	f.StringVar(&setProfileESAPIKey, "es-api-key", "", "Elasticsearch API key (supports ${ENV_VAR} syntax)")
	f.StringVar(&setProfileESUsername, "es-username", "", "Elasticsearch username")
	f.StringVar(&setProfileESPassword, "es-password", "", "Elasticsearch password (supports ${ENV_VAR} syntax)")
	f.StringVar(&setProfileAPIURL, "api-url", "", "Trace API base URL")
	f.StringVar(&setProfileWebURL, "web-url", "", "Web dashboard URL")
	f.StringVar(&setProfileAPIToken, "api-token", "", "Trace API bearer token (supports ${ENV_VAR} syntax)")
	f.StringVar(&setProfileOTLP, "otlp", "", "OTLP endpoint")
	f.BoolVar(&setProfileOTLPInsec, "otlp-insecure", true, "Use insecure OTLP connection")

	configCmd.AddCommand(useProfileCmd)
	configCmd.AddCommand(setProfileCmd)
	configCmd.AddCommand(getProfilesCmd)
	configCmd.AddCommand(currentProfileCmd)
	configCmd.AddCommand(deleteProfileCmd)
	configCmd.AddCommand(viewConfigCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

// formatProfileSummary returns a brief summary of a profile's settings.
func formatProfileSummary(p config.Profile) string {
	var parts []string
	if p.Source != "" {
		parts = append(parts, "source="+p.Source)
	}
	if p.Elasticsearch.URL != "" {
		parts = append(parts, "es="+p.Elasticsearch.URL)
	}
	if p.API.URL != "" {
		parts = append(parts, "api="+p.API.URL)
	}
	if p.OTLP.Endpoint != "" {
		parts = append(parts, "otlp="+p.OTLP.Endpoint)
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, ", ")
}
