// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

// Package config provides centralized configuration management for txcat.
// It supports deterministic precedence (flags > env > profile > defaults)
// using Viper, and fail-fast validation to prevent silent misconfiguration.
package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Data source kinds.
const (
	SourceES  = "es"
	SourceAPI = "api"
)

// Config holds all application configuration.
type Config struct {
	Source  string     `mapstructure:"source"`
	Profile string     `mapstructure:"profile"`
	ES      ESConfig   `mapstructure:"es"`
	API     APIConfig  `mapstructure:"api"`
	OTLP    OTLPConfig `mapstructure:"otlp"`
	Log     LogConfig  `mapstructure:"log"`
	TUI     TUIConfig  `mapstructure:"tui"`
}

// ESConfig holds Elasticsearch connection settings.
type ESConfig struct {
	URL         string        `mapstructure:"url"`
	Index       string        `mapstructure:"index"` // trace data stream pattern
	APIKey      string        `mapstructure:"api_key"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	Timeout     time.Duration `mapstructure:"timeout"`
	PingTimeout time.Duration `mapstructure:"ping_timeout"`
}

// APIConfig holds settings for the trace HTTP API.
type APIConfig struct {
	URL     string        `mapstructure:"url"`
	WebURL  string        `mapstructure:"web_url"` // browser dashboard used by "open in browser"
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// OTLPConfig holds OpenTelemetry Protocol settings for diagnostics export.
type OTLPConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Insecure bool   `mapstructure:"insecure"`
}

// LogConfig holds diagnostics logging settings.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// TUIConfig holds list paging and request settings.
type TUIConfig struct {
	PageSize        int           `mapstructure:"page_size"`
	ScrollThreshold int           `mapstructure:"scroll_threshold"`
	ListTimeout     time.Duration `mapstructure:"list_timeout"`
	ChartTimeout    time.Duration `mapstructure:"chart_timeout"`
	DetailTimeout   time.Duration `mapstructure:"detail_timeout"`
}

// Default configuration values.
const (
	DefaultSource          = SourceES
	DefaultESURL           = "http://localhost:9200"
	DefaultIndex           = "traces-apm*"
	DefaultAPIURL          = "http://localhost:8080"
	DefaultWebURL          = "http://localhost:3000"
	DefaultTimeout         = 30 * time.Second
	DefaultPingTimeout     = 5 * time.Second
	DefaultOTLPEndpoint    = "localhost:4318"
	DefaultLogLevel        = "info"
	DefaultPageSize        = 50
	DefaultScrollThreshold = 5
	DefaultListTimeout     = 15 * time.Second
	DefaultChartTimeout    = 15 * time.Second
	DefaultDetailTimeout   = 15 * time.Second
)

// ContextKey is used to store config in context.
type ContextKey struct{}

// FromContext retrieves Config from context.
func FromContext(ctx context.Context) (Config, bool) {
	cfg, ok := ctx.Value(ContextKey{}).(Config)
	return cfg, ok
}

// WithContext stores Config in context.
func WithContext(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, ContextKey{}, cfg)
}

// Load builds a Config using Viper with precedence: flags > env > active
// profile > defaults. It binds flags from the command (and its parents) and
// fails fast on invalid values.
func Load(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TXCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindFlagsRecursive(v, cmd); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	if err := applyProfile(v); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers default values with Viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("source", DefaultSource)
	v.SetDefault("profile", "")

	v.SetDefault("es.url", DefaultESURL)
	v.SetDefault("es.index", DefaultIndex)
	v.SetDefault("es.api_key", "")
	v.SetDefault("es.username", "")
	v.SetDefault("es.password", "")
	v.SetDefault("es.timeout", DefaultTimeout)
	v.SetDefault("es.ping_timeout", DefaultPingTimeout)

	v.SetDefault("api.url", DefaultAPIURL)
	v.SetDefault("api.web_url", DefaultWebURL)
	v.SetDefault("api.token", "")
	v.SetDefault("api.timeout", DefaultTimeout)

	v.SetDefault("otlp.enabled", false)
	v.SetDefault("otlp.endpoint", DefaultOTLPEndpoint)
	v.SetDefault("otlp.insecure", true)

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", DefaultLogLevel)

	v.SetDefault("tui.page_size", DefaultPageSize)
	v.SetDefault("tui.scroll_threshold", DefaultScrollThreshold)
	v.SetDefault("tui.list_timeout", DefaultListTimeout)
	v.SetDefault("tui.chart_timeout", DefaultChartTimeout)
	v.SetDefault("tui.detail_timeout", DefaultDetailTimeout)
}

// applyProfile layers the active profile over the defaults. Env and flags
// still win because Viper consults them before defaults.
func applyProfile(v *viper.Viper) error {
	pc, err := LoadProfiles()
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}
	p, name := pc.GetActiveProfile(v.GetString("profile"))
	if p == nil {
		if flag := v.GetString("profile"); flag != "" {
			return fmt.Errorf("profile %q not found", flag)
		}
		return nil
	}
	resolved, err := p.Resolve()
	if err != nil {
		return fmt.Errorf("profile %q: %w", name, err)
	}
	logrus.WithField("profile", name).Debug("applying profile")

	setIf := func(key, val string) {
		if val != "" {
			v.SetDefault(key, val)
		}
	}
	setIf("source", resolved.Source)
	setIf("es.url", resolved.Elasticsearch.URL)
	setIf("es.index", resolved.Elasticsearch.Index)
	setIf("es.api_key", resolved.Elasticsearch.APIKey)
	setIf("es.username", resolved.Elasticsearch.Username)
	setIf("es.password", resolved.Elasticsearch.Password)
	setIf("api.url", resolved.API.URL)
	setIf("api.web_url", resolved.API.WebURL)
	setIf("api.token", resolved.API.Token)
	setIf("otlp.endpoint", resolved.OTLP.Endpoint)
	if resolved.OTLP.Insecure != nil {
		v.SetDefault("otlp.insecure", *resolved.OTLP.Insecure)
	}
	return nil
}

// bindFlagsRecursive binds flags from cmd and all parents so Viper sees them.
func bindFlagsRecursive(v *viper.Viper, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}
	if err := bindFlagSet(v, cmd.Flags()); err != nil {
		return err
	}
	if err := bindFlagSet(v, cmd.PersistentFlags()); err != nil {
		return err
	}
	return bindFlagsRecursive(v, cmd.Parent())
}

// bindFlagSet binds flags to Viper keys using explicit mappings to nested keys.
func bindFlagSet(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	flagToKey := map[string]string{
		"source":           "source",
		"profile":          "profile",
		"es-url":           "es.url",
		"index":            "es.index",
		"ping-timeout":     "es.ping_timeout",
		"api-url":          "api.url",
		"web-url":          "api.web_url",
		"otlp":             "otlp.endpoint",
		"otlp-export":      "otlp.enabled",
		"log-file":         "log.file",
		"log-level":        "log.level",
		"page-size":        "tui.page_size",
		"scroll-threshold": "tui.scroll_threshold",
		"list-timeout":     "tui.list_timeout",
		"chart-timeout":    "tui.chart_timeout",
		"detail-timeout":   "tui.detail_timeout",
	}

	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagToKey[f.Name]
		if !ok {
			// Fallback: replace "-" with "." to allow nested binding if names align
			key = strings.ReplaceAll(f.Name, "-", ".")
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

// Validate enforces correctness and fails fast on invalid configuration.
func (c Config) Validate() error {
	switch c.Source {
	case SourceES:
		if strings.TrimSpace(c.ES.URL) == "" {
			return fmt.Errorf("es.url is required")
		}
		if strings.TrimSpace(c.ES.Index) == "" {
			return fmt.Errorf("es.index is required")
		}
	case SourceAPI:
		if _, err := parseHTTPURL(c.API.URL); err != nil {
			return fmt.Errorf("api.url: %w", err)
		}
	default:
		return fmt.Errorf("source must be %q or %q, got %q", SourceES, SourceAPI, c.Source)
	}
	if c.API.WebURL != "" {
		if _, err := parseHTTPURL(c.API.WebURL); err != nil {
			return fmt.Errorf("api.web_url: %w", err)
		}
	}
	if c.ES.Timeout <= 0 {
		return fmt.Errorf("es.timeout must be > 0")
	}
	if c.ES.PingTimeout <= 0 {
		return fmt.Errorf("es.ping_timeout must be > 0")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be > 0")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.TUI.PageSize <= 0 {
		return fmt.Errorf("tui.page_size must be > 0")
	}
	if c.TUI.ScrollThreshold < 1 {
		return fmt.Errorf("tui.scroll_threshold must be >= 1")
	}
	if c.TUI.ListTimeout <= 0 {
		return fmt.Errorf("tui.list_timeout must be > 0")
	}
	if c.TUI.ChartTimeout <= 0 {
		return fmt.Errorf("tui.chart_timeout must be > 0")
	}
	if c.TUI.DetailTimeout <= 0 {
		return fmt.Errorf("tui.detail_timeout must be > 0")
	}
	return nil
}

func parseHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("expected an http(s) URL, got %q", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", raw)
	}
	return u, nil
}
