// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"

	"github.com/elastic/txcat/internal/config"
	"github.com/elastic/txcat/internal/es"
	"github.com/elastic/txcat/internal/traceapi"
	"github.com/elastic/txcat/internal/tui"
)

// backend is a data source the CLI can also health check.
type backend interface {
	tui.DataSource
	Ping(ctx context.Context) error
}

// newBackend builds the data source selected by cfg.Source and a short
// label describing it.
func newBackend(cfg config.Config) (backend, string, error) {
	switch cfg.Source {
	case config.SourceES:
		client, err := es.New(es.Options{
			Addresses: []string{cfg.ES.URL},
			Index:     cfg.ES.Index,
			APIKey:    cfg.ES.APIKey,
			Username:  cfg.ES.Username,
			Password:  cfg.ES.Password,
		})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create ES client: %w", err)
		}
		return client, cfg.ES.Index + " @ " + cfg.ES.URL, nil
	case config.SourceAPI:
		client := traceapi.NewClient(traceapi.ClientOptions{
			BaseURL: cfg.API.URL,
			Token:   cfg.API.Token,
			Timeout: cfg.API.Timeout,
		})
		return client, cfg.API.URL, nil
	default:
		return nil, "", fmt.Errorf("unknown source %q", cfg.Source)
	}
}

// backendFromContext loads the config stored by PersistentPreRunE and builds
// its backend.
func backendFromContext(ctx context.Context) (config.Config, backend, string, error) {
	cfg, ok := config.FromContext(ctx)
	if !ok {
		return config.Config{}, nil, "", fmt.Errorf("configuration not loaded")
	}
	b, label, err := newBackend(cfg)
	if err != nil {
		return config.Config{}, nil, "", err
	}
	return cfg, b, label, nil
}
