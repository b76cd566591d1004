// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

// Package logging configures the logrus logger shared by the CLI and the TUI.
//
// The TUI owns the terminal, so while it runs diagnostics go to log.file (or
// nowhere). Entries are optionally forwarded to an OTLP endpoint.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/elastic/txcat/internal/config"
	"github.com/elastic/txcat/internal/otlp"
)

// ServiceName is reported as service.name on exported records.
const ServiceName = "txcat"

// Logger bundles the configured logger with the resources it holds.
type Logger struct {
	*logrus.Logger

	file *os.File
	hook *otlp.Hook
}

// Setup builds a logger from cfg. console receives entries when no log
// file is configured; pass nil to drop them.
func Setup(cfg config.Config, console io.Writer) (*Logger, error) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	l := &Logger{Logger: logrus.New()}
	l.SetLevel(level)

	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
		l.SetOutput(f)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	case console != nil:
		l.SetOutput(console)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		l.SetOutput(io.Discard)
	}

	if cfg.OTLP.Enabled {
		hook, err := otlp.New(otlp.Config{
			Endpoint:    cfg.OTLP.Endpoint,
			ServiceName: ServiceName,
			Insecure:    cfg.OTLP.Insecure,
			Level:       cfg.Log.Level,
		})
		if err != nil {
			_ = l.closeFile()
			return nil, err
		}
		l.hook = hook
		l.AddHook(hook)
	}

	logrus.SetLevel(level)
	logrus.SetOutput(l.Out)
	return l, nil
}

// Close flushes the OTLP hook and closes the log file.
func (l *Logger) Close(ctx context.Context) error {
	var errs []error
	if l.hook != nil {
		if err := l.hook.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("otlp shutdown: %w", err))
		}
	}
	if err := l.closeFile(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (l *Logger) closeFile() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
