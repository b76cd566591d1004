// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

// Package otlp forwards logrus entries to an OTLP log endpoint.
package otlp

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// scopeName is the instrumentation scope of emitted records.
const scopeName = "github.com/elastic/txcat"

// Hook is a logrus hook that emits every entry as an OTel log record.
type Hook struct {
	provider *sdklog.LoggerProvider
	logger   log.Logger
	endpoint string
	levels   []logrus.Level
}

// Config holds OTLP hook configuration
type Config struct {
	Endpoint    string // OTLP HTTP endpoint (default: localhost:4318)
	ServiceName string // resource service.name
	Insecure    bool   // Use HTTP instead of HTTPS
	Level       string // least severe level forwarded (default: info)
}

// New creates a hook that batches records to an OTLP HTTP endpoint.
func New(cfg Config) (*Hook, error) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:4318"
	}

	opts := []otlploghttp.Option{
		otlploghttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlploghttp.WithInsecure())
	}

	exporter, err := otlploghttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	h, err := newHook(sdklog.NewBatchProcessor(exporter), cfg)
	if err != nil {
		return nil, err
	}
	h.endpoint = cfg.Endpoint
	return h, nil
}

func newHook(processor sdklog.Processor, cfg Config) (*Hook, error) {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		var err error
		if level, err = logrus.ParseLevel(cfg.Level); err != nil {
			return nil, fmt.Errorf("otlp hook: %w", err)
		}
	}

	var attrs []attribute.KeyValue
	if cfg.ServiceName != "" {
		attrs = append(attrs, semconv.ServiceName(cfg.ServiceName))
	}
	res := resource.NewWithAttributes(semconv.SchemaURL, attrs...)

	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(processor),
		sdklog.WithResource(res),
	)

	return &Hook{
		provider: provider,
		logger:   provider.Logger(scopeName),
		levels:   levelsUpTo(level),
	}, nil
}

// Endpoint returns the configured collector endpoint.
func (h *Hook) Endpoint() string {
	return h.endpoint
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook.
func (h *Hook) Fire(entry *logrus.Entry) error {
	var record log.Record

	record.SetTimestamp(entry.Time)
	record.SetObservedTimestamp(time.Now())
	record.SetSeverity(levelToSeverity(entry.Level))
	record.SetSeverityText(entry.Level.String())
	record.SetBody(log.StringValue(entry.Message))

	for k, v := range entry.Data {
		record.AddAttributes(attributeFor(k, v))
	}

	ctx := entry.Context
	if ctx == nil {
		ctx = context.Background()
	}
	h.logger.Emit(ctx, record)
	return nil
}

// Close flushes pending records and shuts down the provider.
func (h *Hook) Close(ctx context.Context) error {
	return h.provider.Shutdown(ctx)
}

func attributeFor(key string, v interface{}) log.KeyValue {
	switch val := v.(type) {
	case string:
		return log.String(key, val)
	case bool:
		return log.Bool(key, val)
	case int:
		return log.Int(key, val)
	case int64:
		return log.Int64(key, val)
	case uint64:
		return log.Int64(key, int64(val))
	case float64:
		return log.Float64(key, val)
	case time.Duration:
		return log.String(key, val.String())
	case error:
		return log.String(key, val.Error())
	default:
		return log.String(key, fmt.Sprint(val))
	}
}

// levelsUpTo returns every level at least as severe as max.
func levelsUpTo(max logrus.Level) []logrus.Level {
	var out []logrus.Level
	for _, l := range logrus.AllLevels {
		if l <= max {
			out = append(out, l)
		}
	}
	return out
}

func levelToSeverity(level logrus.Level) log.Severity {
	switch level {
	case logrus.TraceLevel:
		return log.SeverityTrace
	case logrus.DebugLevel:
		return log.SeverityDebug
	case logrus.InfoLevel:
		return log.SeverityInfo
	case logrus.WarnLevel:
		return log.SeverityWarn
	case logrus.ErrorLevel:
		return log.SeverityError
	case logrus.FatalLevel, logrus.PanicLevel:
		return log.SeverityFatal
	default:
		return log.SeverityInfo
	}
}
