// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package transactions

import (
	"strconv"
	"time"
)

// TimestampLayout is the display layout for row timestamps.
const TimestampLayout = "2006.01.02 15:04:05"

// DetailRoutePrefix prefixes the navigation target of a row.
const DetailRoutePrefix = "/transactions/"

// FormatDuration renders a duration in milliseconds as "<n> ms".
func FormatDuration(ms float64) string {
	return strconv.FormatFloat(ms, 'f', -1, 64) + " ms"
}

// FormatTimestamp renders t in local time.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(time.Local).Format(TimestampLayout)
}

// StatusClass is the badge category of an HTTP status code.
type StatusClass int

const (
	StatusSuccess StatusClass = iota
	StatusWarning
	StatusError
)

func (c StatusClass) String() string {
	switch c {
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	default:
		return "error"
	}
}

// ClassifyStatus maps 2xx to success, 4xx to warning and everything else,
// including 1xx, 3xx and out of range codes, to error.
func ClassifyStatus(code int) StatusClass {
	switch {
	case code >= 200 && code < 300:
		return StatusSuccess
	case code >= 400 && code < 500:
		return StatusWarning
	default:
		return StatusError
	}
}

// DetailPath returns the navigation target for a trace. The id is embedded
// as is.
func DetailPath(traceID string) string {
	return DetailRoutePrefix + traceID
}

// TraceIDFromPath is the inverse of DetailPath.
func TraceIDFromPath(path string) (string, bool) {
	if len(path) <= len(DetailRoutePrefix) || path[:len(DetailRoutePrefix)] != DetailRoutePrefix {
		return "", false
	}
	return path[len(DetailRoutePrefix):], true
}
