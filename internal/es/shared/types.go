// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

// Package shared contains types used across the es package and its subpackages.
// This package breaks import cycles by providing a common dependency.
package shared

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"
)

// SearchResponse represents a raw search response body from Elasticsearch.
type SearchResponse struct {
	Body       io.ReadCloser
	StatusCode int
	Status     string
	IsError    bool
}

// Hit is one search hit. Sort carries the raw sort values so they can be
// sent back verbatim as search_after.
type Hit struct {
	ID     string                 `json:"_id"`
	Source map[string]interface{} `json:"_source"`
	Sort   []json.RawMessage      `json:"sort,omitempty"`
}

// HitsEnvelope is the subset of a search response txcat reads.
type HitsEnvelope struct {
	Hits struct {
		Total struct {
			Value    int64  `json:"value"`
			Relation string `json:"relation"`
		} `json:"total"`
		Hits []Hit `json:"hits"`
	} `json:"hits"`
	Aggregations map[string]json.RawMessage `json:"aggregations,omitempty"`
}

// === Nested Path Extraction Helpers ===

// GetNestedPath looks up a dot-separated path. Documents may store fields
// either nested ({"trace":{"id":..}}) or flattened ({"trace.id":..}), so a
// flattened key is tried at every level before descending.
func GetNestedPath(data map[string]interface{}, path string) (interface{}, bool) {
	if data == nil || path == "" {
		return nil, false
	}
	if v, ok := data[path]; ok {
		return v, true
	}
	for i := 0; i < len(path); i++ {
		if path[i] != '.' {
			continue
		}
		child, ok := data[path[:i]].(map[string]interface{})
		if !ok {
			continue
		}
		if v, ok := GetNestedPath(child, path[i+1:]); ok {
			return v, true
		}
	}
	return nil, false
}

// GetNestedString retrieves a string value at the given path. Numbers are
// rendered without a fractional part when they have none.
func GetNestedString(data map[string]interface{}, path string) string {
	val, ok := GetNestedPath(data, path)
	if !ok {
		return ""
	}
	switch v := val.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []interface{}:
		// ECS keyword fields are sometimes arrays of one
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

// GetNestedFloat retrieves a numeric value at the given path. Numeric
// strings are parsed.
func GetNestedFloat(data map[string]interface{}, path string) (float64, bool) {
	val, ok := GetNestedPath(data, path)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

// FirstString returns the first non-empty string among paths.
func FirstString(data map[string]interface{}, paths ...string) string {
	for _, p := range paths {
		if s := GetNestedString(data, p); s != "" {
			return s
		}
	}
	return ""
}

// FirstFloat returns the first numeric value among paths.
func FirstFloat(data map[string]interface{}, paths ...string) (float64, bool) {
	for _, p := range paths {
		if f, ok := GetNestedFloat(data, p); ok {
			return f, true
		}
	}
	return 0, false
}

// GetTimestamp parses an RFC 3339 timestamp or epoch milliseconds.
func GetTimestamp(data map[string]interface{}, path string) time.Time {
	val, ok := GetNestedPath(data, path)
	if !ok {
		return time.Time{}
	}
	switch v := val.(type) {
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	case float64:
		return time.UnixMilli(int64(v))
	}
	return time.Time{}
}
