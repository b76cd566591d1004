// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

// Package errfmt turns failed Elasticsearch responses into readable errors.
package errfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// QueryError is a failed search. Reason is the root cause extracted from
// the response body when it could be parsed.
type QueryError struct {
	Op     string
	Status string
	Reason string
	Body   string
	Query  string // indented request body
}

func (e *QueryError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed: %s", e.Op, e.Status)
	if e.Reason != "" {
		fmt.Fprintf(&b, " (%s)", e.Reason)
	}
	fmt.Fprintf(&b, "\nError: %s", e.Body)
	if e.Query != "" {
		fmt.Fprintf(&b, "\n\nQuery:\n%s", e.Query)
	}
	return b.String()
}

// FormatQueryError builds a QueryError including response status, body, and
// the indented query. If the query is not valid JSON it is kept raw.
func FormatQueryError(op, status string, body, queryJSON []byte) error {
	if op == "" {
		op = "search"
	}
	var prettyQuery bytes.Buffer
	if err := json.Indent(&prettyQuery, queryJSON, "", "  "); err != nil {
		prettyQuery.Reset()
		prettyQuery.Write(queryJSON)
	}
	return &QueryError{
		Op:     op,
		Status: status,
		Reason: rootCause(body),
		Body:   string(body),
		Query:  prettyQuery.String(),
	}
}

// rootCause reads error.root_cause[0].reason, falling back to error.reason.
func rootCause(body []byte) string {
	var parsed struct {
		Error struct {
			Reason    string `json:"reason"`
			RootCause []struct {
				Reason string `json:"reason"`
			} `json:"root_cause"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if len(parsed.Error.RootCause) > 0 && parsed.Error.RootCause[0].Reason != "" {
		return parsed.Error.RootCause[0].Reason
	}
	return parsed.Error.Reason
}
