// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/es/errfmt"
	"github.com/elastic/txcat/internal/es/shared"
)

// MaxStatusCodes caps the number of distinct codes returned.
const MaxStatusCodes = 50

const statusAgg = "status_codes"

// BuildStatusCodeQuery returns the terms aggregation over the HTTP status
// code of transactions matching f.
func BuildStatusCodeQuery(f chart.Filter) map[string]interface{} {
	filters := shared.NewFilterBuilder().
		AddProcessorEventFilter("transaction").
		AddServiceFilter(f.Service).
		AddRangeFilter(f.Range)

	return map[string]interface{}{
		"size":  0,
		"query": filters.Build(),
		"aggs": map[string]interface{}{
			statusAgg: map[string]interface{}{
				"terms": map[string]interface{}{
					"field": shared.StatusCodeFields[0],
					"size":  MaxStatusCodes,
					"order": map[string]interface{}{"_key": "asc"},
				},
			},
		},
	}
}

// StatusCodes returns one bucket per status code in the order the
// aggregation returned them.
func StatusCodes(ctx context.Context, exec Executor, f chart.Filter) ([]chart.Bucket, error) {
	queryJSON, err := json.Marshal(BuildStatusCodeQuery(f))
	if err != nil {
		return nil, fmt.Errorf("status codes: marshal query: %w", err)
	}

	res, err := exec.SearchForMetrics(ctx, exec.GetIndex(), queryJSON)
	if err != nil {
		return nil, fmt.Errorf("status codes: %w", err)
	}
	defer res.Body.Close()

	if res.IsError {
		body, _ := io.ReadAll(res.Body)
		return nil, errfmt.FormatQueryError("status codes", res.Status, body, queryJSON)
	}
	return parseStatusCodes(res.Body)
}

func parseStatusCodes(body io.Reader) ([]chart.Bucket, error) {
	var resp struct {
		Aggregations map[string]struct {
			Buckets []struct {
				Key         json.RawMessage `json:"key"`
				KeyAsString string          `json:"key_as_string"`
				DocCount    int64           `json:"doc_count"`
			} `json:"buckets"`
		} `json:"aggregations"`
	}
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("status codes: decode response: %w", err)
	}

	agg := resp.Aggregations[statusAgg]
	buckets := make([]chart.Bucket, 0, len(agg.Buckets))
	for _, b := range agg.Buckets {
		code := b.KeyAsString
		if code == "" {
			code = strings.Trim(string(b.Key), `"`)
		}
		buckets = append(buckets, chart.Bucket{StatusCode: code, Count: b.DocCount})
	}
	return buckets, nil
}
