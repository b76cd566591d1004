// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

// Package traceapi provides a client for the trace HTTP API that backs the
// transaction dashboard.
package traceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/transactions"
)

// API paths.
const (
	transactionsPath = "/api/v1/traces/transactions"
	tracePath        = "/api/v1/traces/"
	statusCodesPath  = "/api/v1/metrics/http-status-code"
	healthPath       = "/api/v1/health"
)

// dateLayout is the wire format of range bounds.
const dateLayout = "2006-01-02T15:04:05"

// Client handles communication with the trace API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// ClientOptions holds configuration for creating a new client.
type ClientOptions struct {
	BaseURL string
	Token   string // sent as a bearer token when set
	Timeout time.Duration

	// Transport overrides the HTTP transport, mainly for tests.
	Transport http.RoundTripper
}

// NewClient creates a new trace API client from options.
func NewClient(opts ClientOptions) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		token:   opts.Token,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: opts.Transport,
		},
	}
}

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// listResponse mirrors the transaction list payload. afterKey is opaque JSON
// (object, array or string) and is passed back verbatim.
type listResponse struct {
	Results    []wireItem      `json:"results"`
	AfterKey   json.RawMessage `json:"afterKey"`
	TotalCount int64           `json:"totalCount"`
}

type wireItem struct {
	TraceID       string  `json:"traceId"`
	EndPoint      string  `json:"endPoint"`
	ServiceName   string  `json:"serviceName"`
	Duration      float64 `json:"duration"`
	StartDateTime string  `json:"startDateTime"`
	StatusCode    int     `json:"statusCode"`
	Abnormal      bool    `json:"abnormal"`
}

type wireTrace struct {
	TraceID string     `json:"traceId"`
	Spans   []wireSpan `json:"spans"`
}

type wireSpan struct {
	SpanID        string  `json:"spanId"`
	ParentSpanID  string  `json:"parentSpanId"`
	Name          string  `json:"name"`
	ServiceName   string  `json:"serviceName"`
	Kind          string  `json:"kind"`
	Duration      float64 `json:"duration"`
	StartDateTime string  `json:"startDateTime"`
	StatusCode    int     `json:"statusCode"`
	Outcome       string  `json:"outcome"`
}

// timestampLayouts are tried in order; zone-less values are local time.
var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05"}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ListTransactions fetches one page of transactions.
func (c *Client) ListTransactions(ctx context.Context, q transactions.Query) (*transactions.Page, error) {
	params := rangeParams(q.Range)
	if !q.AfterKey.Absent() {
		params.Set("afterKey", string(q.AfterKey))
	}
	if q.Size > 0 {
		params.Set("size", strconv.Itoa(q.Size))
	}

	var resp listResponse
	if err := c.get(ctx, transactionsPath, params, &resp); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	page := &transactions.Page{
		Results:    make([]transactions.Item, 0, len(resp.Results)),
		AfterKey:   cursorFromJSON(resp.AfterKey),
		TotalCount: resp.TotalCount,
	}
	for _, it := range resp.Results {
		page.Results = append(page.Results, transactions.Item{
			TraceID:       it.TraceID,
			EndPoint:      it.EndPoint,
			ServiceName:   it.ServiceName,
			Duration:      it.Duration,
			StartDateTime: parseTimestamp(it.StartDateTime),
			StatusCode:    it.StatusCode,
			Abnormal:      it.Abnormal,
		})
	}
	return page, nil
}

// StatusCodes fetches the status-code aggregate.
func (c *Client) StatusCodes(ctx context.Context, f chart.Filter) ([]chart.Bucket, error) {
	params := rangeParams(f.Range)
	if f.Service != "" {
		params.Set("serviceName", f.Service)
	}

	var resp struct {
		Results []struct {
			StatusCode json.RawMessage `json:"statusCode"`
			Count      int64           `json:"count"`
		} `json:"results"`
	}
	if err := c.get(ctx, statusCodesPath, params, &resp); err != nil {
		return nil, fmt.Errorf("status codes: %w", err)
	}

	buckets := make([]chart.Bucket, 0, len(resp.Results))
	for _, r := range resp.Results {
		buckets = append(buckets, chart.Bucket{
			StatusCode: strings.Trim(string(r.StatusCode), `"`),
			Count:      r.Count,
		})
	}
	return buckets, nil
}

// GetTrace fetches the spans of one trace.
func (c *Client) GetTrace(ctx context.Context, traceID string) (*transactions.Trace, error) {
	if strings.TrimSpace(traceID) == "" {
		return nil, fmt.Errorf("trace id is required")
	}
	var resp wireTrace
	if err := c.get(ctx, tracePath+url.PathEscape(traceID), nil, &resp); err != nil {
		return nil, fmt.Errorf("trace %s: %w", traceID, err)
	}
	tr := &transactions.Trace{TraceID: resp.TraceID, Spans: make([]transactions.Span, 0, len(resp.Spans))}
	if tr.TraceID == "" {
		tr.TraceID = traceID
	}
	for _, s := range resp.Spans {
		tr.Spans = append(tr.Spans, transactions.Span{
			ID:          s.SpanID,
			ParentID:    s.ParentSpanID,
			Name:        s.Name,
			ServiceName: s.ServiceName,
			Kind:        s.Kind,
			Duration:    s.Duration,
			Start:       parseTimestamp(s.StartDateTime),
			StatusCode:  s.StatusCode,
			Outcome:     s.Outcome,
		})
	}
	return tr, nil
}

// Ping checks if the API is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.get(ctx, healthPath, nil, nil); err != nil {
		return fmt.Errorf("trace API not available: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(respBody))}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func rangeParams(r transactions.Range) url.Values {
	params := url.Values{}
	if r.Start != nil {
		params.Set("startDate", r.Start.Format(dateLayout))
	}
	if r.End != nil {
		params.Set("endDate", r.End.Format(dateLayout))
	}
	return params
}

// cursorFromJSON keeps a string afterKey as is and any other non-null JSON
// value in compact form. null, "" and a missing key are all absent.
func cursorFromJSON(raw json.RawMessage) transactions.Cursor {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return transactions.NoCursor
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return transactions.Cursor(s)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return transactions.Cursor(raw)
	}
	return transactions.Cursor(buf.String())
}
