// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package es

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastic/txcat/internal/chart"
	"github.com/elastic/txcat/internal/transactions"
)

// fakeES answers like an Elasticsearch node: every response carries the
// product header the client verifies.
func fakeES(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, body string)) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		b, _ := io.ReadAll(r.Body)
		handler(w, r, string(b))
	}))
	t.Cleanup(srv.Close)

	c, err := New(Options{Addresses: []string{srv.URL}, Index: "traces-apm*"})
	require.NoError(t, err)
	return c
}

func TestNew_RequiresAddress(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestClient_Ping(t *testing.T) {
	c := fakeES(t, func(w http.ResponseWriter, r *http.Request, _ string) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, c.Ping(context.Background()))
}

func TestClient_PingFailure(t *testing.T) {
	c := fakeES(t, func(w http.ResponseWriter, r *http.Request, _ string) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	assert.Error(t, c.Ping(context.Background()))
}

func TestClient_ListTransactions(t *testing.T) {
	c := fakeES(t, func(w http.ResponseWriter, r *http.Request, body string) {
		assert.Equal(t, "/traces-apm*/_search", r.URL.Path)
		assert.Contains(t, body, `"track_total_hits":true`)
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":1,"relation":"eq"},"hits":[
			{"_id":"a","sort":[1,"tx"],"_source":{"trace":{"id":"t1"},"url":{"path":"/x"},
			 "service":{"name":"svc"},"transaction":{"duration":{"us":1000}},
			 "http":{"response":{"status_code":404}}}}]}}`)
	})

	page, err := c.ListTransactions(context.Background(), transactions.Query{Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "t1", page.Results[0].TraceID)
	assert.Equal(t, 1.0, page.Results[0].Duration)
	assert.Equal(t, 404, page.Results[0].StatusCode)
	assert.True(t, page.AfterKey.Absent())
	assert.Equal(t, int64(1), page.TotalCount)
}

func TestClient_StatusCodes(t *testing.T) {
	c := fakeES(t, func(w http.ResponseWriter, r *http.Request, body string) {
		assert.True(t, strings.Contains(body, `"aggs"`))
		_, _ = io.WriteString(w, `{"aggregations":{"status_codes":{"buckets":[{"key":200,"doc_count":7}]}}}`)
	})

	got, err := c.StatusCodes(context.Background(), chart.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []chart.Bucket{{StatusCode: "200", Count: 7}}, got)
}

func TestClient_GetTraceQueryError(t *testing.T) {
	c := fakeES(t, func(w http.ResponseWriter, r *http.Request, _ string) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"root_cause":[{"reason":"boom"}]}}`)
	})

	_, err := c.GetTrace(context.Background(), "t1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trace spans failed")
	assert.Contains(t, err.Error(), "(boom)")
}
