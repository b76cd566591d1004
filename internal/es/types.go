// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package es

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
)

// Client wraps the Elasticsearch client with txcat-specific queries.
type Client struct {
	es    *elasticsearch.Client
	index string
}

// Options configures a Client. At most one of APIKey and Username/Password
// should be set.
type Options struct {
	Addresses []string
	Index     string
	APIKey    string
	Username  string
	Password  string

	// Transport overrides the HTTP transport, mainly for tests.
	Transport http.RoundTripper
}
