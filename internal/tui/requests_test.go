// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"testing"
	"time"
)

func TestStartRequestCancelsPrevious(t *testing.T) {
	t.Parallel()

	m := Model{ctx: context.Background(), requests: newRequestManager()}

	ctx1, done1 := m.startRequest(requestPage, time.Hour)
	t.Cleanup(done1)

	select {
	case <-ctx1.Done():
		t.Fatalf("first request should not be canceled immediately")
	default:
	}

	ctx2, done2 := m.startRequest(requestPage, time.Hour)
	t.Cleanup(done2)

	select {
	case <-ctx1.Done():
		// expected: superseded request is canceled
	default:
		t.Fatalf("expected first request to be canceled after supersede")
	}

	if ctx2.Err() != nil {
		t.Fatalf("second context should be active, got err=%v", ctx2.Err())
	}
	if len(m.requests.active) != 1 {
		t.Fatalf("expected one active entry, got %d", len(m.requests.active))
	}
}

func TestStartRequestDoneDoesNotClearNewer(t *testing.T) {
	t.Parallel()

	m := Model{ctx: context.Background(), requests: newRequestManager()}

	_, done1 := m.startRequest(requestPage, time.Hour)
	ctx2, done2 := m.startRequest(requestPage, time.Hour)
	t.Cleanup(done2)

	// Calling done1 (old request) should not remove the current entry.
	done1()

	if !m.requests.inFlight(requestPage) {
		t.Fatalf("newer request should remain after old done")
	}
	if ctx2.Err() != nil {
		t.Fatalf("current context should still be active")
	}

	done2()
	if m.requests.inFlight(requestPage) {
		t.Fatalf("request should be released after done")
	}
}

func TestRequestKindsAreIndependent(t *testing.T) {
	t.Parallel()

	m := Model{ctx: context.Background(), requests: newRequestManager()}

	pageCtx, donePage := m.startRequest(requestPage, 0)
	t.Cleanup(donePage)
	_, doneChart := m.startRequest(requestStatusCodes, 0)
	t.Cleanup(doneChart)

	if pageCtx.Err() != nil {
		t.Fatalf("status code request must not cancel the page request")
	}

	m.requests.cancel(requestStatusCodes)
	if m.requests.inFlight(requestStatusCodes) || !m.requests.inFlight(requestPage) {
		t.Fatalf("cancel should only affect its own kind")
	}

	m.Close()
	if pageCtx.Err() == nil {
		t.Fatalf("Close should cancel every request")
	}
}

func TestRequestTimeout(t *testing.T) {
	t.Parallel()

	m := Model{ctx: context.Background(), requests: newRequestManager()}
	ctx, done := m.startRequest(requestTrace, time.Millisecond)
	t.Cleanup(done)

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatalf("request context should expire")
	}
	if ctx.Err() != context.DeadlineExceeded {
		t.Fatalf("err = %v, want deadline exceeded", ctx.Err())
	}
}
