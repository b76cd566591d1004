// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"sync"
	"time"
)

// requestKind groups requests that supersede each other.
type requestKind int

const (
	requestPage requestKind = iota
	requestStatusCodes
	requestTrace
)

func (k requestKind) String() string {
	switch k {
	case requestPage:
		return "page"
	case requestStatusCodes:
		return "status codes"
	case requestTrace:
		return "trace"
	default:
		return "unknown"
	}
}

type requestState struct {
	id     uint64
	cancel context.CancelFunc
}

// requestManager tracks one in-flight request per kind. Starting a request
// cancels the previous one of the same kind.
type requestManager struct {
	mu     sync.Mutex
	nextID uint64
	active map[requestKind]requestState
}

func newRequestManager() *requestManager {
	return &requestManager{active: make(map[requestKind]requestState)}
}

// start derives a context for a new request of kind. The returned done func
// releases it; calling done for a superseded request leaves the newer one
// registered.
func (r *requestManager) start(parent context.Context, kind requestKind, timeout time.Duration) (context.Context, func()) {
	if parent == nil {
		parent = context.Background()
	}
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, timeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}

	r.mu.Lock()
	if prev, ok := r.active[kind]; ok {
		prev.cancel()
	}
	r.nextID++
	id := r.nextID
	r.active[kind] = requestState{id: id, cancel: cancel}
	r.mu.Unlock()

	done := func() {
		cancel()
		r.mu.Lock()
		defer r.mu.Unlock()
		if cur, ok := r.active[kind]; ok && cur.id == id {
			delete(r.active, kind)
		}
	}
	return ctx, done
}

// cancel aborts the in-flight request of kind, if any.
func (r *requestManager) cancel(kind requestKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.active[kind]; ok {
		cur.cancel()
		delete(r.active, kind)
	}
}

// cancelAll aborts every in-flight request.
func (r *requestManager) cancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for kind, cur := range r.active {
		cur.cancel()
		delete(r.active, kind)
	}
}

func (r *requestManager) inFlight(kind requestKind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.active[kind]
	return ok
}

// startRequest starts a request of kind bound to the model's context.
func (m Model) startRequest(kind requestKind, timeout time.Duration) (context.Context, func()) {
	return m.requests.start(m.ctx, kind, timeout)
}
