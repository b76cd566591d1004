// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package transactions

// DefaultPageSize is used when a controller is created with a non-positive size.
const DefaultPageSize = 50

// Request identifies one page fetch. Session changes on every reset; Seq is
// unique within the controller. A response is applied only when its request
// is still the outstanding one.
type Request struct {
	Session uint64
	Seq     uint64
	Query   Query
}

// Event is consumed by Controller.Handle.
type Event interface{ isEvent() }

// Mounted starts an unfiltered session.
type Mounted struct{}

// RangeCommitted starts a new session for Range once it validates.
type RangeCommitted struct{ Range Range }

// RangeCleared drops the committed range and starts an unfiltered session.
type RangeCleared struct{}

// Refreshed restarts the session with the current range.
type Refreshed struct{}

// BoundaryReached asks for the next page.
type BoundaryReached struct{}

// PageFetched delivers the response to Request.
type PageFetched struct {
	Request Request
	Page    Page
}

// PageFailed delivers a failed response to Request.
type PageFailed struct {
	Request Request
	Err     error
}

func (Mounted) isEvent()         {}
func (RangeCommitted) isEvent()  {}
func (RangeCleared) isEvent()    {}
func (Refreshed) isEvent()       {}
func (BoundaryReached) isEvent() {}
func (PageFetched) isEvent()     {}
func (PageFailed) isEvent()      {}

// Controller owns the accumulated state of the transaction list. It issues
// at most one page request at a time and ignores responses that do not
// belong to the outstanding request of the current session.
//
// Controller is not safe for concurrent use; the TUI drives it from its
// update loop.
type Controller struct {
	state    State
	rng      Range
	pageSize int
	session  uint64
	seq      uint64
	pending  *Request
}

// NewController returns a controller with an empty state and no session.
func NewController(pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller{pageSize: pageSize}
}

// State returns the accumulated state.
func (c *Controller) State() State { return c.state }

// Range returns the committed range of the current session.
func (c *Controller) Range() Range { return c.rng }

// Session returns the current session id. It is zero before Start.
func (c *Controller) Session() uint64 { return c.session }

// Loading reports whether a page request is outstanding.
func (c *Controller) Loading() bool { return c.pending != nil }

// Pending returns the outstanding request, if any.
func (c *Controller) Pending() (Request, bool) {
	if c.pending == nil {
		return Request{}, false
	}
	return *c.pending, true
}

// Start resets the state and issues the first page request for the current
// range. Any outstanding request is superseded.
func (c *Controller) Start() Request {
	c.state = Reset()
	c.session++
	c.pending = nil
	return c.issue(NoCursor)
}

// CommitRange validates r and, when it is acceptable, starts a new session
// filtered by it. A rejected range leaves the controller untouched.
func (c *Controller) CommitRange(r Range) (Request, error) {
	if err := r.Validate(); err != nil {
		return Request{}, err
	}
	c.rng = r
	return c.Start(), nil
}

// ClearRange drops the range filter and starts a new session.
func (c *Controller) ClearRange() Request {
	c.rng = Range{}
	return c.Start()
}

// NextPage issues the request for the page after the current cursor. It
// returns false when the list is exhausted, when the cursor is absent or
// when a request is already outstanding.
func (c *Controller) NextPage() (Request, bool) {
	if c.session == 0 || c.pending != nil || !c.state.HasMore() {
		return Request{}, false
	}
	return c.issue(c.state.Cursor), true
}

// IsCurrent reports whether req is the outstanding request.
func (c *Controller) IsCurrent(req Request) bool {
	return c.pending != nil && c.pending.Session == req.Session && c.pending.Seq == req.Seq
}

// ApplyPage merges p when req is the outstanding request and reports whether
// it did. Stale responses are dropped.
func (c *Controller) ApplyPage(req Request, p Page) bool {
	if !c.IsCurrent(req) {
		return false
	}
	c.pending = nil
	c.state = c.state.Merge(p)
	return true
}

// FailPage clears the outstanding marker when req is current. The
// accumulated state is left as is so that the next boundary crossing
// retries from the same cursor.
func (c *Controller) FailPage(req Request) bool {
	if !c.IsCurrent(req) {
		return false
	}
	c.pending = nil
	return true
}

// Handle applies ev. It returns the request to issue next, if any, and the
// error to surface to the user. Failures of stale requests are not surfaced.
func (c *Controller) Handle(ev Event) (Request, bool, error) {
	switch ev := ev.(type) {
	case Mounted:
		return c.Start(), true, nil
	case RangeCommitted:
		req, err := c.CommitRange(ev.Range)
		if err != nil {
			return Request{}, false, err
		}
		return req, true, nil
	case RangeCleared:
		return c.ClearRange(), true, nil
	case Refreshed:
		return c.Start(), true, nil
	case BoundaryReached:
		req, ok := c.NextPage()
		return req, ok, nil
	case PageFetched:
		c.ApplyPage(ev.Request, ev.Page)
	case PageFailed:
		if c.FailPage(ev.Request) {
			return Request{}, false, ev.Err
		}
	}
	return Request{}, false, nil
}

func (c *Controller) issue(cursor Cursor) Request {
	c.seq++
	req := Request{
		Session: c.session,
		Seq:     c.seq,
		Query:   Query{Range: c.rng, AfterKey: cursor, Size: c.pageSize},
	}
	c.pending = &req
	return req
}
