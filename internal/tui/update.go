// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/elastic/txcat/internal/transactions"
)

// mountedMsg starts the first session once the program is running.
type mountedMsg struct{}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return mountedMsg{} },
		func() tea.Msg { return tea.EnableMouseCellMotion() },
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case mountedMsg:
		return m.dispatch(transactions.Mounted{})

	case pageMsg:
		return m.handlePageMsg(msg)

	case statusCodesMsg:
		return m.handleStatusCodesMsg(msg)

	case traceMsg:
		return m.handleTraceMsg(msg)

	case browserOpenedMsg:
		if msg.err != nil {
			m.setStatus("Failed to open browser: " + msg.err.Error())
		} else {
			m.setStatus("Opened " + msg.url)
		}
		return m, nil

	case errMsg:
		return m.handleErrMsg(msg)
	}

	var cmd tea.Cmd
	switch m.UI.Mode {
	case viewRangeInput:
		cmd = m.updateRangeInputs(msg)
	case viewDetail:
		m.Components.Viewport, cmd = m.Components.Viewport.Update(msg)
	case viewErrorModal:
		m.Components.ErrorViewport, cmd = m.Components.ErrorViewport.Update(msg)
	}
	return m, cmd
}

// dispatch feeds ev to the list controller, issues the resulting request and
// surfaces any error.
func (m Model) dispatch(ev transactions.Event) (Model, tea.Cmd) {
	req, ok, err := m.List.Controller.Handle(ev)
	if err != nil {
		m.log.WithError(err).WithField("event", fmt.Sprintf("%T", ev)).Warn("list event failed")
		if m.handleAsyncError(err) {
			return m, nil
		}
	}
	if !ok {
		return m, nil
	}

	switch ev.(type) {
	case transactions.BoundaryReached:
		return m, m.fetchPage(req)
	default:
		return m, m.startSession(req)
	}
}

// handleAsyncError is a helper that handles the common error pattern in async message handlers.
// If err is nil, it returns false so the caller can proceed with success handling.
// If err is a cancellation, it returns true to exit early.
// Otherwise, it sets m.UI.Err, shows the error modal, and returns true.
func (m *Model) handleAsyncError(err error) (done bool) {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	m.UI.Err = err
	m.showErrorModal()
	return true
}

// showErrorModal configures the error viewport and switches to error modal view
func (m *Model) showErrorModal() {
	if m.UI.Mode != viewErrorModal {
		m.pushView(viewErrorModal)
	}
	modalWidth := min(m.UI.Width-8, 80)
	m.Components.ErrorViewport.Width = modalWidth - 8
	m.Components.ErrorViewport.Height = max(min(m.UI.Height-15, 20), 3)
	if m.UI.Err != nil {
		m.Components.ErrorViewport.SetContent(WrapText(m.UI.Err.Error(), m.Components.ErrorViewport.Width))
	}
	m.Components.ErrorViewport.GotoTop()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.UI.Width = msg.Width
	m.UI.Height = msg.Height
	// DetailStyle has border (2) + padding (2) = 4 lines overhead inside the box
	m.Components.Viewport.Width = msg.Width - 4
	m.Components.Viewport.Height = m.getFullScreenHeight() - 4
	m.Components.HelpViewport.Width = min(msg.Width-8, 70)
	m.Components.HelpViewport.Height = max(msg.Height-10, 5)

	if m.UI.Mode == viewDetail {
		m.updateDetailContent()
	}
	return m, nil
}

func (m Model) handlePageMsg(msg pageMsg) (Model, tea.Cmd) {
	ctl := m.List.Controller
	if !ctl.IsCurrent(msg.req) {
		m.log.WithFields(logrus.Fields{"session": msg.req.Session, "seq": msg.req.Seq}).Debug("dropping stale page")
		return m, nil
	}

	if msg.err != nil {
		// the next navigation key retries from the same cursor
		m.List.Trigger.Reset()
		return m.dispatch(transactions.PageFailed{Request: msg.req, Err: pageError(msg.err)})
	}

	var page transactions.Page
	if msg.page != nil {
		page = *msg.page
	}
	m.UI.LastRefresh = time.Now()
	m.UI.Err = nil
	return m.dispatch(transactions.PageFetched{Request: msg.req, Page: page})
}

// pageError turns a timeout into a readable message. Cancellations pass
// through unchanged and are swallowed by handleAsyncError.
func pageError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("loading transactions timed out: %w", err)
	}
	return err
}

func (m Model) handleStatusCodesMsg(msg statusCodesMsg) (Model, tea.Cmd) {
	if msg.session != m.List.Controller.Session() {
		return m, nil
	}
	m.Chart.Loading = false
	if m.handleAsyncError(msg.err) {
		return m, nil
	}
	m.Chart.Buckets = msg.buckets
	return m, nil
}

func (m Model) handleTraceMsg(msg traceMsg) (Model, tea.Cmd) {
	if msg.traceID != m.Detail.TraceID {
		return m, nil
	}
	m.Detail.Loading = false
	if m.handleAsyncError(msg.err) {
		return m, nil
	}
	m.Detail.Trace = msg.trace
	if m.UI.Mode == viewDetail {
		m.updateDetailContent()
	}
	return m, nil
}

func (m Model) handleErrMsg(msg errMsg) (Model, tea.Cmd) {
	m.UI.Err = msg
	m.showErrorModal()
	return m, nil
}
