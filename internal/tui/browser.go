// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elastic/txcat/internal/transactions"
)

// buildDetailURL joins the web dashboard base URL with the detail route of
// traceID.
func buildDetailURL(webBaseURL, traceID string) string {
	return strings.TrimSuffix(webBaseURL, "/") + transactions.DetailPath(traceID)
}

// openURLInBrowser opens the given URL in the system's default browser.
// Works on macOS, Linux, and Windows.
func openURLInBrowser(rawURL string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "linux":
		cmd = exec.Command("xdg-open", rawURL)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", rawURL)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// openBrowser is swapped in tests.
var openBrowser = openURLInBrowser

func openDetailInBrowser(webBaseURL, traceID string) tea.Cmd {
	target := buildDetailURL(webBaseURL, traceID)
	return func() tea.Msg {
		return browserOpenedMsg{url: target, err: openBrowser(target)}
	}
}
