// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package transactions

import (
	"context"
	"fmt"
)

// Drain issues first through f and hands every applied page to onPage. When
// follow is set it keeps requesting the next page until the controller
// reports the list exhausted, or a page comes back empty.
func Drain(ctx context.Context, f Fetcher, c *Controller, first Request, follow bool, onPage func(Page) error) error {
	req := first
	for {
		page, err := f.ListTransactions(ctx, req.Query)
		if err != nil {
			c.FailPage(req)
			return fmt.Errorf("fetch page %d: %w", req.Seq, err)
		}
		if !c.ApplyPage(req, *page) {
			return nil
		}
		if onPage != nil {
			if err := onPage(*page); err != nil {
				return err
			}
		}
		if !follow || len(page.Results) == 0 {
			return nil
		}
		next, ok := c.NextPage()
		if !ok {
			return nil
		}
		req = next
	}
}
