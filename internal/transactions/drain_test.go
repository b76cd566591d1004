// Copyright 2026 Elasticsearch B.V. and contributors
// SPDX-License-Identifier: Apache-2.0

package transactions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	pages   map[Cursor]Page
	failAt  Cursor
	err     error
	queries []Query
}

func (f *fakeFetcher) ListTransactions(_ context.Context, q Query) (*Page, error) {
	f.queries = append(f.queries, q)
	if f.err != nil && q.AfterKey == f.failAt {
		return nil, f.err
	}
	p := f.pages[q.AfterKey]
	return &p, nil
}

func threePages() map[Cursor]Page {
	return map[Cursor]Page{
		NoCursor: page(5, "a", "1", "2"),
		"a":      page(5, "b", "3", "4"),
		"b":      page(5, NoCursor, "5"),
	}
}

func TestDrain_FollowsCursor(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{pages: threePages()}
	c := NewController(2)
	var seen int

	err := Drain(context.Background(), f, c, c.Start(), true, func(p Page) error {
		seen += len(p.Results)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, seen)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, traceIDs(c.State()))
	assert.Len(t, f.queries, 3)
	assert.False(t, c.Loading())
}

func TestDrain_SinglePage(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{pages: threePages()}
	c := NewController(2)

	require.NoError(t, Drain(context.Background(), f, c, c.Start(), false, nil))
	assert.Len(t, f.queries, 1)
	assert.Equal(t, 2, c.State().Len())
}

func TestDrain_StopsOnEmptyPage(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{pages: map[Cursor]Page{
		NoCursor: page(10, "a", "1"),
		"a":      page(10, "b"),
	}}
	c := NewController(2)

	require.NoError(t, Drain(context.Background(), f, c, c.Start(), true, nil))
	assert.Len(t, f.queries, 2)
}

func TestDrain_ErrorKeepsState(t *testing.T) {
	t.Parallel()

	boom := errors.New("backend down")
	f := &fakeFetcher{pages: threePages(), failAt: "a", err: boom}
	c := NewController(2)

	err := Drain(context.Background(), f, c, c.Start(), true, nil)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"1", "2"}, traceIDs(c.State()))
	assert.False(t, c.Loading())
}

func TestDrain_CallbackError(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	f := &fakeFetcher{pages: threePages()}
	c := NewController(2)

	err := Drain(context.Background(), f, c, c.Start(), true, func(Page) error { return stop })
	require.ErrorIs(t, err, stop)
	assert.Len(t, f.queries, 1)
}
