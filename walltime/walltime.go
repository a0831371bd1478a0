// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package walltime tracks the wall clock time at which canonical heads were
// observed. It serves operators and clients only: nothing in block
// execution reads it.
package walltime

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ava-labs/libevm/core/types"
	"github.com/ava-labs/libevm/event"
	"github.com/ava-labs/libevm/log"

	"github.com/traverse-labs/traverse/metrics"
)

// ErrNotSynced is returned before the first head is observed, or once the
// last observed head is older than the configured staleness bound.
var ErrNotSynced = errors.New("node is not synced")

var headsObserved = metrics.NewCounter("traverse/walltime/heads")

// WallTimeData relates the current wall clock to the last canonical head.
type WallTimeData struct {
	CurrentWallTimeMs   uint64 `json:"currentWallTimeMs"`
	LastBlockWallTimeMs uint64 `json:"lastBlockWallTimeMs"`
	LastBlockTimestamp  uint64 `json:"lastBlockTimestamp"`
}

type blockTimeData struct {
	wallTimeMs     uint64
	blockTimestamp uint64
}

// Tracker records the wall time of every head it is fed.
type Tracker struct {
	staleAfter time.Duration
	now        func() time.Time

	lock sync.RWMutex
	last *blockTimeData

	// headObserved is a callback used in tests
	headObserved func()
}

// New returns a Tracker. A zero [staleAfter] never considers the last head
// stale.
func New(staleAfter time.Duration) *Tracker {
	return &Tracker{
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

// Subscribe feeds the tracker from [feed] until [ctx] is done.
func (t *Tracker) Subscribe(ctx context.Context, feed *event.FeedOf[*types.Header]) {
	heads := make(chan *types.Header, 1)
	sub := feed.Subscribe(heads)
	go func() {
		defer sub.Unsubscribe()
		t.run(ctx, heads, sub.Err())
	}()
}

func (t *Tracker) run(ctx context.Context, heads <-chan *types.Header, errs <-chan error) {
	for {
		select {
		case head := <-heads:
			t.Observe(head)
		case err := <-errs:
			if err != nil {
				log.Warn("wall time head subscription failed", "err", err)
			}
			return
		case <-ctx.Done():
			return
		}
	}
}

// Observe records [head] as the canonical head at the current wall time.
func (t *Tracker) Observe(head *types.Header) {
	data := &blockTimeData{
		wallTimeMs:     unixMilli(t.now()),
		blockTimestamp: head.Time,
	}
	t.lock.Lock()
	t.last = data
	t.lock.Unlock()

	headsObserved.Inc(1)
	if t.headObserved != nil {
		t.headObserved()
	}
}

// GetWallTimeData returns the wall time now and when the last head was
// observed, with the chain timestamp of that head.
func (t *Tracker) GetWallTimeData() (WallTimeData, error) {
	t.lock.RLock()
	last := t.last
	t.lock.RUnlock()

	if last == nil {
		return WallTimeData{}, ErrNotSynced
	}
	now := unixMilli(t.now())
	if t.staleAfter > 0 && now > last.wallTimeMs && time.Duration(now-last.wallTimeMs)*time.Millisecond > t.staleAfter {
		return WallTimeData{}, ErrNotSynced
	}
	return WallTimeData{
		CurrentWallTimeMs:   now,
		LastBlockWallTimeMs: last.wallTimeMs,
		LastBlockTimestamp:  last.blockTimestamp,
	}, nil
}

func unixMilli(t time.Time) uint64 {
	return uint64(t.UnixMilli())
}
