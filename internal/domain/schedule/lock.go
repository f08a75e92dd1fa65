package schedule

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/semaphore"
)

// writerWeight makes a writer exclusive: it holds the whole semaphore while
// readers take one unit each.
const writerWeight = 1 << 30

// DayLocks hands out one fair reader/writer section per barber day.
// The weighted semaphore queues waiters strictly FIFO, so a writer is never
// overtaken by readers that arrive after it. An entry lives only while some
// caller holds or waits on it.
type DayLocks struct {
	mu      sync.Mutex
	entries map[DayKey]*dayLock
}

type dayLock struct {
	sem  *semaphore.Weighted
	refs int
}

func NewDayLocks() *DayLocks {
	return &DayLocks{entries: make(map[DayKey]*dayLock)}
}

func (l *DayLocks) acquire(key DayKey) *semaphore.Weighted {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &dayLock{sem: semaphore.NewWeighted(writerWeight)}
		l.entries[key] = e
	}
	e.refs++
	return e.sem
}

func (l *DayLocks) release(key DayKey, n int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.entries[key]
	e.sem.Release(n)
	if e.refs--; e.refs == 0 {
		delete(l.entries, key)
	}
}

// Lock takes the exclusive section of every key, in ascending order so two
// multi-day writers cannot deadlock. Context cancellation is ignored once
// the caller is queued.
func (l *DayLocks) Lock(ctx context.Context, keys ...DayKey) func() {
	keys = slices.Clone(keys)
	slices.SortFunc(keys, compareKeys)
	keys = slices.Compact(keys)

	ctx = context.WithoutCancel(ctx)
	for _, k := range keys {
		// Cannot fail: the context is never done and the weight fits.
		_ = l.acquire(k).Acquire(ctx, writerWeight)
	}

	return func() {
		for i := len(keys) - 1; i >= 0; i-- {
			l.release(keys[i], writerWeight)
		}
	}
}

// RLock takes a shared section of one day.
func (l *DayLocks) RLock(ctx context.Context, key DayKey) func() {
	_ = l.acquire(key).Acquire(context.WithoutCancel(ctx), 1)
	return func() { l.release(key, 1) }
}

func compareKeys(a, b DayKey) int {
	if c := cmp.Compare(a.BarberID, b.BarberID); c != 0 {
		return c
	}
	return cmp.Compare(a.Date, b.Date)
}
