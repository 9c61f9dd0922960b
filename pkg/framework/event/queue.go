package event

import (
	"sync"
	"sync/atomic"

	"github.com/justyntemme/hostgo/pkg/framework/rtlist"
)

// DefaultPostCapacity bounds in-flight postponed events per plugin.
const DefaultPostCapacity = 128

// PostQueue carries events out of the real-time callback.
//
// The real-time thread appends into a staging list guarded by a lock held
// only for pointer swaps, so it never waits behind the consumer lock,
// which the worker holds for the full duration of a drain. The worker
// moves the staging list onto the visible one with TrySplice and plays
// events back with Drain.
type PostQueue struct {
	mu        sync.Mutex // consumer lock, held across drains
	stagingMu sync.Mutex // held only for O(1) list linkage
	pool      *rtlist.Pool[PostEvent]
	staging   *rtlist.List[PostEvent]
	visible   *rtlist.List[PostEvent]
	dropped   atomic.Uint64
}

// NewPostQueue creates a queue with the given pool capacity.
func NewPostQueue(capacity int) *PostQueue {
	if capacity <= 0 {
		capacity = DefaultPostCapacity
	}
	pool := rtlist.NewPool[PostEvent](capacity)
	return &PostQueue{
		pool:    pool,
		staging: rtlist.NewList(pool),
		visible: rtlist.NewList(pool),
	}
}

// AppendRT queues an event from the real-time thread. It never allocates
// and never blocks beyond the staging lock's pointer swaps. If the pool is
// exhausted the event is dropped and counted; the audio stream must keep
// running.
func (q *PostQueue) AppendRT(ev PostEvent) bool {
	q.stagingMu.Lock()
	ok := q.staging.Append(ev)
	q.stagingMu.Unlock()
	if !ok {
		q.dropped.Add(1)
	}
	return ok
}

// TrySplice moves staged events onto the consumer-visible list. It gives
// up immediately if the consumer lock is held; a later call will pick the
// events up. Returns false when skipped.
func (q *PostQueue) TrySplice() bool {
	if !q.mu.TryLock() {
		return false
	}
	q.stagingMu.Lock()
	q.staging.SpliceTo(q.visible)
	q.stagingMu.Unlock()
	q.mu.Unlock()
	return true
}

// Drain removes all visible events in FIFO order, invoking fn for each.
// Worker-side only; blocks on the consumer lock without restriction.
// Returns the number of events delivered.
func (q *PostQueue) Drain(fn func(PostEvent)) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := q.visible.Len()
	q.visible.Drain(fn)
	return n
}

// Clear empties both lists. Teardown only; holds both locks
// unconditionally.
func (q *PostQueue) Clear() {
	q.mu.Lock()
	q.stagingMu.Lock()
	q.staging.Clear()
	q.visible.Clear()
	q.stagingMu.Unlock()
	q.mu.Unlock()
}

// Dropped reports how many events were discarded because the pool was
// exhausted.
func (q *PostQueue) Dropped() uint64 {
	return q.dropped.Load()
}
