package event

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/justyntemme/hostgo/pkg/framework/rtlist"
)

// DefaultNoteCapacity bounds in-flight external notes per plugin.
const DefaultNoteCapacity = 512

// noteAppendRetries and noteRetryInterval bound how long a producer is
// willing to wait for a free node before dropping the note.
const (
	noteAppendRetries = 5
	noteRetryInterval = 50 * time.Microsecond
)

// NoteQueue carries external MIDI notes into the real-time thread.
//
// Producers (MIDI I/O, OSC, UI) run outside the real-time callback and may
// block briefly. The real-time thread drains once per cycle with TryDrain
// and never waits: if a producer happens to hold the lock, the notes stay
// queued for the next cycle.
type NoteQueue struct {
	mu      sync.Mutex
	pool    *rtlist.Pool[Note]
	list    *rtlist.List[Note]
	dropped atomic.Uint64
}

// NewNoteQueue creates a queue with the given pool capacity.
func NewNoteQueue(capacity int) *NoteQueue {
	if capacity <= 0 {
		capacity = DefaultNoteCapacity
	}
	pool := rtlist.NewPool[Note](capacity)
	return &NoteQueue{
		pool: pool,
		list: rtlist.NewList(pool),
	}
}

// Append queues a note from a non-real-time producer. When the pool is
// exhausted it retries a bounded number of times, sleeping between
// attempts to let the consumer catch up, then drops the note. Returns
// false on drop.
func (q *NoteQueue) Append(n Note) bool {
	for attempt := 0; ; attempt++ {
		q.mu.Lock()
		ok := q.list.Append(n)
		q.mu.Unlock()
		if ok {
			return true
		}
		if attempt >= noteAppendRetries {
			q.dropped.Add(1)
			return false
		}
		time.Sleep(noteRetryInterval)
	}
}

// TryDrain fills dst with queued notes in FIFO order. Real-time side: the
// lock is try-acquired and the call never allocates. ok is false when the
// lock was unavailable this cycle. Notes beyond len(dst) stay queued.
func (q *NoteQueue) TryDrain(dst []Note) (n int, ok bool) {
	if !q.mu.TryLock() {
		return 0, false
	}
	for n < len(dst) {
		v, more := q.list.PopFront()
		if !more {
			break
		}
		dst[n] = v
		n++
	}
	q.mu.Unlock()
	return n, true
}

// Len returns the number of queued notes.
func (q *NoteQueue) Len() int {
	q.mu.Lock()
	n := q.list.Len()
	q.mu.Unlock()
	return n
}

// Clear empties the queue. Teardown only; blocks on the lock.
func (q *NoteQueue) Clear() {
	q.mu.Lock()
	q.list.Clear()
	q.mu.Unlock()
}

// Dropped reports how many notes were discarded because the pool stayed
// exhausted past the retry budget.
func (q *NoteQueue) Dropped() uint64 {
	return q.dropped.Load()
}
