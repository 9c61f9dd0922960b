package rtlist

// List is a FIFO sequence backed by pooled nodes. It is not safe for
// concurrent use on its own; callers layer their own locking, which lets
// the real-time side choose try-lock or no-lock access patterns.
type List[T any] struct {
	pool *Pool[T]
	head *node[T]
	tail *node[T]
	size int
}

// NewList creates a list drawing nodes from pool. Lists that splice into
// each other must share the same pool.
func NewList[T any](pool *Pool[T]) *List[T] {
	return &List[T]{pool: pool}
}

// Append adds a value at the tail. Returns false when the pool is
// exhausted; the value is dropped, never blocked on.
func (l *List[T]) Append(v T) bool {
	n := l.pool.acquire()
	if n == nil {
		return false
	}
	n.value = v
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
	return true
}

// SpliceTo moves every node onto the tail of dst, preserving order.
// O(1): only head/tail pointers move. Both lists must share a pool.
func (l *List[T]) SpliceTo(dst *List[T]) {
	if l.head == nil {
		return
	}
	if dst.tail == nil {
		dst.head = l.head
	} else {
		dst.tail.next = l.head
	}
	dst.tail = l.tail
	dst.size += l.size
	l.head = nil
	l.tail = nil
	l.size = 0
}

// PopFront removes and returns the head element, releasing its node.
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	n := l.head
	if n == nil {
		return zero, false
	}
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	n.next = nil
	v := n.value
	l.pool.release(n)
	return v, true
}

// Drain removes every element in FIFO order, invoking fn for each and
// returning the nodes to the pool. fn may be nil to discard.
func (l *List[T]) Drain(fn func(T)) {
	n := l.head
	l.head = nil
	l.tail = nil
	l.size = 0
	for n != nil {
		next := n.next
		n.next = nil
		v := n.value
		l.pool.release(n)
		if fn != nil {
			fn(v)
		}
		n = next
	}
}

// Clear discards all elements, returning their nodes to the pool.
func (l *List[T]) Clear() {
	l.Drain(nil)
}

// Len returns the number of elements currently linked.
func (l *List[T]) Len() int {
	return l.size
}
