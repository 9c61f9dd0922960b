// Package rtlist provides fixed-capacity pooled FIFO lists for passing
// events across the real-time boundary without touching the Go allocator.
package rtlist

import "sync"

// node is a single pooled slot. A node is either on its pool's free list
// or linked into exactly one List, never both.
type node[T any] struct {
	value T
	next  *node[T]
}

// Pool hands out pre-allocated nodes in O(1). Capacity is fixed at
// construction; when the pool runs dry acquire returns nil and the caller
// is expected to drop the value rather than block or grow.
type Pool[T any] struct {
	mu       sync.Mutex
	free     *node[T]
	nodes    []node[T]
	capacity int
	avail    int
}

// NewPool creates a pool with the given fixed capacity.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity <= 0 {
		capacity = 1
	}
	p := &Pool[T]{
		nodes:    make([]node[T], capacity),
		capacity: capacity,
		avail:    capacity,
	}
	for i := range p.nodes {
		p.nodes[i].next = p.free
		p.free = &p.nodes[i]
	}
	return p
}

// acquire pops a free node, or returns nil if the pool is exhausted.
// The lock is held only for two pointer swaps.
func (p *Pool[T]) acquire() *node[T] {
	p.mu.Lock()
	n := p.free
	if n != nil {
		p.free = n.next
		n.next = nil
		p.avail--
	}
	p.mu.Unlock()
	return n
}

// release returns a node for reuse. The node must have come from this pool
// and must no longer be linked into any list.
func (p *Pool[T]) release(n *node[T]) {
	var zero T
	n.value = zero
	p.mu.Lock()
	n.next = p.free
	p.free = n
	p.avail++
	p.mu.Unlock()
}

// Cap returns the fixed capacity.
func (p *Pool[T]) Cap() int {
	return p.capacity
}

// Available returns how many nodes are currently free.
func (p *Pool[T]) Available() int {
	p.mu.Lock()
	n := p.avail
	p.mu.Unlock()
	return n
}
