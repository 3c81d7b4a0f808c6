package otel

import "sync"

// DefaultRingSize is the default ring buffer capacity.
const DefaultRingSize = 256

// RingBuffer keeps the most recent Events for the debug overlay.
// Goroutine-safe.
type RingBuffer struct {
	mu    sync.Mutex
	buf   []Event
	next  int
	count int
}

// NewRingBuffer creates a ring buffer with the given capacity.
// Non-positive sizes use DefaultRingSize.
func NewRingBuffer(size int) *RingBuffer {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &RingBuffer{buf: make([]Event, size)}
}

// Push stores e, overwriting the oldest event when full.
// Extra is copied so callers may reuse their map.
func (r *RingBuffer) Push(e Event) {
	if e.Extra != nil {
		cp := make(map[string]any, len(e.Extra))
		for k, v := range e.Extra {
			cp[k] = v
		}
		e.Extra = cp
	}
	r.mu.Lock()
	r.buf[r.next] = e
	r.next = (r.next + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
	r.mu.Unlock()
}

// Last returns up to n most recent events, oldest first.
func (r *RingBuffer) Last(n int) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n > r.count {
		n = r.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]Event, n)
	size := len(r.buf)
	for i := 0; i < n; i++ {
		out[i] = r.buf[(r.next-n+i+size)%size]
	}
	return out
}

// Len returns the number of buffered events.
func (r *RingBuffer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Cap returns the buffer capacity.
func (r *RingBuffer) Cap() int {
	return len(r.buf)
}

// Stats counts buffered events per kind.
func (r *RingBuffer) Stats() map[EventKind]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[EventKind]int)
	size := len(r.buf)
	for i := 0; i < r.count; i++ {
		counts[r.buf[(r.next-r.count+i+size)%size].Kind]++
	}
	return counts
}
