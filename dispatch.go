package tabview

import "sync"

// dispatchQueue marshals host callbacks onto the host's thread. Engine
// code posts closures from wherever it runs; the host drains them with
// Flush at a point where re-entering its own APIs is safe.
//
// Ordering is preserved: callbacks run in the order they were posted.
type dispatchQueue struct {
	mu      sync.Mutex
	pending []func()
}

// post enqueues fn for the next Flush.
func (q *dispatchQueue) post(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// flush runs every pending callback on the calling thread, in order.
// Callbacks posted while flushing run in the same drain.
func (q *dispatchQueue) flush() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
	}
}
