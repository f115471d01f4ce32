package lint

import (
	"sync"
	"sync/atomic"
	"time"

	"relint/internal/buffer"
)

// queue is the debounce scheduler. It mints hit times from a process-wide
// counter and coalesces rapid hits on one buffer into a single pending
// execution. It never preempts an execution already in flight; stale
// results are discarded at commit time by the aggregator.
type queue struct {
	seq atomic.Uint64

	mu      sync.Mutex
	timers  map[buffer.ID]*time.Timer
	delay   func() time.Duration
	execute func(id buffer.ID, hit buffer.HitTime)
}

func newQueue(delay func() time.Duration, execute func(id buffer.ID, hit buffer.HitTime)) *queue {
	return &queue{
		timers:  make(map[buffer.ID]*time.Timer),
		delay:   delay,
		execute: execute,
	}
}

// Mint returns a hit time strictly greater than every previously minted
// value in this process.
func (q *queue) Mint() buffer.HitTime {
	return buffer.HitTime(q.seq.Add(1))
}

// Schedule (re)arms the buffer's debounce timer. A pending request that
// has not fired yet is replaced, so only the latest hit's parameters
// survive the window. The execute callback runs on a background goroutine.
func (q *queue) Schedule(id buffer.ID, hit buffer.HitTime) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if t, ok := q.timers[id]; ok {
		t.Stop()
	}
	q.timers[id] = time.AfterFunc(q.delay(), func() {
		q.mu.Lock()
		delete(q.timers, id)
		q.mu.Unlock()
		q.execute(id, hit)
	})
}

// Cancel drops any pending request for the buffer. An execution that
// already started is not aborted; its result is discarded downstream.
func (q *queue) Cancel(id buffer.ID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
}
