// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import "sync"

// Queue is a fixed-capacity, thread-safe, blocking FIFO of strings.
//
// Put blocks while the queue is full; Get blocks while the queue is
// empty and not finished. Both are safe to call from multiple
// goroutines, though this package's own use has exactly one producer
// and one consumer per Queue (the previous stage's worker, or the
// driver, and this stage's own worker).
//
// Queue is built over three Latches — notFull, notEmpty, and finished
// — plus a mutex guarding head, tail, count, and the slot contents.
// The locking discipline never holds the queue mutex while waiting on
// a Latch: a thread first waits on a Latch, then takes the queue
// mutex for the bounded critical section that inspects or mutates
// head/tail/count.
type Queue struct {
	name string

	mu       sync.Mutex
	items    []string
	capacity int
	head     int
	tail     int
	count    int

	notFull  *Latch
	notEmpty *Latch
	finished *Latch
}

// NewQueue creates a Queue of the given capacity. name is used only to
// annotate returned errors and is otherwise cosmetic. Fails with
// KindArgument if capacity is not positive.
func NewQueue(name string, capacity int) (*Queue, error) {
	if capacity <= 0 {
		return nil, newErr(KindArgument, name, "queue capacity must be positive")
	}
	q := &Queue{
		name:     name,
		items:    make([]string, capacity),
		capacity: capacity,
		notFull:  NewLatch(),
		notEmpty: NewLatch(),
		finished: NewLatch(),
	}
	q.notFull.Signal() // initially not full
	return q, nil
}

// Cap returns the queue's capacity.
func (q *Queue) Cap() int {
	if q == nil {
		return 0
	}
	return q.capacity
}

// Put adds s to the tail of the queue, blocking while the queue is
// full. Fails with KindArgument if q is nil.
func (q *Queue) Put(s string) error {
	if q == nil {
		return newErr(KindArgument, "", "put on absent queue")
	}
	for {
		if err := q.notFull.Wait(); err != nil {
			return err
		}

		q.mu.Lock()
		// Defensive re-check: a concurrent Put may have taken the last
		// slot after this one woke. That Put reset notFull under the
		// mutex, so waiting again blocks until a Get frees a slot
		// instead of corrupting the ring buffer.
		if q.count < q.capacity {
			break
		}
		if q.capacity == 0 {
			q.mu.Unlock()
			return newErr(KindResource, q.name, "put on destroyed queue")
		}
		q.mu.Unlock()
	}

	q.items[q.tail] = s
	q.tail = (q.tail + 1) % q.capacity
	q.count++

	if q.count < q.capacity {
		q.notFull.Signal()
	} else {
		q.notFull.Reset()
	}
	q.notEmpty.Signal()
	q.mu.Unlock()
	return nil
}

// Get removes and returns an item from the head of the queue. It
// blocks while the queue is empty and not finished. The second
// return value is false (standing in for the spec's "⊥") once the
// queue is both finished and drained, or if q is nil.
func (q *Queue) Get() (string, bool) {
	if q == nil {
		return "", false
	}
	for {
		finished := q.finished.Signaled()
		q.mu.Lock()
		empty := q.count == 0
		q.mu.Unlock()
		if finished && empty {
			return "", false
		}

		if err := q.notEmpty.WaitPulse(); err != nil {
			return "", false
		}

		q.mu.Lock()
		if q.count > 0 {
			item := q.items[q.head]
			q.items[q.head] = "" // release for GC; transfers ownership to caller
			q.head = (q.head + 1) % q.capacity
			q.count--

			if q.count > 0 {
				q.notEmpty.Signal()
			} else {
				q.notEmpty.Reset()
			}
			q.notFull.Signal()
			q.mu.Unlock()
			return item, true
		}

		// Queue is empty after the wake; re-sample finished before
		// looping, handling both spurious wakes and the race between
		// SignalFinished and a consumer that just entered Wait.
		finished = q.finished.Signaled()
		q.mu.Unlock()
		if finished {
			return "", false
		}
	}
}

// SignalFinished marks the queue finished. It is a one-way latch: once
// signaled, it stays signaled. Consumers already blocked in Get are
// woken by pulsing notEmpty so they can re-check count and finished
// rather than wait for an item that will never arrive; the pulse
// leaves notEmpty's own signaled state exactly as it was, so it never
// fabricates a non-empty claim. This does not skip draining: Get still
// dequeues any items already queued, in order, before it starts
// returning false, because the emptiness check is re-sampled against
// the real count every time around the loop.
func (q *Queue) SignalFinished() {
	if q == nil {
		return
	}
	q.finished.Signal()
	q.notEmpty.Pulse()
}

// WaitFinished blocks until SignalFinished has been called.
func (q *Queue) WaitFinished() error {
	if q == nil {
		return newErr(KindArgument, "", "wait_finished on absent queue")
	}
	return q.finished.Wait()
}

// Destroy releases any items stranded in the queue (best-effort
// cleanup for a shutdown that did not fully drain) and zeroes the
// queue's dimensions. Safe to call on a nil *Queue.
func (q *Queue) Destroy() {
	if q == nil {
		return
	}
	q.mu.Lock()
	for i := range q.items {
		q.items[i] = ""
	}
	q.capacity, q.count, q.head, q.tail = 0, 0, 0, 0
	q.mu.Unlock()
}
