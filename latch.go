// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import "sync"

// Latch is a manual-reset binary event.
//
// Unlike a one-shot event, Latch's Reset lets it be reused: Signal
// sets the flag and wakes one waiter, Wait blocks until the flag is
// set (without clearing it), and Reset clears it again. The
// manual-reset policy is what defeats lost wakeups — a Signal that
// happens before any Wait still releases the next Wait without
// blocking, because Wait only ever checks the flag, never a queue of
// pending signals.
//
// The zero value is not usable; construct with NewLatch.
type Latch struct {
	mu       sync.Mutex
	cond     *sync.Cond
	signaled bool
}

// NewLatch returns a Latch in the unsignaled state.
func NewLatch() *Latch {
	l := &Latch{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Signal sets the latch and wakes one waiter blocked in Wait.
// Signaling an already-signaled Latch is a no-op beyond the wake.
// Calling Signal on a nil *Latch is a no-op.
func (l *Latch) Signal() {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.signaled = true
	l.cond.Signal()
	l.mu.Unlock()
}

// Broadcast sets the latch and wakes every waiter blocked in Wait.
// Calling Broadcast on a nil *Latch is a no-op.
func (l *Latch) Broadcast() {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.signaled = true
	l.cond.Broadcast()
	l.mu.Unlock()
}

// Reset clears the latch. Calling Reset on a nil *Latch is a no-op.
func (l *Latch) Reset() {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.signaled = false
	l.mu.Unlock()
}

// Wait blocks until the latch is signaled. It does not clear the
// flag. Returns a KindMonitor *Error if l is nil.
func (l *Latch) Wait() error {
	if l == nil {
		return newErr(KindMonitor, "", "wait on absent latch")
	}
	l.mu.Lock()
	for !l.signaled {
		l.cond.Wait()
	}
	l.mu.Unlock()
	return nil
}

// Pulse wakes every waiter currently blocked in WaitPulse without
// setting the latch, the cond-only counterpart to Broadcast. Queue
// uses this to wake a consumer parked on an empty queue's notEmpty
// latch when the queue finishes, without fabricating a non-empty
// claim — the C original's equivalent is a bare
// pthread_cond_broadcast that leaves the monitor's signaled flag
// untouched. Calling Pulse on a nil *Latch is a no-op.
func (l *Latch) Pulse() {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.cond.Broadcast()
	l.mu.Unlock()
}

// WaitPulse blocks until the latch is signaled or a waiter is woken by
// Pulse, Signal, or Broadcast, whichever comes first, then returns —
// unlike Wait, it does not loop on the flag, since a Pulse intends to
// wake the caller without the flag ever becoming true. The caller is
// responsible for re-checking whatever condition it actually cares
// about afterward. Returns a KindMonitor *Error if l is nil.
func (l *Latch) WaitPulse() error {
	if l == nil {
		return newErr(KindMonitor, "", "wait on absent latch")
	}
	l.mu.Lock()
	if !l.signaled {
		l.cond.Wait()
	}
	l.mu.Unlock()
	return nil
}

// Signaled reports whether the latch is currently signaled. Calling
// Signaled on a nil *Latch returns false.
func (l *Latch) Signaled() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.signaled
}
