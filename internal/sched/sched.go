// Package sched provides a cooperative, virtual-time timer executor.
//
// A Scheduler owns a queue of periodic and one-shot timers. Nothing fires on
// its own: the host calls Advance with the current time (a wall clock, a
// Bubble Tea tick, or a test clock) and every due timer runs to completion,
// one at a time, on the caller's goroutine. Timers with equal deadlines fire
// in creation order.
//
// A Scheduler is not safe for concurrent use; callers serialize access.
package sched

import (
	"container/heap"
	"time"
)

// Func is a timer body. now is the timer's scheduled deadline.
type Func func(now time.Time)

// Timer is a cancellable handle returned by Every and After.
type Timer struct {
	s       *Scheduler
	fn      Func
	when    time.Time
	period  time.Duration // 0 for one-shot
	seq     uint64
	index   int // position in the heap, -1 when not queued
	stopped bool
}

// Stop cancels the timer. It returns false if the timer had already fired
// (one-shot) or was already stopped. Stopping from inside the timer's own
// body prevents a periodic timer from being rescheduled.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.s.queue, t.index)
		return true
	}
	// Running right now (periodic) or a one-shot that already fired
	return t.period > 0
}

// Active reports whether the timer will fire again.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped && t.index >= 0
}

// When returns the next deadline.
func (t *Timer) When() time.Time {
	return t.when
}

// Period returns the repeat interval, or 0 for a one-shot timer.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Scheduler is a virtual-time timer queue.
type Scheduler struct {
	now   time.Time
	seq   uint64
	queue timerQueue
}

// New creates a scheduler whose clock starts at start.
func New(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Every schedules fn to run every period, first at Now()+period.
// It panics if period is not positive.
func (s *Scheduler) Every(period time.Duration, fn Func) *Timer {
	if period <= 0 {
		panic("sched: non-positive period")
	}
	return s.add(s.now.Add(period), period, fn)
}

// After schedules fn to run once at Now()+d. A non-positive d fires on the
// next Advance.
func (s *Scheduler) After(d time.Duration, fn Func) *Timer {
	return s.add(s.now.Add(max(d, 0)), 0, fn)
}

func (s *Scheduler) add(when time.Time, period time.Duration, fn Func) *Timer {
	s.seq++
	t := &Timer{
		s:      s,
		fn:     fn,
		when:   when,
		period: period,
		seq:    s.seq,
		index:  -1,
	}
	heap.Push(&s.queue, t)
	return t
}

// Advance moves the clock to to, firing every timer whose deadline is not
// after to. It returns the number of timer bodies run. Timers created or
// stopped by a body take effect immediately. A to earlier than Now() fires
// nothing.
func (s *Scheduler) Advance(to time.Time) int {
	fired := 0
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.when.After(to) {
			break
		}
		heap.Pop(&s.queue)
		if next.when.After(s.now) {
			s.now = next.when
		}

		next.fn(next.when)
		fired++

		if next.period > 0 && !next.stopped {
			next.when = next.when.Add(next.period)
			s.seq++
			next.seq = s.seq
			heap.Push(&s.queue, next)
		} else {
			next.stopped = true
		}
	}
	if to.After(s.now) {
		s.now = to
	}
	return fired
}

// AdvanceBy moves the clock forward by d.
func (s *Scheduler) AdvanceBy(d time.Duration) int {
	return s.Advance(s.now.Add(d))
}

// Next returns the earliest pending deadline.
func (s *Scheduler) Next() (time.Time, bool) {
	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].when, true
}

// Pending returns the number of queued timers.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// StopAll cancels every queued timer.
func (s *Scheduler) StopAll() {
	for _, t := range s.queue {
		t.stopped = true
		t.index = -1
	}
	s.queue = s.queue[:0]
}

// timerQueue is a min-heap ordered by (when, seq).
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].when.Equal(q[j].when) {
		return q[i].seq < q[j].seq
	}
	return q[i].when.Before(q[j].when)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
