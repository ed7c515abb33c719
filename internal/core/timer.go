package core

import (
	"container/heap"
	"time"
)

// Timer is a one-shot callback owned by a TimerQueue.
type Timer struct {
	deadline time.Time
	seq      uint64
	fn       func()
	index    int // position in the queue heap, -1 once fired or stopped
	queue    *TimerQueue
}

// Deadline returns the time the timer is (or was) due.
func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// Active reports whether the timer is still waiting to fire.
func (t *Timer) Active() bool {
	return t != nil && t.index >= 0
}

// Stop cancels the timer. It returns false if the timer already fired,
// was already stopped, or is nil, so Stop is always safe to call.
func (t *Timer) Stop() bool {
	if !t.Active() {
		return false
	}
	heap.Remove(&t.queue.timers, t.index)
	return true
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// TimerQueue schedules callbacks against a Clock and fires them from
// RunDue on the caller's goroutine. Nothing runs concurrently: callbacks
// may schedule or stop other timers, including themselves.
type TimerQueue struct {
	clock  Clock
	timers timerHeap
	seq    uint64
}

// NewTimerQueue creates an empty queue reading time from clock.
func NewTimerQueue(clock Clock) *TimerQueue {
	return &TimerQueue{clock: clock}
}

// Clock returns the queue's time source.
func (q *TimerQueue) Clock() Clock {
	return q.clock
}

// AfterFunc schedules fn to run once d has elapsed on the queue's clock.
func (q *TimerQueue) AfterFunc(d time.Duration, fn func()) *Timer {
	return q.At(q.clock.Now().Add(d), fn)
}

// At schedules fn to run once the clock reaches deadline.
// Timers with equal deadlines fire in scheduling order.
func (q *TimerQueue) At(deadline time.Time, fn func()) *Timer {
	q.seq++
	t := &Timer{
		deadline: deadline,
		seq:      q.seq,
		fn:       fn,
		queue:    q,
	}
	heap.Push(&q.timers, t)
	return t
}

// RunDue fires every timer whose deadline is at or before the current
// clock time, earliest first, and returns how many fired. Timers scheduled
// by a callback fire in the same call if they are already due.
func (q *TimerQueue) RunDue() int {
	now := q.clock.Now()
	fired := 0
	for len(q.timers) > 0 && !q.timers[0].deadline.After(now) {
		t := heap.Pop(&q.timers).(*Timer)
		fired++
		t.fn()
	}
	return fired
}

// Len returns the number of pending timers.
func (q *TimerQueue) Len() int {
	return len(q.timers)
}

// Next returns the earliest pending deadline.
func (q *TimerQueue) Next() (time.Time, bool) {
	if len(q.timers) == 0 {
		return time.Time{}, false
	}
	return q.timers[0].deadline, true
}
