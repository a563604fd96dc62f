// Package scheduler computes and delivers reminder fire-times. A single
// timer goroutine drains a min-heap of pending reminders and publishes due
// ones on a channel; it never touches the task collection, so the consumer
// decides on its own goroutine what a firing means.
package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/taskline/internal/collection"
	"github.com/sandeepkv93/taskline/internal/model"
)

var ErrInvalidFireTime = errors.New("scheduler: invalid fire time")

// DefaultReminderHour is the local hour a due task fires at.
const DefaultReminderHour = 9

// Reminder is the notification event delivered on C(). Title travels with
// the event so the consumer never has to dereference the collection from the
// timer's context.
type Reminder struct {
	Handle collection.Handle
	Title  string
	FireAt time.Time
}

// FireTimeFor computes when a task should remind: the configured hour on its
// due date. Completed tasks, tasks without a due date and fire-times already
// in the past yield ok=false.
func FireTimeFor(task model.Task, h collection.Handle, now time.Time, hour int) (Reminder, bool) {
	if task.Completed || task.DueAt == nil {
		return Reminder{}, false
	}
	y, m, d := task.DueAt.Date()
	fireAt := time.Date(y, m, d, hour, 0, 0, 0, task.DueAt.Location())
	if !fireAt.After(now) {
		return Reminder{}, false
	}
	return Reminder{Handle: h, Title: task.Title, FireAt: fireAt}, true
}

type queueItem struct {
	reminder Reminder
	seq      uint64
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].reminder.FireAt.Before(pq[j].reminder.FireAt)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(queueItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

type Engine struct {
	mu      sync.Mutex
	queue   priorityQueue
	pending map[collection.Handle]uint64
	nextSeq uint64
	out     chan Reminder
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:   make(priorityQueue, 0),
		pending: make(map[collection.Handle]uint64),
		out:     make(chan Reminder, bufferSize),
		wakeup:  make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (e *Engine) C() <-chan Reminder {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Schedule queues a reminder, replacing any pending reminder for the same
// task: a task has at most one reminder in flight.
func (e *Engine) Schedule(r Reminder) error {
	if r.FireAt.IsZero() {
		return ErrInvalidFireTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return errors.New("scheduler: engine stopped")
	}

	e.nextSeq++
	e.pending[r.Handle] = e.nextSeq
	heap.Push(&e.queue, queueItem{reminder: r, seq: e.nextSeq})
	e.signalWakeup()
	return nil
}

// Cancel withdraws the pending reminder for a task, if any. Superseded heap
// entries stay queued but are dropped unsent when they surface.
func (e *Engine) Cancel(h collection.Handle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.pending, h)
	e.signalWakeup()
}

// Pending reports whether a task currently has a live reminder queued.
func (e *Engine) Pending(h collection.Handle) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.pending[h]
	return ok
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.FireAt)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			due := e.popDue(time.Now())
			for _, r := range due {
				select {
				case e.out <- r:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

// peek returns the earliest live reminder, discarding canceled and
// superseded entries from the head of the heap.
func (e *Engine) peek() (Reminder, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for len(e.queue) > 0 {
		head := e.queue[0]
		if e.pending[head.reminder.Handle] == head.seq {
			return head.reminder, true
		}
		heap.Pop(&e.queue)
	}
	return Reminder{}, false
}

func (e *Engine) popDue(now time.Time) []Reminder {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Reminder, 0)
	for len(e.queue) > 0 {
		head := e.queue[0]
		if e.pending[head.reminder.Handle] != head.seq {
			heap.Pop(&e.queue)
			continue
		}
		if head.reminder.FireAt.After(now) {
			break
		}
		item := heap.Pop(&e.queue).(queueItem)
		delete(e.pending, item.reminder.Handle)
		out = append(out, item.reminder)
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
