package event

import "sync/atomic"

const (
	// QueueSize is the fixed ring capacity, a power of two
	QueueSize = 256

	queueMask = QueueSize - 1
)

// EventQueue is a lock-free MPSC ring buffer between the input poller and the tick loop
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Drain: Single consumer (frame loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events    [QueueSize]GameEvent
	published [QueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64          // Read index
	tail      atomic.Uint64          // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds event using lock-free CAS with published flags pattern
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		tail := eq.tail.Load()
		next := tail + 1
		if !eq.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & queueMask
		eq.events[idx] = ev
		eq.published[idx].Store(true) // MUST be after write

		// Drop the oldest unread slot when lapping the reader
		head := eq.head.Load()
		if next-head > QueueSize {
			eq.head.CompareAndSwap(head, next-QueueSize)
		}
		return
	}
}

// Emit pushes a payload-less event
func (eq *EventQueue) Emit(t EventType) {
	eq.Push(GameEvent{Type: t})
}

// Drain appends pending events to dst in FIFO order and advances head
// Stops at the first slot whose writer has not published yet
func (eq *EventQueue) Drain(dst []GameEvent) []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return dst
		}

		n := tail - head
		if n > QueueSize {
			n = QueueSize
			head = tail - QueueSize
		}

		start := len(dst)
		for i := uint64(0); i < n; i++ {
			idx := (head + i) & queueMask
			if !eq.published[idx].Load() {
				break
			}
			dst = append(dst, eq.events[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(head, head+uint64(len(dst)-start)) {
			return dst
		}
		dst = dst[:start]
	}
}

// Consume returns all pending events, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	out := eq.Drain(nil)
	if len(out) == 0 {
		return nil
	}
	return out
}

// Len returns approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	if d := int(tail - head); d < QueueSize {
		return d
	}
	return QueueSize
}
