package cue

import "time"

// opKind distinguishes the three operation variants.
type opKind uint8

const (
	opAnimate opKind = iota
	opDelay
	opCallback
)

// operation is one queued unit of work against an actor. A single flat
// struct with a kind tag is used for all variants to avoid interface
// dispatch on the tick path; only the fields for the tagged kind are set.
//
// An operation is Pending until its first visit as queue head (started is
// false), Active while armed, and removed from the queue on completion.
type operation struct {
	kind    opKind
	started bool

	// Animate
	duration  time.Duration
	change    map[string]float64
	easing    string
	start     time.Time          // armed on first visit
	originals map[string]float64 // snapshot of touched properties, taken on first visit

	// Delay (duration is shared with Animate)
	end time.Time // armed on first visit

	// Callback
	fn func()
}

// queue is the FIFO of pending operations for one actor. Only the head is
// ever active; operations never reorder.
type queue struct {
	ops []*operation
}

func (q *queue) push(op *operation) {
	q.ops = append(q.ops, op)
}

// pop removes the head operation. Shifts in place to keep the backing array.
func (q *queue) pop() {
	copy(q.ops, q.ops[1:])
	q.ops[len(q.ops)-1] = nil
	q.ops = q.ops[:len(q.ops)-1]
}

func (q *queue) head() *operation {
	return q.ops[0]
}

func (q *queue) empty() bool {
	return len(q.ops) == 0
}
