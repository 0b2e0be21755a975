package cue

import "testing"

func TestQueuePopPreservesOrder(t *testing.T) {
	q := &queue{}
	a := &operation{kind: opCallback}
	b := &operation{kind: opDelay}
	c := &operation{kind: opAnimate}
	q.push(a)
	q.push(b)
	q.push(c)

	if q.head() != a {
		t.Fatal("head is not the first pushed operation")
	}
	q.pop()
	if q.head() != b {
		t.Fatal("head after one pop is not the second operation")
	}
	q.pop()
	if q.head() != c {
		t.Fatal("head after two pops is not the third operation")
	}
	q.pop()
	if !q.empty() {
		t.Fatal("queue not empty after popping everything")
	}
}

func TestQueuePushAfterDrain(t *testing.T) {
	q := &queue{}
	q.push(&operation{kind: opDelay})
	q.pop()

	op := &operation{kind: opCallback}
	q.push(op)
	if q.empty() || q.head() != op {
		t.Fatal("queue unusable after drain")
	}
}
