package cue

import (
	"fmt"
	"log"
	"time"
)

// Stage is an owned scheduler instance: the actor registry, the per-actor
// operation queues, the easing registry, and the tick engine. Multiple
// stages coexist without interference.
//
// A Stage is single-threaded (no atomic, no locks): enqueue, Tick, and Reset
// must all happen on one goroutine.
type Stage struct {
	actors map[string]*Actor
	order  []string // registration order, for deterministic draw
	queues map[string]*queue

	easings map[string]Func

	// running gates queue work in Tick. It is raised by every enqueue and
	// recomputed from queue occupancy at the end of every Tick.
	running bool

	// Clear is the host's erase-the-output hook, called at the end of every
	// Tick before the redraw. When nil, the first call logs a diagnostic and
	// later calls are silent no-ops.
	Clear func()

	// Now supplies the scheduler's clock. Defaults to time.Now; replace it
	// for deterministic tests or externally paced hosts.
	Now func() time.Time

	warnedClear bool
}

// NewStage creates an empty stage with the "linear" easing registered and a
// wall-clock time source.
func NewStage() *Stage {
	return &Stage{
		actors:  make(map[string]*Actor),
		queues:  make(map[string]*queue),
		easings: map[string]Func{"linear": Linear},
		Now:     time.Now,
	}
}

// Register adds an actor under a unique name and creates its empty queue.
// Fails with ErrDuplicateActor if the name is taken and ErrInvalidActor if
// the actor is nil or has no draw hook.
func (s *Stage) Register(name string, a *Actor) error {
	if _, ok := s.actors[name]; ok {
		return fmt.Errorf("cue: register %q: %w", name, ErrDuplicateActor)
	}
	if a == nil || a.draw == nil {
		return fmt.Errorf("cue: register %q: %w", name, ErrInvalidActor)
	}
	a.name = name
	s.actors[name] = a
	s.order = append(s.order, name)
	s.queues[name] = &queue{}
	return nil
}

// Animate queues a linear tween of the given properties over d. The change
// map is copied. Starting values are snapshotted on the tween's first tick,
// not here, so a tween queued behind another continues from its end state.
func (s *Stage) Animate(actor string, d time.Duration, change map[string]float64) error {
	return s.AnimateEase(actor, d, change, "linear")
}

// AnimateEase is Animate with an explicit easing, selected by name from the
// stage's registry. Fails with ErrUnknownActor, ErrUnknownEasing, or
// ErrUnknownProperty (every change key must be declared by the actor).
func (s *Stage) AnimateEase(actor string, d time.Duration, change map[string]float64, easing string) error {
	a, ok := s.actors[actor]
	if !ok {
		return fmt.Errorf("cue: animate %q: %w", actor, ErrUnknownActor)
	}
	if _, ok := s.easings[easing]; !ok {
		return fmt.Errorf("cue: animate %q: easing %q: %w", actor, easing, ErrUnknownEasing)
	}
	cp := make(map[string]float64, len(change))
	for key, to := range change {
		if !a.Has(key) {
			return fmt.Errorf("cue: animate %q: property %q: %w", actor, key, ErrUnknownProperty)
		}
		cp[key] = to
	}
	s.queues[actor].push(&operation{
		kind:     opAnimate,
		duration: d,
		change:   cp,
		easing:   easing,
	})
	s.running = true
	return nil
}

// Delay queues a pause of d before any later operation on the actor's queue
// may start. Fails with ErrUnknownActor.
func (s *Stage) Delay(actor string, d time.Duration) error {
	if _, ok := s.actors[actor]; !ok {
		return fmt.Errorf("cue: delay %q: %w", actor, ErrUnknownActor)
	}
	s.queues[actor].push(&operation{kind: opDelay, duration: d})
	s.running = true
	return nil
}

// Callback queues fn to run once everything ahead of it on the actor's queue
// has completed. fn must be non-nil and runs synchronously inside Tick.
// Fails with ErrUnknownActor.
func (s *Stage) Callback(actor string, fn func()) error {
	if _, ok := s.actors[actor]; !ok {
		return fmt.Errorf("cue: callback %q: %w", actor, ErrUnknownActor)
	}
	if fn == nil {
		return fmt.Errorf("cue: callback %q: nil function", actor)
	}
	s.queues[actor].push(&operation{kind: opCallback, fn: fn})
	s.running = true
	return nil
}

// RegisterEasing adds (or replaces) a named easing available to
// AnimateEase. "linear" may be replaced but not removed.
func (s *Stage) RegisterEasing(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("cue: register easing: empty name")
	}
	if fn == nil {
		return fmt.Errorf("cue: register easing %q: nil function", name)
	}
	s.easings[name] = fn
	return nil
}

// Running reports whether any actor has pending operations, as of the last
// enqueue or Tick. External drivers may poll it but are not required to:
// Tick is cheap while Running is false.
func (s *Stage) Running() bool {
	return s.running
}

// Tick advances the head operation of every actor's queue using the current
// time, then clears and redraws. It is the frame body: a frame driver calls
// it at the host's cadence, and it is equally safe to call by hand.
//
// While Running is false the queue scan is skipped entirely; clear and
// redraw still happen so a manually driven host repaints.
func (s *Stage) Tick() {
	if s.running {
		for _, name := range s.order {
			s.advance(name)
		}
	}
	s.clear()
	s.Draw()
	s.running = s.occupied()
}

// advance processes one actor's queue for this frame. Whenever the head
// operation completes it is popped and the loop continues with the newly
// exposed head, so zero-duration steps cascade within a single Tick instead
// of stalling a frame each. The loop is bounded by the queue depth.
func (s *Stage) advance(name string) {
	for {
		// Re-read both maps every pass: a callback may have Reset the
		// stage mid-tick, discarding this actor and its queue.
		a := s.actors[name]
		q := s.queues[name]
		if a == nil || q == nil || q.empty() {
			return
		}
		op := q.head()
		switch op.kind {
		case opAnimate:
			now := s.Now()
			if !op.started {
				op.started = true
				op.start = now
				op.originals = make(map[string]float64, len(op.change))
				for key := range op.change {
					op.originals[key] = a.props[key]
				}
			}
			progress := 1.0
			if op.duration > 0 {
				progress = float64(now.Sub(op.start)) / float64(op.duration)
			}
			if progress < 0 {
				progress = 0
			}
			fn := s.easings[op.easing]
			if progress >= 1 {
				// Pop before the final write; the write still uses
				// progress 1 so the actor lands exactly on target.
				q.pop()
				for key, to := range op.change {
					a.props[key] = fn(op.originals[key], to, 1)
				}
				continue
			}
			for key, to := range op.change {
				a.props[key] = fn(op.originals[key], to, progress)
			}
			return
		case opDelay:
			now := s.Now()
			if !op.started {
				op.started = true
				op.end = now.Add(op.duration)
			}
			if now.Before(op.end) {
				return
			}
			q.pop()
		case opCallback:
			q.pop()
			op.fn()
		}
	}
}

// Draw invokes every registered actor's draw hook in registration order.
// Tick calls it each frame after the clear hook; hosts may also call it
// directly to repaint.
func (s *Stage) Draw() {
	for _, name := range s.order {
		a := s.actors[name]
		a.draw(a)
	}
}

// Reset discards all actors and all queues atomically, then clears and
// redraws once to leave the stage visually empty. Previously used actor
// names become available again.
func (s *Stage) Reset() {
	s.actors = make(map[string]*Actor)
	s.queues = make(map[string]*queue)
	s.order = s.order[:0]
	s.running = false
	s.clear()
	s.Draw()
}

func (s *Stage) clear() {
	if s.Clear != nil {
		s.Clear()
		return
	}
	if !s.warnedClear {
		log.Printf("cue: no Clear hook installed; the stage is never erased between frames")
		s.warnedClear = true
	}
}

func (s *Stage) occupied() bool {
	for _, q := range s.queues {
		if !q.empty() {
			return true
		}
	}
	return false
}
