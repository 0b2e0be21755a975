package cue

import (
	"errors"
	"sort"
)

// Sentinel errors returned by Stage methods. All are wrapped with call
// context; match with errors.Is.
var (
	// ErrDuplicateActor is returned by Register when the name is taken.
	ErrDuplicateActor = errors.New("actor already registered")

	// ErrInvalidActor is returned by Register when the actor is nil or has
	// no draw hook.
	ErrInvalidActor = errors.New("actor has no draw hook")

	// ErrUnknownActor is returned by the enqueue methods when the actor
	// name was never registered.
	ErrUnknownActor = errors.New("unknown actor")

	// ErrUnknownProperty is returned by Animate and AnimateEase when a
	// change set names a property the actor does not declare.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrUnknownEasing is returned by AnimateEase when the easing name is
	// not in the stage's registry.
	ErrUnknownEasing = errors.New("unknown easing")
)

// DrawFunc renders an actor's current state. The scheduler calls it once per
// frame with the actor itself; implementations must treat the actor's
// properties as read-only.
type DrawFunc func(*Actor)

// Actor is a named, mutable bag of float64 properties plus a draw hook.
// The property set is declared at construction; tweens may only touch
// declared properties. Actors are owned by the Stage they are registered
// with and carry no reference back to it.
type Actor struct {
	name  string
	props map[string]float64
	draw  DrawFunc
}

// NewActor creates an actor with the given declared properties and draw
// hook. The props map is copied. The name is assigned at registration.
func NewActor(props map[string]float64, draw DrawFunc) *Actor {
	a := &Actor{
		props: make(map[string]float64, len(props)),
		draw:  draw,
	}
	for k, v := range props {
		a.props[k] = v
	}
	return a
}

// Name returns the name the actor was registered under, or "" before
// registration.
func (a *Actor) Name() string {
	return a.name
}

// Prop returns the current value of a property, or 0 if the actor does not
// declare it. Use Has to distinguish the two.
func (a *Actor) Prop(key string) float64 {
	return a.props[key]
}

// Has reports whether the actor declares the given property.
func (a *Actor) Has(key string) bool {
	_, ok := a.props[key]
	return ok
}

// SetProp writes a property value directly, bypassing the queue. Writing a
// key the actor did not declare adds it to the declared set.
func (a *Actor) SetProp(key string, v float64) {
	a.props[key] = v
}

// Props returns the declared property names in sorted order.
func (a *Actor) Props() []string {
	keys := make([]string, 0, len(a.props))
	for k := range a.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
