package cue

import (
	"fmt"
	"io"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Storyboard is a parsed, validated cue sheet: an ordered list of steps for
// each actor, ready to enqueue onto a Stage in one call. The YAML shape is:
//
//	actors:
//	  box:
//	    - animate:
//	        duration: 500ms
//	        ease: out-cubic   # optional, defaults to linear
//	        to: {x: 100, y: 40}
//	    - delay: 200ms
//	    - call: boom
//
// Durations use time.ParseDuration syntax. Callback steps refer to named
// functions supplied by the host at Apply time.
type Storyboard struct {
	tracks map[string][]sbStep
}

type sbStep struct {
	kind     opKind
	duration time.Duration
	easing   string
	to       map[string]float64
	call     string
}

// Raw YAML shapes, validated into sbStep during parsing.
type sbFile struct {
	Actors map[string][]sbRawStep `yaml:"actors"`
}

type sbRawStep struct {
	Animate *sbRawAnimate `yaml:"animate"`
	Delay   string        `yaml:"delay"`
	Call    string        `yaml:"call"`
}

type sbRawAnimate struct {
	Duration string             `yaml:"duration"`
	Ease     string             `yaml:"ease"`
	To       map[string]float64 `yaml:"to"`
}

// ParseStoryboard reads and validates a YAML cue sheet. Every step must be
// exactly one of animate, delay, or call; durations must parse; animate
// steps must name at least one target property.
func ParseStoryboard(r io.Reader) (*Storyboard, error) {
	var file sbFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("cue: parse storyboard: %w", err)
	}
	if len(file.Actors) == 0 {
		return nil, fmt.Errorf("cue: parse storyboard: no actors")
	}

	sb := &Storyboard{tracks: make(map[string][]sbStep, len(file.Actors))}
	for actor, rawSteps := range file.Actors {
		steps := make([]sbStep, 0, len(rawSteps))
		for i, raw := range rawSteps {
			step, err := parseStep(raw)
			if err != nil {
				return nil, fmt.Errorf("cue: parse storyboard: actor %q step %d: %w", actor, i+1, err)
			}
			steps = append(steps, step)
		}
		sb.tracks[actor] = steps
	}
	return sb, nil
}

func parseStep(raw sbRawStep) (sbStep, error) {
	variants := 0
	if raw.Animate != nil {
		variants++
	}
	if raw.Delay != "" {
		variants++
	}
	if raw.Call != "" {
		variants++
	}
	if variants != 1 {
		return sbStep{}, fmt.Errorf("want exactly one of animate, delay, call (got %d)", variants)
	}

	switch {
	case raw.Animate != nil:
		d, err := time.ParseDuration(raw.Animate.Duration)
		if err != nil {
			return sbStep{}, fmt.Errorf("animate duration: %w", err)
		}
		if len(raw.Animate.To) == 0 {
			return sbStep{}, fmt.Errorf("animate has no target properties")
		}
		easing := raw.Animate.Ease
		if easing == "" {
			easing = "linear"
		}
		return sbStep{kind: opAnimate, duration: d, easing: easing, to: raw.Animate.To}, nil
	case raw.Delay != "":
		d, err := time.ParseDuration(raw.Delay)
		if err != nil {
			return sbStep{}, fmt.Errorf("delay duration: %w", err)
		}
		return sbStep{kind: opDelay, duration: d}, nil
	default:
		return sbStep{kind: opCallback, call: raw.Call}, nil
	}
}

// Actors returns the actor names the storyboard addresses, sorted.
func (sb *Storyboard) Actors() []string {
	names := make([]string, 0, len(sb.tracks))
	for name := range sb.tracks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply enqueues every step onto the stage, in order per actor. Callback
// steps are resolved against the callbacks map by name.
//
// The whole storyboard is validated up front — actor names, callback names,
// easing names, and target properties — before anything is enqueued, so
// Apply either enqueues every step or none.
func (sb *Storyboard) Apply(stage *Stage, callbacks map[string]func()) error {
	for _, actor := range sb.Actors() {
		a, ok := stage.actors[actor]
		if !ok {
			return fmt.Errorf("cue: apply storyboard: actor %q: %w", actor, ErrUnknownActor)
		}
		for _, step := range sb.tracks[actor] {
			switch step.kind {
			case opAnimate:
				if _, ok := stage.easings[step.easing]; !ok {
					return fmt.Errorf("cue: apply storyboard: actor %q: easing %q: %w", actor, step.easing, ErrUnknownEasing)
				}
				for key := range step.to {
					if !a.Has(key) {
						return fmt.Errorf("cue: apply storyboard: actor %q: property %q: %w", actor, key, ErrUnknownProperty)
					}
				}
			case opCallback:
				if callbacks[step.call] == nil {
					return fmt.Errorf("cue: apply storyboard: actor %q: no callback named %q", actor, step.call)
				}
			}
		}
	}

	for _, actor := range sb.Actors() {
		for _, step := range sb.tracks[actor] {
			var err error
			switch step.kind {
			case opAnimate:
				err = stage.AnimateEase(actor, step.duration, step.to, step.easing)
			case opDelay:
				err = stage.Delay(actor, step.duration)
			case opCallback:
				err = stage.Callback(actor, callbacks[step.call])
			}
			if err != nil {
				return fmt.Errorf("cue: apply storyboard: %w", err)
			}
		}
	}
	return nil
}
