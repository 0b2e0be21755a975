package cue

import "github.com/tanema/gween/ease"

// Func interpolates between from and to at a normalized progress in [0, 1].
// Easing functions must be pure; the scheduler calls them with the same
// inputs any number of times per operation.
type Func func(from, to, progress float64) float64

// Linear is the built-in "linear" easing.
func Linear(from, to, progress float64) float64 {
	return from + (to-from)*progress
}

// FromTweenFunc adapts a gween easing (github.com/tanema/gween/ease) for use
// with Stage.RegisterEasing:
//
//	stage.RegisterEasing("out-cubic", cue.FromTweenFunc(ease.OutCubic))
func FromTweenFunc(fn ease.TweenFunc) Func {
	return func(from, to, progress float64) float64 {
		return float64(fn(float32(progress), float32(from), float32(to-from), 1))
	}
}

// FromUnitFunc adapts a unit curve f: [0,1] → [0,1], such as the functions
// in github.com/fogleman/ease, for use with Stage.RegisterEasing:
//
//	stage.RegisterEasing("out-elastic", cue.FromUnitFunc(ease.OutElastic))
func FromUnitFunc(fn func(float64) float64) Func {
	return func(from, to, progress float64) float64 {
		return from + (to-from)*fn(progress)
	}
}
