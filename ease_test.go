package cue

import (
	"math"
	"testing"

	fease "github.com/fogleman/ease"
	"github.com/tanema/gween/ease"
)

func TestLinearEndpointsAndMidpoint(t *testing.T) {
	if got := Linear(0, 100, 0); got != 0 {
		t.Errorf("Linear(0,100,0) = %f, want 0", got)
	}
	if got := Linear(0, 100, 0.5); got != 50 {
		t.Errorf("Linear(0,100,0.5) = %f, want 50", got)
	}
	if got := Linear(0, 100, 1); got != 100 {
		t.Errorf("Linear(0,100,1) = %f, want 100", got)
	}
	// Descending ranges interpolate the same way.
	if got := Linear(100, 0, 0.25); got != 75 {
		t.Errorf("Linear(100,0,0.25) = %f, want 75", got)
	}
}

func TestFromTweenFuncMatchesLinear(t *testing.T) {
	fn := FromTweenFunc(ease.Linear)
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := fn(0, 100, p)
		want := Linear(0, 100, p)
		if math.Abs(got-want) > 0.01 {
			t.Errorf("FromTweenFunc(Linear)(0,100,%f) = %f, want %f", p, got, want)
		}
	}
}

func TestFromTweenFuncAppliesCurve(t *testing.T) {
	fn := FromTweenFunc(ease.OutCubic)
	// OutCubic is ahead of linear at the midpoint.
	if got := fn(0, 100, 0.5); got <= 50 {
		t.Errorf("OutCubic at midpoint = %f, want > 50", got)
	}
	// Endpoints are exact.
	if got := fn(0, 100, 0); got != 0 {
		t.Errorf("OutCubic at 0 = %f, want 0", got)
	}
	if got := fn(0, 100, 1); math.Abs(got-100) > 0.01 {
		t.Errorf("OutCubic at 1 = %f, want ~100", got)
	}
}

func TestFromUnitFuncAppliesCurve(t *testing.T) {
	fn := FromUnitFunc(fease.InQuad)
	// InQuad(0.5) is exactly 0.25.
	if got := fn(0, 100, 0.5); got != 25 {
		t.Errorf("InQuad at midpoint = %f, want 25", got)
	}
	if got := fn(0, 100, 1); got != 100 {
		t.Errorf("InQuad at 1 = %f, want 100", got)
	}
	if got := fn(50, 50, 0.3); got != 50 {
		t.Errorf("degenerate range = %f, want 50", got)
	}
}
