package cue

import (
	"testing"
	"time"
)

func TestTickerDriverDeliversTicks(t *testing.T) {
	s := NewStage()
	s.Clear = func() {}
	s.Register("box", NewActor(map[string]float64{"x": 0}, noopDraw))

	fired := make(chan struct{})
	s.Callback("box", func() { close(fired) })

	d := NewTickerDriver(time.Millisecond)
	go d.Run(s)
	defer d.Stop()

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("ticker driver never delivered a tick")
	}
}

func TestTickerDriverStopTerminatesRun(t *testing.T) {
	s := NewStage()
	s.Clear = func() {}

	d := NewTickerDriver(time.Millisecond)
	done := make(chan struct{})
	go func() {
		d.Run(s)
		close(done)
	}()

	d.Stop()
	d.Stop() // calling again must not panic

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestTickerDriverDefaultInterval(t *testing.T) {
	d := NewTickerDriver(0)
	if d.interval != DefaultTickInterval {
		t.Errorf("interval = %v, want %v", d.interval, DefaultTickInterval)
	}
	d = NewTickerDriver(-time.Second)
	if d.interval != DefaultTickInterval {
		t.Errorf("negative interval = %v, want %v", d.interval, DefaultTickInterval)
	}
}

func TestGameAdapterTicksStage(t *testing.T) {
	s := NewStage()
	s.Clear = func() {}
	s.Register("box", NewActor(map[string]float64{"x": 0}, noopDraw))

	ticked := false
	s.Callback("box", func() { ticked = true })

	g := &game{stage: s, cfg: RunConfig{Width: 320, Height: 240}}
	if err := g.Update(); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !ticked {
		t.Error("Update did not tick the stage")
	}

	w, h := g.Layout(1920, 1080)
	if w != 320 || h != 240 {
		t.Errorf("Layout = %dx%d, want 320x240", w, h)
	}

	// Draw with no hook configured must be a no-op.
	g.Draw(nil)
}
