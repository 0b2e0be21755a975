package cue

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultTickInterval is the TickerDriver cadence when none is given (~30
// ticks per second).
const DefaultTickInterval = 33 * time.Millisecond

// RunConfig configures the window and presentation for Run.
type RunConfig struct {
	Title  string
	Width  int // window and layout width; defaults to 640
	Height int // window and layout height; defaults to 480

	// Draw presents the frame after Tick has run the actors' draw hooks.
	// Actor hooks have no access to the screen (they run during the update
	// phase), so the usual pattern is to have them paint an offscreen
	// canvas and blit it here.
	Draw func(screen *ebiten.Image)
}

// game adapts a Stage to ebiten's frame callback.
type game struct {
	stage *Stage
	cfg   RunConfig
}

func (g *game) Update() error {
	g.stage.Tick()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the stage with the platform's vsync-aligned
// frame callback, ticking once per frame. It blocks until the window closes
// and returns any error from the game loop.
//
// Hosts that want a loop without a window should use TickerDriver; hosts
// that already have a loop just call Stage.Tick themselves.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&game{stage: stage, cfg: cfg})
}

// TickerDriver drives a stage at a fixed interval. It is the fallback for
// hosts with no frame callback: headless tools, tests, terminal output.
//
// All Tick calls happen on the goroutine that called Run, which satisfies
// the stage's single-threaded contract as long as the host does not touch
// the stage from elsewhere while the driver runs.
type TickerDriver struct {
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewTickerDriver creates a driver ticking at the given interval, or
// DefaultTickInterval if it is not positive.
func NewTickerDriver(interval time.Duration) *TickerDriver {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &TickerDriver{
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Run ticks the stage until Stop is called. It blocks; start it on a
// dedicated goroutine if the caller has other work.
func (d *TickerDriver) Run(stage *Stage) {
	t := time.NewTicker(d.interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			stage.Tick()
		case <-d.done:
			return
		}
	}
}

// Stop makes Run return after the tick in flight, if any. Safe to call more
// than once.
func (d *TickerDriver) Stop() {
	d.stopOnce.Do(func() { close(d.done) })
}
