// Package game runs a simulation session in real time on a tcell screen.
package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"stranded/internal/input"
	"stranded/internal/render"
	"stranded/internal/sim"

	"github.com/gdamore/tcell/v2"
)

// DefaultFrameRate is the target number of ticks per second.
const DefaultFrameRate = 60

const hint = "arrows/wasd thrust  p pause  q quit"

// Game drives one session: it decodes key events into held directions, ticks
// the session with the real elapsed time and redraws after every tick.
type Game struct {
	screen   tcell.Screen
	session  *sim.Session
	renderer *render.Renderer
	keys     *input.Tracker
	logger   *slog.Logger

	frame  time.Duration
	now    func() time.Time
	last   time.Time
	paused bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(g *Game) { g.logger = l } }

// WithFrameRate sets the target ticks per second.
func WithFrameRate(fps int) Option {
	return func(g *Game) {
		if fps > 0 {
			g.frame = time.Second / time.Duration(fps)
		}
	}
}

// WithHold sets how long a key stays held after its last event.
func WithHold(d time.Duration) Option { return func(g *Game) { g.keys = input.NewTracker(d) } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(g *Game) { g.now = now } }

// New creates a Game for an initialized screen.
func New(screen tcell.Screen, session *sim.Session, opts ...Option) *Game {
	hw, hh := session.HalfExtents()
	g := &Game{
		screen:   screen,
		session:  session,
		renderer: render.NewRenderer(screen, hw, hh),
		keys:     input.NewTracker(input.DefaultHold),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		frame:    time.Second / DefaultFrameRate,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run blocks until the player quits, the screen closes or ctx is cancelled.
// It returns an error only when the session reports a broken invariant.
func (g *Game) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	// Start an async input reader goroutine.
	eventCh := make(chan tcell.Event, 32)
	go func() {
		defer close(eventCh)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.frame)
	defer ticker.Stop()

	g.last = g.now()
	g.draw()
	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game stopped", "reason", ctx.Err())
			return nil
		case ev, ok := <-eventCh:
			if !ok {
				return nil // screen closed / disconnected
			}
			if g.handleEvent(ev) {
				g.logger.Info("player quit", "stats", g.session.Stats())
				return nil
			}
		case <-ticker.C:
			if err := g.step(); err != nil {
				return err
			}
		}
	}
}

// handleEvent applies one terminal event and reports whether the game should
// end.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
		g.draw()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'p', 'P':
				g.togglePause()
				return false
			}
		}
		g.keys.HandleKey(ev, g.now())
	}
	return false
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if !g.paused {
		// Do not integrate the time spent paused.
		g.last = g.now()
		g.keys.Release()
	}
	g.draw()
}

// step ticks the session with the time elapsed since the previous step.
func (g *Game) step() error {
	if g.paused {
		return nil
	}
	now := g.now()
	dt := now.Sub(g.last).Seconds()
	g.last = now
	if err := g.session.Tick(dt, g.keys.State(now)); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	g.draw()
	return nil
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.session.Sprites())
	if g.paused {
		g.renderer.DrawBanner("PAUSED", tcell.ColorYellow)
	}
	g.renderer.DrawHUD(g.session.FuelText(), hint)
}
