// stranded-desktop plays the game in a native window. Arrow keys or WASD
// thrust, P pauses, Esc quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	"stranded/internal/config"
	"stranded/internal/input"
	"stranded/internal/runlog"
	"stranded/internal/sim"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var background = color.RGBA{R: 8, G: 8, B: 16, A: 255}

// Game adapts a sim.Session to ebiten's fixed-rate update loop.
type Game struct {
	session *sim.Session
	width   int
	height  int
	paused  bool
	logger  *slog.Logger
}

// Update advances the session by one ebiten tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused {
		return nil
	}
	dt := 1 / float64(ebiten.TPS())
	if err := g.session.Tick(dt, keyState()); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	return nil
}

// keyState reads the held thrust keys.
func keyState() input.State {
	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return input.State{
		Up:    held(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  held(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:  held(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: held(ebiten.KeyArrowRight, ebiten.KeyD),
	}
}

// Draw renders every sprite as a filled box, +Y up, origin at the center.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	hw, hh := g.session.HalfExtents()
	for _, sp := range g.session.Sprites() {
		x := sp.Position.X - sp.Extent.X/2 + hw
		y := hh - (sp.Position.Y + sp.Extent.Y/2)
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(sp.Extent.X), float32(sp.Extent.Y), toRGBA(sp.Color), false)
	}
	hud := g.session.FuelText().String()
	if g.paused {
		hud += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, hud)
}

// Layout keeps the logical screen at the playfield size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func toRGBA(c tcell.Color) color.RGBA {
	r, gr, b := c.RGB()
	if r < 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: uint8(r), G: uint8(gr), B: uint8(b), A: 255}
}

func main() {
	tuningFile := flag.String("tuning", "", "Optional YAML tuning file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(*tuningFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	session, err := sim.New(cfg, rand.New(rand.NewSource(time.Now().UnixNano())), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	g := &Game{
		session: session,
		width:   int(math.Round(cfg.Window.Width)),
		height:  int(math.Round(cfg.Window.Height)),
		logger:  logger,
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("Stranded in space")

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if serr := runlog.Save(runlog.FromSession(session, "desktop", err)); serr != nil {
		logger.Warn("run history not saved", "error", serr)
	}
	if err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
	logger.Info("game ended", "stats", session.Stats())
}
