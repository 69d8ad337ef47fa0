package render

import (
	"stranded/internal/component"
	"stranded/internal/sim"

	"github.com/gdamore/tcell/v2"
)

// HUDRows is the number of rows reserved below the playfield.
const HUDRows = 2

// Glyphs per sprite kind.
const (
	glyphPlayer   = '█'
	glyphFuelCell = '◆'
)

// Renderer draws a session onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	hw, hh float64
}

// NewRenderer creates a Renderer for a window of half-extents (hw, hh).
func NewRenderer(screen tcell.Screen, hw, hh float64) *Renderer {
	r := &Renderer{screen: screen, hw: hw, hh: hh}
	r.Resize()
	return r
}

// Resize refits the camera to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	viewH := max(h-HUDRows, 1)
	r.camera = NewCamera(r.hw, r.hh, max(w, 1), viewH)
}

// Camera returns the active camera.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawFrame clears the screen and renders sprites in order.
func (r *Renderer) DrawFrame(sprites []sim.Sprite) {
	r.screen.Clear()
	for _, sp := range sprites {
		r.drawSprite(sp)
	}
}

func (r *Renderer) drawSprite(sp sim.Sprite) {
	x0, y0, x1, y1, ok := r.camera.RectToScreen(sp.Position.X, sp.Position.Y, sp.Extent.X, sp.Extent.Y)
	if !ok {
		return
	}
	glyph := glyphFuelCell
	if sp.Kind == component.KindPlayer {
		glyph = glyphPlayer
	}
	style := tcell.StyleDefault.Foreground(sp.Color).Background(tcell.ColorBlack)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}
