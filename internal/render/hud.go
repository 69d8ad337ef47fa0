package render

import (
	"stranded/internal/component"
	"stranded/internal/factory"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the separator and the fuel readout below the playfield,
// with an optional right-aligned hint, then shows the screen.
func (r *Renderer) DrawHUD(fuel component.FuelText, hint string) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	col := r.drawText(0, hudY+1, fuel.Label, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(col, hudY+1, fuel.Value, tcell.StyleDefault.Foreground(factory.PlayerColor))

	if hint != "" {
		x := screenW - runewidth.StringWidth(hint)
		r.drawText(max(x, 0), hudY+1, hint, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	r.screen.Show()
}

// DrawBanner writes msg centered on the playfield.
func (r *Renderer) DrawBanner(msg string, color tcell.Color) {
	x := (r.camera.ViewWidth - runewidth.StringWidth(msg)) / 2
	y := r.camera.ViewHeight / 2
	r.drawText(max(x, 0), y, msg, tcell.StyleDefault.Foreground(color).Bold(true))
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x and returns the column after it.
// Wide runes advance by their display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}
