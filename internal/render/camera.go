package render

import "math"

// Camera maps the world rectangle [-HalfW, HalfW] x [-HalfH, HalfH] (+Y up)
// onto a terminal viewport of ViewWidth x ViewHeight cells (+Y down).
type Camera struct {
	HalfW, HalfH float64
	ViewWidth    int // in terminal columns
	ViewHeight   int // in terminal rows
}

// NewCamera creates a camera for a window of the given half-extents.
func NewCamera(hw, hh float64, viewW, viewH int) *Camera {
	return &Camera{HalfW: hw, HalfH: hh, ViewWidth: viewW, ViewHeight: viewH}
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy int, visible bool) {
	sx = c.column(wx)
	sy = c.row(wy)
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// RectToScreen returns the inclusive cell span covered by a box centered at
// (cx, cy) with full extents (ew, eh), clipped to the viewport. Any box inside
// the viewport covers at least one cell. ok is false for a box entirely off
// screen.
func (c *Camera) RectToScreen(cx, cy, ew, eh float64) (x0, y0, x1, y1 int, ok bool) {
	x0 = c.column(cx - ew/2)
	x1 = c.column(cx + ew/2)
	y0 = c.row(cy + eh/2)
	y1 = c.row(cy - eh/2)
	if x1 < 0 || y1 < 0 || x0 >= c.ViewWidth || y0 >= c.ViewHeight {
		return 0, 0, 0, 0, false
	}
	x0, x1 = max(x0, 0), min(x1, c.ViewWidth-1)
	y0, y1 = max(y0, 0), min(y1, c.ViewHeight-1)
	return x0, y0, x1, y1, true
}

// ScreenToWorld returns the world position at the center of cell (sx, sy).
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	cw := 2 * c.HalfW / float64(c.ViewWidth)
	ch := 2 * c.HalfH / float64(c.ViewHeight)
	return -c.HalfW + (float64(sx)+0.5)*cw, c.HalfH - (float64(sy)+0.5)*ch
}

func (c *Camera) column(wx float64) int {
	return cell((wx+c.HalfW)/(2*c.HalfW), c.ViewWidth)
}

func (c *Camera) row(wy float64) int {
	return cell((c.HalfH-wy)/(2*c.HalfH), c.ViewHeight)
}

// cell maps a fraction of the viewport to a cell index; the far edge maps
// onto the last cell instead of one past it.
func cell(frac float64, n int) int {
	i := int(math.Floor(frac * float64(n)))
	if frac == 1 {
		i = n - 1
	}
	return i
}
