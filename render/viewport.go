package render

import (
	"math"

	"github.com/lixenwraith/laaame/vmath"
)

// hudRows is the height of the status bar above the field
const hudRows = 2

// Viewport maps logical field coordinates onto the terminal cell grid
type Viewport struct {
	X, Y           int // Top-left cell of the field
	Cols, Rows     int
	FieldW         float64
	FieldH         float64
	ShakeX, ShakeY int // Cell offset applied to field content
}

// NewViewport fits the field below the HUD, leaving the last row free
func NewViewport(screenW, screenH int, fieldW, fieldH float64) Viewport {
	return Viewport{
		X:      0,
		Y:      hudRows,
		Cols:   max(screenW, 1),
		Rows:   max(screenH-hudRows-1, 1),
		FieldW: fieldW,
		FieldH: fieldH,
	}
}

// Cell returns the cell containing field point (x, y)
func (v Viewport) Cell(x, y float64) (int, int) {
	cx := v.X + int(math.Floor(x/v.FieldW*float64(v.Cols))) + v.ShakeX
	cy := v.Y + int(math.Floor(y/v.FieldH*float64(v.Rows))) + v.ShakeY
	return cx, cy
}

// Rect returns the cell rectangle covering a centered box, at least one cell each way
func (v Viewport) Rect(b vmath.Box) (x0, y0, x1, y1 int) {
	x0, y0 = v.Cell(b.X-b.W/2, b.Y-b.H/2)
	x1, y1 = v.Cell(b.X+b.W/2, b.Y+b.H/2)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// Contains reports whether cell (cx, cy) is inside the field area
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= v.X && cx < v.X+v.Cols && cy >= v.Y && cy < v.Y+v.Rows
}

// Shaken returns a copy offset by a shake amplitude in field units
func (v Viewport) Shaken(amount float64, frame int64) Viewport {
	if amount <= 0 {
		return v
	}
	sx := amount / v.FieldW * float64(v.Cols)
	sy := amount / v.FieldH * float64(v.Rows)
	// Alternate direction every frame
	sign := 1.0
	if frame%2 == 1 {
		sign = -1
	}
	v.ShakeX = int(math.Round(sx * sign))
	v.ShakeY = int(math.Round(sy * -sign))
	return v
}
