package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is a clipped drawing surface over a tcell screen
type Canvas struct {
	screen tcell.Screen
	w, h   int
}

func NewCanvas(screen tcell.Screen) *Canvas {
	c := &Canvas{screen: screen}
	c.Resize()
	return c
}

// Resize refreshes the cached screen size
func (c *Canvas) Resize() {
	c.w, c.h = c.screen.Size()
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

// Fill paints the half-open rectangle [x0, x1) × [y0, y1)
func (c *Canvas) Fill(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Set(x, y, r, style)
		}
	}
}

// Text draws s starting at (x, y) and returns the column after it
func (c *Canvas) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.Set(x, y, r, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

// Centered draws s centered on row y
func (c *Canvas) Centered(y int, s string, style tcell.Style) {
	c.Text((c.w-runewidth.StringWidth(s))/2, y, s, style)
}

// Clear paints every cell with style
func (c *Canvas) Clear(style tcell.Style) {
	c.Fill(0, 0, c.w, c.h, ' ', style)
}
