package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/laaame/render"
	"github.com/lixenwraith/laaame/status"
)

// DebugRenderer lists registry metrics in the top right of the field
type DebugRenderer struct {
	reg     *status.Registry
	visible bool
}

func NewDebugRenderer(reg *status.Registry, visible bool) *DebugRenderer {
	return &DebugRenderer{reg: reg, visible: visible}
}

// IsVisible implements VisibilityToggle
func (d *DebugRenderer) IsVisible() bool { return d.visible && d.reg != nil }

func (d *DebugRenderer) Toggle() { d.visible = !d.visible }

// Render implements SystemRenderer
func (d *DebugRenderer) Render(ctx render.RenderContext, buf *render.Canvas) {
	entries := d.reg.Entries()
	style := tcell.StyleDefault.Background(ctx.Palette.Overlay).Foreground(ctx.Palette.Dim)

	width := 0
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e.Key)+runewidth.StringWidth(e.Value)+3)
	}
	x := ctx.ScreenWidth - width - 1
	y := ctx.View.Y
	for _, e := range entries {
		if y >= ctx.ScreenHeight-1 {
			break
		}
		buf.Fill(x, y, x+width, y+1, ' ', style)
		buf.Text(x+1, y, e.Key+" "+e.Value, style)
		y++
	}
}
