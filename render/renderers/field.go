// Package renderers draws the layers of a frame, one SystemRenderer per concern
package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/laaame/render"
)

// BackgroundRenderer paints the sky above the play area and the ground below it
type BackgroundRenderer struct{}

func NewBackgroundRenderer() *BackgroundRenderer { return &BackgroundRenderer{} }

// Render implements SystemRenderer
func (b *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.Canvas) {
	v := ctx.View
	snap := ctx.Snap
	ground := tcell.StyleDefault.Background(ctx.Palette.Ground).Foreground(ctx.Palette.Dim)

	_, y0 := v.Cell(0, snap.Layout.Bottom)
	buf.Fill(v.X, y0, v.X+v.Cols, v.Y+v.Rows, ' ', ground)
}

// LaneRenderer draws the dashed lane separators, scrolling with the run
type LaneRenderer struct{}

func NewLaneRenderer() *LaneRenderer { return &LaneRenderer{} }

const laneDashPeriod = 6

// Render implements SystemRenderer
func (l *LaneRenderer) Render(ctx render.RenderContext, buf *render.Canvas) {
	v := ctx.View
	layout := ctx.Snap.Layout
	style := ctx.Palette.Style(ctx.Palette.LaneLine)

	// Scroll phase follows distance travelled
	shift := int(ctx.Snap.Elapsed.Seconds()*ctx.Snap.Speed*2) % laneDashPeriod

	for i := 0; i <= layout.Count; i++ {
		y := layout.Top + layout.Height()*float64(i)
		_, cy := v.Cell(0, y)
		if i == layout.Count {
			cy--
		}
		for cx := v.X; cx < v.X+v.Cols; cx++ {
			if i == 0 || i == layout.Count {
				buf.Set(cx, cy, '─', style)
				continue
			}
			if (cx+shift)%laneDashPeriod < laneDashPeriod/2 {
				buf.Set(cx, cy, '╌', style)
			}
		}
	}
}
