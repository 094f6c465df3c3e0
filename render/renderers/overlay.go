package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/laaame/engine"
	"github.com/lixenwraith/laaame/render"
)

// OverlayRenderer draws the phase cards: loading, paused, won and lost
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer { return &OverlayRenderer{} }

// Render implements SystemRenderer
func (o *OverlayRenderer) Render(ctx render.RenderContext, buf *render.Canvas) {
	lines, accent := overlayLines(ctx.Snap)
	if len(lines) == 0 {
		return
	}
	pal := ctx.Palette
	box := tcell.StyleDefault.Background(pal.Overlay).Foreground(pal.LaneLine)

	top := ctx.ScreenHeight/2 - len(lines)/2 - 1
	buf.Fill(0, top, ctx.ScreenWidth, top+len(lines)+2, ' ', box)
	for i, line := range lines {
		style := box
		if i == 0 {
			style = box.Bold(true).Foreground(accent(pal))
		}
		buf.Centered(top+1+i, line, style)
	}
}

// overlayLines returns the card for the snapshot phase, title first
func overlayLines(snap *engine.Snapshot) ([]string, func(*render.Palette) tcell.Color) {
	accent := func(p *render.Palette) tcell.Color { return p.Popup }

	switch snap.Phase {
	case engine.PhaseLoading:
		return []string{
			"LOADING",
			fmt.Sprintf("%3.0f%%", snap.LoadPercent*100),
		}, accent

	case engine.PhaseReady:
		return []string{"LAAAME", "Ready"}, accent

	case engine.PhasePaused:
		return []string{"PAUSED", "ESC resume  Q menu  V voice  M mute"}, accent

	case engine.PhaseWon:
		lines := []string{"CASE WON!"}
		if snap.HasOutcome {
			out := snap.Outcome
			lines = append(lines, fmt.Sprintf("Score %d  Best %d", out.Score, out.Best))
			if out.NewBest {
				lines = append(lines, "New best!")
			}
			if out.Unlocked != "" {
				lines = append(lines, "Unlocked: "+out.Unlocked)
			}
			if out.Final {
				lines = append(lines, "Every tier cleared. Better call Saul.")
			}
		}
		lines = append(lines, "ENTER retry  Q menu")
		return lines, func(p *render.Palette) tcell.Color { return p.Good }

	case engine.PhaseLost:
		lines := []string{"OBJECTION!"}
		if snap.HasOutcome {
			out := snap.Outcome
			lines = append(lines, fmt.Sprintf("Score %d  Best %d  Deaths %d", out.Score, out.Best, out.Deaths))
		}
		lines = append(lines, "ENTER retry  Q menu")
		return lines, func(p *render.Palette) tcell.Color { return p.Danger }
	}
	return nil, accent
}
