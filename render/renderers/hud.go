package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/laaame/dash"
	"github.com/lixenwraith/laaame/render"
)

// HUDRenderer draws the two status rows above the field and the control line at the bottom
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer { return &HUDRenderer{} }

// Render implements SystemRenderer
func (h *HUDRenderer) Render(ctx render.RenderContext, buf *render.Canvas) {
	snap := ctx.Snap
	pal := ctx.Palette
	bar := tcell.StyleDefault.Background(pal.Overlay).Foreground(pal.LaneLine)
	w := ctx.ScreenWidth

	buf.Fill(0, 0, w, 1, ' ', bar)
	x := buf.Text(1, 0, "LAAAME", bar.Bold(true).Foreground(pal.Popup))
	x = buf.Text(x+2, 0, snap.Label, bar.Bold(true))
	x = buf.Text(x+2, 0, fmt.Sprintf("SCORE %d/%d", int(snap.Score), snap.Target), bar)
	x = buf.Text(x+2, 0, fmt.Sprintf("BEST %d", snap.Best), bar.Foreground(pal.Dim))
	buf.Text(x+2, 0, fmt.Sprintf("DEATHS %d", snap.Deaths), bar.Foreground(pal.Dim))

	dashText, dashStyle := dashLabel(snap.Dash, snap.DashLeft.Seconds(), snap.DashCooldown.Seconds(), bar, pal)
	buf.Text(w-runewidth.StringWidth(dashText)-1, 0, dashText, dashStyle)

	progressBar(buf, 1, w, snap.Progress, bar.Foreground(pal.Good), bar.Foreground(pal.Dim))

	bottom := ctx.ScreenHeight - 1
	buf.Fill(0, bottom, w, bottom+1, ' ', bar)
	if snap.Voice {
		voiceMeter(buf, bottom, snap.MicLevel, snap.Zone.String(), bar, pal)
	} else {
		buf.Text(1, bottom, "↑↓ lane  SPACE dash  ESC pause  V voice", bar.Foreground(pal.Dim))
	}
	if snap.Fallback != "" {
		msg := "keyboard: " + snap.Fallback
		buf.Text(w-runewidth.StringWidth(msg)-1, bottom, msg, bar.Foreground(pal.Danger))
	}
}

func dashLabel(st dash.State, left, cooldown float64, bar tcell.Style, pal *render.Palette) (string, tcell.Style) {
	switch st {
	case dash.StateDashing:
		return fmt.Sprintf("DASH! %.1fs", left), bar.Foreground(pal.DashGlow).Bold(true)
	case dash.StateCooling:
		return fmt.Sprintf("DASH %.1fs", cooldown), bar.Foreground(pal.Dim)
	default:
		return "DASH ready", bar.Foreground(pal.Good)
	}
}

func progressBar(buf *render.Canvas, y, w int, frac float64, full, empty tcell.Style) {
	filled := int(frac * float64(w))
	for x := 0; x < w; x++ {
		if x < filled {
			buf.Set(x, y, '█', full)
		} else {
			buf.Set(x, y, '░', empty)
		}
	}
}

const meterWidth = 20

func voiceMeter(buf *render.Canvas, y int, level float64, zone string, bar tcell.Style, pal *render.Palette) {
	n := min(int(level*meterWidth+0.5), meterWidth)
	meter := "MIC [" + strings.Repeat("|", n) + strings.Repeat(" ", meterWidth-n) + "] " + strings.ToUpper(zone)
	buf.Text(1, y, meter, bar.Foreground(pal.Accent))
}
