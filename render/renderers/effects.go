package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/laaame/component"
	"github.com/lixenwraith/laaame/render"
)

var confettiGlyphs = [...]rune{'▪', '◆', '▫', '◇'}

// ParticleRenderer draws cosmetic particles, dimmed in the last third of their life
type ParticleRenderer struct{}

func NewParticleRenderer() *ParticleRenderer { return &ParticleRenderer{} }

// Render implements SystemRenderer
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.Canvas) {
	pal := ctx.Palette
	for i := range ctx.Snap.Particles {
		pt := &ctx.Snap.Particles[i]
		cx, cy := ctx.View.Cell(pt.X, pt.Y)
		if !ctx.View.Contains(cx, cy) {
			continue
		}
		glyph, color := particleLook(pal, pt)
		style := pal.Style(color)
		if pt.MaxLife > 0 && pt.Life*3 < pt.MaxLife {
			style = style.Dim(true)
		}
		buf.Set(cx, cy, glyph, style)
	}
}

func particleLook(pal *render.Palette, pt *component.Particle) (rune, tcell.Color) {
	switch pt.Kind {
	case component.ParticleHit:
		return '*', pal.Hit
	case component.ParticleDash:
		return '~', pal.DashGlow
	case component.ParticleSpark:
		return '+', pal.Sparks[int(pt.Color)%len(pal.Sparks)]
	case component.ParticleConfetti:
		g := confettiGlyphs[int(pt.Rotation*2)&(len(confettiGlyphs)-1)]
		return g, pal.Confetti[int(pt.Color)%len(pal.Confetti)]
	default:
		return '·', pal.Dust
	}
}

// PopupRenderer draws floating bonus text centered on its anchor
type PopupRenderer struct{}

func NewPopupRenderer() *PopupRenderer { return &PopupRenderer{} }

// Render implements SystemRenderer
func (r *PopupRenderer) Render(ctx render.RenderContext, buf *render.Canvas) {
	style := ctx.Palette.Style(ctx.Palette.Popup).Bold(true)
	for i := range ctx.Snap.Popups {
		p := &ctx.Snap.Popups[i]
		cx, cy := ctx.View.Cell(p.X, p.Y)
		if !ctx.View.Contains(cx, cy) {
			continue
		}
		buf.Text(cx-runewidth.StringWidth(p.Text)/2, cy, p.Text, style)
	}
}

// PhraseRenderer draws the narration bubble above the player
type PhraseRenderer struct{}

func NewPhraseRenderer() *PhraseRenderer { return &PhraseRenderer{} }

// Render implements SystemRenderer
func (r *PhraseRenderer) Render(ctx render.RenderContext, buf *render.Canvas) {
	if !ctx.Snap.PhraseVisible || ctx.Snap.Phrase == "" {
		return
	}
	pl := &ctx.Snap.Player
	cx, cy := ctx.View.Cell(pl.X, pl.Y-pl.H/2)
	cy--
	if cy < ctx.View.Y {
		cy = ctx.View.Y
	}

	text := "« " + ctx.Snap.Phrase + " »"
	x := cx - runewidth.StringWidth(text)/2
	if x < 0 {
		x = 0
	}
	style := tcell.StyleDefault.Foreground(ctx.Palette.Text).Background(ctx.Palette.LaneLine).Italic(true)
	buf.Text(x, cy, text, style)
}
