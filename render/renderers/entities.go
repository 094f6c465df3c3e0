package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/laaame/component"
	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/dash"
	"github.com/lixenwraith/laaame/render"
	"github.com/lixenwraith/laaame/vmath"
)

// kindGlyphs is indexed by component.Kind
var kindGlyphs = [component.KindCount]rune{
	component.KindCaseFiles: '▤',
	component.KindHammer:    '▼',
	component.KindGun:       '╤',
}

func kindColor(p *render.Palette, k component.Kind) tcell.Color {
	switch k {
	case component.KindHammer:
		return p.Hammer
	case component.KindGun:
		return p.Gun
	default:
		return p.CaseFiles
	}
}

// fillBox paints a field box clipped to the play area
func fillBox(ctx render.RenderContext, buf *render.Canvas, b vmath.Box, r rune, style tcell.Style) {
	x0, y0, x1, y1 := ctx.View.Rect(b)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if ctx.View.Contains(x, y) {
				buf.Set(x, y, r, style)
			}
		}
	}
}

// bobOffset is the vertical float of a pickup at bob phase t
func bobOffset(t float64) float64 {
	return math.Sin(t*3) * 5
}

// CollectibleRenderer draws phone pickups with their bob offset
type CollectibleRenderer struct{}

func NewCollectibleRenderer() *CollectibleRenderer { return &CollectibleRenderer{} }

// Render implements SystemRenderer
func (c *CollectibleRenderer) Render(ctx render.RenderContext, buf *render.Canvas) {
	style := ctx.Palette.Style(ctx.Palette.Phone).Bold(true)
	for i := range ctx.Snap.Collectibles {
		item := &ctx.Snap.Collectibles[i]
		y := item.Y + bobOffset(item.Bob)
		fillBox(ctx, buf, vmath.Box{X: item.X, Y: y, W: constant.CollectibleWidth, H: constant.CollectibleHeight}, '▯', style)
	}
}

// ObstacleRenderer draws each obstacle as a block of its kind glyph
type ObstacleRenderer struct{}

func NewObstacleRenderer() *ObstacleRenderer { return &ObstacleRenderer{} }

// Render implements SystemRenderer
func (o *ObstacleRenderer) Render(ctx render.RenderContext, buf *render.Canvas) {
	for i := range ctx.Snap.Obstacles {
		ob := &ctx.Snap.Obstacles[i]
		if !ob.Kind.Valid() {
			continue
		}
		style := ctx.Palette.Style(kindColor(ctx.Palette, ob.Kind))
		if ob.Hit {
			style = style.Foreground(ctx.Palette.Danger).Bold(true)
		}
		fillBox(ctx, buf, ob.Box(), kindGlyphs[ob.Kind], style)
	}
}

// ProjectileRenderer draws bullets
type ProjectileRenderer struct{}

func NewProjectileRenderer() *ProjectileRenderer { return &ProjectileRenderer{} }

// Render implements SystemRenderer
func (p *ProjectileRenderer) Render(ctx render.RenderContext, buf *render.Canvas) {
	style := ctx.Palette.Style(ctx.Palette.Bullet).Bold(true)
	for i := range ctx.Snap.Projectiles {
		pr := &ctx.Snap.Projectiles[i]
		cx, cy := ctx.View.Cell(pr.X, pr.Y)
		if ctx.View.Contains(cx, cy) {
			buf.Set(cx, cy, '◄', style)
		}
	}
}

// PlayerRenderer draws the runner: head row, coat body, phone while held
type PlayerRenderer struct{}

func NewPlayerRenderer() *PlayerRenderer { return &PlayerRenderer{} }

// Render implements SystemRenderer
func (p *PlayerRenderer) Render(ctx render.RenderContext, buf *render.Canvas) {
	pl := &ctx.Snap.Player
	pal := ctx.Palette
	x0, y0, x1, y1 := ctx.View.Rect(pl.Box())

	coat := pal.Style(pal.PlayerCoat)
	head := pal.Style(pal.Player).Bold(true)
	if ctx.Snap.Dash == dash.StateDashing {
		coat = coat.Foreground(pal.DashGlow).Bold(true)
		head = head.Foreground(pal.DashGlow)
	}

	// Coat flaps between two glyphs
	body := '█'
	if int(pl.CoatFlap)%2 == 1 {
		body = '▓'
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !ctx.View.Contains(x, y) {
				continue
			}
			if y == y0 {
				buf.Set(x, y, '●', head)
			} else {
				buf.Set(x, y, body, coat)
			}
		}
	}

	if ctx.Snap.PhoneHold > 0 {
		buf.Set(x1, y0, '☎', pal.Style(pal.Phone).Bold(true))
	}
}
