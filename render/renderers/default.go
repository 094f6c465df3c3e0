package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/laaame/render"
	"github.com/lixenwraith/laaame/status"
)

// NewDefaultOrchestrator registers every layer at its priority
// The returned debug renderer is toggled by the frontend on EventToggleDebug
func NewDefaultOrchestrator(screen tcell.Screen, reg *status.Registry, debug bool) (*render.RenderOrchestrator, *DebugRenderer) {
	o := render.NewRenderOrchestrator(screen)
	dbg := NewDebugRenderer(reg, debug)

	o.Register(NewBackgroundRenderer(), render.PriorityBackground)
	o.Register(NewLaneRenderer(), render.PriorityLanes)
	o.Register(NewCollectibleRenderer(), render.PriorityCollectible)
	o.Register(NewObstacleRenderer(), render.PriorityObstacle)
	o.Register(NewProjectileRenderer(), render.PriorityProjectile)
	o.Register(NewPlayerRenderer(), render.PriorityPlayer)
	o.Register(NewParticleRenderer(), render.PriorityParticle)
	o.Register(NewPopupRenderer(), render.PriorityPopup)
	o.Register(NewPhraseRenderer(), render.PriorityPopup)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
	o.Register(dbg, render.PriorityDebug)
	return o, dbg
}
