package system

import (
	"time"

	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/engine"
)

// EffectSystem ages particles, popups and screen shake
type EffectSystem struct{}

func NewEffectSystem() engine.System { return &EffectSystem{} }

func (sys *EffectSystem) Name() string { return "effect" }

func (sys *EffectSystem) Priority() int { return constant.PriorityEffect }

func (sys *EffectSystem) Update(s *engine.Session, dt time.Duration) {
	s.AdvanceCosmetics(dt)
}
