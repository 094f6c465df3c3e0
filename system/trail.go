package system

import (
	"time"

	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/engine"
)

const (
	dustChance     = 0.4
	dustChanceDash = 0.8
)

// TrailSystem drops dust behind the runner, denser while dashing
type TrailSystem struct{}

func NewTrailSystem() engine.System { return &TrailSystem{} }

func (sys *TrailSystem) Name() string { return "trail" }

func (sys *TrailSystem) Priority() int { return constant.PriorityTrail }

func (sys *TrailSystem) Update(s *engine.Session, dt time.Duration) {
	chance := dustChance
	if s.Dash.Dashing() {
		chance = dustChanceDash
	}
	if s.Cosmetic.Float64() < chance {
		s.EmitDust()
	}
}
