package system

import (
	"time"

	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/engine"
	"github.com/lixenwraith/laaame/lane"
)

// PlayerSystem animates the runner and eases it toward its lane center
type PlayerSystem struct{}

func NewPlayerSystem() engine.System { return &PlayerSystem{} }

func (sys *PlayerSystem) Name() string { return "player" }

func (sys *PlayerSystem) Priority() int { return constant.PriorityPlayer }

func (sys *PlayerSystem) Update(s *engine.Session, dt time.Duration) {
	p := &s.Player
	sec := dt.Seconds()

	p.AnimFrame += sec
	flap := constant.PlayerFlapRate
	if s.Dash.Dashing() {
		flap = constant.PlayerFlapRateDash
	}
	p.CoatFlap += sec * flap
	p.Y = lane.Approach(p.Y, p.TargetY, dt)

	if s.PhoneHold > 0 {
		s.PhoneHold -= dt
		if s.PhoneHold < 0 {
			s.PhoneHold = 0
		}
	}
}
