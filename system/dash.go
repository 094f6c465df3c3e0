package system

import (
	"time"

	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/engine"
)

// DashSystem counts the dash and cooldown timers down before collision runs
type DashSystem struct{}

func NewDashSystem() engine.System { return &DashSystem{} }

func (sys *DashSystem) Name() string { return "dash" }

func (sys *DashSystem) Priority() int { return constant.PriorityDash }

func (sys *DashSystem) Update(s *engine.Session, dt time.Duration) {
	s.Dash.Update(dt)
}
