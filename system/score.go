// Package system holds the per-tick stages of a run, executed by engine.Game in priority order
package system

import (
	"time"

	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/engine"
)

// ScoreSystem advances elapsed time, speed and score, and checks the win condition first
type ScoreSystem struct{}

func NewScoreSystem() engine.System { return &ScoreSystem{} }

func (sys *ScoreSystem) Name() string { return "score" }

func (sys *ScoreSystem) Priority() int { return constant.PriorityScore }

func (sys *ScoreSystem) Update(s *engine.Session, dt time.Duration) {
	s.Elapsed += dt
	s.Speed = s.Scheduler.Speed(s.Elapsed)

	s.PrevScore = s.FloorScore()
	s.Score += s.Speed * dt.Seconds() * constant.ScorePerSpeedSecond

	if s.Score >= float64(s.Tier.Target) {
		s.Win()
		return
	}

	// Typed phrase win fires after a short running delay
	if s.WinIn > 0 {
		s.WinIn -= dt
		if s.WinIn <= 0 {
			s.WinIn = 0
			s.Win()
		}
	}
}
