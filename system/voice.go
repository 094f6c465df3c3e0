package system

import (
	"time"

	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/engine"
)

// VoiceSystem turns the tick's capture window into at most one lane step
// Idle in keyboard mode
type VoiceSystem struct{}

func NewVoiceSystem() engine.System { return &VoiceSystem{} }

func (sys *VoiceSystem) Name() string { return "voice" }

func (sys *VoiceSystem) Priority() int { return constant.PriorityVoice }

func (sys *VoiceSystem) Update(s *engine.Session, dt time.Duration) {
	if !s.Voice {
		return
	}
	level := s.Conditioner.Process(s.Samples)
	zone := s.Classifier.Update(level, dt)
	s.SeekLane(zone.Lane(), dt)
}
