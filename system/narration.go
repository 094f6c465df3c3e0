package system

import (
	"time"

	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/engine"
	"github.com/lixenwraith/laaame/event"
	"github.com/lixenwraith/laaame/narration"
)

// NarrationSystem fires milestone and idle phrases from the score stream
type NarrationSystem struct{}

func NewNarrationSystem() engine.System { return &NarrationSystem{} }

func (sys *NarrationSystem) Name() string { return "narration" }

func (sys *NarrationSystem) Priority() int { return constant.PriorityNarration }

func (sys *NarrationSystem) Update(s *engine.Session, dt time.Duration) {
	ctx := narration.Context{Deaths: s.Deaths, Speed: s.Speed}
	if phrase, ok := s.Narrator.Update(s.PrevScore, s.FloorScore(), ctx, dt); ok {
		s.Emit(event.EventPhrase, phrase)
	}
}
