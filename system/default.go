package system

import "github.com/lixenwraith/laaame/engine"

// Default returns the full per-tick pipeline
func Default() []engine.System {
	return []engine.System{
		NewScoreSystem(),
		NewNarrationSystem(),
		NewDashSystem(),
		NewPlayerSystem(),
		NewVoiceSystem(),
		NewTrailSystem(),
		NewSpawnSystem(),
		NewMotionSystem(),
		NewCollisionSystem(),
		NewEffectSystem(),
	}
}
