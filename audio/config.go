package audio

import "github.com/lixenwraith/laaame/event"

// AudioConfig holds the mixer levels; volumes are 0.0 to 1.0 before the master gain
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	MusicVolume   float64
	EffectVolumes map[event.Sound]float64
	SampleRate    int
}

// DefaultAudioConfig returns the default levels
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		MusicVolume:  0.35,
		EffectVolumes: map[event.Sound]float64{
			event.SoundCaseFile: 0.5,
			event.SoundHammer:   0.5,
			event.SoundGun:      0.5,
			event.SoundPickup:   0.6,
			event.SoundDash:     0.4,
		},
		SampleRate: 44100,
	}
}

// effectGain returns the final gain of one cue
func (c *AudioConfig) effectGain(snd event.Sound) float64 {
	return c.EffectVolumes[snd] * c.MasterVolume
}

func (c *AudioConfig) musicGain() float64 {
	return c.MusicVolume * c.MasterVolume
}
