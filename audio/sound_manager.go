// Package audio plays procedural cues and the in-run music loop through beep
// Every operation is a no-op until Initialize succeeds; the game never depends on sound
package audio

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/laaame/core"
	"github.com/lixenwraith/laaame/event"
)

var (
	ErrNoAudioBackend = errors.New("no audio output available")
	ErrDisabled       = errors.New("audio disabled by configuration")
)

// MusicState tracks the music loop independently of device availability
type MusicState uint8

const (
	MusicStopped MusicState = iota
	MusicPlaying
	MusicPaused
)

func (s MusicState) String() string {
	switch s {
	case MusicPlaying:
		return "playing"
	case MusicPaused:
		return "paused"
	default:
		return "stopped"
	}
}

// SoundManager manages all game audio
type SoundManager struct {
	cfg   *AudioConfig
	log   zerolog.Logger
	cache *soundCache

	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicState  MusicState
	trackIndex  int
	initialized bool

	muted atomic.Bool
	plays atomic.Int64
}

// NewSoundManager creates a sound manager; pass nil for the default levels
func NewSoundManager(cfg *AudioConfig, log zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		log:   log,
		cache: newSoundCache(beep.SampleRate(cfg.SampleRate)),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the output device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoAudioBackend, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Preload renders every buffer in the background; Ready reports completion
func (sm *SoundManager) Preload() {
	core.Go(func() {
		start := time.Now()
		sm.cache.render()
		sm.log.Debug().Dur("took", time.Since(start)).Msg("audio buffers rendered")
	})
}

// Ready reports whether every cue and track is rendered
func (sm *SoundManager) Ready() bool { return sm.cache.ready.Load() }

// Plays returns the number of cues queued, for status display
func (sm *SoundManager) Plays() int64 { return sm.plays.Load() }

// locked runs fn holding both the manager and speaker locks; fn is skipped without a device
func (sm *SoundManager) locked(fn func()) {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}

// Play queues one cue
func (sm *SoundManager) Play(snd event.Sound) {
	if sm.muted.Load() {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	s := sm.cache.effect(snd)
	if s == nil {
		return
	}
	sm.locked(func() {
		sm.mixer.Add(newVolume(s, sm.cfg.effectGain(snd)))
		sm.plays.Add(1)
	})
}

// StartMusic begins a randomly chosen run track from its start
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.trackIndex = rand.Intn(len(gameTracks))
	sm.musicState = MusicPlaying
	sm.locked(sm.attachMusic)
}

// attachMusic replaces the music streamer; caller holds the speaker lock
func (sm *SoundManager) attachMusic() {
	if sm.music != nil {
		sm.music.Streamer = nil
		sm.music.Paused = true
	}
	loop := sm.cache.track(sm.trackIndex)
	if loop == nil {
		sm.music = nil
		return
	}
	sm.music = &beep.Ctrl{Streamer: newVolume(loop, sm.cfg.musicGain()), Paused: sm.muted.Load()}
	sm.mixer.Add(sm.music)
}

func (sm *SoundManager) PauseMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.musicState != MusicPlaying {
		return
	}
	sm.musicState = MusicPaused
	sm.locked(func() {
		if sm.music != nil {
			sm.music.Paused = true
		}
	})
}

func (sm *SoundManager) ResumeMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.musicState != MusicPaused {
		return
	}
	sm.musicState = MusicPlaying
	sm.locked(func() {
		if sm.music != nil {
			sm.music.Paused = sm.muted.Load()
		}
	})
}

func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicState = MusicStopped
	sm.locked(func() {
		if sm.music != nil {
			sm.music.Streamer = nil
			sm.music.Paused = true
			sm.music = nil
		}
	})
}

// MusicState returns the logical music state
func (sm *SoundManager) MusicState() MusicState {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicState
}

// ToggleMute flips mute for cues and music and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	sm.locked(func() {
		if sm.music != nil {
			sm.music.Paused = muted || sm.musicState != MusicPlaying
		}
	})
	return muted
}

func (sm *SoundManager) Muted() bool { return sm.muted.Load() }

// Handle consumes the audio effect events emitted by the game
func (sm *SoundManager) Handle(ev event.GameEvent) bool {
	switch ev.Type {
	case event.EventSound:
		if snd, ok := ev.Payload.(event.Sound); ok {
			sm.Play(snd)
		}
	case event.EventMusicStart:
		sm.StartMusic()
	case event.EventMusicPause:
		sm.PauseMusic()
	case event.EventMusicResume:
		sm.ResumeMusic()
	case event.EventMusicStop:
		sm.StopMusic()
	default:
		return false
	}
	return true
}

// Cleanup stops all sounds; the speaker has no close so the mixer is emptied
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicState = MusicStopped
	sm.locked(func() {
		sm.music = nil
		sm.mixer.Clear()
	})
	sm.initialized = false
}
