package engine

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/laaame/component"
	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/dash"
	"github.com/lixenwraith/laaame/difficulty"
	"github.com/lixenwraith/laaame/event"
	"github.com/lixenwraith/laaame/lane"
	"github.com/lixenwraith/laaame/mic"
	"github.com/lixenwraith/laaame/narration"
	"github.com/lixenwraith/laaame/vmath"
)

// Session is the single owner of all run state
// Systems receive it by pointer once per tick and are the only mutators while running
type Session struct {
	Tier  difficulty.Tier
	RunID uuid.UUID
	Frame int64

	Elapsed   time.Duration
	Speed     float64
	Score     float64
	PrevScore int // floor(Score) before this tick's accrual
	Deaths    int // Persists across runs for the whole session

	Width, Height float64
	Layout        lane.Layout

	Player       component.Player
	Obstacles    []component.Obstacle
	Projectiles  []component.Projectile
	Collectibles []component.Collectible
	Particles    []component.Particle
	Popups       []component.ScorePopup

	// Countdowns, decremented by their owning system
	SpawnIn    time.Duration
	PhoneHold  time.Duration
	Shake      time.Duration
	ShakePower float64
	WinIn      time.Duration // Pending typed-phrase win, zero when none

	Scheduler   *difficulty.Scheduler
	Dash        *dash.Controller
	Lanes       *lane.Controller
	Narrator    *narration.Narrator
	Typed       narration.TypedBuffer
	Conditioner *mic.Conditioner
	Classifier  *mic.Classifier

	// Voice is true while an amplitude source is attached
	// Samples holds the analysis window copied in before the systems run
	Voice   bool
	Samples []float32

	Rand     *vmath.FastRand // Gameplay draws: spawns, jitter, shoot timers, narration
	Cosmetic *vmath.FastRand // Particle draws, kept off the gameplay stream

	Log zerolog.Logger

	ending  Phase // PhaseWon or PhaseLost once a system ends the run
	effects []event.GameEvent
}

func newSession(seed uint64, log zerolog.Logger) *Session {
	rng := vmath.NewFastRand(seed)
	s := &Session{
		Width:       constant.FieldWidth,
		Height:      constant.FieldHeight,
		Layout:      lane.NewLayout(constant.FieldHeight),
		Dash:        dash.NewController(),
		Conditioner: mic.NewConditioner(),
		Classifier:  mic.NewClassifier(mic.DefaultThresholds()),
		Samples:     make([]float32, constant.MicBufferSize),
		Rand:        rng,
		Cosmetic:    rng.Split(),
		Log:         log,
	}
	s.Lanes = lane.NewController(s.Layout)
	s.Narrator = narration.NewNarrator(s.Rand)
	s.placePlayer()
	return s
}

// reset prepares a fresh run of tier; Deaths and the random streams carry over
func (s *Session) reset(tier difficulty.Tier) {
	s.Tier = tier
	s.RunID = uuid.New()
	s.Frame = 0
	s.Elapsed = 0
	s.Speed = tier.SpeedBase
	s.Score = 0
	s.PrevScore = 0

	s.Obstacles = s.Obstacles[:0]
	s.Projectiles = s.Projectiles[:0]
	s.Collectibles = s.Collectibles[:0]
	s.Particles = s.Particles[:0]
	s.Popups = s.Popups[:0]

	s.SpawnIn = 0
	s.PhoneHold = 0
	s.Shake = 0
	s.ShakePower = 0
	s.WinIn = 0

	s.Scheduler = difficulty.NewScheduler(tier, s.Rand)
	s.Dash.Reset()
	s.Lanes.Reset(constant.CenterLane)
	s.Narrator.Reset()
	s.Typed.Reset()
	s.ResetMic()

	s.placePlayer()

	s.ending = PhaseRunning
}

// placePlayer parks the player at rest on the lane the controller holds
func (s *Session) placePlayer() {
	l := s.Lanes.Lane()
	y := s.Layout.Center(l)
	s.Player = component.Player{
		Lane:    l,
		X:       constant.PlayerX,
		Y:       y,
		TargetY: y,
		W:       constant.PlayerWidth,
		H:       constant.PlayerHeight,
	}
}

// ResetMic returns the voice pipeline to silence at the center zone
func (s *Session) ResetMic() {
	s.Conditioner.Reset()
	s.Classifier.Reset()
	s.Lanes.Reset(s.Lanes.Lane())
	clear(s.Samples)
}

// Emit queues an effect notification for the frontend
func (s *Session) Emit(t event.EventType, payload any) {
	s.effects = append(s.effects, event.GameEvent{Type: t, Payload: payload, Frame: s.Frame})
}

// PlaySound queues a one-shot cue
func (s *Session) PlaySound(snd event.Sound) {
	s.Emit(event.EventSound, snd)
}

// Say shows a phrase subject to the narration cooldown
func (s *Session) Say(text string) {
	if s.Narrator.Show(text) {
		s.Emit(event.EventPhrase, text)
	}
}

// ForceSay shows a phrase bypassing the cooldown
func (s *Session) ForceSay(text string) {
	s.Narrator.Force(text)
	s.Emit(event.EventPhrase, text)
}

// Win signals a won run; the game finalizes it after the current system returns
func (s *Session) Win() {
	if s.ending == PhaseRunning {
		s.ending = PhaseWon
	}
}

// Lose signals a lost run
func (s *Session) Lose() {
	if s.ending == PhaseRunning {
		s.ending = PhaseLost
	}
}

// Ended reports whether a system has signalled a terminal result this tick
func (s *Session) Ended() bool {
	return s.ending != PhaseRunning
}

// FloorScore returns the integer score
func (s *Session) FloorScore() int {
	return int(math.Floor(s.Score))
}

// AddBonus awards a fixed score with a floating popup at (x, y)
func (s *Session) AddBonus(points int, x, y float64, text string) {
	s.Score += float64(points)
	s.Popups = append(s.Popups, component.ScorePopup{X: x, Y: y, Text: text, Life: constant.PopupLifetime})
}

// StepLane applies a keyboard step and retargets the player
func (s *Session) StepLane(dir int) bool {
	if !s.Lanes.Step(dir) {
		return false
	}
	s.syncLane()
	return true
}

// SeekLane applies one voice-driven step toward target, honouring the settle timer
func (s *Session) SeekLane(target int, dt time.Duration) bool {
	if !s.Lanes.Seek(target, dt) {
		return false
	}
	s.syncLane()
	return true
}

func (s *Session) syncLane() {
	s.Player.Lane = s.Lanes.Lane()
	s.Player.TargetY = s.Lanes.TargetY()
}

// ActivateDash starts a dash from ready and bursts trail particles
func (s *Session) ActivateDash() bool {
	if !s.Dash.Activate() {
		return false
	}
	s.emitDashBurst()
	s.PlaySound(event.SoundDash)
	return true
}

// Progress returns score as a fraction of the tier target, capped at 1
func (s *Session) Progress() float64 {
	if s.Tier.Target <= 0 {
		return 0
	}
	return math.Min(1, s.Score/float64(s.Tier.Target))
}
