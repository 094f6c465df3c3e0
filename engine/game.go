package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/core"
	"github.com/lixenwraith/laaame/difficulty"
	"github.com/lixenwraith/laaame/event"
	"github.com/lixenwraith/laaame/mic"
	"github.com/lixenwraith/laaame/narration"
	"github.com/lixenwraith/laaame/status"
)

var (
	ErrNotReady = errors.New("assets still loading")
	ErrLocked   = errors.New("tier locked")
)

// Game drives the run state machine and owns the session
// All methods must be called from the frame loop goroutine
type Game struct {
	log      zerolog.Logger
	store    Store
	reg      *status.Registry
	tiers    difficulty.Table
	systems  []System
	progress Progress

	phase  Phase
	assets assetWait
	ctl    control
	s      *Session

	outcome    Outcome
	hasOutcome bool
}

type Option func(*gameConfig)

type gameConfig struct {
	log     zerolog.Logger
	store   Store
	reg     *status.Registry
	tiers   difficulty.Table
	systems []System
	assets  AssetReadiness
	opener  CaptureOpener
	seed    uint64
	zones   *mic.Thresholds
}

func WithLogger(l zerolog.Logger) Option { return func(c *gameConfig) { c.log = l } }

func WithStore(st Store) Option { return func(c *gameConfig) { c.store = st } }

// WithRegistry publishes per-tick values for other goroutines
func WithRegistry(r *status.Registry) Option { return func(c *gameConfig) { c.reg = r } }

func WithTiers(t difficulty.Table) Option { return func(c *gameConfig) { c.tiers = t } }

func WithSystems(sys ...System) Option {
	return func(c *gameConfig) { c.systems = append(c.systems, sys...) }
}

// WithAssets starts the game in loading until a is ready or the bounded wait expires
func WithAssets(a AssetReadiness) Option { return func(c *gameConfig) { c.assets = a } }

func WithCaptureOpener(op CaptureOpener) Option { return func(c *gameConfig) { c.opener = op } }

// WithThresholds replaces the zone bands; invalid bands are logged and the defaults kept
func WithThresholds(t mic.Thresholds) Option { return func(c *gameConfig) { c.zones = &t } }

// WithSeed fixes every random draw; zero picks a time-based seed
func WithSeed(seed uint64) Option { return func(c *gameConfig) { c.seed = seed } }

func NewGame(opts ...Option) *Game {
	cfg := gameConfig{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.tiers) == 0 {
		cfg.tiers = difficulty.DefaultTiers()
	}
	if cfg.seed == 0 {
		cfg.seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		log:     cfg.log,
		store:   cfg.store,
		reg:     cfg.reg,
		tiers:   cfg.tiers,
		systems: cfg.systems,
		assets:  newAssetWait(cfg.assets),
		ctl:     control{open: cfg.opener},
		s:       newSession(cfg.seed, cfg.log),
	}
	sortSystems(g.systems)

	if cfg.zones != nil {
		if err := cfg.zones.Validate(); err != nil {
			g.log.Warn().Err(err).Msg("zone thresholds rejected, using defaults")
		} else {
			g.s.Classifier.Thresholds = *cfg.zones
		}
	}

	progress, err := LoadProgress(cfg.store, cfg.tiers)
	if err != nil {
		g.log.Warn().Err(err).Msg("progress load failed, using defaults")
	}
	g.progress = progress

	g.phase = PhaseLoading
	if cfg.assets == nil {
		g.phase = PhaseReady
	}
	g.log.Debug().Uint64("seed", cfg.seed).Stringer("phase", g.phase).Msg("game created")
	return g
}

func (g *Game) Phase() Phase { return g.phase }

// Session exposes the run state for systems wiring and tests
func (g *Game) Session() *Session { return g.s }

func (g *Game) Tiers() difficulty.Table { return g.tiers }

// Progress returns a copy of the persisted unlocks and bests
func (g *Game) Progress() Progress {
	p := Progress{
		Unlocked: append([]string(nil), g.progress.Unlocked...),
		Best:     make(map[string]int, len(g.progress.Best)),
	}
	for k, v := range g.progress.Best {
		p.Best[k] = v
	}
	return p
}

// AssetsMissing reports whether loading gave up waiting
func (g *Game) AssetsMissing() bool { return g.assets.missing }

// Outcome returns the terminal report of the last finished run
func (g *Game) Outcome() (Outcome, bool) { return g.outcome, g.hasOutcome }

// Effects drains the notifications emitted since the previous call
func (g *Game) Effects() []event.GameEvent {
	if len(g.s.effects) == 0 {
		return nil
	}
	out := g.s.effects
	g.s.effects = nil
	return out
}

func (g *Game) setPhase(p Phase) {
	if p == g.phase {
		return
	}
	if !CanTransition(g.phase, p) {
		core.Contract(g.log, false, fmt.Sprintf("phase %s to %s", g.phase, p))
		return
	}
	g.log.Debug().Stringer("from", g.phase).Stringer("to", p).Msg("phase")
	g.phase = p
}

// Tick advances the game by dt, clamped to MaxTickDelta
// Never blocks: asset readiness is polled and capture is copied from its latest window
func (g *Game) Tick(dt time.Duration) {
	dt = ClampDelta(dt)

	switch g.phase {
	case PhaseLoading:
		if g.assets.poll(dt) {
			if g.assets.missing {
				g.log.Warn().Dur("waited", g.assets.waited).Msg("assets not ready, continuing with defaults")
			}
			g.setPhase(PhaseReady)
		}

	case PhaseRunning:
		s := g.s
		s.Frame++
		g.readCapture()
		for _, sys := range g.systems {
			sys.Update(s, dt)
			if s.Ended() {
				break
			}
		}
		if s.Ended() {
			g.finish()
		}
		g.publish()

	case PhaseWon, PhaseLost:
		g.s.AdvanceCosmetics(dt)
	}
}

// Start begins a run of the named tier
// Valid from ready, won and lost; an active run is discarded first
func (g *Game) Start(name string) error {
	tier, err := g.tiers.Lookup(name)
	if !core.Contract(g.log, err == nil, "start unknown tier "+name) {
		return err
	}
	if g.phase == PhaseLoading {
		return ErrNotReady
	}
	if !g.progress.IsUnlocked(name) {
		return fmt.Errorf("%w: %s", ErrLocked, name)
	}
	if g.phase == PhaseRunning || g.phase == PhasePaused {
		g.Discard()
	}

	g.s.reset(tier)
	g.hasOutcome = false

	if g.ctl.want == ModeVoice && g.ctl.source == nil {
		if err := g.acquireCapture(); err == nil {
			g.s.Emit(event.EventControlMode, true)
		} else {
			g.s.Emit(event.EventControlMode, false)
		}
		g.publishControl()
	}
	g.s.Voice = g.ctl.source != nil

	g.setPhase(PhaseRunning)
	g.s.Emit(event.EventMusicStart, nil)
	g.log.Info().
		Str("run", g.s.RunID.String()).
		Str("tier", tier.Name).
		Stringer("control", g.ControlMode()).
		Int("deaths", g.s.Deaths).
		Msg("run started")
	return nil
}

// Retry restarts the current tier after a terminal result
func (g *Game) Retry() error {
	if !g.phase.Terminal() {
		return nil
	}
	return g.Start(g.s.Tier.Name)
}

// Pause freezes every run timer; capture stays open
func (g *Game) Pause() {
	if g.phase != PhaseRunning {
		return
	}
	g.setPhase(PhasePaused)
	g.s.Emit(event.EventMusicPause, nil)
}

func (g *Game) Resume() {
	if g.phase != PhasePaused {
		return
	}
	g.setPhase(PhaseRunning)
	g.s.Emit(event.EventMusicResume, nil)
}

// Discard leaves the run for the menu and releases capture
// The voice preference is kept and capture is reacquired by the next Start
func (g *Game) Discard() {
	switch g.phase {
	case PhaseRunning, PhasePaused:
		g.s.Emit(event.EventMusicStop, nil)
	case PhaseWon, PhaseLost:
	default:
		return
	}
	g.releaseCapture()
	g.s.ResetMic()
	g.s.Narrator.Hide()
	g.publishControl()
	g.setPhase(PhaseReady)
}

// Close releases capture; the game must not be ticked afterwards
func (g *Game) Close() {
	g.releaseCapture()
}

// Handle applies one input intent and reports whether it was consumed
func (g *Game) Handle(ev event.GameEvent) bool {
	s := g.s
	running := g.phase == PhaseRunning

	switch ev.Type {
	case event.EventLaneUp:
		if running {
			s.StepLane(-1)
		}
	case event.EventLaneDown:
		if running {
			s.StepLane(1)
		}
	case event.EventDash:
		if running {
			s.ActivateDash()
		}
	case event.EventPause:
		if g.phase == PhasePaused {
			g.Resume()
		} else {
			g.Pause()
		}
	case event.EventResume:
		g.Resume()
	case event.EventRetry:
		if err := g.Retry(); err != nil {
			g.log.Warn().Err(err).Msg("retry failed")
		}
	case event.EventMenu:
		g.Discard()
	case event.EventToggleVoice:
		next := ModeVoice
		if g.ctl.want == ModeVoice {
			next = ModeKeyboard
		}
		if err := g.SetControlMode(next); err != nil {
			g.log.Debug().Err(err).Msg("voice toggle fell back")
		}
	case event.EventTyped:
		r, ok := ev.Payload.(rune)
		if running && ok && s.WinIn == 0 && s.Typed.Feed(r) {
			s.ForceSay(narration.TypedPhrase)
			s.WinIn = constant.TypedWinDelay
		}
	default:
		return false
	}
	return true
}

// finish applies the terminal transition signalled by a system
func (g *Game) finish() {
	s := g.s
	out := Outcome{RunID: s.RunID, Tier: s.Tier.Name}

	if s.ending == PhaseWon {
		out.Result = ResultWon
		s.Score = float64(s.Tier.Target)
		s.EmitConfetti(s.Width/2, s.Height/2, 60)
		if next, ok := g.tiers.Next(s.Tier.Name); ok {
			if g.progress.Unlock(next) {
				out.Unlocked = next
				if err := saveUnlocked(g.store, g.progress); err != nil {
					g.log.Error().Err(err).Msg("persist unlock failed")
				}
			}
		} else {
			out.Final = true
		}
	} else {
		out.Result = ResultLost
		s.Deaths++
		s.Shake = constant.ShakeDuration
		s.ShakePower = constant.ShakeIntensity
		s.Narrator.Hide()
	}

	out.Score = s.FloorScore()
	if g.progress.Record(s.Tier.Name, out.Score) {
		out.NewBest = true
		if err := saveBest(g.store, g.progress); err != nil {
			g.log.Error().Err(err).Msg("persist best score failed")
		}
	}
	out.Best = g.progress.Best[s.Tier.Name]
	out.Deaths = s.Deaths

	g.outcome = out
	g.hasOutcome = true
	s.Emit(event.EventMusicStop, nil)
	s.Emit(event.EventOutcome, out)
	g.setPhase(s.ending)

	g.log.Info().
		Str("run", out.RunID.String()).
		Str("tier", out.Tier).
		Stringer("result", out.Result).
		Int("score", out.Score).
		Bool("new_best", out.NewBest).
		Str("unlocked", out.Unlocked).
		Dur("elapsed", s.Elapsed).
		Msg("run finished")
}

func (g *Game) publish() {
	if g.reg == nil {
		return
	}
	s := g.s
	g.reg.Ints.Get(status.KeyFrame).Store(s.Frame)
	g.reg.Floats.Get(status.KeyScore).Set(s.Score)
	g.reg.Floats.Get(status.KeySpeed).Set(s.Speed)
	g.reg.Floats.Get(status.KeyMicLevel).Set(s.Conditioner.Level())
	g.reg.Floats.Get(status.KeyMicRaw).Set(s.Conditioner.Raw())
	g.reg.Floats.Get(status.KeyLaneSettle).Set(float64(s.Lanes.SettleRemaining()) / float64(time.Millisecond))
	g.reg.Floats.Get(status.KeyNextIdle).Set(s.Narrator.IdleRemaining().Seconds())
}
