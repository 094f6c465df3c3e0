package engine

import (
	"time"

	"github.com/lixenwraith/laaame/component"
	"github.com/lixenwraith/laaame/dash"
	"github.com/lixenwraith/laaame/lane"
	"github.com/lixenwraith/laaame/mic"
)

// Snapshot is the read-only view handed to the renderer each frame
// Slices are reused across calls; a renderer must not retain them
type Snapshot struct {
	Phase       Phase
	LoadPercent float64
	AssetsOK    bool

	Tier     string
	Label    string
	Target   int
	Score    float64
	Progress float64
	Speed    float64
	Elapsed  time.Duration
	Deaths   int
	Best     int

	Width, Height float64
	Layout        lane.Layout

	Player       component.Player
	Obstacles    []component.Obstacle
	Projectiles  []component.Projectile
	Collectibles []component.Collectible
	Particles    []component.Particle
	Popups       []component.ScorePopup

	Dash         dash.State
	DashReady    bool
	DashCooldown time.Duration
	DashLeft     time.Duration
	DashCharge   float64

	Phrase        string
	PhraseVisible bool

	Voice    bool
	Fallback string
	MicLevel float64
	Zone     mic.Zone

	PhoneHold time.Duration
	Shake     float64

	Outcome    Outcome
	HasOutcome bool
}

// Snapshot fills dst from the current state
func (g *Game) Snapshot(dst *Snapshot) {
	s := g.s

	dst.Phase = g.phase
	dst.LoadPercent = g.assets.fraction()
	dst.AssetsOK = !g.assets.missing

	dst.Tier = s.Tier.Name
	dst.Label = s.Tier.Label
	dst.Target = s.Tier.Target
	dst.Score = s.Score
	dst.Progress = s.Progress()
	dst.Speed = s.Speed
	dst.Elapsed = s.Elapsed
	dst.Deaths = s.Deaths
	dst.Best = g.progress.Best[s.Tier.Name]

	dst.Width, dst.Height = s.Width, s.Height
	dst.Layout = s.Layout

	dst.Player = s.Player
	dst.Obstacles = append(dst.Obstacles[:0], s.Obstacles...)
	dst.Projectiles = append(dst.Projectiles[:0], s.Projectiles...)
	dst.Collectibles = append(dst.Collectibles[:0], s.Collectibles...)
	dst.Particles = append(dst.Particles[:0], s.Particles...)
	dst.Popups = append(dst.Popups[:0], s.Popups...)

	dst.Dash = s.Dash.State()
	dst.DashReady = s.Dash.Ready()
	dst.DashCooldown = s.Dash.CooldownRemaining()
	dst.DashLeft = s.Dash.DashRemaining()
	dst.DashCharge = s.Dash.Charge()

	dst.Phrase, dst.PhraseVisible = s.Narrator.Text()

	dst.Voice = s.Voice
	dst.Fallback = g.ctl.reason
	dst.MicLevel = s.Conditioner.Level()
	dst.Zone = s.Classifier.Zone()

	dst.PhoneHold = s.PhoneHold
	dst.Shake = s.ShakeLevel()

	dst.Outcome, dst.HasOutcome = g.outcome, g.hasOutcome
}
