package component

import (
	"time"

	"github.com/lixenwraith/laaame/vmath"
)

// Player is the single runner entity
type Player struct {
	Lane    int     // Discrete lane index, always within [0, LaneCount)
	X, Y    float64 // Y converges toward TargetY
	TargetY float64 // Center of Lane
	W, H    float64

	// Animation accumulators
	AnimFrame float64
	CoatFlap  float64
}

// Box returns the visual bounds
func (p *Player) Box() vmath.Box {
	return vmath.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Obstacle scrolls from the right edge toward the player
type Obstacle struct {
	Kind    Kind
	Lane    int
	X, Y    float64
	Speed   float64       // Current speed, recomputed every tick from run speed
	ShootIn time.Duration // Countdown to next shot, shooters only
	Hit     bool          // Set only by an actual collision
}

// Box returns the visual bounds from the kind table
func (o *Obstacle) Box() vmath.Box {
	d := Kinds[o.Kind]
	return vmath.Box{X: o.X, Y: o.Y, W: d.Width, H: d.Height}
}

// Projectile is fired by shooting obstacles and keeps its launch speed
type Projectile struct {
	X, Y  float64
	W, H  float64
	Speed float64
}

func (p *Projectile) Box() vmath.Box {
	return vmath.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Collectible is the phone pickup
type Collectible struct {
	Lane int
	X, Y float64
	Bob  float64 // Bob animation phase in seconds
}

// ParticleKind selects the renderer palette for a particle
type ParticleKind uint8

const (
	ParticleDust ParticleKind = iota
	ParticleHit
	ParticleDash
	ParticleSpark
	ParticleConfetti
)

// Particle is purely cosmetic
type Particle struct {
	Kind     ParticleKind
	X, Y     float64
	VX, VY   float64 // Units per 60Hz frame, integrated with UnitsPerSpeed
	Life     time.Duration
	MaxLife  time.Duration
	Size     float64
	Color    uint8 // Palette index within Kind
	Rotation float64
	Spin     float64 // Radians per second, zero for non-rotating particles
}

// ScorePopup is floating bonus text
type ScorePopup struct {
	X, Y float64
	Text string
	Life time.Duration
}
