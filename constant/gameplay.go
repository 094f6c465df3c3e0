package constant

import "time"

// Tick pacing
const (
	// MaxTickDelta bounds a single simulation step after frame drops
	MaxTickDelta = 50 * time.Millisecond

	// FrameInterval is the frontend's target frame period
	FrameInterval = 16 * time.Millisecond

	// AssetLoadTimeout is the bounded wait for optional assets before falling back
	AssetLoadTimeout = 5 * time.Second
)

// Scoring
const (
	// ScorePerSpeedSecond scales speed into score per second
	ScorePerSpeedSecond = 10.0

	// DodgeBonus is awarded when an unhit obstacle leaves the field
	DodgeBonus = 50

	// PickupBonus is awarded for a phone pickup
	PickupBonus = 500

	// PickupChance is the independent per-spawn-cycle probability of a pickup
	PickupChance = 0.04
)

// Dash
const (
	DashDuration = 500 * time.Millisecond
	DashCooldown = 5 * time.Second
)

// Spawn scheduling
const (
	// SpawnJitterMin and SpawnJitterSpan define the multiplicative interval band [0.7, 1.3)
	SpawnJitterMin  = 0.7
	SpawnJitterSpan = 0.6

	// ShootDelayMin and ShootDelaySpan define a new shooter's first timer
	ShootDelayMin  = 1500 * time.Millisecond
	ShootDelaySpan = 1000 * time.Millisecond

	// ReloadMin and ReloadSpan define the timer after each shot
	ReloadMin  = 2000 * time.Millisecond
	ReloadSpan = 1500 * time.Millisecond

	// ProjectileSpeedFactor multiplies current speed for a new projectile
	ProjectileSpeedFactor = 2.5
)

// Cosmetic timers
const (
	PhoneHoldDuration = 1500 * time.Millisecond
	ShakeDuration     = 400 * time.Millisecond
	ShakeIntensity    = 12.0
	PopupLifetime     = 1200 * time.Millisecond
	PopupRiseSpeed    = 35.0

	// ParticleGravity is the per-second downward velocity bias
	ParticleGravity = 4.0
)
