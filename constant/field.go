package constant

// Logical playfield, independent of the renderer's resolution
const (
	// FieldWidth is the horizontal extent of the visible field
	FieldWidth = 1280.0

	// FieldHeight is the vertical extent of the visible field
	FieldHeight = 720.0

	// PlayAreaTop is the y coordinate where the top lane band starts
	PlayAreaTop = 60.0

	// PlayAreaBottomMargin is the gap kept below the bottom lane band
	PlayAreaBottomMargin = 30.0

	// LaneCount is the number of discrete lanes
	LaneCount = 3

	// CenterLane is the lane a run starts in
	CenterLane = 1
)

// Player body
const (
	PlayerX      = 120.0
	PlayerWidth  = 70.0
	PlayerHeight = 90.0

	// PlayerApproachRate is the exponential convergence rate toward the lane center (1/s)
	PlayerApproachRate = 14.0

	// PlayerFlapRate and PlayerFlapRateDash drive the coat animation accumulator
	PlayerFlapRate     = 7.0
	PlayerFlapRateDash = 15.0
)

// Hitbox ratios applied before overlap tests
const (
	PlayerHitboxW = 0.6
	PlayerHitboxH = 0.65

	// PlayerShotHitbox shrinks the player on both axes against projectiles
	PlayerShotHitbox = 0.5

	// ObstacleHitbox shrinks obstacles on both axes
	ObstacleHitbox = 0.75
)

// Entity dimensions and exit edges
const (
	ProjectileWidth  = 12.0
	ProjectileHeight = 4.0

	// ProjectileMuzzleOffset is how far ahead of the obstacle center a shot spawns
	ProjectileMuzzleOffset = 10.0

	// ProjectileExitX is the x past which projectiles are discarded
	ProjectileExitX = -20.0

	CollectibleWidth  = 28.0
	CollectibleHeight = 36.0

	// CollectibleSpawnOffset places pickups beyond the right edge
	CollectibleSpawnOffset = 40.0

	// CollectibleExitX is the x past which pickups are discarded
	CollectibleExitX = -40.0

	// ShootInset is how far inside the right edge a shooter must be before its timer runs
	ShootInset = 50.0
)

// UnitsPerSpeed converts a speed value into field units per second (speed is tuned per 60Hz frame)
const UnitsPerSpeed = 60.0
