package system

import (
	"time"

	"github.com/lixenwraith/laaame/component"
	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/engine"
	"github.com/lixenwraith/laaame/event"
)

// MotionSystem scrolls pickups, obstacles and projectiles, runs shooter timers
// and awards the dodge bonus for obstacles leaving the field unhit
type MotionSystem struct{}

func NewMotionSystem() engine.System { return &MotionSystem{} }

func (sys *MotionSystem) Name() string { return "motion" }

func (sys *MotionSystem) Priority() int { return constant.PriorityMotion }

func (sys *MotionSystem) Update(s *engine.Session, dt time.Duration) {
	step := dt.Seconds() * constant.UnitsPerSpeed

	sys.moveCollectibles(s, dt, step)
	sys.moveObstacles(s, dt, step)
	sys.moveProjectiles(s, step)
}

func (sys *MotionSystem) moveCollectibles(s *engine.Session, dt time.Duration, step float64) {
	n := 0
	for i := range s.Collectibles {
		c := s.Collectibles[i]
		c.X -= s.Speed * step
		c.Bob += dt.Seconds()
		if c.X < constant.CollectibleExitX {
			continue
		}
		s.Collectibles[n] = c
		n++
	}
	s.Collectibles = s.Collectibles[:n]
}

func (sys *MotionSystem) moveObstacles(s *engine.Session, dt time.Duration, step float64) {
	n := 0
	for i := range s.Obstacles {
		o := s.Obstacles[i]
		d := o.Kind.Descriptor()
		o.Speed = s.Speed * d.SpeedMult
		o.X -= o.Speed * step

		if d.Shoots && o.X < s.Width-constant.ShootInset {
			o.ShootIn -= dt
			if o.ShootIn <= 0 {
				sys.fire(s, &o)
				o.ShootIn = s.Rand.Duration(constant.ReloadMin, constant.ReloadSpan)
			}
		}

		if o.X < -d.Width {
			if !o.Hit {
				s.AddBonus(constant.DodgeBonus, constant.PlayerX-40, s.Player.Y-30, "+50")
			}
			continue
		}
		s.Obstacles[n] = o
		n++
	}
	s.Obstacles = s.Obstacles[:n]
}

func (sys *MotionSystem) fire(s *engine.Session, o *component.Obstacle) {
	s.Projectiles = append(s.Projectiles, component.Projectile{
		X:     o.X - constant.ProjectileMuzzleOffset,
		Y:     o.Y,
		W:     constant.ProjectileWidth,
		H:     constant.ProjectileHeight,
		Speed: s.Speed * constant.ProjectileSpeedFactor,
	})
	s.PlaySound(event.SoundGun)
}

func (sys *MotionSystem) moveProjectiles(s *engine.Session, step float64) {
	n := 0
	for i := range s.Projectiles {
		p := s.Projectiles[i]
		p.X -= p.Speed * step
		if p.X < constant.ProjectileExitX {
			continue
		}
		s.Projectiles[n] = p
		n++
	}
	s.Projectiles = s.Projectiles[:n]
}
