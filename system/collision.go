package system

import (
	"time"

	"github.com/lixenwraith/laaame/component"
	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/engine"
	"github.com/lixenwraith/laaame/event"
	"github.com/lixenwraith/laaame/narration"
	"github.com/lixenwraith/laaame/vmath"
)

// kindSounds maps an obstacle kind to its impact cue
var kindSounds = [component.KindCount]event.Sound{
	component.KindCaseFiles: event.SoundCaseFile,
	component.KindHammer:    event.SoundHammer,
	component.KindGun:       event.SoundGun,
}

// CollisionSystem resolves pickups, then obstacle and projectile hits
// Hazards are skipped entirely while a dash is active
type CollisionSystem struct{}

func NewCollisionSystem() engine.System { return &CollisionSystem{} }

func (sys *CollisionSystem) Name() string { return "collision" }

func (sys *CollisionSystem) Priority() int { return constant.PriorityCollision }

func (sys *CollisionSystem) Update(s *engine.Session, dt time.Duration) {
	p := &s.Player
	body := p.Box().Scaled(constant.PlayerHitboxW, constant.PlayerHitboxH)

	n := 0
	for i := range s.Collectibles {
		c := s.Collectibles[i]
		box := vmath.Box{X: c.X, Y: c.Y, W: constant.CollectibleWidth, H: constant.CollectibleHeight}
		if vmath.Overlap(body, box) {
			sys.collect(s, c)
			continue
		}
		s.Collectibles[n] = c
		n++
	}
	s.Collectibles = s.Collectibles[:n]

	if s.Dash.Dashing() {
		return
	}

	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		if o.Hit {
			continue
		}
		if vmath.Overlap(body, o.Box().Scaled(constant.ObstacleHitbox, constant.ObstacleHitbox)) {
			o.Hit = true
			s.EmitHit(p.X, p.Y, 15)
			s.PlaySound(kindSounds[o.Kind])
			s.Lose()
			return
		}
	}

	shot := p.Box().Scaled(constant.PlayerShotHitbox, constant.PlayerShotHitbox)
	for i := range s.Projectiles {
		if vmath.Overlap(shot, s.Projectiles[i].Box()) {
			s.EmitHit(p.X, p.Y, 10)
			s.PlaySound(event.SoundGun)
			s.Projectiles = append(s.Projectiles[:i], s.Projectiles[i+1:]...)
			s.Lose()
			return
		}
	}
}

func (sys *CollisionSystem) collect(s *engine.Session, c component.Collectible) {
	s.AddBonus(constant.PickupBonus, c.X, c.Y-20, "+500")
	s.ForceSay(narration.PickupPhrase)
	s.PhoneHold = constant.PhoneHoldDuration
	s.EmitSparkles(c.X, c.Y, 12)
	s.PlaySound(event.SoundPickup)
}
