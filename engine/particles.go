package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/laaame/component"
	"github.com/lixenwraith/laaame/constant"
)

// Particle palette sizes per kind, matched by the renderer
const (
	ConfettiColors = 6
	SparkColors    = 4
)

func (s *Session) spawnParticle(p component.Particle) {
	s.Particles = append(s.Particles, p)
}

// EmitHit bursts n impact particles at (x, y)
func (s *Session) EmitHit(x, y float64, n int) {
	r := s.Cosmetic
	for i := 0; i < n; i++ {
		s.spawnParticle(component.Particle{
			Kind:    component.ParticleHit,
			X:       x,
			Y:       y,
			VX:      r.Centered(4),
			VY:      r.Centered(4),
			Life:    r.Duration(500*time.Millisecond, 400*time.Millisecond),
			MaxLife: 900 * time.Millisecond,
			Size:    r.Range(3, 5),
		})
	}
}

// EmitConfetti bursts n rotating confetti pieces at (x, y)
func (s *Session) EmitConfetti(x, y float64, n int) {
	r := s.Cosmetic
	for i := 0; i < n; i++ {
		s.spawnParticle(component.Particle{
			Kind:     component.ParticleConfetti,
			X:        x,
			Y:        y,
			VX:       r.Centered(7),
			VY:       r.Centered(7) - 4,
			Life:     r.Duration(1500*time.Millisecond, 1500*time.Millisecond),
			MaxLife:  3 * time.Second,
			Size:     r.Range(4, 7),
			Color:    uint8(r.Intn(ConfettiColors)),
			Rotation: r.Float64() * 2 * math.Pi,
			Spin:     r.Centered(5),
		})
	}
}

// EmitSparkles bursts n pickup sparkles at (x, y)
func (s *Session) EmitSparkles(x, y float64, n int) {
	r := s.Cosmetic
	for i := 0; i < n; i++ {
		s.spawnParticle(component.Particle{
			Kind:    component.ParticleSpark,
			X:       x,
			Y:       y,
			VX:      r.Centered(4),
			VY:      r.Centered(4) - 2,
			Life:    r.Duration(600*time.Millisecond, 400*time.Millisecond),
			MaxLife: time.Second,
			Size:    r.Range(3, 4),
			Color:   uint8(r.Intn(SparkColors)),
		})
	}
}

// EmitDust drops one trail particle behind the player's feet
func (s *Session) EmitDust() {
	r := s.Cosmetic
	p := &s.Player
	s.spawnParticle(component.Particle{
		Kind:    component.ParticleDust,
		X:       p.X - 15,
		Y:       p.Y + p.H/2 - 5,
		VX:      -1 - r.Float64()*2,
		VY:      r.Centered(0.5),
		Life:    r.Duration(300*time.Millisecond, 200*time.Millisecond),
		MaxLife: 500 * time.Millisecond,
		Size:    r.Range(2, 3),
	})
}

func (s *Session) emitDashBurst() {
	r := s.Cosmetic
	p := &s.Player
	for i := 0; i < 8; i++ {
		s.spawnParticle(component.Particle{
			Kind:    component.ParticleDash,
			X:       p.X - 10,
			Y:       p.Y + r.Centered(15),
			VX:      -3 - r.Float64()*4,
			VY:      r.Centered(1),
			Life:    r.Duration(300*time.Millisecond, 200*time.Millisecond),
			MaxLife: 500 * time.Millisecond,
			Size:    r.Range(2, 3),
		})
	}
}

// AdvanceCosmetics integrates particles, popups and screen shake
// Runs inside the effects system while running and directly from Tick after a terminal result
func (s *Session) AdvanceCosmetics(dt time.Duration) {
	sec := dt.Seconds()
	step := sec * constant.UnitsPerSpeed

	n := 0
	for i := range s.Particles {
		p := &s.Particles[i]
		p.X += p.VX * step
		p.Y += p.VY * step
		p.VY += constant.ParticleGravity * sec
		p.Life -= dt
		p.Rotation += p.Spin * sec
		if p.Life > 0 {
			s.Particles[n] = *p
			n++
		}
	}
	s.Particles = s.Particles[:n]

	n = 0
	for i := range s.Popups {
		sp := &s.Popups[i]
		sp.Life -= dt
		sp.Y -= constant.PopupRiseSpeed * sec
		if sp.Life > 0 {
			s.Popups[n] = *sp
			n++
		}
	}
	s.Popups = s.Popups[:n]

	if s.Shake > 0 {
		s.Shake -= dt
		if s.Shake < 0 {
			s.Shake = 0
		}
	}
}

// ShakeLevel returns the decaying shake amplitude
func (s *Session) ShakeLevel() float64 {
	if s.Shake <= 0 {
		return 0
	}
	return s.ShakePower * float64(s.Shake) / float64(constant.ShakeDuration)
}
