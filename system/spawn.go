package system

import (
	"math"
	"time"

	"github.com/lixenwraith/laaame/component"
	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/core"
	"github.com/lixenwraith/laaame/engine"
)

// SpawnSystem places obstacles at the right edge on a jittered interval
// and rolls an independent pickup per spawn cycle
type SpawnSystem struct{}

func NewSpawnSystem() engine.System { return &SpawnSystem{} }

func (sys *SpawnSystem) Name() string { return "spawn" }

func (sys *SpawnSystem) Priority() int { return constant.PrioritySpawn }

func (sys *SpawnSystem) Update(s *engine.Session, dt time.Duration) {
	s.SpawnIn -= dt
	if s.SpawnIn > 0 {
		return
	}

	kind := s.Scheduler.PickKind()
	if core.Contract(s.Log, kind.Valid(), "spawn picked invalid obstacle kind") {
		sys.spawnObstacle(s, kind)
	}
	s.SpawnIn = s.Scheduler.NextInterval()

	if s.Scheduler.SpawnCollectible() {
		l := s.Scheduler.PickLane()
		s.Collectibles = append(s.Collectibles, component.Collectible{
			Lane: l,
			X:    s.Width + constant.CollectibleSpawnOffset,
			Y:    s.Layout.Center(l),
			Bob:  s.Rand.Float64() * 2 * math.Pi,
		})
	}
}

func (sys *SpawnSystem) spawnObstacle(s *engine.Session, kind component.Kind) {
	d := kind.Descriptor()
	l := s.Scheduler.PickLane()
	o := component.Obstacle{
		Kind:  kind,
		Lane:  l,
		X:     s.Width + d.Width,
		Y:     s.Layout.Center(l),
		Speed: s.Speed * d.SpeedMult,
	}
	if d.Shoots {
		o.ShootIn = s.Rand.Duration(constant.ShootDelayMin, constant.ShootDelaySpan)
	}
	s.Obstacles = append(s.Obstacles, o)
}
