package difficulty

import (
	"time"

	"github.com/lixenwraith/laaame/component"
	"github.com/lixenwraith/laaame/constant"
)

// Rand is the draw source; *vmath.FastRand satisfies it
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Scheduler derives speed and spawn decisions for one run of a tier
type Scheduler struct {
	Tier Tier
	rng  Rand
}

func NewScheduler(tier Tier, rng Rand) *Scheduler {
	return &Scheduler{Tier: tier, rng: rng}
}

// Speed returns base × (1 + elapsed × growth)
func (s *Scheduler) Speed(elapsed time.Duration) float64 {
	return s.Tier.SpeedBase * (1 + elapsed.Seconds()*s.Tier.SpeedGrowth)
}

// NextInterval returns the base spawn interval scaled into the jitter band [0.7, 1.3)
func (s *Scheduler) NextInterval() time.Duration {
	f := constant.SpawnJitterMin + s.rng.Float64()*constant.SpawnJitterSpan
	return time.Duration(float64(s.Tier.SpawnInterval) * f)
}

// PickKind draws an obstacle kind from the tier's cumulative mix
func (s *Scheduler) PickKind() component.Kind {
	return KindFor(s.Tier.Mix, s.rng.Float64())
}

// KindFor maps a uniform draw r in [0, 1) onto the cumulative thresholds
func KindFor(mix [component.KindCount - 1]float64, r float64) component.Kind {
	for i, m := range mix {
		if r < m {
			return component.Kind(i)
		}
	}
	return component.KindCount - 1
}

// PickLane draws a uniform lane index
func (s *Scheduler) PickLane() int {
	return s.rng.Intn(constant.LaneCount)
}

// SpawnCollectible is the independent per-cycle collectible draw
func (s *Scheduler) SpawnCollectible() bool {
	return s.rng.Float64() < constant.PickupChance
}
