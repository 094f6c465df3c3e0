package engine

import (
	"sort"
	"time"
)

// System is one per-tick stage of the run
// Systems execute in ascending Priority; the tick stops at the first system that ends the run
type System interface {
	Name() string
	Priority() int
	Update(s *Session, dt time.Duration)
}

func sortSystems(systems []System) {
	sort.SliceStable(systems, func(i, j int) bool {
		return systems[i].Priority() < systems[j].Priority()
	})
}
