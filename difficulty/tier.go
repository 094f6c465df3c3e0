// Package difficulty holds the tier table and the per-run spawn scheduler
package difficulty

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/laaame/component"
)

var ErrUnknownTier = errors.New("unknown tier")

// Tier is one difficulty configuration
// Mix holds cumulative thresholds: a draw below Mix[i] selects Kind i, the remainder selects the last kind
type Tier struct {
	Name          string
	Label         string
	Target        int
	SpeedBase     float64
	SpeedGrowth   float64
	SpawnInterval time.Duration
	Mix           [component.KindCount - 1]float64
}

// Validate rejects tiers the scheduler cannot run
func (t Tier) Validate() error {
	if t.Name == "" {
		return errors.New("tier has no name")
	}
	if t.Target <= 0 {
		return fmt.Errorf("tier %s: target %d must be positive", t.Name, t.Target)
	}
	if t.SpeedBase <= 0 || t.SpeedGrowth < 0 {
		return fmt.Errorf("tier %s: speed base %.3f growth %.5f", t.Name, t.SpeedBase, t.SpeedGrowth)
	}
	if t.SpawnInterval <= 0 {
		return fmt.Errorf("tier %s: spawn interval %v must be positive", t.Name, t.SpawnInterval)
	}
	prev := 0.0
	for i, m := range t.Mix {
		if m < prev || m > 1 {
			return fmt.Errorf("tier %s: mix threshold %d (%.2f) not cumulative", t.Name, i, m)
		}
		prev = m
	}
	return nil
}

// Table is the ordered tier progression, easiest first
type Table []Tier

// DefaultTiers returns the built-in progression
func DefaultTiers() Table {
	return Table{
		{Name: "easy", Label: "EASY", Target: 333, SpeedBase: 4, SpeedGrowth: 0.0004,
			SpawnInterval: 1600 * time.Millisecond, Mix: [2]float64{0.60, 0.85}},
		{Name: "medium", Label: "MEDIUM", Target: 3333, SpeedBase: 6, SpeedGrowth: 0.0007,
			SpawnInterval: 1200 * time.Millisecond, Mix: [2]float64{0.40, 0.70}},
		{Name: "hard", Label: "HARD", Target: 33333, SpeedBase: 8, SpeedGrowth: 0.001,
			SpawnInterval: 800 * time.Millisecond, Mix: [2]float64{0.25, 0.55}},
		{Name: "extreme", Label: "EXTREME", Target: 99999, SpeedBase: 10, SpeedGrowth: 0.0015,
			SpawnInterval: 500 * time.Millisecond, Mix: [2]float64{0.15, 0.40}},
	}
}

// Lookup returns the named tier
func (t Table) Lookup(name string) (Tier, error) {
	if i := t.Index(name); i >= 0 {
		return t[i], nil
	}
	return Tier{}, fmt.Errorf("%w: %q", ErrUnknownTier, name)
}

// Index returns the position of name, -1 if absent
func (t Table) Index(name string) int {
	for i := range t {
		if t[i].Name == name {
			return i
		}
	}
	return -1
}

// Next returns the tier unlocked by winning name; false for the last tier
func (t Table) Next(name string) (string, bool) {
	i := t.Index(name)
	if i < 0 || i+1 >= len(t) {
		return "", false
	}
	return t[i+1].Name, true
}

// First returns the name of the easiest tier
func (t Table) First() string {
	if len(t) == 0 {
		return ""
	}
	return t[0].Name
}

func (t Table) Names() []string {
	names := make([]string, len(t))
	for i := range t {
		names[i] = t[i].Name
	}
	return names
}

// Validate checks every tier and rejects duplicate names
func (t Table) Validate() error {
	if len(t) == 0 {
		return errors.New("empty tier table")
	}
	seen := make(map[string]bool, len(t))
	for _, tier := range t {
		if err := tier.Validate(); err != nil {
			return err
		}
		if seen[tier.Name] {
			return fmt.Errorf("duplicate tier %q", tier.Name)
		}
		seen[tier.Name] = true
	}
	return nil
}
