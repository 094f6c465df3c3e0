package engine

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/laaame/difficulty"
)

// Store keys of the two persisted records
const (
	KeyUnlocked   = "unlocked"
	KeyBestScores = "best_scores"
)

// Store is the external key/value persistence used for progress
type Store interface {
	// Load decodes the record at key into v; false when the key is absent
	Load(key string, v any) (bool, error)
	Save(key string, v any) error
}

// Progress is the persisted unlock set and best score per tier
type Progress struct {
	Unlocked []string
	Best     map[string]int
}

// DefaultProgress unlocks only the easiest tier
func DefaultProgress(tiers difficulty.Table) Progress {
	return Progress{
		Unlocked: []string{tiers.First()},
		Best:     make(map[string]int),
	}
}

// IsUnlocked reports whether tier may be started
func (p Progress) IsUnlocked(tier string) bool {
	return slices.Contains(p.Unlocked, tier)
}

// Unlock adds tier and reports whether it was newly added
func (p *Progress) Unlock(tier string) bool {
	if tier == "" || p.IsUnlocked(tier) {
		return false
	}
	p.Unlocked = append(p.Unlocked, tier)
	return true
}

// Record stores score as the tier best if it improves it
func (p *Progress) Record(tier string, score int) bool {
	if score <= p.Best[tier] {
		return false
	}
	p.Best[tier] = score
	return true
}

// LoadProgress reads both records, falling back to defaults for missing or unknown entries
// The returned progress is usable even when err is non-nil
func LoadProgress(st Store, tiers difficulty.Table) (Progress, error) {
	p := DefaultProgress(tiers)
	if st == nil {
		return p, nil
	}

	var unlocked []string
	found, err := st.Load(KeyUnlocked, &unlocked)
	if err != nil {
		return p, fmt.Errorf("load %s: %w", KeyUnlocked, err)
	}
	if found {
		for _, name := range unlocked {
			if tiers.Index(name) >= 0 {
				p.Unlock(name)
			}
		}
	}

	best := map[string]int{}
	found, err = st.Load(KeyBestScores, &best)
	if err != nil {
		return p, fmt.Errorf("load %s: %w", KeyBestScores, err)
	}
	if found {
		for name, score := range best {
			if tiers.Index(name) >= 0 && score > 0 {
				p.Best[name] = score
			}
		}
	}
	return p, nil
}

func saveUnlocked(st Store, p Progress) error {
	if st == nil {
		return nil
	}
	if err := st.Save(KeyUnlocked, p.Unlocked); err != nil {
		return fmt.Errorf("save %s: %w", KeyUnlocked, err)
	}
	return nil
}

func saveBest(st Store, p Progress) error {
	if st == nil {
		return nil
	}
	if err := st.Save(KeyBestScores, p.Best); err != nil {
		return fmt.Errorf("save %s: %w", KeyBestScores, err)
	}
	return nil
}
