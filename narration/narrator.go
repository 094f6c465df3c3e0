// Package narration decides when the runner speaks and what he says
package narration

import (
	"time"

	"github.com/lixenwraith/laaame/constant"
)

// Rand is the draw source; *vmath.FastRand satisfies it
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Context is the session mood read when picking an idle phrase
type Context struct {
	Deaths int
	Speed  float64
}

// PickPool applies the weighted context rules
// A draw is made only when a rule's condition holds, so a biased pool is never guaranteed
func PickPool(ctx Context, rng Rand) Pool {
	if ctx.Deaths >= constant.FrustratedDeaths && rng.Float64() < constant.FrustratedChance {
		return PoolFrustrated
	}
	if ctx.Speed > constant.ConfidentSpeed && rng.Float64() < constant.ConfidentChance {
		return PoolConfident
	}
	return PoolNormal
}

// MilestoneCrossed returns the first milestone with prev < score <= cur
// Later milestones skipped in the same step are not reported
func MilestoneCrossed(prev, cur int) (Milestone, bool) {
	for _, m := range Milestones {
		if prev < m.Score && cur >= m.Score {
			return m, true
		}
	}
	return Milestone{}, false
}

// Narrator owns the global cooldown, idle countdown and visible phrase
type Narrator struct {
	rng Rand

	cooldown time.Duration
	idle     time.Duration
	visible  time.Duration
	text     string
}

func NewNarrator(rng Rand) *Narrator {
	n := &Narrator{rng: rng}
	n.Reset()
	return n
}

// Reset prepares for a new run
func (n *Narrator) Reset() {
	n.cooldown = 0
	n.idle = constant.SpeechFirstIdle
	n.Hide()
}

// Update runs one tick of narration and returns the phrase shown this tick, if any
// prevScore and curScore are floored scores before and after this tick's accrual
func (n *Narrator) Update(prevScore, curScore int, ctx Context, dt time.Duration) (string, bool) {
	if n.cooldown > 0 {
		n.cooldown -= dt
	}
	if n.visible > 0 {
		n.visible -= dt
		if n.visible <= 0 {
			n.Hide()
		}
	}

	var said string
	var ok bool

	if m, hit := MilestoneCrossed(prevScore, curScore); hit {
		if n.Show(m.Phrase) {
			said, ok = m.Phrase, true
		}
		n.idle = n.nextIdle()
	}

	n.idle -= dt
	if n.idle <= 0 {
		phrase := n.Pick(ctx)
		if n.Show(phrase) {
			said, ok = phrase, true
		}
		n.idle = n.nextIdle()
	}
	return said, ok
}

// Pick draws an idle phrase from the context-selected pool
func (n *Narrator) Pick(ctx Context) string {
	pool := Phrases[PickPool(ctx, n.rng)]
	return pool[n.rng.Intn(len(pool))]
}

// Show displays text unless the cooldown is active
func (n *Narrator) Show(text string) bool {
	if n.cooldown > 0 {
		return false
	}
	n.text = text
	n.visible = constant.SpeechDisplay
	n.cooldown = constant.SpeechCooldown
	return true
}

// Force clears the cooldown, then shows text
func (n *Narrator) Force(text string) {
	n.cooldown = 0
	n.Show(text)
}

// Hide removes the visible phrase without touching the cooldown
func (n *Narrator) Hide() {
	n.text = ""
	n.visible = 0
}

// Text returns the visible phrase
func (n *Narrator) Text() (string, bool) {
	return n.text, n.visible > 0
}

// Cooldown returns the remaining global cooldown
func (n *Narrator) Cooldown() time.Duration {
	if n.cooldown < 0 {
		return 0
	}
	return n.cooldown
}

// IdleRemaining returns the time to the next idle phrase attempt
func (n *Narrator) IdleRemaining() time.Duration { return n.idle }

func (n *Narrator) nextIdle() time.Duration {
	return constant.SpeechIdleMin + time.Duration(n.rng.Float64()*float64(constant.SpeechIdleSpan))
}
