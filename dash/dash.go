// Package dash implements the timed invincibility burst and its cooldown
package dash

import (
	"time"

	"github.com/lixenwraith/laaame/constant"
)

// State is the observable combination of the two timers
type State uint8

const (
	StateReady State = iota
	StateCooling
	StateDashing
)

func (s State) String() string {
	switch s {
	case StateCooling:
		return "cooling"
	case StateDashing:
		return "dashing"
	default:
		return "ready"
	}
}

// Controller holds the dash and cooldown countdowns
// Cooldown always outlasts the dash, so dashing implies cooling
type Controller struct {
	Duration time.Duration
	Cooldown time.Duration

	dashing  time.Duration
	cooldown time.Duration
}

func NewController() *Controller {
	return &Controller{
		Duration: constant.DashDuration,
		Cooldown: constant.DashCooldown,
	}
}

// Activate starts a dash from ready+idle; any other state is a no-op
func (c *Controller) Activate() bool {
	if !c.Ready() {
		return false
	}
	c.dashing = c.Duration
	c.cooldown = c.Cooldown
	if c.cooldown <= c.dashing {
		c.cooldown = c.dashing + 1
	}
	return true
}

// Update counts both timers down by dt
func (c *Controller) Update(dt time.Duration) {
	if c.dashing > 0 {
		c.dashing -= dt
		if c.dashing < 0 {
			c.dashing = 0
		}
	}
	if c.cooldown > 0 {
		c.cooldown -= dt
		if c.cooldown < 0 {
			c.cooldown = 0
		}
	}
}

func (c *Controller) Dashing() bool { return c.dashing > 0 }

func (c *Controller) Ready() bool { return c.dashing == 0 && c.cooldown == 0 }

// CooldownRemaining returns the time until the next activation is possible
func (c *Controller) CooldownRemaining() time.Duration { return c.cooldown }

// DashRemaining returns the remaining invincibility time
func (c *Controller) DashRemaining() time.Duration { return c.dashing }

// Charge returns cooldown progress in [0, 1], 1 when ready
func (c *Controller) Charge() float64 {
	if c.Cooldown <= 0 || c.cooldown == 0 {
		return 1
	}
	return 1 - float64(c.cooldown)/float64(c.Cooldown)
}

func (c *Controller) State() State {
	switch {
	case c.Dashing():
		return StateDashing
	case c.cooldown > 0:
		return StateCooling
	default:
		return StateReady
	}
}

// Reset returns to ready+idle
func (c *Controller) Reset() {
	c.dashing = 0
	c.cooldown = 0
}
