// Package lane maps discrete lane selections to player motion
// Keyboard steps apply immediately; voice targets are walked one lane per settle interval
package lane

import (
	"time"

	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/vmath"
)

// Layout describes the lane bands inside the play area
type Layout struct {
	Top    float64
	Bottom float64
	Count  int
}

// NewLayout splits the vertical field between the top inset and the bottom margin
func NewLayout(fieldHeight float64) Layout {
	return Layout{
		Top:    constant.PlayAreaTop,
		Bottom: fieldHeight - constant.PlayAreaBottomMargin,
		Count:  constant.LaneCount,
	}
}

// Height returns the height of one lane band
func (l Layout) Height() float64 {
	if l.Count <= 0 {
		return 0
	}
	return (l.Bottom - l.Top) / float64(l.Count)
}

// Center returns the y of the lane center; out of range lanes are clamped
func (l Layout) Center(lane int) float64 {
	lane = l.Clamp(lane)
	h := l.Height()
	return l.Top + h*float64(lane) + h/2
}

// Clamp bounds a lane index to the layout
func (l Layout) Clamp(lane int) int {
	return vmath.ClampInt(lane, 0, l.Count-1)
}

// Valid reports whether lane is an index of the layout
func (l Layout) Valid(lane int) bool {
	return lane >= 0 && lane < l.Count
}

// Controller owns the player's discrete lane and the voice settle timer
type Controller struct {
	Layout Layout
	Settle time.Duration

	lane   int
	settle time.Duration
}

func NewController(layout Layout) *Controller {
	return &Controller{
		Layout: layout,
		Settle: constant.MicLaneSettle,
		lane:   constant.CenterLane,
	}
}

// Lane returns the current discrete lane
func (c *Controller) Lane() int { return c.lane }

// TargetY returns the center of the current lane
func (c *Controller) TargetY() float64 { return c.Layout.Center(c.lane) }

// Reset places the controller on lane and clears the settle timer
func (c *Controller) Reset(lane int) {
	c.lane = c.Layout.Clamp(lane)
	c.settle = 0
}

// Step moves by dir lanes (keyboard, ±1); a step leaving the layout is ignored
func (c *Controller) Step(dir int) bool {
	next := c.lane + dir
	if dir == 0 || !c.Layout.Valid(next) {
		return false
	}
	c.lane = next
	return true
}

// Seek walks toward target: the settle timer counts down every call and at most
// one lane step is taken per settle interval
func (c *Controller) Seek(target int, dt time.Duration) bool {
	target = c.Layout.Clamp(target)
	c.settle -= dt

	if c.lane == target || c.settle > 0 {
		return false
	}
	if target < c.lane {
		c.lane--
	} else {
		c.lane++
	}
	c.settle = c.Settle
	return true
}

// SettleRemaining returns the time until the next voice step is allowed
func (c *Controller) SettleRemaining() time.Duration {
	if c.settle < 0 {
		return 0
	}
	return c.settle
}

// Approach advances y toward targetY with the player convergence rate
func Approach(y, targetY float64, dt time.Duration) float64 {
	return vmath.Approach(y, targetY, constant.PlayerApproachRate, dt.Seconds())
}
