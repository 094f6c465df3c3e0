package mic

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/laaame/constant"
)

// Zone is the discrete classification of the control signal
type Zone uint8

const (
	ZoneCenter Zone = iota
	ZoneUp
	ZoneDown
)

func (z Zone) String() string {
	switch z {
	case ZoneUp:
		return "up"
	case ZoneDown:
		return "down"
	default:
		return "center"
	}
}

// Lane maps the zone to its target lane: up is the top lane, down the bottom one
func (z Zone) Lane() int {
	switch z {
	case ZoneUp:
		return 0
	case ZoneDown:
		return 2
	default:
		return 1
	}
}

// Thresholds holds the hysteresis bands and the dwell time
type Thresholds struct {
	UpEnter   float64
	UpExit    float64
	DownEnter float64
	DownExit  float64
	Hold      time.Duration
}

var ErrBadThresholds = errors.New("invalid zone thresholds")

// DefaultThresholds returns the tuned bands
func DefaultThresholds() Thresholds {
	return Thresholds{
		UpEnter:   constant.MicUpEnter,
		UpExit:    constant.MicUpExit,
		DownEnter: constant.MicDownEnter,
		DownExit:  constant.MicDownExit,
		Hold:      constant.MicZoneHold,
	}
}

// Validate checks that each band is a proper hysteresis pair
func (t Thresholds) Validate() error {
	if t.UpExit >= t.UpEnter {
		return fmt.Errorf("%w: up exit %.3f must be below up entry %.3f", ErrBadThresholds, t.UpExit, t.UpEnter)
	}
	if t.DownEnter >= t.DownExit {
		return fmt.Errorf("%w: down entry %.3f must be below down exit %.3f", ErrBadThresholds, t.DownEnter, t.DownExit)
	}
	if t.DownExit > t.UpEnter {
		return fmt.Errorf("%w: down exit %.3f above up entry %.3f", ErrBadThresholds, t.DownExit, t.UpEnter)
	}
	if t.Hold < 0 {
		return fmt.Errorf("%w: negative hold", ErrBadThresholds)
	}
	return nil
}

// Transition is the pure zone step; hold is the already counted-down dwell timer
// Leaving up and entering down wait for the dwell; leaving down does not
func Transition(z Zone, level float64, hold time.Duration, t Thresholds) (Zone, time.Duration) {
	next := z
	expired := hold <= 0

	switch z {
	case ZoneUp:
		if expired && level < t.UpExit {
			if level < t.DownEnter {
				next = ZoneDown
			} else {
				next = ZoneCenter
			}
		}
	case ZoneDown:
		if level > t.DownExit {
			if level > t.UpEnter {
				next = ZoneUp
			} else {
				next = ZoneCenter
			}
		}
	default:
		if level > t.UpEnter {
			next = ZoneUp
		} else if expired && level < t.DownEnter {
			next = ZoneDown
		}
	}

	if next != z {
		return next, t.Hold
	}
	return z, hold
}

// Classifier owns the zone and its dwell timer across ticks
type Classifier struct {
	Thresholds Thresholds

	zone Zone
	hold time.Duration
}

func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{Thresholds: t}
}

// Update counts the dwell timer down by dt, then evaluates one transition
func (c *Classifier) Update(level float64, dt time.Duration) Zone {
	if c.hold > 0 {
		c.hold -= dt
		if c.hold < 0 {
			c.hold = 0
		}
	}
	c.zone, c.hold = Transition(c.zone, level, c.hold, c.Thresholds)
	return c.zone
}

func (c *Classifier) Zone() Zone { return c.zone }

// Hold returns the remaining dwell time
func (c *Classifier) Hold() time.Duration { return c.hold }

// Reset returns to center with no dwell pending
func (c *Classifier) Reset() {
	c.zone = ZoneCenter
	c.hold = 0
}
