// Package mic turns a noisy amplitude signal into stable discrete zones
package mic

import (
	"math"

	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/vmath"
)

// Conditioner converts raw sample windows into a smoothed, noise-floored level in [0, 1]
// Rises fast on voice onset and decays slowly so gaps between syllables keep the level up
type Conditioner struct {
	Sensitivity float64
	NoiseFloor  float64
	SmoothUp    float64
	SmoothDown  float64

	raw      float64
	smoothed float64
}

// NewConditioner returns a conditioner with the default tuning
func NewConditioner() *Conditioner {
	return &Conditioner{
		Sensitivity: constant.MicSensitivity,
		NoiseFloor:  constant.MicNoiseFloor,
		SmoothUp:    constant.MicSmoothUp,
		SmoothDown:  constant.MicSmoothDown,
	}
}

// RMS returns the root-mean-square energy of samples in [-1, 1]
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		v := float64(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// Process computes the window's scaled energy and feeds it through Update
func (c *Conditioner) Process(samples []float32) float64 {
	return c.Update(math.Min(1, RMS(samples)*c.Sensitivity))
}

// Update applies the noise floor and the asymmetric moving average to one normalized reading
func (c *Conditioner) Update(raw float64) float64 {
	raw = vmath.Clamp(raw, 0, 1)
	c.raw = raw

	cleaned := raw
	if cleaned < c.NoiseFloor {
		cleaned = 0
	}

	if cleaned > c.smoothed {
		c.smoothed = vmath.Blend(c.smoothed, cleaned, c.SmoothUp)
	} else {
		c.smoothed = vmath.Blend(c.smoothed, cleaned, c.SmoothDown)
	}
	return c.smoothed
}

// Level returns the smoothed output
func (c *Conditioner) Level() float64 { return c.smoothed }

// Raw returns the last clamped input
func (c *Conditioner) Raw() float64 { return c.raw }

// Reset zeroes both the raw and smoothed values
func (c *Conditioner) Reset() {
	c.raw = 0
	c.smoothed = 0
}
