package vmath

import "time"

// FastRand is a xorshift64 generator; all gameplay draws go through one so a seed replays a run
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [min, min+span)
func (r *FastRand) Range(min, span float64) float64 {
	return min + r.Float64()*span
}

// Duration returns a duration in [min, min+span)
func (r *FastRand) Duration(min, span time.Duration) time.Duration {
	return min + time.Duration(r.Float64()*float64(span))
}

// Centered returns a value in [-half, half)
func (r *FastRand) Centered(half float64) float64 {
	return (r.Float64() - 0.5) * 2 * half
}

// Split derives an independent stream, used to keep cosmetic draws off the gameplay stream
func (r *FastRand) Split() *FastRand {
	return NewFastRand(r.Next() ^ 0x9E3779B97F4A7C15)
}
