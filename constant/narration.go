package constant

import "time"

// Narration pacing
const (
	// SpeechCooldown is the minimum gap between any two phrases
	SpeechCooldown = 6 * time.Second

	// SpeechDisplay is the maximum time a phrase stays visible
	SpeechDisplay = 2 * time.Second

	// SpeechFirstIdle is the delay before the first idle phrase of a run
	SpeechFirstIdle = 8 * time.Second

	// SpeechIdleMin and SpeechIdleSpan give the idle reset range [15s, 25s)
	SpeechIdleMin  = 15 * time.Second
	SpeechIdleSpan = 10 * time.Second
)

// Context pool weighting
const (
	// FrustratedDeaths is the session death count that makes the frustrated pool eligible
	FrustratedDeaths = 3
	FrustratedChance = 0.4

	// ConfidentSpeed is the speed above which the confident pool is eligible
	ConfidentSpeed  = 6.0
	ConfidentChance = 0.35
)

// Typed phrase trigger
const (
	// TypedBufferMax is the number of recent letters kept for suffix matching
	TypedBufferMax = 15

	// TypedWinDelay is the running time between the typed phrase and the forced win
	TypedWinDelay = 500 * time.Millisecond
)
