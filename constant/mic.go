package constant

import "time"

// Signal conditioning
const (
	// MicBufferSize is the fixed analysis window in samples
	MicBufferSize = 256

	// MicSensitivity scales RMS energy before clamping to 1
	MicSensitivity = 6.0

	// MicNoiseFloor zeroes readings below ambient noise
	MicNoiseFloor = 0.02

	// MicSmoothUp is the blend coefficient on rising input
	MicSmoothUp = 0.35

	// MicSmoothDown is the blend coefficient on falling input, slow so syllable gaps hold
	MicSmoothDown = 0.06
)

// Zone hysteresis bands
const (
	MicUpEnter   = 0.18
	MicUpExit    = 0.08
	MicDownEnter = 0.03
	MicDownExit  = 0.07

	// MicZoneHold is the minimum dwell after any zone change
	MicZoneHold = 500 * time.Millisecond

	// MicLaneSettle is the minimum spacing between voice-driven lane steps
	MicLaneSettle = 150 * time.Millisecond
)

// Capture stream
const (
	MicSampleRate = 44100
)
