package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/laaame/event"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency
type oscillator struct {
	freq     float64
	sweep    float64 // Frequency change per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	sweep := 0.0
	if duration > 0 {
		sweep = (to - from) / duration.Seconds()
	}
	return &oscillator{
		freq:     from,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// shaped is one enveloped voice of a cue
func shaped(osc beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(osc, d, attack, release, rate)
}

// CreateCaseFileSound is a papery slap: a short noise burst over a low thump
func CreateCaseFileSound(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	return beep.Mix(
		newVolume(shaped(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 150*time.Millisecond, rate), 0.5),
		newVolume(shaped(NewSweep(160, 70, d, WaveSine, rate), d, 2*time.Millisecond, 160*time.Millisecond, rate), 0.8),
	)
}

// CreateHammerSound is the gavel knock: two hard square hits
func CreateHammerSound(rate beep.SampleRate) beep.Streamer {
	hit := func() beep.Streamer {
		d := 90 * time.Millisecond
		return shaped(NewSweep(320, 140, d, WaveSquare, rate), d, time.Millisecond, 80*time.Millisecond, rate)
	}
	gap := beep.Silence(rate.N(40 * time.Millisecond))
	return newVolume(beep.Seq(hit(), gap, hit()), 0.6)
}

// CreateGunSound is a bang: bright noise with a fast decay
func CreateGunSound(rate beep.SampleRate) beep.Streamer {
	d := 220 * time.Millisecond
	return beep.Mix(
		shaped(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 200*time.Millisecond, rate),
		newVolume(shaped(NewSweep(220, 50, d, WaveSaw, rate), d, time.Millisecond, 200*time.Millisecond, rate), 0.5),
	)
}

// CreatePickupSound is the phone chime: two rising square notes
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	n1d, n2d := 80*time.Millisecond, 220*time.Millisecond
	n1 := shaped(NewOscillator(987.77, n1d, WaveSquare, rate), n1d, 5*time.Millisecond, 20*time.Millisecond, rate)
	n2 := shaped(NewOscillator(1318.51, n2d, WaveSquare, rate), n2d, 5*time.Millisecond, 180*time.Millisecond, rate)
	return newVolume(beep.Seq(n1, n2), 0.5)
}

// CreateDashSound is a whoosh: noise under an upward sweep
func CreateDashSound(rate beep.SampleRate) beep.Streamer {
	d := 300 * time.Millisecond
	return beep.Mix(
		newVolume(shaped(NewOscillator(0, d, WaveNoise, rate), d, 60*time.Millisecond, 200*time.Millisecond, rate), 0.5),
		newVolume(shaped(NewSweep(200, 900, d, WaveSine, rate), d, 60*time.Millisecond, 200*time.Millisecond, rate), 0.4),
	)
}

// GetSoundEffect returns a fresh unity-gain streamer for snd, nil if unknown
func GetSoundEffect(snd event.Sound, rate beep.SampleRate) beep.Streamer {
	switch snd {
	case event.SoundCaseFile:
		return CreateCaseFileSound(rate)
	case event.SoundHammer:
		return CreateHammerSound(rate)
	case event.SoundGun:
		return CreateGunSound(rate)
	case event.SoundPickup:
		return CreatePickupSound(rate)
	case event.SoundDash:
		return CreateDashSound(rate)
	default:
		return nil
	}
}
