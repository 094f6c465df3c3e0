package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// note is one step of a track; freq 0 rests
type note struct {
	freq  float64
	beats float64
}

// track is a melody over a bass line of equal total length
type track struct {
	name   string
	bpm    float64
	melody []note
	bass   []note
}

const (
	noteA2 = 110.00
	noteC3 = 130.81
	noteD3 = 146.83
	noteE3 = 164.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteC4 = 261.63
	noteD4 = 293.66
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
)

// gameTracks are the in-run loops; one is picked per run
var gameTracks = []track{
	{
		name: "chase",
		bpm:  150,
		melody: []note{
			{noteA4, 0.5}, {noteC5, 0.5}, {noteA4, 0.5}, {noteG4, 0.5},
			{noteE4, 1}, {0, 0.5}, {noteD4, 0.5},
			{noteE4, 0.5}, {noteG4, 0.5}, {noteA4, 0.5}, {noteG4, 0.5},
			{noteE4, 1.5}, {0, 0.5},
		},
		bass: []note{
			{noteA2, 1}, {noteA2, 1}, {noteC3, 1}, {noteC3, 1},
			{noteD3, 1}, {noteD3, 1}, {noteE3, 1}, {noteE3, 1},
		},
	},
	{
		name: "courtroom",
		bpm:  128,
		melody: []note{
			{noteE4, 1}, {noteG4, 0.5}, {noteA4, 0.5}, {noteC5, 1}, {noteA4, 1},
			{noteG4, 0.5}, {noteE4, 0.5}, {noteD4, 1}, {noteC4, 2},
		},
		bass: []note{
			{noteC3, 2}, {noteA2, 2}, {noteG3, 2}, {noteA3, 1}, {noteG3, 1},
		},
	},
}

func (t track) beat() time.Duration {
	return time.Duration(float64(time.Minute) / t.bpm)
}

func voiceLine(notes []note, beat time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		d := time.Duration(n.beats * float64(beat))
		if n.freq == 0 {
			parts = append(parts, beep.Silence(rate.N(d)))
			continue
		}
		parts = append(parts, NewEnvelope(NewOscillator(n.freq, d, wave, rate), d, 5*time.Millisecond, d/3, rate))
	}
	return beep.Seq(parts...)
}

// render returns one pass of the track at unity gain
func (t track) render(rate beep.SampleRate) beep.Streamer {
	beat := t.beat()
	return beep.Mix(
		newVolume(voiceLine(t.melody, beat, WaveSquare, rate), 0.35),
		newVolume(voiceLine(t.bass, beat, WaveSaw, rate), 0.5),
	)
}
