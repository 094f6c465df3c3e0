package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/laaame/event"
)

// soundCache holds pre-rendered unity-gain buffers for every cue and track
// Buffers are written once by render and only read after ready is set
type soundCache struct {
	format  beep.Format
	effects [event.SoundCount]*beep.Buffer
	tracks  []*beep.Buffer
	ready   atomic.Bool
}

func newSoundCache(rate beep.SampleRate) *soundCache {
	return &soundCache{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
	}
}

// render generates every buffer; runs off the frame loop
func (c *soundCache) render() {
	for snd := event.Sound(0); snd < event.SoundCount; snd++ {
		buf := beep.NewBuffer(c.format)
		buf.Append(GetSoundEffect(snd, c.format.SampleRate))
		c.effects[snd] = buf
	}
	tracks := make([]*beep.Buffer, len(gameTracks))
	for i, t := range gameTracks {
		buf := beep.NewBuffer(c.format)
		buf.Append(t.render(c.format.SampleRate))
		tracks[i] = buf
	}
	c.tracks = tracks
	c.ready.Store(true)
}

// effect returns a playable streamer, nil until rendered
func (c *soundCache) effect(snd event.Sound) beep.StreamSeeker {
	if !c.ready.Load() || snd >= event.SoundCount {
		return nil
	}
	buf := c.effects[snd]
	return buf.Streamer(0, buf.Len())
}

// track returns an endless loop of track i, nil until rendered
func (c *soundCache) track(i int) beep.Streamer {
	if !c.ready.Load() || i < 0 || i >= len(c.tracks) {
		return nil
	}
	buf := c.tracks[i]
	return beep.Loop(-1, buf.Streamer(0, buf.Len()))
}
