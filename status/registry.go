// Package status publishes values across goroutines without locking the tick loop
package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Well-known keys
const (
	KeyFrame        = "tick.frame"
	KeyScore        = "run.score"
	KeySpeed        = "run.speed"
	KeyMicLevel     = "mic.level"
	KeyMicRaw       = "mic.raw"
	KeyCaptureReads = "capture.windows"
	KeyCaptureOpen  = "capture.open"
	KeyAudioReady   = "audio.ready"
	KeyAudioPlays   = "audio.plays"
	KeyLaneSettle   = "lane.settle_ms"
	KeyNextIdle     = "narration.idle_s"
	KeyControlMode  = "control.mode"
	KeyFallback     = "control.fallback"
)

// Registry groups the typed metric maps
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Entries returns every metric formatted for display, grouped by type and sorted by key
func (r *Registry) Entries() []Entry {
	var out []Entry
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Entry{k, strconv.FormatBool(v.Load())})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, Entry{k, fmt.Sprintf("%.3f", v.Get())})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, Entry{k, v.Load()})
	})
	return out
}

func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
