package status

import (
	"sort"
	"sync"
	"sync/atomic"
	"testing"
)

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Fatal("zero value not 0")
	}
	f.Set(0.25)
	if got := f.Add(0.5); got != 0.75 {
		t.Errorf("Add = %f", got)
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(1)
			}
		}()
	}
	wg.Wait()
	if f.Get() != 8000 {
		t.Errorf("sum = %f", f.Get())
	}
}

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Floats.Get(KeyMicLevel)
	b := r.Floats.Get(KeyMicLevel)
	if a != b {
		t.Fatal("Get allocated twice for one key")
	}
	a.Set(0.5)
	if r.Floats.Get(KeyMicLevel).Get() != 0.5 {
		t.Error("write through cached pointer lost")
	}
}

func TestEntries(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyFrame).Store(42)
	r.Bools.Get(KeyCaptureOpen).Store(true)
	r.Strings.Get(KeyControlMode).Store("voice")
	r.Floats.Get(KeySpeed).Set(4)

	want := []Entry{
		{KeyCaptureOpen, "true"},
		{KeyFrame, "42"},
		{KeySpeed, "4.000"},
		{KeyControlMode, "voice"},
	}
	got := r.Entries()
	if len(got) != len(want) {
		t.Fatalf("entries = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, got[i], want[i])
		}
	}
	if r.TotalCount() != 4 {
		t.Errorf("count = %d", r.TotalCount())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	keys := []string{KeyFrame, KeyCaptureReads, KeyAudioPlays}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get(keys[j%len(keys)]).Add(1)
			}
		}()
	}
	wg.Wait()

	if m.Count() != len(keys) {
		t.Errorf("count = %d, want %d", m.Count(), len(keys))
	}
	var total int64
	var seen []string
	m.Range(func(k string, v *atomic.Int64) {
		seen = append(seen, k)
		total += v.Load()
	})
	if total != 1600 {
		t.Errorf("total = %d, want 1600", total)
	}
	if !sort.StringsAreSorted(seen) {
		t.Errorf("range order %v", seen)
	}
}
