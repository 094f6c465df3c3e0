package mic

import (
	"math"
	"testing"
	"time"
)

func TestRMS(t *testing.T) {
	if RMS(nil) != 0 {
		t.Error("empty window should be silent")
	}
	buf := make([]float32, 256)
	for i := range buf {
		buf[i] = 0.5
		if i%2 == 1 {
			buf[i] = -0.5
		}
	}
	if got := RMS(buf); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("RMS = %f, want 0.5", got)
	}
}

func TestProcessScalesAndClamps(t *testing.T) {
	c := NewConditioner()
	buf := make([]float32, 256)
	for i := range buf {
		buf[i] = 0.9
	}
	c.Process(buf)
	if c.Raw() != 1 {
		t.Errorf("raw = %f, want clamp to 1", c.Raw())
	}
}

func TestNoiseFloor(t *testing.T) {
	c := NewConditioner()
	for i := 0; i < 100; i++ {
		c.Update(0.019)
	}
	if c.Level() != 0 {
		t.Errorf("sub-floor input must read as silence, got %f", c.Level())
	}
}

func TestAsymmetricSmoothing(t *testing.T) {
	c := NewConditioner()
	rise := c.Update(1)
	if math.Abs(rise-0.35) > 1e-9 {
		t.Errorf("first rise = %f, want 0.35", rise)
	}

	c.Reset()
	for i := 0; i < 200; i++ {
		c.Update(1)
	}
	top := c.Level()
	fall := c.Update(0)
	if drop := top - fall; math.Abs(drop-top*0.06) > 1e-9 {
		t.Errorf("fall step = %f, want %f", drop, top*0.06)
	}
}

func TestConditionerStaysInUnitRange(t *testing.T) {
	c := NewConditioner()
	inputs := []float64{-1, 0, 2, 0.5, 0.01, 5, 0}
	for _, in := range inputs {
		v := c.Update(in)
		if v < 0 || v > 1 {
			t.Fatalf("level %f out of range for input %f", v, in)
		}
	}
}

func TestThresholdsValidate(t *testing.T) {
	if err := DefaultThresholds().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	bad := DefaultThresholds()
	bad.UpExit = bad.UpEnter
	if err := bad.Validate(); err == nil {
		t.Error("missing hysteresis on up band should fail")
	}
	bad = DefaultThresholds()
	bad.DownExit = bad.DownEnter
	if err := bad.Validate(); err == nil {
		t.Error("missing hysteresis on down band should fail")
	}
}

func feed(c *Classifier, levels []float64, dt time.Duration) []Zone {
	out := make([]Zone, len(levels))
	for i, l := range levels {
		out[i] = c.Update(l, dt)
	}
	return out
}

// Samples are numbered from 1 to match the walkthrough
func TestClassifierHoldsUpThroughDwell(t *testing.T) {
	levels := []float64{0, 0, 0.3, 0.3, 0.3, 0.02, 0.02}
	c := NewClassifier(DefaultThresholds())
	zones := feed(c, levels, time.Second/60)

	want := []Zone{ZoneDown, ZoneDown, ZoneUp, ZoneUp, ZoneUp, ZoneUp, ZoneUp}
	for i := range want {
		if zones[i] != want[i] {
			t.Errorf("sample %d: zone %v, want %v", i+1, zones[i], want[i])
		}
	}
}

func TestClassifierExitsUpWhenDwellExpires(t *testing.T) {
	levels := []float64{0, 0, 0.3, 0.3, 0.3, 0.02, 0.02}
	c := NewClassifier(DefaultThresholds())
	zones := feed(c, levels, 125*time.Millisecond)

	for i := 2; i < 6; i++ {
		if zones[i] != ZoneUp {
			t.Errorf("sample %d: zone %v, want up", i+1, zones[i])
		}
	}
	// Dwell set at sample 3 reaches zero after four 125ms ticks
	if zones[6] != ZoneDown {
		t.Errorf("sample 7: zone %v, want down", zones[6])
	}
}

func TestClassifierUpHysteresisProperty(t *testing.T) {
	th := DefaultThresholds()
	c := NewClassifier(th)
	c.Update(0.5, 10*time.Millisecond)
	if c.Zone() != ZoneUp {
		t.Fatalf("expected up after loud input, got %v", c.Zone())
	}

	// Oscillate strictly between exit and entry for ten dwell periods
	for i := 0; i < 1000; i++ {
		level := th.UpExit + 0.001
		if i%2 == 0 {
			level = th.UpEnter - 0.001
		}
		if z := c.Update(level, 5*time.Millisecond); z != ZoneUp {
			t.Fatalf("tick %d: left up at level %f", i, level)
		}
	}
}

func TestClassifierLeavesDownWithoutDwell(t *testing.T) {
	c := NewClassifier(DefaultThresholds())
	c.Update(0, time.Millisecond)
	if c.Zone() != ZoneDown {
		t.Fatalf("got %v, want down", c.Zone())
	}
	if c.Hold() != DefaultThresholds().Hold {
		t.Fatalf("dwell not reset on transition")
	}
	// Still inside the dwell window, speech must pull out of down immediately
	if z := c.Update(0.1, time.Millisecond); z != ZoneCenter {
		t.Errorf("got %v, want center", z)
	}
}

func TestClassifierCenterToDownNeedsDwell(t *testing.T) {
	th := DefaultThresholds()
	z, hold := Transition(ZoneCenter, 0, 100*time.Millisecond, th)
	if z != ZoneCenter || hold != 100*time.Millisecond {
		t.Errorf("center moved to %v with dwell pending", z)
	}
	z, hold = Transition(ZoneCenter, 0, 0, th)
	if z != ZoneDown || hold != th.Hold {
		t.Errorf("got (%v, %v), want (down, %v)", z, hold, th.Hold)
	}
}

func TestTransitionTable(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		name  string
		from  Zone
		level float64
		hold  time.Duration
		want  Zone
	}{
		{"center loud", ZoneCenter, 0.2, time.Second, ZoneUp},
		{"center mid", ZoneCenter, 0.1, 0, ZoneCenter},
		{"up to center", ZoneUp, 0.05, 0, ZoneCenter},
		{"up to down", ZoneUp, 0.01, 0, ZoneDown},
		{"up held", ZoneUp, 0.01, time.Millisecond, ZoneUp},
		{"down to up", ZoneDown, 0.5, time.Second, ZoneUp},
		{"down stays", ZoneDown, 0.06, 0, ZoneDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Transition(tt.from, tt.level, tt.hold, th)
			if got != tt.want {
				t.Errorf("Transition(%v, %.2f) = %v, want %v", tt.from, tt.level, got, tt.want)
			}
		})
	}
}

func TestZoneLane(t *testing.T) {
	if ZoneUp.Lane() != 0 || ZoneCenter.Lane() != 1 || ZoneDown.Lane() != 2 {
		t.Error("zone to lane mapping wrong")
	}
}
