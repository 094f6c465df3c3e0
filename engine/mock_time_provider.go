package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a controllable Clock for tests
// Safe for a test goroutine to advance while the frame loop reads
type MockTimeProvider struct {
	nanos atomic.Int64
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.SetTime(start)
	return m
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	return time.Unix(0, m.nanos.Load())
}

func (m *MockTimeProvider) SetTime(t time.Time) {
	m.nanos.Store(t.UnixNano())
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.nanos.Add(int64(d))
}
