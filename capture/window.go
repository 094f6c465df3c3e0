package capture

import "sync"

// Window keeps the most recent samples written by the audio callback
// Writes come from the driver thread; reads come from the tick loop
type Window struct {
	mu    sync.Mutex
	buf   []float32
	head  int // Next write position
	count int // Valid samples, saturates at len(buf)
}

func NewWindow(size int) *Window {
	return &Window{buf: make([]float32, size)}
}

// Size returns the window capacity
func (w *Window) Size() int { return len(w.buf) }

// Write appends in, overwriting the oldest samples
func (w *Window) Write(in []float32) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := len(w.buf)
	if len(in) >= n {
		copy(w.buf, in[len(in)-n:])
		w.head = 0
		w.count = n
		return
	}
	for _, s := range in {
		w.buf[w.head] = s
		w.head = (w.head + 1) % n
	}
	w.count = min(w.count+len(in), n)
}

// Read copies up to len(dst) of the newest samples into dst, oldest first
func (w *Window) Read(dst []float32) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := min(len(dst), w.count)
	size := len(w.buf)
	start := (w.head - n + size) % size
	for i := 0; i < n; i++ {
		dst[i] = w.buf[(start+i)%size]
	}
	return n
}

// Reset drops every buffered sample
func (w *Window) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	clear(w.buf)
	w.head = 0
	w.count = 0
}
