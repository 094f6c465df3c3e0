// Package capture streams microphone samples from the default input device
package capture

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/engine"
	"github.com/lixenwraith/laaame/status"
)

var ErrUnavailable = errors.New("microphone unavailable")

// framesPerBuffer is the driver callback size; one callback fills one analysis window
const framesPerBuffer = constant.MicBufferSize

// Stream is an open capture handle; it is closed once and never reopened
type Stream struct {
	window *Window
	reg    *status.Registry
	stream *portaudio.Stream

	closeOnce sync.Once
	closeErr  error
}

// Open initializes the host API and starts a mono stream on the default input device
func Open(reg *status.Registry) (*Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: initialize: %v", ErrUnavailable, err)
	}

	s := &Stream{
		window: NewWindow(constant.MicBufferSize),
		reg:    reg,
	}
	stream, err := portaudio.OpenDefaultStream(1, 0, constant.MicSampleRate, framesPerBuffer, s.callback)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: open input stream: %v", ErrUnavailable, err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: start input stream: %v", ErrUnavailable, err)
	}
	s.stream = stream
	s.publishOpen(true)
	return s, nil
}

// Opener adapts Open to the engine's capture factory
func Opener(reg *status.Registry) engine.CaptureOpener {
	return func() (engine.AmplitudeSource, error) {
		s, err := Open(reg)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

func (s *Stream) callback(in []float32) {
	s.window.Write(in)
	if s.reg != nil {
		s.reg.Ints.Get(status.KeyCaptureReads).Add(1)
	}
}

// Read copies the latest analysis window without blocking on the driver
func (s *Stream) Read(dst []float32) int {
	return s.window.Read(dst)
}

// Close stops the stream and releases the host API
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		var errs []error
		if err := s.stream.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop: %w", err))
		}
		if err := s.stream.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close: %w", err))
		}
		if err := portaudio.Terminate(); err != nil {
			errs = append(errs, fmt.Errorf("terminate: %w", err))
		}
		s.window.Reset()
		s.publishOpen(false)
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}

func (s *Stream) publishOpen(open bool) {
	if s.reg != nil {
		s.reg.Bools.Get(status.KeyCaptureOpen).Store(open)
	}
}
