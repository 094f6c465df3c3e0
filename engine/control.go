package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/laaame/event"
	"github.com/lixenwraith/laaame/status"
)

// ControlMode selects the lane input channel
type ControlMode uint8

const (
	ModeKeyboard ControlMode = iota
	ModeVoice
)

func (m ControlMode) String() string {
	if m == ModeVoice {
		return "voice"
	}
	return "keyboard"
}

// AmplitudeSource is an open capture handle
// Read copies the latest analysis window into dst without blocking and returns the samples copied
type AmplitudeSource interface {
	Read(dst []float32) int
	Close() error
}

// CaptureOpener acquires a fresh capture handle
type CaptureOpener func() (AmplitudeSource, error)

var ErrNoCapture = errors.New("no capture opener configured")

// control exclusively owns the capture handle; a handle is never reused after release
type control struct {
	want   ControlMode
	open   CaptureOpener
	source AmplitudeSource
	reason string // Last fallback reason, empty when voice is live
}

// SetControlMode switches lane input; voice acquires capture and falls back to keyboard on failure
// Run state is never touched beyond resetting the mic pipeline
func (g *Game) SetControlMode(m ControlMode) error {
	g.ctl.want = m
	defer g.publishControl()

	if m == ModeKeyboard {
		g.releaseCapture()
		g.s.ResetMic()
		g.s.Emit(event.EventControlMode, false)
		return nil
	}

	if g.ctl.source != nil {
		return nil
	}
	if err := g.acquireCapture(); err != nil {
		g.s.Emit(event.EventControlMode, false)
		return err
	}
	g.s.ResetMic()
	g.s.Emit(event.EventControlMode, true)
	return nil
}

// ControlMode returns the active mode; voice requested without a handle reads as keyboard
func (g *Game) ControlMode() ControlMode {
	if g.ctl.source != nil {
		return ModeVoice
	}
	return ModeKeyboard
}

func (g *Game) acquireCapture() error {
	if g.ctl.open == nil {
		g.ctl.reason = ErrNoCapture.Error()
		g.log.Warn().Err(ErrNoCapture).Msg("voice control unavailable, staying on keyboard")
		return ErrNoCapture
	}
	src, err := g.ctl.open()
	if err != nil {
		g.ctl.reason = err.Error()
		g.log.Warn().Err(err).Msg("capture open failed, falling back to keyboard")
		return fmt.Errorf("open capture: %w", err)
	}
	g.ctl.source = src
	g.ctl.reason = ""
	g.s.Voice = true
	g.log.Info().Msg("voice control active")
	return nil
}

// releaseCapture stops the stream and drops the handle and analysis buffer contents
func (g *Game) releaseCapture() {
	g.s.Voice = false
	if g.ctl.source == nil {
		return
	}
	if err := g.ctl.source.Close(); err != nil {
		g.log.Warn().Err(err).Msg("capture close failed")
	}
	g.ctl.source = nil
	clear(g.s.Samples)
	g.log.Info().Msg("capture released")
}

// readCapture copies this tick's window; a short read leaves the previous tail in place
func (g *Game) readCapture() {
	if g.ctl.source == nil {
		return
	}
	g.ctl.source.Read(g.s.Samples)
}

func (g *Game) publishControl() {
	if g.reg == nil {
		return
	}
	g.reg.Strings.Get(status.KeyControlMode).Store(g.ControlMode().String())
	g.reg.Strings.Get(status.KeyFallback).Store(g.ctl.reason)
}
