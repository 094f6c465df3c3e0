package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/laaame/audio"
	"github.com/lixenwraith/laaame/constant"
	"github.com/lixenwraith/laaame/core"
	"github.com/lixenwraith/laaame/engine"
	"github.com/lixenwraith/laaame/event"
	"github.com/lixenwraith/laaame/input"
	"github.com/lixenwraith/laaame/render"
	"github.com/lixenwraith/laaame/render/renderers"
	"github.com/lixenwraith/laaame/status"
)

// frontend owns the terminal side of a session: screen, input poller, frame loop
type frontend struct {
	game  *engine.Game
	sound *audio.SoundManager
	reg   *status.Registry
	debug bool
}

// play runs tier on a fresh screen until the player quits or goes back to the menu
// Returns true when the program should exit
func (f *frontend) play(ctx context.Context, tier string) (bool, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return false, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return false, fmt.Errorf("init screen: %w", err)
	}
	finish := sync.OnceFunc(screen.Fini)
	defer finish()

	// Restore the terminal before printing any crash from a frame or poller goroutine
	core.SetCrashHandler(func(r any) {
		finish()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mLAAAME CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})
	defer core.SetCrashHandler(nil)
	screen.HideCursor()

	orch, dbg := renderers.NewDefaultOrchestrator(screen, f.reg, f.debug)
	queue := event.NewEventQueue()

	var phase atomic.Uint32
	var resized atomic.Bool
	phase.Store(uint32(f.game.Phase()))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer recoverCrash()
		return poll(screen, input.NewMachine(), queue, &phase, &resized)
	})

	var quit bool
	g.Go(func() error {
		defer recoverCrash()
		// Fini unblocks the poller
		defer finish()
		var err error
		quit, err = f.frames(ctx, orch, dbg, queue, &phase, &resized, tier)
		return err
	})

	err = g.Wait()
	return quit, err
}

func recoverCrash() {
	if r := recover(); r != nil {
		core.HandleCrash(r)
	}
}

// poll translates terminal events against the last published phase and queues the intents
func poll(screen tcell.Screen, m *input.Machine, q *event.EventQueue, phase *atomic.Uint32, resized *atomic.Bool) error {
	var buf []event.GameEvent
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			resized.Store(true)
		case *tcell.EventKey:
			buf = m.Translate(ev, engine.Phase(phase.Load()), buf[:0])
			for _, ge := range buf {
				q.Push(ge)
			}
		}
	}
}

// frames drives the game at FrameInterval: intents, tick, effects, render
func (f *frontend) frames(ctx context.Context, orch *render.RenderOrchestrator, dbg *renderers.DebugRenderer,
	q *event.EventQueue, phase *atomic.Uint32, resized *atomic.Bool, tier string) (bool, error) {
	ticker := time.NewTicker(constant.FrameInterval)
	defer ticker.Stop()

	game := f.game
	clock := engine.NewFrameClock(engine.NewTimeProvider())
	var (
		pending []event.GameEvent
		snap    engine.Snapshot
		started bool
	)

	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}

		pending = q.Drain(pending[:0])
		for _, ev := range pending {
			switch ev.Type {
			case event.EventQuit:
				return true, nil
			case event.EventToggleMute:
				logger.Debug().Bool("muted", f.sound.ToggleMute()).Msg("mute")
			case event.EventToggleTheme, event.EventToggleDebug:
				frontendIntent(ev.Type, orch, dbg)
			default:
				game.Handle(ev)
			}
		}

		if game.Phase() == engine.PhaseReady {
			// Ready after a run means the player chose the menu
			if started {
				return false, nil
			}
			if err := game.Start(tier); err != nil {
				return false, err
			}
			started = true
			clock.Reset()
		}

		game.Tick(clock.Delta())
		for _, ev := range game.Effects() {
			f.effect(ev)
		}
		phase.Store(uint32(game.Phase()))

		if resized.Swap(false) {
			orch.Resize()
		}
		publishAudio(f.reg, f.sound)
		game.Snapshot(&snap)
		orch.RenderFrame(&snap)
	}
}

// publishAudio mirrors the sound manager state into the debug panel
func publishAudio(reg *status.Registry, sound *audio.SoundManager) {
	reg.Bools.Get(status.KeyAudioReady).Store(sound.Ready())
	reg.Ints.Get(status.KeyAudioPlays).Store(sound.Plays())
}

// frontendIntent applies the display intents the game leaves unconsumed
func frontendIntent(t event.EventType, orch *render.RenderOrchestrator, dbg *renderers.DebugRenderer) {
	switch t {
	case event.EventToggleTheme:
		orch.ToggleTheme()
	case event.EventToggleDebug:
		dbg.Toggle()
	}
}

// effect routes one tick loop notification
func (f *frontend) effect(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPhrase:
		logger.Debug().Interface("text", ev.Payload).Msg("phrase")
	case event.EventOutcome:
		if out, ok := ev.Payload.(engine.Outcome); ok {
			logger.Info().
				Str("run", out.RunID.String()).
				Stringer("result", out.Result).
				Str("tier", out.Tier).
				Int("score", out.Score).
				Bool("new_best", out.NewBest).
				Str("unlocked", out.Unlocked).
				Msg("run finished")
		}
	case event.EventControlMode:
		logger.Info().Interface("voice", ev.Payload).Msg("control mode")
	default:
		f.sound.Handle(ev)
	}
}
