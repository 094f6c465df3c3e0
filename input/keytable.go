// Package input maps terminal key events to game intents
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/laaame/engine"
	"github.com/lixenwraith/laaame/event"
)

// Binding maps special keys and runes to one intent each
type Binding struct {
	Keys  map[tcell.Key]event.EventType
	Runes map[rune]event.EventType
}

func (b Binding) lookup(ev *tcell.EventKey) (event.EventType, bool) {
	if ev.Key() == tcell.KeyRune {
		t, ok := b.Runes[ev.Rune()]
		return t, ok
	}
	t, ok := b.Keys[ev.Key()]
	return t, ok
}

// KeyTable holds the always-active bindings and one binding set per phase
type KeyTable struct {
	Global Binding
	Phases map[engine.Phase]Binding

	// TypedPhases feed letters to the typed phrase detector in addition to any bound intent
	TypedPhases map[engine.Phase]bool
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Global: Binding{
			Keys: map[tcell.Key]event.EventType{
				tcell.KeyCtrlC: event.EventQuit,
				tcell.KeyCtrlQ: event.EventQuit,
				tcell.KeyTab:   event.EventToggleTheme,
				tcell.KeyF2:    event.EventToggleDebug,
			},
		},
		Phases: map[engine.Phase]Binding{
			engine.PhaseLoading: {
				Keys:  map[tcell.Key]event.EventType{tcell.KeyEscape: event.EventQuit},
				Runes: map[rune]event.EventType{'q': event.EventQuit},
			},
			engine.PhaseReady: {
				Keys:  map[tcell.Key]event.EventType{tcell.KeyEscape: event.EventQuit},
				Runes: map[rune]event.EventType{'q': event.EventQuit},
			},
			engine.PhaseRunning: {
				Keys: map[tcell.Key]event.EventType{
					tcell.KeyUp:     event.EventLaneUp,
					tcell.KeyDown:   event.EventLaneDown,
					tcell.KeyEscape: event.EventPause,
				},
				Runes: map[rune]event.EventType{
					'w': event.EventLaneUp,
					'W': event.EventLaneUp,
					'k': event.EventLaneUp,
					's': event.EventLaneDown,
					'S': event.EventLaneDown,
					'j': event.EventLaneDown,
					' ': event.EventDash,
					'p': event.EventPause,
					'm': event.EventToggleMute,
					'v': event.EventToggleVoice,
				},
			},
			engine.PhasePaused: {
				Keys: map[tcell.Key]event.EventType{
					tcell.KeyEscape: event.EventResume,
				},
				Runes: map[rune]event.EventType{
					'p': event.EventResume,
					'q': event.EventMenu,
					'm': event.EventToggleMute,
					'v': event.EventToggleVoice,
				},
			},
			engine.PhaseWon:  terminalBinding(),
			engine.PhaseLost: terminalBinding(),
		},
		TypedPhases: map[engine.Phase]bool{engine.PhaseRunning: true},
	}
}

func terminalBinding() Binding {
	return Binding{
		Keys: map[tcell.Key]event.EventType{
			tcell.KeyEnter:  event.EventRetry,
			tcell.KeyEscape: event.EventMenu,
		},
		Runes: map[rune]event.EventType{
			'r': event.EventRetry,
			'q': event.EventMenu,
			'm': event.EventToggleMute,
			'v': event.EventToggleVoice,
		},
	}
}
