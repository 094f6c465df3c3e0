package input

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/laaame/engine"
	"github.com/lixenwraith/laaame/event"
)

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func specialKey(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func types(evs []event.GameEvent) []event.EventType {
	out := make([]event.EventType, len(evs))
	for i, e := range evs {
		out[i] = e.Type
	}
	return out
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		phase engine.Phase
		want  []event.EventType
	}{
		{"arrow up", specialKey(tcell.KeyUp), engine.PhaseRunning, []event.EventType{event.EventLaneUp}},
		{"w up and typed", runeKey('w'), engine.PhaseRunning, []event.EventType{event.EventLaneUp, event.EventTyped}},
		{"s down and typed", runeKey('s'), engine.PhaseRunning, []event.EventType{event.EventLaneDown, event.EventTyped}},
		{"space dash", runeKey(' '), engine.PhaseRunning, []event.EventType{event.EventDash}},
		{"plain letter typed", runeKey('g'), engine.PhaseRunning, []event.EventType{event.EventTyped}},
		{"digit ignored", runeKey('7'), engine.PhaseRunning, nil},
		{"escape pauses", specialKey(tcell.KeyEscape), engine.PhaseRunning, []event.EventType{event.EventPause}},
		{"escape resumes", specialKey(tcell.KeyEscape), engine.PhasePaused, []event.EventType{event.EventResume}},
		{"no typing while paused", runeKey('g'), engine.PhasePaused, nil},
		{"retry after loss", runeKey('r'), engine.PhaseLost, []event.EventType{event.EventRetry}},
		{"enter retries after win", specialKey(tcell.KeyEnter), engine.PhaseWon, []event.EventType{event.EventRetry}},
		{"menu after loss", runeKey('q'), engine.PhaseLost, []event.EventType{event.EventMenu}},
		{"lane keys inert after loss", specialKey(tcell.KeyUp), engine.PhaseLost, nil},
		{"ctrl-c quits anywhere", specialKey(tcell.KeyCtrlC), engine.PhaseRunning, []event.EventType{event.EventQuit}},
		{"tab toggles theme", specialKey(tcell.KeyTab), engine.PhasePaused, []event.EventType{event.EventToggleTheme}},
		{"f2 toggles debug while running", specialKey(tcell.KeyF2), engine.PhaseRunning, []event.EventType{event.EventToggleDebug}},
		{"f2 toggles debug after loss", specialKey(tcell.KeyF2), engine.PhaseLost, []event.EventType{event.EventToggleDebug}},
	}

	m := NewMachine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Translate(tt.ev, tt.phase, nil)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(types(got), tt.want) {
				t.Errorf("got %v, want %v", types(got), tt.want)
			}
		})
	}
}

func TestTypedPayload(t *testing.T) {
	m := NewMachine()
	got := m.Translate(runeKey('A'), engine.PhaseRunning, nil)
	if len(got) != 1 || got[0].Payload != 'A' {
		t.Fatalf("got %+v", got)
	}
}

func TestTranslateAppends(t *testing.T) {
	m := NewMachine()
	buf := make([]event.GameEvent, 0, 4)
	buf = m.Translate(specialKey(tcell.KeyUp), engine.PhaseRunning, buf)
	buf = m.Translate(specialKey(tcell.KeyDown), engine.PhaseRunning, buf)
	if !reflect.DeepEqual(types(buf), []event.EventType{event.EventLaneUp, event.EventLaneDown}) {
		t.Errorf("got %v", types(buf))
	}
}
