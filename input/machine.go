package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/laaame/engine"
	"github.com/lixenwraith/laaame/event"
)

// Machine translates key events against the current phase
type Machine struct {
	keyTable *KeyTable
}

func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Translate appends the intents produced by ev to dst
// A letter in a typing phase yields its bound intent, if any, followed by EventTyped
func (m *Machine) Translate(ev *tcell.EventKey, phase engine.Phase, dst []event.GameEvent) []event.GameEvent {
	if t, ok := m.keyTable.Global.lookup(ev); ok {
		return append(dst, event.GameEvent{Type: t})
	}

	if b, ok := m.keyTable.Phases[phase]; ok {
		if t, ok := b.lookup(ev); ok {
			dst = append(dst, event.GameEvent{Type: t})
		}
	}

	if m.keyTable.TypedPhases[phase] && ev.Key() == tcell.KeyRune && isLetter(ev.Rune()) {
		dst = append(dst, event.GameEvent{Type: event.EventTyped, Payload: ev.Rune()})
	}
	return dst
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
