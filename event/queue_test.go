package event

import (
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	if q.Consume() != nil {
		t.Fatal("empty queue returned events")
	}
	q.Emit(EventLaneUp)
	q.Push(GameEvent{Type: EventTyped, Payload: 's'})
	q.Emit(EventDash)

	got := q.Consume()
	want := []EventType{EventLaneUp, EventTyped, EventDash}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Type != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i].Type, want[i])
		}
	}
	if r, ok := got[1].Payload.(rune); !ok || r != 's' {
		t.Errorf("payload = %v", got[1].Payload)
	}
	if q.Len() != 0 {
		t.Errorf("len after consume = %d", q.Len())
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < QueueSize+10; i++ {
		q.Push(GameEvent{Type: EventLaneDown, Frame: int64(i)})
	}
	if q.Len() != QueueSize {
		t.Fatalf("len = %d", q.Len())
	}
	got := q.Consume()
	if len(got) != QueueSize {
		t.Fatalf("consumed %d", len(got))
	}
	if got[0].Frame != 10 || got[len(got)-1].Frame != QueueSize+9 {
		t.Errorf("frames %d..%d", got[0].Frame, got[len(got)-1].Frame)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers, each = 4, 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				q.Emit(EventDash)
			}
		}()
	}
	wg.Wait()

	if n := len(q.Drain(nil)); n != producers*each {
		t.Errorf("drained %d, want %d", n, producers*each)
	}
}

func TestDrainReusesBuffer(t *testing.T) {
	q := NewEventQueue()
	buf := make([]GameEvent, 0, 8)
	q.Emit(EventPause)
	buf = q.Drain(buf[:0])
	if len(buf) != 1 || buf[0].Type != EventPause {
		t.Fatalf("drain = %v", buf)
	}
	q.Emit(EventResume)
	buf = q.Drain(buf[:0])
	if len(buf) != 1 || buf[0].Type != EventResume {
		t.Fatalf("second drain = %v", buf)
	}
}

func TestTypeClassification(t *testing.T) {
	if EventQuit.IsEffect() || !EventSound.IsEffect() || !EventControlMode.IsEffect() {
		t.Error("effect classification wrong")
	}
	if EventPhrase.String() != "phrase" || EventType(-1).String() != "unknown" {
		t.Error("names wrong")
	}
}
