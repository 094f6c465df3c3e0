package event

// EventType represents the type of game event
type EventType int

const (
	// === Input Intent ===
	// Producer: input poller goroutine | Consumer: engine.Game.Handle

	// EventLaneUp steps the player one lane up | Payload: nil
	EventLaneUp EventType = iota

	// EventLaneDown steps the player one lane down | Payload: nil
	EventLaneDown

	// EventDash requests a dash | Payload: nil
	EventDash

	// EventPause freezes a running run | Payload: nil
	EventPause

	// EventResume continues a paused run | Payload: nil
	EventResume

	// EventRetry restarts the current tier after won/lost | Payload: nil
	EventRetry

	// EventMenu discards the run | Payload: nil
	EventMenu

	// EventToggleVoice switches keyboard and voice control | Payload: nil
	EventToggleVoice

	// EventToggleMute flips audio mute | Payload: nil
	EventToggleMute

	// EventToggleTheme flips the day/night palette | Payload: nil
	EventToggleTheme

	// EventToggleDebug shows or hides the metrics panel | Payload: nil
	EventToggleDebug

	// EventTyped carries a typed letter for the phrase trigger | Payload: rune
	EventTyped

	// EventQuit exits the program | Payload: nil
	EventQuit

	// === Effect Notification ===
	// Producer: tick loop | Consumer: frontend via engine.Game.Effects

	// EventSound requests a one-shot cue | Payload: Sound
	EventSound EventType = iota + 100

	// EventMusicStart begins the in-game loop | Payload: nil
	EventMusicStart

	// EventMusicPause pauses the loop | Payload: nil
	EventMusicPause

	// EventMusicResume resumes the loop | Payload: nil
	EventMusicResume

	// EventMusicStop halts the loop | Payload: nil
	EventMusicStop

	// EventPhrase announces a displayed phrase | Payload: string
	EventPhrase

	// EventOutcome reports a terminal transition | Payload: engine.Outcome
	EventOutcome

	// EventControlMode reports the active control mode | Payload: bool (true = voice)
	EventControlMode
)

var typeNames = map[EventType]string{
	EventLaneUp:      "lane_up",
	EventLaneDown:    "lane_down",
	EventDash:        "dash",
	EventPause:       "pause",
	EventResume:      "resume",
	EventRetry:       "retry",
	EventMenu:        "menu",
	EventToggleVoice: "toggle_voice",
	EventToggleMute:  "toggle_mute",
	EventToggleTheme: "toggle_theme",
	EventToggleDebug: "toggle_debug",
	EventTyped:       "typed",
	EventQuit:        "quit",
	EventSound:       "sound",
	EventMusicStart:  "music_start",
	EventMusicPause:  "music_pause",
	EventMusicResume: "music_resume",
	EventMusicStop:   "music_stop",
	EventPhrase:      "phrase",
	EventOutcome:     "outcome",
	EventControlMode: "control_mode",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsEffect reports whether the event flows out of the tick loop
func (t EventType) IsEffect() bool {
	return t >= EventSound
}

// Sound identifies a one-shot cue
type Sound uint8

const (
	SoundCaseFile Sound = iota
	SoundHammer
	SoundGun
	SoundPickup
	SoundDash
	SoundCount
)

func (s Sound) String() string {
	switch s {
	case SoundCaseFile:
		return "case_file"
	case SoundHammer:
		return "hammer"
	case SoundGun:
		return "gun"
	case SoundPickup:
		return "pickup"
	case SoundDash:
		return "dash"
	default:
		return "unknown"
	}
}

// GameEvent is the unit carried by the queue
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
