package engine

// Phase is the run state
type Phase uint8

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseRunning
	PhasePaused
	PhaseWon
	PhaseLost
)

var phaseNames = [...]string{
	PhaseLoading: "loading",
	PhaseReady:   "ready",
	PhaseRunning: "running",
	PhasePaused:  "paused",
	PhaseWon:     "won",
	PhaseLost:    "lost",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "invalid"
}

// Terminal reports won or lost
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// transitions lists the allowed edges; Start re-enters running from ready or a terminal phase
var transitions = map[Phase][]Phase{
	PhaseLoading: {PhaseReady},
	PhaseReady:   {PhaseRunning},
	PhaseRunning: {PhasePaused, PhaseWon, PhaseLost, PhaseReady},
	PhasePaused:  {PhaseRunning, PhaseReady},
	PhaseWon:     {PhaseRunning, PhaseReady},
	PhaseLost:    {PhaseRunning, PhaseReady},
}

// CanTransition reports whether from → to is an edge of the state machine
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
