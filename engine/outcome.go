package engine

import "github.com/google/uuid"

// Result is the terminal kind of a run
type Result uint8

const (
	ResultLost Result = iota
	ResultWon
)

func (r Result) String() string {
	if r == ResultWon {
		return "won"
	}
	return "lost"
}

// Outcome is the terminal report of one run
type Outcome struct {
	RunID    uuid.UUID
	Result   Result
	Tier     string
	Score    int
	Best     int
	NewBest  bool
	Unlocked string // Tier newly unlocked by this win, empty otherwise
	Final    bool   // Won the last tier
	Deaths   int
}
