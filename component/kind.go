package component

// Kind is the closed set of obstacle types
type Kind uint8

const (
	KindCaseFiles Kind = iota
	KindHammer
	KindGun
	KindCount
)

// KindDescriptor is the uniform per-kind table entry
type KindDescriptor struct {
	Name      string
	Width     float64
	Height    float64
	SpeedMult float64 // Relative to current run speed
	Shoots    bool    // Fires projectiles on its own timer
}

// Kinds is indexed by Kind
var Kinds = [KindCount]KindDescriptor{
	KindCaseFiles: {Name: "caseFiles", Width: 60, Height: 50, SpeedMult: 1.0},
	KindHammer:    {Name: "hammer", Width: 45, Height: 55, SpeedMult: 1.6},
	KindGun:       {Name: "gun", Width: 55, Height: 35, SpeedMult: 1.3, Shoots: true},
}

// Valid reports whether k indexes the descriptor table
func (k Kind) Valid() bool {
	return k < KindCount
}

// Descriptor returns the table entry; callers must check Valid first
func (k Kind) Descriptor() KindDescriptor {
	return Kinds[k]
}

func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return Kinds[k].Name
}
