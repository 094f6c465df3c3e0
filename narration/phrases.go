package narration

// Pool selects a phrase list by mood
type Pool uint8

const (
	PoolNormal Pool = iota
	PoolConfident
	PoolFrustrated
	PoolCount
)

func (p Pool) String() string {
	switch p {
	case PoolConfident:
		return "confident"
	case PoolFrustrated:
		return "frustrated"
	default:
		return "normal"
	}
}

// Phrases is indexed by Pool
var Phrases = [PoolCount][]string{
	PoolNormal: {
		"Let's get down to brass tacks!",
		"I'm a lawyer, not a runner!",
		"The wheels of justice!",
		"Did you know you have rights?",
		"Better call... ME!",
		"Lightning won't strike twice!",
		"I'm like a cockroach!",
		"That's showmanship, baby!",
		"The law is sacred!",
		"I just talk my way out!",
		"Winners don't quit!",
		"Justice never sleeps!",
		"My middle name is Hustle!",
		"The truth is on my side!",
	},
	PoolConfident: {
		"I'm on FIRE!",
		"Can't touch this!",
		"Too fast, too furious!",
		"Unstoppable!",
		"I was born for this!",
		"This? This is nothing!",
		"You want it? I got it!",
		"Can't stop, won't stop!",
		"Objection! ...to losing!",
	},
	PoolFrustrated: {
		"Not again!",
		"I need a better lawyer!",
		"This is rigged!",
		"Okay okay, focus Jimmy...",
		"Third time's the charm... right?",
		"The system is broken!",
		"I've had tougher juries!",
		"Pain is temporary!",
	},
}

// Milestone is a score threshold with its one-time phrase
type Milestone struct {
	Score  int
	Phrase string
}

// Milestones is sorted by Score
var Milestones = []Milestone{
	{200, "Now we're cooking!"},
	{500, "Halfway to glory!"},
	{1000, "A thousand! Who's counting?"},
	{2000, "Two grand! Cha-ching!"},
	{3000, "Almost there, baby!"},
	{5000, "Five K! I'm unstoppable!"},
	{10000, "Ten thousand! Legend!"},
	{20000, "Twenty K! They can't catch me!"},
	{30000, "Thirty thousand! S'all GOOD!"},
	{50000, "FIFTY K! I'm IMMORTAL!"},
	{75000, "Seventy-five K! This is insanity!"},
	{90000, "Ninety K! The finish line!"},
}

// Forced phrases
const (
	PickupPhrase = "Better Call Saul!"
	TypedPhrase  = "S'all good, man!"
)

// TypedTriggers are the letter sequences that end the run in a win
var TypedTriggers = []string{"saulgoodman", "sallgoodman", "itsgoodman", "allgoodman"}
