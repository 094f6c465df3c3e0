package constant

// System execution priorities (lower runs first)
// Order is part of the replay contract: dash timers before collision, narration after scoring
const (
	PriorityScore     = 10
	PriorityNarration = 20
	PriorityDash      = 30
	PriorityPlayer    = 40
	PriorityVoice     = 50
	PriorityTrail     = 60
	PrioritySpawn     = 70
	PriorityMotion    = 80
	PriorityCollision = 90
	PriorityEffect    = 100
)
