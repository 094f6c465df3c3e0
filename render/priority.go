package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityLanes
	PriorityCollectible
	PriorityObstacle
	PriorityProjectile
	PriorityPlayer
	PriorityParticle
	PriorityPopup
	PriorityUI
	PriorityOverlay
	PriorityDebug
)
