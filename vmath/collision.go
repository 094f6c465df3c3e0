package vmath

// Box is a rectangle described by its center and full extents
type Box struct {
	X, Y float64
	W, H float64
}

// Scaled shrinks or grows the extents around the same center
func (b Box) Scaled(sw, sh float64) Box {
	return Box{X: b.X, Y: b.Y, W: b.W * sw, H: b.H * sh}
}

// Overlap is the centered AABB test: both axis projections must intersect
// Touching edges do not count as overlap
func Overlap(a, b Box) bool {
	return a.X-a.W/2 < b.X+b.W/2 &&
		a.X+a.W/2 > b.X-b.W/2 &&
		a.Y-a.H/2 < b.Y+b.H/2 &&
		a.Y+a.H/2 > b.Y-b.H/2
}
