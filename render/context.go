package render

import "github.com/lixenwraith/laaame/engine"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snap    *engine.Snapshot
	View    Viewport
	Palette *Palette
	Frame   int64

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}
