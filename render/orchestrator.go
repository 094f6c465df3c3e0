package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/laaame/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	canvas    *Canvas
	palette   *Palette
	renderers []rendererEntry
	regCount  int
	frame     int64
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		canvas:    NewCanvas(screen),
		palette:   &Day,
		renderers: make([]rendererEntry, 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize refreshes the canvas size and syncs the screen
func (o *RenderOrchestrator) Resize() {
	o.canvas.Resize()
	o.screen.Sync()
}

// ToggleTheme switches between the day and night palettes
func (o *RenderOrchestrator) ToggleTheme() {
	o.palette = o.palette.Toggle()
}

func (o *RenderOrchestrator) Palette() *Palette { return o.palette }

// RenderFrame executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) RenderFrame(snap *engine.Snapshot) {
	o.frame++
	w, h := o.canvas.Size()

	view := NewViewport(w, h, snap.Width, snap.Height).Shaken(snap.Shake, o.frame)
	ctx := RenderContext{
		Snap:         snap,
		View:         view,
		Palette:      o.palette,
		Frame:        o.frame,
		ScreenWidth:  w,
		ScreenHeight: h,
	}

	o.canvas.Clear(o.palette.Style(o.palette.Text))

	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.canvas)
	}

	o.screen.Show()
}
