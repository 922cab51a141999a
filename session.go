package resizable

import (
	"fmt"
	"math"
	"slices"

	"github.com/felixgeelhaar/statekit"
	"github.com/sirupsen/logrus"
)

// Drag session states and events.
const (
	stateIdle     = "idle"
	stateResizing = "resizing"

	eventResizeStart = "RESIZE_START"
	eventResizeEnd   = "RESIZE_END"
)

// dragContext is the statekit context of the drag machine. The session data
// itself lives on the Group under its lock.
type dragContext struct{}

func newDragMachine() (*statekit.Interpreter[dragContext], error) {
	machine, err := statekit.NewMachine[dragContext]("resizable-drag").
		WithInitial(stateIdle).
		WithContext(dragContext{}).
		State(stateIdle).
		On(eventResizeStart).Target(stateResizing).Done().
		State(stateResizing).
		On(eventResizeEnd).Target(stateIdle).Done().
		Build()
	if err != nil {
		return nil, err
	}

	interp := statekit.NewInterpreter(machine)
	interp.Start()
	return interp, nil
}

// Resizing reports whether a drag session is in progress.
func (g *Group) Resizing() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.resizingLocked()
}

func (g *Group) resizingLocked() bool {
	return g.drag.State().Value == stateResizing
}

// StartResize begins a drag session on boundary, the seam between panel
// boundary and panel boundary+1.
func (g *Group) StartResize(boundary int) error {
	g.mu.Lock()
	calls, err := g.startResizeLocked(boundary)
	g.mu.Unlock()

	emit(calls)
	return err
}

func (g *Group) startResizeLocked(boundary int) ([]func(), error) {
	if g.disabled {
		return nil, ErrDisabled
	}
	if g.resizingLocked() {
		return nil, ErrAlreadyResizing
	}
	if boundary < 0 || boundary >= len(g.panels)-1 {
		return nil, fmt.Errorf("%w: %d with %d panels", ErrInvalidBoundary, boundary, len(g.panels))
	}
	for _, p := range g.panels[boundary : boundary+2] {
		if !p.Resizable {
			return nil, fmt.Errorf("%w: %s", ErrPanelNotResizable, p.ID)
		}
	}

	g.boundary = boundary
	g.drag.Send(statekit.Event{Type: eventResizeStart})
	g.log.WithField("boundary", boundary).Debug("resize start")

	if g.onResizeStart == nil {
		return nil, nil
	}
	fn := g.onResizeStart
	return []func(){func() { fn(boundary) }}, nil
}

// Resize moves the active boundary by delta percentage units and returns the
// new sizes. A positive delta grows the panel before the boundary; the
// group's reverse and RTL settings are not applied here (see ResizePixels).
func (g *Group) Resize(delta float64) ([]float64, error) {
	g.mu.Lock()
	sizes, calls, err := g.resizeLocked(delta)
	g.mu.Unlock()

	emit(calls)
	return sizes, err
}

// ResizePixels converts a screen-space pointer movement of px out of a
// group extent of extent pixels into a percentage delta, orients it for
// reverse and RTL, and applies it like Resize.
func (g *Group) ResizePixels(px, extent int) ([]float64, error) {
	if extent <= 0 {
		return nil, fmt.Errorf("%w: extent %d", ErrInvalidInput, extent)
	}

	g.mu.Lock()
	delta := g.orientLocked(PixelsToPercent(px, extent))
	sizes, calls, err := g.resizeLocked(delta)
	g.mu.Unlock()

	emit(calls)
	return sizes, err
}

func (g *Group) resizeLocked(delta float64) ([]float64, []func(), error) {
	if !g.resizingLocked() {
		return nil, nil, ErrNotResizing
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return nil, nil, fmt.Errorf("%w: delta %v", ErrInvalidInput, delta)
	}

	prev := g.sizes
	g.sizes = g.policy.Adjust(prev, g.boundary, delta, g.constraintsLocked())
	g.controlled = nil

	g.log.WithFields(logrus.Fields{
		"boundary": g.boundary,
		"delta":    delta,
		"sizes":    g.sizes,
	}).Debug("resize")

	calls := g.transitionsLocked(prev, g.sizes)
	if g.onResize != nil {
		fn, sizes := g.onResize, slices.Clone(g.sizes)
		calls = append(calls, func() { fn(sizes) })
	}
	calls = append(calls, g.changedLocked()...)
	return slices.Clone(g.sizes), calls, nil
}

// EndResize finishes the drag session and persists the sizes. The session
// ends even if saving fails; the save error is returned.
func (g *Group) EndResize() error {
	g.mu.Lock()
	calls, err := g.endResizeLocked()
	g.mu.Unlock()

	emit(calls)
	return err
}

func (g *Group) endResizeLocked() ([]func(), error) {
	if !g.resizingLocked() {
		return nil, ErrNotResizing
	}

	g.drag.Send(statekit.Event{Type: eventResizeEnd})
	g.log.WithFields(logrus.Fields{"boundary": g.boundary, "sizes": g.sizes}).Debug("resize end")

	var calls []func()
	if g.onResizeEnd != nil {
		fn, sizes := g.onResizeEnd, slices.Clone(g.sizes)
		calls = append(calls, func() { fn(sizes) })
	}
	return calls, g.saveLocked()
}

// orientLocked maps a screen-space delta to a layout delta.
func (g *Group) orientLocked(delta float64) float64 {
	if g.reverse {
		delta = -delta
	}
	if g.rtl && g.direction == Horizontal {
		delta = -delta
	}
	return delta
}

// PixelsToPercent converts px out of extent pixels to percentage units.
func PixelsToPercent(px, extent int) float64 {
	if extent <= 0 {
		return 0
	}
	return float64(px) / float64(extent) * Total
}
