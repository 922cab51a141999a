package resizable

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/felixgeelhaar/statekit"
	"github.com/google/uuid"
	"github.com/grindlemire/go-resizable/internal/layout"
	"github.com/grindlemire/go-resizable/pkg/debug"
	"github.com/sirupsen/logrus"
)

// Storage persists a group's size vector between sessions.
type Storage interface {
	// Load returns the sizes saved for id. ok is false if nothing was saved.
	Load(id string) (sizes []float64, ok bool, err error)

	// Save stores sizes for id, replacing any previous value.
	Save(id string, sizes []float64) error
}

// Group owns the size vector of an ordered set of panels.
//
// All methods are safe for concurrent use; calls are serialized so each
// delta is applied to the vector produced by the previous one. Callbacks run
// after the group's lock is released, on the calling goroutine.
type Group struct {
	mu sync.Mutex

	id        string
	direction Direction
	reverse   bool
	rtl       bool
	disabled  bool
	policy    Policy
	step      float64
	storage   Storage
	log       logrus.FieldLogger

	panels []*Panel
	sizes  []float64

	// controlled holds sizes set through WithSizes or SetSizes. They seed
	// distribution while the panel count matches and are dropped by a drag.
	controlled []float64

	drag     *statekit.Interpreter[dragContext]
	boundary int

	onResizeStart func(boundary int)
	onResize      func(sizes []float64)
	onResizeEnd   func(sizes []float64)
	onCollapse    func(panelID string)
	onExpand      func(panelID string)
	onChange      func(sizes []float64)
	onReorder     func(from, to int)
}

// NewGroup creates an empty group. Add panels with AddPanel.
func NewGroup(opts ...GroupOption) (*Group, error) {
	g := &Group{
		direction: Horizontal,
		policy:    DefaultPolicy(),
		step:      DefaultKeyboardStep,
		log:       debug.Logger(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if g.id == "" {
		g.id = uuid.NewString()
	}
	g.log = g.log.WithField("group", g.id)

	drag, err := newDragMachine()
	if err != nil {
		return nil, fmt.Errorf("failed to build drag state machine: %w", err)
	}
	g.drag = drag
	return g, nil
}

// ID returns the group identity.
func (g *Group) ID() string {
	return g.id
}

// Direction returns the layout axis.
func (g *Group) Direction() Direction {
	return g.direction
}

// SetDisabled enables or disables resizing. Disabling does not end a
// session already in progress.
func (g *Group) SetDisabled(disabled bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.disabled = disabled
}

// Disabled reports whether resizing is disabled.
func (g *Group) Disabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.disabled
}

// AddPanel inserts p according to its Order and redistributes all sizes.
func (g *Group) AddPanel(p *Panel) error {
	if p == nil {
		return fmt.Errorf("%w: nil panel", ErrUnknownPanel)
	}

	g.mu.Lock()
	calls, err := g.addPanelLocked(p)
	g.mu.Unlock()

	emit(calls)
	return err
}

func (g *Group) addPanelLocked(p *Panel) ([]func(), error) {
	if g.resizingLocked() {
		return nil, ErrAlreadyResizing
	}
	if g.indexLocked(p.ID) >= 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePanel, p.ID)
	}

	before := g.collapsedLocked()
	at := slices.IndexFunc(g.panels, func(other *Panel) bool { return other.Order > p.Order })
	if at < 0 {
		at = len(g.panels)
	}
	g.panels = slices.Insert(g.panels, at, p)

	g.log.WithFields(logrus.Fields{"panel": p.ID, "index": at}).Debug("panel added")
	return g.relayoutLocked(before), nil
}

// RemovePanel removes the panel with the given id and redistributes.
func (g *Group) RemovePanel(id string) error {
	g.mu.Lock()
	calls, err := g.removePanelLocked(id)
	g.mu.Unlock()

	emit(calls)
	return err
}

func (g *Group) removePanelLocked(id string) ([]func(), error) {
	if g.resizingLocked() {
		return nil, ErrAlreadyResizing
	}
	i := g.indexLocked(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPanel, id)
	}
	before := g.collapsedLocked()
	g.panels = slices.Delete(g.panels, i, i+1)

	g.log.WithField("panel", id).Debug("panel removed")
	return g.relayoutLocked(before), nil
}

// MovePanel moves the panel at index from to index to. Each panel keeps its
// size, so the vector stays valid without redistribution. Panel orders are
// renumbered to match the new positions.
func (g *Group) MovePanel(from, to int) error {
	g.mu.Lock()
	calls, err := g.movePanelLocked(from, to)
	g.mu.Unlock()

	emit(calls)
	return err
}

func (g *Group) movePanelLocked(from, to int) ([]func(), error) {
	if g.resizingLocked() {
		return nil, ErrAlreadyResizing
	}
	n := len(g.panels)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, fmt.Errorf("%w: move %d -> %d with %d panels", ErrUnknownPanel, from, to, n)
	}
	if from == to {
		return nil, nil
	}

	p, size := g.panels[from], g.sizes[from]
	g.panels = slices.Insert(slices.Delete(g.panels, from, from+1), to, p)
	g.sizes = slices.Insert(slices.Delete(slices.Clone(g.sizes), from, from+1), to, size)
	for i, panel := range g.panels {
		panel.Order = i
	}
	g.controlled = nil

	g.log.WithFields(logrus.Fields{"from": from, "to": to}).Debug("panel moved")

	var calls []func()
	if g.onReorder != nil {
		fn := g.onReorder
		calls = append(calls, func() { fn(from, to) })
	}
	return append(calls, g.changedLocked()...), nil
}

// SetSizes replaces the size vector. The sizes are passed through the
// distributor as current sizes, so bounds and normalization still apply.
func (g *Group) SetSizes(sizes []float64) error {
	g.mu.Lock()
	calls, err := g.setSizesLocked(sizes)
	g.mu.Unlock()

	emit(calls)
	return err
}

func (g *Group) setSizesLocked(sizes []float64) ([]func(), error) {
	if g.resizingLocked() {
		return nil, ErrAlreadyResizing
	}
	if len(sizes) != len(g.panels) {
		return nil, fmt.Errorf("%w: got %d sizes for %d panels", ErrInvalidInput, len(sizes), len(g.panels))
	}
	for _, s := range sizes {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("%w: size %v", ErrInvalidInput, s)
		}
	}

	prev := g.sizes
	g.controlled = slices.Clone(sizes)
	g.sizes = g.policy.Distribute(g.constraintsLocked(), g.controlled)

	calls := g.transitionsLocked(prev, g.sizes)
	calls = append(calls, g.changedLocked()...)
	if err := g.saveLocked(); err != nil {
		return calls, err
	}
	return calls, nil
}

// Sizes returns a copy of the current size vector.
func (g *Group) Sizes() []float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.sizes)
}

// Panels returns copies of the panels in layout order.
func (g *Group) Panels() []Panel {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Panel, len(g.panels))
	for i, p := range g.panels {
		out[i] = *p
	}
	return out
}

// PanelSize returns the current size of the panel with the given id.
func (g *Group) PanelSize(id string) (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.indexLocked(id)
	if i < 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPanel, id)
	}
	return g.sizes[i], nil
}

// IsCollapsed reports whether the panel with the given id sits at its
// collapsed size.
func (g *Group) IsCollapsed(id string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.indexLocked(id)
	if i < 0 {
		return false, fmt.Errorf("%w: %s", ErrUnknownPanel, id)
	}
	return layout.IsCollapsed(g.sizes[i], g.panels[i].Constraint), nil
}

func (g *Group) indexLocked(id string) int {
	return slices.IndexFunc(g.panels, func(p *Panel) bool { return p.ID == id })
}

func (g *Group) constraintsLocked() []Constraint {
	out := make([]Constraint, len(g.panels))
	for i, p := range g.panels {
		out[i] = p.Constraint
	}
	return out
}

// relayoutLocked rebuilds the size vector after the panel set changed.
// before is the collapsed state by panel id, taken before the change.
func (g *Group) relayoutLocked(before map[string]bool) []func() {
	g.sizes = g.policy.Distribute(g.constraintsLocked(), g.seedLocked())
	g.log.WithField("sizes", g.sizes).Debug("relayout")

	var calls []func()
	for i, p := range g.panels {
		was, known := before[p.ID]
		if !known {
			continue
		}
		switch is := layout.IsCollapsed(g.sizes[i], p.Constraint); {
		case !was && is:
			calls = append(calls, g.transitionLocked(p.ID, layout.Collapse)...)
		case was && !is:
			calls = append(calls, g.transitionLocked(p.ID, layout.Expand)...)
		}
	}
	return append(calls, g.changedLocked()...)
}

// collapsedLocked maps every panel id to whether it sits at its collapsed size.
func (g *Group) collapsedLocked() map[string]bool {
	out := make(map[string]bool, len(g.panels))
	for i, p := range g.panels {
		if i < len(g.sizes) {
			out[p.ID] = layout.IsCollapsed(g.sizes[i], p.Constraint)
		}
	}
	return out
}

// seedLocked picks the current sizes handed to the distributor: controlled
// sizes first, then stored sizes, as long as their length matches.
func (g *Group) seedLocked() []float64 {
	n := len(g.panels)
	if len(g.controlled) == n {
		return g.controlled
	}
	if g.storage == nil {
		return nil
	}

	saved, ok, err := g.storage.Load(g.id)
	if err != nil {
		g.log.WithError(err).Warn("failed to load stored sizes")
		return nil
	}
	if ok && len(saved) == n {
		return saved
	}
	return nil
}

func (g *Group) saveLocked() error {
	if g.storage == nil || len(g.sizes) == 0 {
		return nil
	}
	if err := g.storage.Save(g.id, g.sizes); err != nil {
		return fmt.Errorf("failed to save sizes for group %q: %w", g.id, err)
	}
	return nil
}

// changedLocked queues the OnChange callback with a snapshot of the sizes.
func (g *Group) changedLocked() []func() {
	if g.onChange == nil {
		return nil
	}
	fn, sizes := g.onChange, slices.Clone(g.sizes)
	return []func(){func() { fn(sizes) }}
}

// transitionsLocked queues collapse and expand callbacks for prev -> next.
func (g *Group) transitionsLocked(prev, next []float64) []func() {
	var calls []func()
	for _, tr := range layout.Diff(prev, next, g.constraintsLocked()) {
		calls = append(calls, g.transitionLocked(g.panels[tr.Index].ID, tr.Kind)...)
	}
	return calls
}

// transitionLocked logs one collapse state change and queues its callback.
func (g *Group) transitionLocked(id string, kind layout.TransitionKind) []func() {
	g.log.WithFields(logrus.Fields{"panel": id, "transition": kind}).Debug("collapse state changed")

	switch {
	case kind == layout.Collapse && g.onCollapse != nil:
		fn := g.onCollapse
		return []func(){func() { fn(id) }}
	case kind == layout.Expand && g.onExpand != nil:
		fn := g.onExpand
		return []func(){func() { fn(id) }}
	}
	return nil
}

// emit runs queued callbacks. Callers must not hold g.mu.
func emit(calls []func()) {
	for _, fn := range calls {
		fn()
	}
}
