// Package engine wires the canvas subsystems into an editor facade: one
// layer-tree state, a history of snapshots, an identifier generator, and an
// optional render target kept in sync through composite diffs.
package engine

import (
	"fmt"

	"github.com/lixenwraith/strata/compose"
	"github.com/lixenwraith/strata/core"
	"github.com/lixenwraith/strata/draw"
	"github.com/lixenwraith/strata/history"
	"github.com/lixenwraith/strata/layer"
	"github.com/lixenwraith/strata/render"
	"github.com/lixenwraith/strata/savefile"
)

// Editor owns one canvas document. All operations are synchronous; every
// state-mutating operation pushes exactly one history snapshot before it
// touches the state, so one undo reverses one logical action.
type Editor struct {
	state  *layer.State
	hist   *history.History
	gen    layer.IDGen
	target render.Target

	// shown mirrors what the render target currently displays, so flushes
	// send minimal diffs and previews can be painted over safely
	shown core.Grid
}

// New returns an editor holding a single background layer
func New() *Editor {
	e := &Editor{hist: history.New(history.DefaultDepth)}
	e.state = layer.NewState(&e.gen)
	return e
}

// State exposes the current layer-tree state for reading
func (e *Editor) State() *layer.State {
	return e.state
}

// Load replaces the document with a decoded one. The identifier counters
// advance past every restored id, and history is cleared.
func (e *Editor) Load(src []byte) error {
	st, _, err := savefile.Decode(src)
	if err != nil {
		return err
	}
	e.state = st
	e.gen.Sync(st.Layers)
	e.hist = history.New(history.DefaultDepth)
	if e.target != nil {
		return e.attach()
	}
	return nil
}

// Save serializes the current document
func (e *Editor) Save() []byte {
	return savefile.Encode(e.state)
}

// SetTarget attaches a render target and performs the initial full write
func (e *Editor) SetTarget(t render.Target) error {
	e.target = t
	return e.attach()
}

func (e *Editor) attach() error {
	e.shown = compose.CompositeGrid(e.state.Layers)
	return e.target.Attach(e.shown)
}

// Flush recomposites and sends the resulting cell diff to the target
func (e *Editor) Flush() error {
	if e.target == nil {
		return nil
	}
	next := compose.CompositeGrid(e.state.Layers)
	changes := compose.DiffGrids(e.shown, next)
	e.shown = next
	if len(changes) == 0 {
		return nil
	}
	return e.target.Apply(changes)
}

// Preview paints an uncommitted stroke: each change is composited with the
// override rule and drawn, without touching the document. The next Flush
// (or PreviewEnd) restores the committed picture.
func (e *Editor) Preview(changes []draw.Change) error {
	if e.target == nil {
		return nil
	}
	out := make([]draw.Change, 0, len(changes))
	for _, ch := range changes {
		if !core.InBounds(ch.Row, ch.Col) {
			continue
		}
		cell := compose.CompositeCellWithOverride(e.state.Layers, ch.Row, ch.Col, e.state.ActiveID, ch.Cell)
		if cell == e.shown[ch.Row][ch.Col] {
			continue
		}
		e.shown[ch.Row][ch.Col] = cell
		out = append(out, draw.Change{Row: ch.Row, Col: ch.Col, Cell: cell})
	}
	if len(out) == 0 {
		return nil
	}
	return e.target.Apply(out)
}

// PreviewEnd repaints the committed state over any preview cells
func (e *Editor) PreviewEnd() error {
	return e.Flush()
}

// ---- drawing ----

// activeDrawn returns the active layer if it accepts cell writes
func (e *Editor) activeDrawn() (*layer.Layer, error) {
	l := e.state.Active()
	if l == nil {
		return nil, fmt.Errorf("no active layer")
	}
	if l.Kind != layer.KindDrawn {
		return nil, fmt.Errorf("active layer %q is not drawable", l.ID)
	}
	return l, nil
}

// Commit applies a tool's cell changes to the active layer's current frame
func (e *Editor) Commit(changes []draw.Change) error {
	l, err := e.activeDrawn()
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}
	e.hist.Push(e.state)
	draw.Apply(l.Grid(), changes)
	return e.Flush()
}

// SetCell writes one cell of the active layer
func (e *Editor) SetCell(row, col int, cell core.Cell) error {
	return e.Commit([]draw.Change{{Row: row, Col: col, Cell: cell}})
}

// ---- structure ----

// AddLayer appends a new drawn layer on top and makes it active
func (e *Editor) AddLayer(name string) (*layer.Layer, error) {
	e.hist.Push(e.state)
	l := layer.NewDrawn(e.gen.NextLayerID(), name)
	e.state.Layers = append(e.state.Layers, l)
	e.state.ActiveID = l.ID
	return l, e.Flush()
}

// AddTextLayer appends a new text layer on top and makes it active
func (e *Editor) AddTextLayer(name string, bounds layer.Rect, fg core.Color) (*layer.Layer, error) {
	e.hist.Push(e.state)
	l := layer.NewText(e.gen.NextLayerID(), name, bounds, fg)
	e.state.Layers = append(e.state.Layers, l)
	e.state.ActiveID = l.ID
	return l, e.Flush()
}

// SetText updates a text layer's content
func (e *Editor) SetText(id, text string) error {
	l := e.state.Find(id)
	if l == nil || l.Kind != layer.KindText {
		return fmt.Errorf("no text layer %q", id)
	}
	e.hist.Push(e.state)
	e.state.Find(id).Text = text
	return e.Flush()
}

// RemoveLayer removes a layer, or a group with its whole block. The last
// remaining drawable layer cannot be removed.
func (e *Editor) RemoveLayer(id string) error {
	start, end := layer.BlockRange(e.state.Layers, id)
	if start < 0 {
		return fmt.Errorf("no layer %q", id)
	}
	remaining := 0
	for i, l := range e.state.Layers {
		if l.Kind != layer.KindGroup && (i < start || i >= end) {
			remaining++
		}
	}
	if remaining == 0 {
		return fmt.Errorf("cannot remove the last layer")
	}
	e.hist.Push(e.state)
	e.state.Layers = append(e.state.Layers[:start:start], e.state.Layers[end:]...)
	if e.state.Active() == nil {
		for _, l := range e.state.Layers {
			if l.Kind != layer.KindGroup {
				e.state.ActiveID = l.ID
				break
			}
		}
	}
	return e.Flush()
}

// Duplicate deep-copies a layer or group block right above the source
func (e *Editor) Duplicate(id string) error {
	if layer.IndexOf(e.state.Layers, id) < 0 {
		return fmt.Errorf("no layer %q", id)
	}
	e.hist.Push(e.state)
	e.state.Layers = layer.DuplicateBlock(e.state.Layers, id, &e.gen)
	return e.Flush()
}

// MergeDown merges id into the layer beneath it. Returns false without
// snapshotting when the merge is a structural no-op.
func (e *Editor) MergeDown(id string) (bool, error) {
	merged := compose.MergeDown(e.state.Layers, id)
	if merged == nil {
		return false, nil
	}
	e.hist.Push(e.state)
	lower := e.state.Layers[layer.IndexOf(e.state.Layers, id)-1]
	e.state.Layers = merged
	if e.state.ActiveID == id {
		e.state.ActiveID = lower.ID
	}
	return true, e.Flush()
}

// Group wraps the given top-level blocks into a fresh group inserted where
// the lowest member sat
func (e *Editor) Group(name string, ids []string) (*layer.Layer, error) {
	lowest := -1
	for _, id := range ids {
		i := layer.IndexOf(e.state.Layers, id)
		if i < 0 {
			return nil, fmt.Errorf("no layer %q", id)
		}
		if lowest < 0 || i < lowest {
			lowest = i
		}
	}
	e.hist.Push(e.state)

	g := layer.NewGroup(e.gen.NextGroupID(), name)
	rest := e.state.Layers
	var members []*layer.Layer
	for _, id := range ids {
		var block []*layer.Layer
		start, end := layer.BlockRange(rest, id)
		if start < 0 {
			continue
		}
		block = append([]*layer.Layer(nil), rest[start:end]...)
		rest = append(rest[:start:start], rest[end:]...)
		block[0].ParentID = g.ID
		members = append(members, block...)
	}

	pos := layer.FindSafeInsertPos(rest, min(lowest, len(rest)))
	out := make([]*layer.Layer, 0, len(rest)+len(members)+1)
	out = append(out, rest[:pos]...)
	out = append(out, g)
	out = append(out, members...)
	out = append(out, rest[pos:]...)
	e.state.Layers = out
	return g, e.Flush()
}

// Ungroup dissolves a group, reparenting its direct children to the
// group's own parent
func (e *Editor) Ungroup(id string) error {
	i := layer.IndexOf(e.state.Layers, id)
	if i < 0 || e.state.Layers[i].Kind != layer.KindGroup {
		return fmt.Errorf("no group %q", id)
	}
	e.hist.Push(e.state)
	g := e.state.Layers[i]
	for _, l := range e.state.Layers {
		if l.ParentID == g.ID {
			l.ParentID = g.ParentID
		}
	}
	e.state.Layers = append(e.state.Layers[:i:i], e.state.Layers[i+1:]...)
	return e.Flush()
}

// MoveLayer reorders a layer or block to the given sequence position,
// snapped so no group block is ever split
func (e *Editor) MoveLayer(id string, pos int) error {
	start, end := layer.BlockRange(e.state.Layers, id)
	if start < 0 {
		return fmt.Errorf("no layer %q", id)
	}
	e.hist.Push(e.state)
	block := append([]*layer.Layer(nil), e.state.Layers[start:end]...)
	rest := append([]*layer.Layer(nil), e.state.Layers[:start]...)
	rest = append(rest, e.state.Layers[end:]...)
	if pos > start {
		pos -= end - start
	}
	pos = layer.FindSafeInsertPos(rest, pos)
	out := make([]*layer.Layer, 0, len(e.state.Layers))
	out = append(out, rest[:pos]...)
	out = append(out, block...)
	out = append(out, rest[pos:]...)
	e.state.Layers = out
	return e.Flush()
}

// SetVisible toggles a layer's visibility flag
func (e *Editor) SetVisible(id string, visible bool) error {
	l := e.state.Find(id)
	if l == nil {
		return fmt.Errorf("no layer %q", id)
	}
	if l.Visible == visible {
		return nil
	}
	e.hist.Push(e.state)
	l.Visible = visible
	return e.Flush()
}

// SetActive changes the drawing target; not a document mutation, so no
// snapshot is taken
func (e *Editor) SetActive(id string) error {
	if e.state.Find(id) == nil {
		return fmt.Errorf("no layer %q", id)
	}
	e.state.ActiveID = id
	return nil
}

// ---- tags ----

// AddTag labels a layer, growing the shared vocabulary as needed.
// Returns false for the idempotent no-op.
func (e *Editor) AddTag(id, tag string) bool {
	next := layer.AddTag(e.state.Layers, id, tag)
	if isSameSlice(next, e.state.Layers) {
		return false
	}
	e.hist.Push(e.state)
	e.state.Layers = next
	for _, t := range e.state.AvailableTags {
		if t == tag {
			return true
		}
	}
	e.state.AvailableTags = append(e.state.AvailableTags, tag)
	return true
}

// RemoveTag removes a label from a layer. Returns false for the no-op.
func (e *Editor) RemoveTag(id, tag string) bool {
	next := layer.RemoveTag(e.state.Layers, id, tag)
	if isSameSlice(next, e.state.Layers) {
		return false
	}
	e.hist.Push(e.state)
	e.state.Layers = next
	return true
}

// ---- animation ----

// AddFrame clones a drawn layer's current frame and switches to the copy
func (e *Editor) AddFrame(id string) error {
	l := e.state.Find(id)
	if l == nil || l.Kind != layer.KindDrawn {
		return fmt.Errorf("no drawn layer %q", id)
	}
	e.hist.Push(e.state)
	l = e.state.Find(id)
	frame := l.Grid().Clone()
	l.Frames = append(l.Frames, frame)
	l.CurrentFrame = len(l.Frames) - 1
	return e.Flush()
}

// SetCurrentFrame switches a drawn layer's displayed frame
func (e *Editor) SetCurrentFrame(id string, index int) error {
	l := e.state.Find(id)
	if l == nil || l.Kind != layer.KindDrawn {
		return fmt.Errorf("no drawn layer %q", id)
	}
	if index < 0 || index >= len(l.Frames) {
		return fmt.Errorf("layer %q has no frame %d", id, index)
	}
	e.hist.Push(e.state)
	l.CurrentFrame = index
	return e.Flush()
}

// SetFrameDuration changes a drawn layer's playback speed
func (e *Editor) SetFrameDuration(id string, ms int) error {
	l := e.state.Find(id)
	if l == nil || l.Kind != layer.KindDrawn {
		return fmt.Errorf("no drawn layer %q", id)
	}
	if ms <= 0 {
		return fmt.Errorf("frame duration must be positive")
	}
	e.hist.Push(e.state)
	l.FrameDurationMs = ms
	return e.Flush()
}

// ---- history ----

// Undo reverses the most recent logical action
func (e *Editor) Undo() (bool, error) {
	st, ok := e.hist.Undo(e.state)
	if !ok {
		return false, nil
	}
	e.state = st
	return true, e.Flush()
}

// Redo re-applies the most recently undone action
func (e *Editor) Redo() (bool, error) {
	st, ok := e.hist.Redo(e.state)
	if !ok {
		return false, nil
	}
	e.state = st
	return true, e.Flush()
}

// isSameSlice reports whether two slices share identity (the no-op
// return-shape contract of the tag helpers)
func isSameSlice(a, b []*layer.Layer) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}
