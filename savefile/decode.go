package savefile

import (
	"fmt"

	"github.com/lixenwraith/strata/core"
	"github.com/lixenwraith/strata/layer"
)

// MaxVersion is the newest schema this package reads and writes
const MaxVersion = 6

// Decode parses a table-literal document into a layer state, returning the
// document's schema version alongside. Legacy documents (version 1: a bare
// grid; version 2: untyped layer list) are synthesized into the current
// in-memory shape. Decode either succeeds completely or returns an error
// without partial results.
func Decode(src []byte) (*layer.State, int, error) {
	root, err := NewParser(src).Parse()
	if err != nil {
		return nil, 0, err
	}

	version, ok := intField(root, "version")
	if !ok {
		return nil, 0, fmt.Errorf("missing version")
	}
	if version < 1 || version > MaxVersion {
		return nil, 0, fmt.Errorf("unsupported document version %d", version)
	}

	if w, ok := intField(root, "width"); ok && w != core.Width {
		return nil, 0, fmt.Errorf("unsupported canvas width %d", w)
	}
	if h, ok := intField(root, "height"); ok && h != core.Height {
		return nil, 0, fmt.Errorf("unsupported canvas height %d", h)
	}

	if version == 1 {
		st, err := decodeV1(root)
		return st, version, err
	}

	layersVal, ok := root.Get("layers").(*Table)
	if !ok {
		return nil, 0, fmt.Errorf("missing layers")
	}

	st := &layer.State{}
	for i, item := range layersVal.List {
		lt, ok := item.(*Table)
		if !ok {
			return nil, 0, fmt.Errorf("layer %d: not a table", i)
		}
		l, err := decodeLayer(lt, i, version)
		if err != nil {
			return nil, 0, err
		}
		st.Layers = append(st.Layers, l)
	}

	if id, ok := root.Get("activeLayerId").(string); ok {
		st.ActiveID = id
	} else if len(st.Layers) > 0 {
		st.ActiveID = st.Layers[0].ID
	}
	if version >= 6 {
		if tags, ok := root.Get("availableTags").(*Table); ok {
			st.AvailableTags = stringList(tags)
		}
	}
	return st, version, nil
}

// decodeV1 synthesizes the implicit single background layer of the oldest
// format, which stored one flat grid and no layer list.
func decodeV1(root *Table) (*layer.State, error) {
	gt, ok := root.Get("grid").(*Table)
	if !ok {
		return nil, fmt.Errorf("missing grid")
	}
	grid, err := decodeGrid(gt)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	bg := layer.NewDrawn("l1", "Background")
	bg.Frames[0] = grid
	return &layer.State{Layers: []*layer.Layer{bg}, ActiveID: bg.ID}, nil
}

func decodeLayer(t *Table, index, version int) (*layer.Layer, error) {
	id, ok := t.Get("id").(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("layer %d: missing id", index)
	}
	name, ok := t.Get("name").(string)
	if !ok {
		return nil, fmt.Errorf("layer %d: missing name", index)
	}

	typ := typeDrawn
	if version >= 3 {
		if s, ok := t.Get("type").(string); ok {
			typ = s
		}
	}

	l := &layer.Layer{ID: id, Name: name, Visible: true}
	if vis, ok := t.Get("visible").(bool); ok {
		l.Visible = vis
	}
	if version >= 4 {
		if pid, ok := t.Get("parentId").(string); ok {
			l.ParentID = pid
		}
	}
	if version >= 6 {
		if tags, ok := t.Get("tags").(*Table); ok {
			l.Tags = stringList(tags)
		}
	}

	switch typ {
	case typeDrawn:
		l.Kind = layer.KindDrawn
		if err := decodeDrawnFields(t, l, index, version); err != nil {
			return nil, err
		}
	case typeText:
		l.Kind = layer.KindText
		if err := decodeTextFields(t, l, index); err != nil {
			return nil, err
		}
	case typeGroup:
		l.Kind = layer.KindGroup
		if c, ok := t.Get("collapsed").(bool); ok {
			l.Collapsed = c
		}
	default:
		return nil, fmt.Errorf("layer %d: unknown layer type %q", index, typ)
	}
	return l, nil
}

func decodeDrawnFields(t *Table, l *layer.Layer, index, version int) error {
	l.FrameDurationMs = layer.DefaultFrameDurationMs
	if d, ok := intField(t, "frameDurationMs"); ok && d > 0 {
		l.FrameDurationMs = d
	}

	if frames, ok := t.Get("frames").(*Table); ok && version >= 5 {
		for fi, fv := range frames.List {
			ft, ok := fv.(*Table)
			if !ok {
				return fmt.Errorf("layer %d: frame %d: not a table", index, fi)
			}
			grid, err := decodeGrid(ft)
			if err != nil {
				return fmt.Errorf("layer %d: frame %d: %w", index, fi, err)
			}
			l.Frames = append(l.Frames, grid)
		}
		if len(l.Frames) == 0 {
			return fmt.Errorf("layer %d: empty frames", index)
		}
		if i, ok := intField(t, "currentFrameIndex"); ok && i >= 0 && i < len(l.Frames) {
			l.CurrentFrame = i
		}
		return nil
	}

	gt, ok := t.Get("grid").(*Table)
	if !ok {
		return fmt.Errorf("layer %d: missing grid", index)
	}
	grid, err := decodeGrid(gt)
	if err != nil {
		return fmt.Errorf("layer %d: %w", index, err)
	}
	l.Frames = []core.Grid{grid}
	return nil
}

// decodeTextFields reads the text variant; the display grid is always
// recomputed from these fields, never read from the document.
func decodeTextFields(t *Table, l *layer.Layer, index int) error {
	text, ok := t.Get("text").(string)
	if !ok {
		return fmt.Errorf("layer %d: text layer missing text", index)
	}
	l.Text = text

	bt, ok := t.Get("bounds").(*Table)
	if !ok || len(bt.List) != 4 {
		return fmt.Errorf("layer %d: text layer missing bounds", index)
	}
	coords := make([]int, 4)
	for i, v := range bt.List {
		n, ok := v.(int64)
		if !ok {
			return fmt.Errorf("layer %d: text layer missing bounds", index)
		}
		coords[i] = int(n)
	}
	l.Bounds = layer.Rect{R0: coords[0], C0: coords[1], R1: coords[2], C1: coords[3]}

	ft, ok := t.Get("textFg").(*Table)
	if !ok {
		return fmt.Errorf("layer %d: text layer missing textFg", index)
	}
	fg, err := decodeColor(ft)
	if err != nil {
		return fmt.Errorf("layer %d: textFg: %w", index, err)
	}
	l.TextFg = fg

	if cct, ok := t.Get("charColors").(*Table); ok {
		for i, v := range cct.List {
			pair, ok := v.(*Table)
			if !ok || len(pair.List) != 2 {
				return fmt.Errorf("layer %d: charColors entry %d malformed", index, i)
			}
			idx, ok := pair.List[0].(int64)
			if !ok {
				return fmt.Errorf("layer %d: charColors entry %d malformed", index, i)
			}
			ct, ok := pair.List[1].(*Table)
			if !ok {
				return fmt.Errorf("layer %d: charColors entry %d malformed", index, i)
			}
			col, err := decodeColor(ct)
			if err != nil {
				return fmt.Errorf("layer %d: charColors entry %d: %w", index, i, err)
			}
			l.CharColors = append(l.CharColors, layer.CharColor{Index: int(idx), Color: col})
		}
	}

	l.Align = layer.AlignLeft
	switch align, _ := t.Get("align").(string); layer.Align(align) {
	case layer.AlignCenter, layer.AlignRight, layer.AlignJustify:
		l.Align = layer.Align(align)
	}
	return nil
}

func decodeGrid(t *Table) (core.Grid, error) {
	grid := core.NewGrid()
	for r, rowVal := range t.List {
		if r >= core.Height {
			break
		}
		rt, ok := rowVal.(*Table)
		if !ok {
			return nil, fmt.Errorf("row %d: not a table", r)
		}
		for c, cellVal := range rt.List {
			if c >= core.Width {
				break
			}
			ct, ok := cellVal.(*Table)
			if !ok {
				return nil, fmt.Errorf("row %d cell %d: not a table", r, c)
			}
			cell, err := decodeCell(ct)
			if err != nil {
				return nil, fmt.Errorf("row %d cell %d: %w", r, c, err)
			}
			grid[r][c] = cell
		}
	}
	return grid, nil
}

func decodeCell(t *Table) (core.Cell, error) {
	if len(t.List) != 3 {
		return core.Cell{}, fmt.Errorf("cell must have 3 elements, got %d", len(t.List))
	}
	s, ok := t.List[0].(string)
	if !ok {
		return core.Cell{}, fmt.Errorf("cell character must be a string")
	}
	ch := ' '
	for _, r := range s {
		ch = r
		break
	}
	fgT, ok := t.List[1].(*Table)
	if !ok {
		return core.Cell{}, fmt.Errorf("cell foreground must be a color list")
	}
	fg, err := decodeColor(fgT)
	if err != nil {
		return core.Cell{}, err
	}
	bgT, ok := t.List[2].(*Table)
	if !ok {
		return core.Cell{}, fmt.Errorf("cell background must be a color list")
	}
	bg, err := decodeColor(bgT)
	if err != nil {
		return core.Cell{}, err
	}
	return core.Cell{Ch: ch, Fg: fg, Bg: bg}, nil
}

func decodeColor(t *Table) (core.Color, error) {
	if len(t.List) != 3 {
		return core.Color{}, fmt.Errorf("color must have 3 channels, got %d", len(t.List))
	}
	ch := make([]int, 3)
	for i, v := range t.List {
		n, ok := v.(int64)
		if !ok {
			return core.Color{}, fmt.Errorf("color channel %d must be a number", i)
		}
		ch[i] = int(n)
	}
	switch [3]int{ch[0], ch[1], ch[2]} {
	case encodedTransparentHalf:
		return core.TransparentHalf, nil
	case encodedTransparentBg:
		return core.TransparentBg, nil
	}
	for i, n := range ch {
		if n < 0 || n > 255 {
			return core.Color{}, fmt.Errorf("color channel %d out of range: %d", i, n)
		}
	}
	return core.NewColor(uint8(ch[0]), uint8(ch[1]), uint8(ch[2])), nil
}

func intField(t *Table, key string) (int, bool) {
	n, ok := t.Get(key).(int64)
	return int(n), ok
}

func stringList(t *Table) []string {
	var out []string
	for _, v := range t.List {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
