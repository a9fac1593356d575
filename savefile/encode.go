package savefile

import (
	"bytes"
	"fmt"

	"github.com/lixenwraith/strata/core"
	"github.com/lixenwraith/strata/layer"
)

// Layer type discriminators as persisted
const (
	typeDrawn = "layer"
	typeText  = "text"
	typeGroup = "group"
)

// Sentinel colors persist as reserved 3-element lists outside the 0-255
// channel range
var (
	encodedTransparentHalf = [3]int{-1, -1, -1}
	encodedTransparentBg   = [3]int{-2, -2, -2}
)

// PickVersion returns the minimum schema version able to represent st:
// 3 baseline, 4 with group parents, 5 with multi-frame layers, 6 with tags
// or a tag vocabulary.
func PickVersion(st *layer.State) int {
	v := 3
	for _, l := range st.Layers {
		if l.ParentID != "" && v < 4 {
			v = 4
		}
		if l.Kind == layer.KindDrawn && len(l.Frames) > 1 && v < 5 {
			v = 5
		}
		if len(l.Tags) > 0 {
			v = 6
		}
	}
	if len(st.AvailableTags) > 0 {
		v = 6
	}
	return v
}

// Encode serializes st as a versioned table-literal document
func Encode(st *layer.State) []byte {
	v := PickVersion(st)
	var b bytes.Buffer
	b.WriteString("return {\n")
	writeKV(&b, 1, "version", v)
	writeKV(&b, 1, "width", core.Width)
	writeKV(&b, 1, "height", core.Height)
	writeKVString(&b, 1, "activeLayerId", st.ActiveID)
	if v >= 6 && len(st.AvailableTags) > 0 {
		indent(&b, 1)
		b.WriteString(`["availableTags"] = `)
		writeStringList(&b, st.AvailableTags)
		b.WriteString(",\n")
	}
	indent(&b, 1)
	b.WriteString(`["layers"] = {` + "\n")
	for _, l := range st.Layers {
		encodeLayer(&b, l, v)
	}
	indent(&b, 1)
	b.WriteString("},\n")
	b.WriteString("}\n")
	return b.Bytes()
}

func encodeLayer(b *bytes.Buffer, l *layer.Layer, v int) {
	indent(b, 2)
	b.WriteString("{\n")
	writeKVString(b, 3, "id", l.ID)
	writeKVString(b, 3, "name", l.Name)
	writeKVString(b, 3, "type", typeName(l.Kind))
	writeKVBool(b, 3, "visible", l.Visible)
	if v >= 4 && l.ParentID != "" {
		writeKVString(b, 3, "parentId", l.ParentID)
	}
	if v >= 6 && len(l.Tags) > 0 {
		indent(b, 3)
		b.WriteString(`["tags"] = `)
		writeStringList(b, l.Tags)
		b.WriteString(",\n")
	}

	switch l.Kind {
	case layer.KindDrawn:
		if v >= 5 && len(l.Frames) > 1 {
			indent(b, 3)
			b.WriteString(`["frames"] = {` + "\n")
			for _, f := range l.Frames {
				encodeGrid(b, f, 4)
			}
			indent(b, 3)
			b.WriteString("},\n")
			writeKV(b, 3, "currentFrameIndex", l.CurrentFrame)
			writeKV(b, 3, "frameDurationMs", l.FrameDurationMs)
		} else {
			indent(b, 3)
			b.WriteString(`["grid"] = `)
			encodeGridInline(b, l.Grid(), 3)
			b.WriteString(",\n")
			if l.FrameDurationMs != layer.DefaultFrameDurationMs {
				writeKV(b, 3, "frameDurationMs", l.FrameDurationMs)
			}
		}
	case layer.KindText:
		writeKVString(b, 3, "text", l.Text)
		indent(b, 3)
		fmt.Fprintf(b, `["bounds"] = { %d, %d, %d, %d },`+"\n", l.Bounds.R0, l.Bounds.C0, l.Bounds.R1, l.Bounds.C1)
		indent(b, 3)
		b.WriteString(`["textFg"] = `)
		writeColor(b, l.TextFg)
		b.WriteString(",\n")
		if len(l.CharColors) > 0 {
			indent(b, 3)
			b.WriteString(`["charColors"] = { `)
			for i, cc := range l.CharColors {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(b, "{ %d, ", cc.Index)
				writeColor(b, cc.Color)
				b.WriteString(" }")
			}
			b.WriteString(" },\n")
		}
		if l.Align != "" && l.Align != layer.AlignLeft {
			writeKVString(b, 3, "align", string(l.Align))
		}
	case layer.KindGroup:
		writeKVBool(b, 3, "collapsed", l.Collapsed)
	}

	indent(b, 2)
	b.WriteString("},\n")
}

func encodeGrid(b *bytes.Buffer, g core.Grid, depth int) {
	indent(b, depth)
	encodeGridInline(b, g, depth)
	b.WriteString(",\n")
}

// encodeGridInline writes a grid as one table per row, one row per line
func encodeGridInline(b *bytes.Buffer, g core.Grid, depth int) {
	b.WriteString("{\n")
	for _, row := range g {
		indent(b, depth+1)
		b.WriteString("{ ")
		for c, cell := range row {
			if c > 0 {
				b.WriteString(", ")
			}
			writeCell(b, cell)
		}
		b.WriteString(" },\n")
	}
	indent(b, depth)
	b.WriteString("}")
}

// writeCell writes a cell as { "ch", fg, bg }
func writeCell(b *bytes.Buffer, c core.Cell) {
	fmt.Fprintf(b, `{ "%s", `, escapeString(string(c.Ch)))
	writeColor(b, c.Fg)
	b.WriteString(", ")
	writeColor(b, c.Bg)
	b.WriteString(" }")
}

func writeColor(b *bytes.Buffer, c core.Color) {
	switch {
	case c.IsTransparentHalf():
		fmt.Fprintf(b, "{ %d, %d, %d }", encodedTransparentHalf[0], encodedTransparentHalf[1], encodedTransparentHalf[2])
	case c.IsTransparentBg():
		fmt.Fprintf(b, "{ %d, %d, %d }", encodedTransparentBg[0], encodedTransparentBg[1], encodedTransparentBg[2])
	default:
		fmt.Fprintf(b, "{ %d, %d, %d }", c.R, c.G, c.B)
	}
}

func writeStringList(b *bytes.Buffer, list []string) {
	b.WriteString("{ ")
	for i, s := range list {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, `"%s"`, escapeString(s))
	}
	b.WriteString(" }")
}

func writeKV(b *bytes.Buffer, depth int, key string, v int) {
	indent(b, depth)
	fmt.Fprintf(b, `["%s"] = %d,`+"\n", key, v)
}

func writeKVString(b *bytes.Buffer, depth int, key, v string) {
	indent(b, depth)
	fmt.Fprintf(b, `["%s"] = "%s",`+"\n", key, escapeString(v))
}

func writeKVBool(b *bytes.Buffer, depth int, key string, v bool) {
	indent(b, depth)
	fmt.Fprintf(b, `["%s"] = %t,`+"\n", key, v)
}

func typeName(k layer.Kind) string {
	switch k {
	case layer.KindText:
		return typeText
	case layer.KindGroup:
		return typeGroup
	default:
		return typeDrawn
	}
}

func indent(b *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
