package layer

import (
	"strconv"
	"strings"
)

// IDGen issues layer and group identifiers from per-kind counters.
// It is owned by whoever owns the layer state (one per editor instance,
// never shared), and its counters only ever move forward.
type IDGen struct {
	layerSeq int
	groupSeq int
}

// NextLayerID returns a fresh drawable-layer identifier ("l1", "l2", ...)
func (g *IDGen) NextLayerID() string {
	g.layerSeq++
	return "l" + strconv.Itoa(g.layerSeq)
}

// NextGroupID returns a fresh group identifier ("g1", "g2", ...)
func (g *IDGen) NextGroupID() string {
	g.groupSeq++
	return "g" + strconv.Itoa(g.groupSeq)
}

// Sync advances the counters past every numbered identifier in layers, so
// identifiers issued after restoring or importing state never collide with
// ones already in use. Counters never regress.
func (g *IDGen) Sync(layers []*Layer) {
	for _, l := range layers {
		if n, ok := numericID(l.ID, "l"); ok && n > g.layerSeq {
			g.layerSeq = n
		}
		if n, ok := numericID(l.ID, "g"); ok && n > g.groupSeq {
			g.groupSeq = n
		}
	}
}

// numericID extracts n from identifiers of the form prefix+digits
func numericID(id, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
