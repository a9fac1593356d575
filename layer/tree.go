package layer

// Parent-chain traversal helpers. All walks are bounded by the number of
// layers so a corrupted cyclic parentId chain terminates with a degraded
// result instead of hanging.

// AncestorGroupIDs returns the chain of group ids from id's immediate parent
// outward. The walk stops at the first missing parent, at a repeated id, or
// after len(layers) steps.
func AncestorGroupIDs(layers []*Layer, id string) []string {
	byID := indexByID(layers)
	var out []string
	seen := map[string]bool{id: true}
	cur := byID[id]
	for steps := 0; cur != nil && cur.ParentID != "" && steps < len(layers); steps++ {
		pid := cur.ParentID
		if seen[pid] {
			break
		}
		seen[pid] = true
		out = append(out, pid)
		cur = byID[pid]
	}
	return out
}

// NestingDepth returns how many groups enclose id (0 at top level)
func NestingDepth(layers []*Layer, id string) int {
	return len(AncestorGroupIDs(layers, id))
}

// IsAncestorOf reports whether groupID encloses id, directly or transitively
func IsAncestorOf(layers []*Layer, groupID, id string) bool {
	for _, anc := range AncestorGroupIDs(layers, id) {
		if anc == groupID {
			return true
		}
	}
	return false
}

// GroupDescendants returns the group's children and, recursively, their own
// descendants, in sequence order.
func GroupDescendants(layers []*Layer, groupID string) []*Layer {
	var out []*Layer
	for _, l := range layers {
		if IsAncestorOf(layers, groupID, l.ID) {
			out = append(out, l)
		}
	}
	return out
}

// GroupDescendantIDs returns the ids of GroupDescendants
func GroupDescendantIDs(layers []*Layer, groupID string) []string {
	desc := GroupDescendants(layers, groupID)
	out := make([]string, len(desc))
	for i, l := range desc {
		out[i] = l.ID
	}
	return out
}

// Hidden reports whether l is invisible itself or through any enclosing group
func Hidden(layers []*Layer, l *Layer) bool {
	if !l.Visible {
		return true
	}
	byID := indexByID(layers)
	for _, anc := range AncestorGroupIDs(layers, l.ID) {
		if g := byID[anc]; g != nil && !g.Visible {
			return true
		}
	}
	return false
}

// BuildDisplayOrder returns a depth-first, topmost-first view of the
// sequence for presentation. Storage order is not touched.
func BuildDisplayOrder(layers []*Layer) []*Layer {
	children := make(map[string][]*Layer)
	var roots []*Layer
	byID := indexByID(layers)
	for _, l := range layers {
		if l.ParentID != "" && byID[l.ParentID] != nil && byID[l.ParentID].Kind == KindGroup {
			children[l.ParentID] = append(children[l.ParentID], l)
		} else {
			roots = append(roots, l)
		}
	}

	out := make([]*Layer, 0, len(layers))
	var emit func(l *Layer)
	emit = func(l *Layer) {
		out = append(out, l)
		kids := children[l.ID]
		for i := len(kids) - 1; i >= 0; i-- {
			emit(kids[i])
		}
	}
	for i := len(roots) - 1; i >= 0; i-- {
		emit(roots[i])
	}
	return out
}

func indexByID(layers []*Layer) map[string]*Layer {
	m := make(map[string]*Layer, len(layers))
	for _, l := range layers {
		m[l.ID] = l
	}
	return m
}
