package layer

// Contiguous-block operations. A group's block is the group entry plus the
// unbroken run of its descendants immediately following it; every structural
// mutation goes through these helpers so the block invariant survives
// reordering, grouping, and duplication.

// FindGroupBlockEnd returns the exclusive end of groupID's block, scanning
// from startIndex (normally the index right after the group entry) and
// recursing into nested sub-group blocks.
func FindGroupBlockEnd(layers []*Layer, groupID string, startIndex int) int {
	i := startIndex
	for i < len(layers) {
		l := layers[i]
		if l.ParentID != groupID {
			break
		}
		i++
		if l.Kind == KindGroup {
			i = FindGroupBlockEnd(layers, l.ID, i)
		}
	}
	return i
}

// BlockRange returns the half-open sequence range [start, end) occupied by
// id's block: a single entry for plain layers, the whole block for groups.
// Returns (-1, -1) for an unknown id.
func BlockRange(layers []*Layer, id string) (start, end int) {
	i := IndexOf(layers, id)
	if i < 0 {
		return -1, -1
	}
	if layers[i].Kind == KindGroup {
		return i, FindGroupBlockEnd(layers, id, i+1)
	}
	return i, i + 1
}

// ExtractGroupBlock partitions the sequence into groupID's block (group
// entry plus descendants, original relative order) and everything else.
func ExtractGroupBlock(layers []*Layer, groupID string) (block, rest []*Layer) {
	start, end := BlockRange(layers, groupID)
	if start < 0 {
		return nil, layers
	}
	block = append([]*Layer(nil), layers[start:end]...)
	rest = append([]*Layer(nil), layers[:start]...)
	rest = append(rest, layers[end:]...)
	return block, rest
}

// FindSafeInsertPos advances pos past any group block it would otherwise
// split, so an insertion at the returned index never lands inside a block.
func FindSafeInsertPos(layers []*Layer, pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(layers) {
		return len(layers)
	}
	return snapPastSubBlocks(layers, pos)
}

// snapPastSubBlocks moves pos to the end of every enclosing block until the
// insertion point sits between blocks. Each pass only moves pos forward, so
// the loop terminates.
func snapPastSubBlocks(layers []*Layer, pos int) int {
	for {
		moved := false
		for i, l := range layers {
			if l.Kind != KindGroup || i >= pos {
				continue
			}
			end := FindGroupBlockEnd(layers, l.ID, i+1)
			if pos > i && pos < end {
				pos = end
				moved = true
			}
		}
		if !moved {
			return pos
		}
	}
}

// DuplicateBlock deep-clones the layer with the given id and, for a group,
// its whole block, inserting the copies immediately after the source block.
// Every copy gets a fresh identifier from gen; parentId references inside
// the copied set are remapped to the corresponding new identifiers, while
// references out of the set are kept. The duplicated root is renamed
// "<name> (Copy)"; descendants keep their names. Returns the input sequence
// unchanged for an unknown id.
func DuplicateBlock(layers []*Layer, id string, gen *IDGen) []*Layer {
	start, end := BlockRange(layers, id)
	if start < 0 {
		return layers
	}

	idMap := make(map[string]string, end-start)
	copies := make([]*Layer, 0, end-start)
	for i := start; i < end; i++ {
		src := layers[i]
		cp := src.Clone()
		if src.Kind == KindGroup {
			cp.ID = gen.NextGroupID()
		} else {
			cp.ID = gen.NextLayerID()
		}
		idMap[src.ID] = cp.ID
		copies = append(copies, cp)
	}
	copies[0].Name = copies[0].Name + " (Copy)"
	for _, cp := range copies {
		if mapped, ok := idMap[cp.ParentID]; ok {
			cp.ParentID = mapped
		}
	}

	out := make([]*Layer, 0, len(layers)+len(copies))
	out = append(out, layers[:end]...)
	out = append(out, copies...)
	out = append(out, layers[end:]...)
	return out
}
