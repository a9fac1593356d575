package layer

// State is the full layer-tree state: the ordered layer sequence
// (bottom-to-top compositing order), the active layer reference, and the
// optional global tag vocabulary.
type State struct {
	Layers        []*Layer
	ActiveID      string
	AvailableTags []string
}

// NewState returns a state holding a single background layer
func NewState(gen *IDGen) *State {
	bg := NewDrawn(gen.NextLayerID(), "Background")
	return &State{
		Layers:   []*Layer{bg},
		ActiveID: bg.ID,
	}
}

// Find returns the layer with the given id, or nil
func (s *State) Find(id string) *Layer {
	for _, l := range s.Layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// IndexOf returns the sequence position of id, or -1
func IndexOf(layers []*Layer, id string) int {
	for i, l := range layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Active returns the active layer, or nil if the reference is stale
func (s *State) Active() *Layer {
	return s.Find(s.ActiveID)
}

// CloneState returns a deep, independent copy of s suitable as an undo
// snapshot: no grids, frames, tag lists, or color lists are shared.
func CloneState(s *State) *State {
	out := &State{
		ActiveID: s.ActiveID,
		Layers:   make([]*Layer, len(s.Layers)),
	}
	for i, l := range s.Layers {
		out.Layers[i] = l.Clone()
	}
	if s.AvailableTags != nil {
		out.AvailableTags = append([]string(nil), s.AvailableTags...)
	}
	return out
}

// CheckContiguous reports whether every group's descendants occupy one
// unbroken run immediately following the group's entry.
func CheckContiguous(layers []*Layer) bool {
	for i, l := range layers {
		if l.Kind != KindGroup {
			continue
		}
		end := FindGroupBlockEnd(layers, l.ID, i+1)
		for j := end; j < len(layers); j++ {
			for _, anc := range AncestorGroupIDs(layers, layers[j].ID) {
				if anc == l.ID {
					return false
				}
			}
		}
	}
	return true
}
