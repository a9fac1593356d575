package layer

// AddTag returns layers with tag added to the layer's tag set. Adding a tag
// the layer already carries (or tagging an unknown id) is a no-op that
// returns the input slice unchanged; callers can rely on reference identity
// to tell the two outcomes apart.
func AddTag(layers []*Layer, id, tag string) []*Layer {
	i := IndexOf(layers, id)
	if i < 0 {
		return layers
	}
	for _, t := range layers[i].Tags {
		if t == tag {
			return layers
		}
	}
	out := append([]*Layer(nil), layers...)
	cp := layers[i].Clone()
	cp.Tags = append(cp.Tags, tag)
	out[i] = cp
	return out
}

// RemoveTag returns layers with tag removed from the layer's tag set.
// Removing an absent tag is a no-op returning the input slice unchanged.
// Removing the last tag clears the field entirely rather than leaving an
// empty set.
func RemoveTag(layers []*Layer, id, tag string) []*Layer {
	i := IndexOf(layers, id)
	if i < 0 {
		return layers
	}
	at := -1
	for j, t := range layers[i].Tags {
		if t == tag {
			at = j
			break
		}
	}
	if at < 0 {
		return layers
	}
	out := append([]*Layer(nil), layers...)
	cp := layers[i].Clone()
	cp.Tags = append(cp.Tags[:at], cp.Tags[at+1:]...)
	if len(cp.Tags) == 0 {
		cp.Tags = nil
	}
	out[i] = cp
	return out
}
