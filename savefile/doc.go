// Package savefile reads and writes the canvas document format: a textual
// table literal beginning with a return prefix, holding bracketed-key /
// equals-sign structures.
//
// The schema is versioned 1 through 6 and always decodes into the current
// in-memory shape:
//
//	1  a single flat grid, no layer list (one background layer synthesized)
//	2  a layer list without type discriminators
//	3  typed layers (layer/text/group), optional text-layer fields
//	4  group parent references (parentId)
//	5  animation frames, current frame index, frame duration
//	6  per-layer tags and the availableTags vocabulary
//
// Encode always picks the minimum version able to represent the content.
// Text layers never persist their derived grid. Colors serialize as
// 3-element channel lists; the reserved lists {-1,-1,-1} and {-2,-2,-2}
// encode the transparent-half and transparent-background sentinels.
package savefile
