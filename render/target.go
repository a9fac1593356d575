// Package render defines the render-target contract and the tcell-backed
// screen target. The engine emits cell writes; a target translates them to
// its display medium and performs a full-grid write on (re)attachment.
package render

import (
	"github.com/lixenwraith/strata/core"
	"github.com/lixenwraith/strata/draw"
)

// Target is the consumer side of the compositing pipeline
type Target interface {
	// Attach performs a full-grid write, establishing the baseline
	Attach(g core.Grid) error

	// Apply draws an incremental sequence of cell writes
	Apply(changes []draw.Change) error
}
