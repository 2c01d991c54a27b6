package layout

import (
	"fmt"

	"github.com/go-plume/plume/pkg/errors"
	"github.com/go-plume/plume/pkg/geometry"
)

// Grid places children row-major into a fixed lattice of Rows x Cols cells.
// Each child's [Inherited] rectangle is resolved within its cell, so a child
// imposing the full extent fills the cell exactly.
//
// Grid is the one built-in kind with fallible inputs: a non-positive shape
// or more children than cells is a configuration error, reported as an
// [errors.StageError] instead of being silently clamped.
type Grid struct {
	Rows int
	Cols int
	Gap  float64
	Tag  string
}

type gridDesc struct{}

func (gridDesc) Stage(props Grid, area geometry.Rect, children []Layout[Inherited]) (Staged, error) {
	if props.Rows <= 0 || props.Cols <= 0 {
		return nil, &errors.StageError{
			Kind:   "grid",
			Reason: fmt.Sprintf("non-positive shape %dx%d", props.Rows, props.Cols),
		}
	}
	if cells := props.Rows * props.Cols; len(children) > cells {
		return nil, &errors.StageError{
			Kind:   "grid",
			Reason: fmt.Sprintf("%d children for %d cells", len(children), cells),
		}
	}

	cellW := (area.Width() - props.Gap*float64(props.Cols-1)) / float64(props.Cols)
	cellH := (area.Height() - props.Gap*float64(props.Rows-1)) / float64(props.Rows)

	staged := make([]Staged, 0, len(children))
	for i, child := range children {
		row := i / props.Cols
		col := i % props.Cols
		cell := geometry.RectFromLTWH(
			area.Left+float64(col)*(cellW+props.Gap),
			area.Top+float64(row)*(cellH+props.Gap),
			cellW, cellH)

		s, err := child.Stage(geometry.Compose(child.Imposed().Area, cell))
		if err != nil {
			return nil, fmt.Errorf("grid: child %d: %w", i, err)
		}
		staged = append(staged, s)
	}
	return NewBox(area, props.Tag, staged), nil
}

// NewGrid builds a Grid node. imposed is the constraint the node's own
// parent reads. Shape validation happens at staging time, not here.
func NewGrid[I any](imposed I, props Grid, children ...Layout[Inherited]) *Node[I, Grid, []Layout[Inherited]] {
	return NewNode[I, Grid, []Layout[Inherited]](gridDesc{}, imposed, props, children)
}
