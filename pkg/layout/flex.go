package layout

import (
	"fmt"

	"github.com/go-plume/plume/pkg/geometry"
)

// Axis represents the layout direction of a [Flex] node.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// FlexItem is the constraint a [Flex] parent reads from each child: a fixed
// main-axis extent plus a weight for sharing whatever space remains.
type FlexItem struct {
	// Basis is the child's fixed main-axis extent in surface units.
	Basis float64
	// Flex is the child's share of the space left after every basis and gap
	// is subtracted. Zero means the child gets exactly its basis.
	Flex float64
}

// Flex partitions its allotted area into non-overlapping slices along one
// axis. Each child spans the full cross-axis extent. Fixed bases are
// honored first; leftover space is split proportionally to the children's
// flex weights. When the bases alone exceed the allotted extent, flex
// children collapse to their basis and the overflow is propagated as
// out-of-bounds geometry rather than rejected.
type Flex struct {
	Axis Axis
	Gap  float64
	Tag  string
}

type flexDesc struct{}

func (flexDesc) Stage(props Flex, area geometry.Rect, children []Layout[FlexItem]) (Staged, error) {
	if len(children) == 0 {
		return NewBox(area, props.Tag, nil), nil
	}

	main := area.Width()
	if props.Axis == AxisVertical {
		main = area.Height()
	}

	var totalBasis, totalFlex float64
	for _, child := range children {
		item := child.Imposed()
		totalBasis += item.Basis
		totalFlex += item.Flex
	}

	free := main - props.Gap*float64(len(children)-1) - totalBasis
	if free < 0 {
		free = 0
	}
	perFlex := 0.0
	if totalFlex > 0 {
		perFlex = free / totalFlex
	}

	staged := make([]Staged, 0, len(children))
	cursor := area.Left
	if props.Axis == AxisVertical {
		cursor = area.Top
	}
	for i, child := range children {
		item := child.Imposed()
		extent := item.Basis + item.Flex*perFlex

		var slot geometry.Rect
		if props.Axis == AxisVertical {
			slot = geometry.Rect{Left: area.Left, Top: cursor, Right: area.Right, Bottom: cursor + extent}
		} else {
			slot = geometry.Rect{Left: cursor, Top: area.Top, Right: cursor + extent, Bottom: area.Bottom}
		}

		s, err := child.Stage(slot)
		if err != nil {
			return nil, fmt.Errorf("flex: child %d: %w", i, err)
		}
		staged = append(staged, s)
		cursor += extent + props.Gap
	}
	return NewBox(area, props.Tag, staged), nil
}

// NewFlex builds a Flex node. imposed is the constraint the node's own
// parent reads.
func NewFlex[I any](imposed I, props Flex, children ...Layout[FlexItem]) *Node[I, Flex, []Layout[FlexItem]] {
	return NewNode[I, Flex, []Layout[FlexItem]](flexDesc{}, imposed, props, children)
}
