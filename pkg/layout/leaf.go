package layout

import "github.com/go-plume/plume/pkg/geometry"

// Leaf fills its allotted area and stages no children.
type Leaf struct {
	Tag string
}

type leafDesc struct{}

func (leafDesc) Stage(props Leaf, area geometry.Rect, _ NoChildren) (Staged, error) {
	return NewBox(area, props.Tag, nil), nil
}

// NewLeaf builds a Leaf node. imposed is the constraint the node's parent
// reads.
func NewLeaf[I any](imposed I, props Leaf) *Node[I, Leaf, NoChildren] {
	return NewNode[I, Leaf, NoChildren](leafDesc{}, imposed, props, NoChildren{})
}
