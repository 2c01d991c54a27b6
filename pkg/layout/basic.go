package layout

import (
	"fmt"

	"github.com/go-plume/plume/pkg/geometry"
)

// Basic is the minimal composite kind: every child carries an [Inherited]
// placement that is resolved against the padded interior of the allotted
// area. Children may overlap; Basic imposes no ordering of its own.
type Basic struct {
	Padding geometry.Insets
	Tag     string
}

type basicDesc struct{}

func (basicDesc) Stage(props Basic, area geometry.Rect, children []Layout[Inherited]) (Staged, error) {
	inner := props.Padding.Deflate(area)
	staged := make([]Staged, 0, len(children))
	for i, child := range children {
		s, err := child.Stage(geometry.Compose(child.Imposed().Area, inner))
		if err != nil {
			return nil, fmt.Errorf("basic: child %d: %w", i, err)
		}
		staged = append(staged, s)
	}
	return NewBox(area, props.Tag, staged), nil
}

// NewBasic builds a Basic node. imposed is the constraint the node's own
// parent reads, so a Basic can sit under any parent kind.
func NewBasic[I any](imposed I, props Basic, children ...Layout[Inherited]) *Node[I, Basic, []Layout[Inherited]] {
	return NewNode[I, Basic, []Layout[Inherited]](basicDesc{}, imposed, props, children)
}
