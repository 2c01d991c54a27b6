package layout

import "github.com/go-plume/plume/pkg/geometry"

// Inherited is the constraint a [Root], [Basic] or [Grid] parent reads from
// each child: the relative rectangle the child occupies within the area the
// parent resolved for it.
type Inherited struct {
	Area geometry.RelRect
}

// Root is the configuration of the root kind: the absolute area of the
// output surface an abstract tree is bound to. There can be multiple root
// nodes, each mapping to a different window; staging one never affects
// another.
type Root struct {
	Area geometry.Rect
}

type rootDesc struct{}

// Stage composes the child's imposed rectangle with the bound surface area
// and delegates, returning the child's staged result as the root's own.
// A staged node for the root itself would be a redundant wrapper with no
// geometry or behavior of its own, so none is created.
func (rootDesc) Stage(props Root, _ geometry.Rect, child Layout[Inherited]) (Staged, error) {
	return child.Stage(geometry.Compose(child.Imposed().Area, props.Area))
}

// NewRoot binds an abstract tree to one output surface's absolute area.
// The allotted rectangle passed when staging the returned node is ignored;
// the root kind always stages into its bound area:
//
//	staged, err := root.Stage(geometry.Rect{})
//
// Re-staging after a resize means binding a new root to the new area; the
// child tree can be reused as-is or via Clone.
func NewRoot(area geometry.Rect, child Layout[Inherited]) *Node[Inherited, Root, Layout[Inherited]] {
	return NewNode[Inherited, Root, Layout[Inherited]](
		rootDesc{}, Inherited{Area: geometry.FullExtent()}, Root{Area: area}, child)
}
