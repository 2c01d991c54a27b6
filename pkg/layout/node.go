package layout

import "github.com/go-plume/plume/pkg/geometry"

// Layout erases a node's concrete kind so a parent can hold mixed-kind
// children uniformly. I is the imposed-constraint type the node's parent
// reads: the value describing the space or placement the node is granted.
type Layout[I any] interface {
	// Imposed returns the constraint value the parent's placement algorithm
	// reads for this node. It is computed from configuration alone and does
	// not depend on staging having occurred.
	Imposed() I
	// Stage resolves this node's subtree within the absolute area the parent
	// granted it.
	Stage(area geometry.Rect) (Staged, error)
	// Clone duplicates the node so the same abstract tree can be staged
	// repeatedly, or mounted under more than one root, without being rebuilt.
	Clone() Layout[I]
}

// Node bundles a kind's configuration and children with the placement value
// its parent reads, and implements [Layout] by forwarding to the kind's
// descriptor. Construct nodes through the per-kind constructors (NewRoot,
// NewBasic, NewFlex, NewGrid, NewLeaf) or NewNode for out-of-tree kinds.
type Node[I, P, C any] struct {
	desc     Desc[P, C]
	imposed  I
	props    P
	children C
}

// NewNode wraps a descriptor with one node's configuration and children.
func NewNode[I, P, C any](desc Desc[P, C], imposed I, props P, children C) *Node[I, P, C] {
	return &Node[I, P, C]{desc: desc, imposed: imposed, props: props, children: children}
}

// Imposed returns the constraint this node carries for its parent.
func (n *Node[I, P, C]) Imposed() I {
	return n.imposed
}

// Stage runs the kind's staging algorithm over this node's configuration and
// children.
func (n *Node[I, P, C]) Stage(area geometry.Rect) (Staged, error) {
	return n.desc.Stage(n.props, area, n.children)
}

// Clone returns a copy of the node. Children are shared rather than deep
// copied: staging never mutates configuration or children, so both copies
// stage independently, including concurrently against distinct surfaces.
func (n *Node[I, P, C]) Clone() Layout[I] {
	c := *n
	return &c
}
