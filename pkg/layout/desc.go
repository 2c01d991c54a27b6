package layout

import "github.com/go-plume/plume/pkg/geometry"

// Desc defines the staging algorithm for one kind of layout node. A kind
// fixes three facets at compile time: its configuration type P, the shape of
// its child storage C, and (through C's element type) the constraint it
// reads from each child.
//
// Child storage is one of: [NoChildren] for leaf kinds, a single Layout[X],
// or an ordered []Layout[X].
//
// Stage must be deterministic given identical inputs and must consult no
// hidden global state. It is the single extension point for new layout
// kinds: stacking, flow and grid kinds differ only in how they partition the
// allotted area among their children.
type Desc[P, C any] interface {
	// Stage resolves one node: props are the kind's own settings, area is the
	// absolute rectangle the parent granted (or, for a root, ignored in favor
	// of the bound surface area), and children is the kind's child storage.
	Stage(props P, area geometry.Rect, children C) (Staged, error)
}

// NoChildren is the child storage of kinds that bottom out the recursion.
type NoChildren struct{}
