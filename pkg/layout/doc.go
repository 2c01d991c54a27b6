// Package layout implements the staging core: it turns an abstract,
// declaratively built tree of layout nodes into a tree of absolutely
// positioned rectangles ready for rendering and hit-testing.
//
// # Model
//
// Each node kind is described once by a [Desc]: its configuration type, the
// constraint type it reads from each child, the shape of its child storage,
// and the algorithm that turns configuration plus an allotted area into a
// [Staged] result. [Node] erases the concrete kind behind [Layout], so a
// parent holds children of differing kinds uniformly.
//
// Staging is driven top-down from a root binding:
//
//	root := layout.NewRoot(surface,
//	    layout.NewBasic(layout.Inherited{Area: geometry.FullExtent()},
//	        layout.Basic{},
//	        layout.NewLeaf(layout.Inherited{Area: geometry.RelFromLTWH(0.25, 0, 0.5, 1)},
//	            layout.Leaf{Tag: "panel"}),
//	    ))
//	staged, err := root.Stage(geometry.Rect{})
//
// A pass is synchronous and purely functional: the only data flowing between
// nodes is the allotted-area argument passed down and the staged value passed
// up. Re-staging (a window resize, say) reruns the whole pass and the old
// staged tree is discarded; nothing is patched incrementally. Distinct roots
// share no state, so staging them concurrently is safe.
//
// Degenerate geometry is never an error: a relative rectangle with negative
// or oversized fractions stages to a degenerate or out-of-bounds rectangle
// and downstream consumers treat it as invisible. Only kinds with genuinely
// fallible inputs (see [Grid]) return errors, and ancestor kinds propagate
// them upward instead of substituting a default layout.
package layout
