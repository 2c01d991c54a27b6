// Package hittest maintains a spatial index of staged rectangles for point
// and region queries. The staging core itself only needs the insertion side
// of the contract; queries serve input dispatch downstream.
package hittest

import (
	"github.com/tidwall/rtree"

	"github.com/go-plume/plume/pkg/geometry"
	"github.com/go-plume/plume/pkg/layout"
)

// Index accepts staged nodes keyed by their absolute rectangle.
type Index interface {
	Insert(bounds geometry.Rect, node layout.Staged)
}

// RTree is an [Index] backed by an R-tree, suitable for the many-rectangle,
// few-query-shapes workload of pointer dispatch. The zero value is ready to
// use. It is not safe for concurrent mutation; index one staged tree per
// surface and rebuild it alongside each staging pass.
type RTree struct {
	tree rtree.RTreeG[layout.Staged]
}

// Insert registers one staged node under its absolute rectangle.
func (t *RTree) Insert(bounds geometry.Rect, node layout.Staged) {
	t.tree.Insert(
		[2]float64{bounds.Left, bounds.Top},
		[2]float64{bounds.Right, bounds.Bottom},
		node)
}

// Len returns the number of indexed nodes.
func (t *RTree) Len() int {
	return t.tree.Len()
}

// Search visits every indexed node whose rectangle intersects r. The visitor
// returns false to stop early.
func (t *RTree) Search(r geometry.Rect, fn func(layout.Staged) bool) {
	t.tree.Search(
		[2]float64{r.Left, r.Top},
		[2]float64{r.Right, r.Bottom},
		func(_, _ [2]float64, node layout.Staged) bool {
			return fn(node)
		})
}

// At returns the indexed nodes whose rectangle contains the point. Nodes
// merely touching the point with their right or bottom edge are excluded,
// matching [geometry.Rect.Contains].
func (t *RTree) At(p geometry.Offset) []layout.Staged {
	var out []layout.Staged
	t.tree.Search(
		[2]float64{p.X, p.Y},
		[2]float64{p.X, p.Y},
		func(_, _ [2]float64, node layout.Staged) bool {
			if node.Bounds().Contains(p) {
				out = append(out, node)
			}
			return true
		})
	return out
}

// InsertTree registers a staged tree depth-first, parents before children.
// Degenerate rectangles are skipped: a zero- or negative-area region is
// invisible and non-interactive.
func InsertTree(idx Index, root layout.Staged) {
	layout.Walk(root, func(s layout.Staged) bool {
		if !s.Bounds().IsEmpty() {
			idx.Insert(s.Bounds(), s)
		}
		return true
	})
}
