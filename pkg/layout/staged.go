package layout

import "github.com/go-plume/plume/pkg/geometry"

// Staged is the resolved output of staging: an immutable node holding its
// absolute rectangle and its already-resolved children. A staged tree is
// produced once per pass and superseded wholesale by the next pass.
type Staged interface {
	// Bounds returns the node's resolved absolute rectangle.
	Bounds() geometry.Rect
	// Children returns the node's staged children.
	Children() []Staged
}

// Tagged is implemented by staged nodes that carry a user-assigned tag,
// letting hit-test and debug consumers identify what they found.
type Tagged interface {
	Tag() string
}

// Walk visits s and its descendants depth-first, parents before children.
// The visitor returns false to stop the walk; Walk reports whether the walk
// ran to completion.
func Walk(s Staged, fn func(Staged) bool) bool {
	if s == nil {
		return true
	}
	if !fn(s) {
		return false
	}
	for _, child := range s.Children() {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// Depth returns the height of a staged tree: 1 for a leaf.
func Depth(s Staged) int {
	if s == nil {
		return 0
	}
	deepest := 0
	for _, child := range s.Children() {
		if d := Depth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Box is the staged node shared by the built-in kinds.
type Box struct {
	bounds   geometry.Rect
	tag      string
	children []Staged
}

// NewBox creates a staged node from resolved geometry and children.
// Kinds that need render- or hit-test behavior beyond a rectangle supply
// their own Staged implementation instead.
func NewBox(bounds geometry.Rect, tag string, children []Staged) *Box {
	return &Box{bounds: bounds, tag: tag, children: children}
}

// Bounds returns the node's resolved absolute rectangle.
func (b *Box) Bounds() geometry.Rect {
	return b.bounds
}

// Children returns the node's staged children.
func (b *Box) Children() []Staged {
	return b.children
}

// Tag returns the user-assigned tag, or "" if none was set.
func (b *Box) Tag() string {
	return b.tag
}
