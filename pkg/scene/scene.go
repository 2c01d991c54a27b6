// Package scene builds abstract layout trees from declarative YAML
// documents. It is a convenience front end: anything it produces can also be
// assembled directly with the layout package's constructors.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-plume/plume/pkg/geometry"
	"github.com/go-plume/plume/pkg/layout"
)

// Document is a parsed scene: one or more surfaces, each binding a node tree
// to an absolute area.
type Document struct {
	Surfaces []SurfaceSpec `yaml:"surfaces"`
}

// SurfaceSpec describes one output surface and the tree bound to it.
type SurfaceSpec struct {
	Name string   `yaml:"name,omitempty"`
	Area RectSpec `yaml:"area"`
	Root NodeSpec `yaml:"root"`
}

// RectSpec is an absolute rectangle given as origin and size.
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect converts the spec to a geometry rectangle.
func (r RectSpec) Rect() geometry.Rect {
	return geometry.RectFromLTWH(r.X, r.Y, r.Width, r.Height)
}

// RelSpec is a relative rectangle given as fractions of the enclosing area.
type RelSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rel converts the spec to a relative rectangle.
func (r RelSpec) Rel() geometry.RelRect {
	return geometry.RelFromLTWH(r.X, r.Y, r.Width, r.Height)
}

// InsetsSpec mirrors geometry.Insets for YAML decoding.
type InsetsSpec struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Insets converts the spec to geometry insets.
func (i InsetsSpec) Insets() geometry.Insets {
	return geometry.Insets{Left: i.Left, Top: i.Top, Right: i.Right, Bottom: i.Bottom}
}

// NodeSpec describes one layout node. Kind selects the node kind; the
// placement fields (at, basis, flex) are read by the node's parent, and the
// remaining fields configure the kind itself.
type NodeSpec struct {
	Kind string `yaml:"kind"`
	Tag  string `yaml:"tag,omitempty"`

	// Placement under a basic/grid parent (defaults to the full extent).
	At *RelSpec `yaml:"at,omitempty"`
	// Placement under a flex parent.
	Basis float64 `yaml:"basis,omitempty"`
	Flex  float64 `yaml:"flex,omitempty"`

	// Kind configuration.
	Padding *InsetsSpec `yaml:"padding,omitempty"` // basic
	Axis    string      `yaml:"axis,omitempty"`    // flex
	Gap     float64     `yaml:"gap,omitempty"`     // flex, grid
	Rows    int         `yaml:"rows,omitempty"`    // grid
	Cols    int         `yaml:"cols,omitempty"`    // grid

	Children []NodeSpec `yaml:"children,omitempty"`
}

// inheritedArea returns the placement a basic/grid parent reads.
func (n NodeSpec) inheritedArea() geometry.RelRect {
	if n.At == nil {
		return geometry.FullExtent()
	}
	return n.At.Rel()
}

// Surface pairs a built abstract tree with its root binding.
type Surface struct {
	Name string
	Area geometry.Rect
	Root *layout.Node[layout.Inherited, layout.Root, layout.Layout[layout.Inherited]]
}

// Stage runs a full staging pass over the surface's tree.
func (s Surface) Stage() (layout.Staged, error) {
	return s.Root.Stage(geometry.Rect{})
}

// Load reads and parses a scene document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a scene document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene document: %w", err)
	}
	if len(doc.Surfaces) == 0 {
		return nil, fmt.Errorf("scene document declares no surfaces")
	}
	return &doc, nil
}

// Build constructs the abstract layout tree of every surface. Structural
// mistakes (unknown kinds, unknown axes) are reported here; geometric
// degeneracy is not an error and flows through staging as usual.
func (d *Document) Build() ([]Surface, error) {
	surfaces := make([]Surface, 0, len(d.Surfaces))
	for i, spec := range d.Surfaces {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("surface-%d", i)
		}
		child, err := buildNode(spec.Root, layout.Inherited{Area: spec.Root.inheritedArea()})
		if err != nil {
			return nil, fmt.Errorf("surface %q: %w", name, err)
		}
		surfaces = append(surfaces, Surface{
			Name: name,
			Area: spec.Area.Rect(),
			Root: layout.NewRoot(spec.Area.Rect(), child),
		})
	}
	return surfaces, nil
}

// buildNode assembles one node. I is the constraint type the node's parent
// reads, already resolved by the caller from the spec's placement fields.
func buildNode[I any](n NodeSpec, imposed I) (layout.Layout[I], error) {
	switch n.Kind {
	case "leaf", "":
		return layout.NewLeaf(imposed, layout.Leaf{Tag: n.Tag}), nil

	case "basic":
		children, err := buildInheritedChildren(n.Children)
		if err != nil {
			return nil, err
		}
		props := layout.Basic{Tag: n.Tag}
		if n.Padding != nil {
			props.Padding = n.Padding.Insets()
		}
		return layout.NewBasic(imposed, props, children...), nil

	case "flex":
		axis, err := parseAxis(n.Axis)
		if err != nil {
			return nil, err
		}
		children := make([]layout.Layout[layout.FlexItem], 0, len(n.Children))
		for i, c := range n.Children {
			child, err := buildNode(c, layout.FlexItem{Basis: c.Basis, Flex: c.Flex})
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			children = append(children, child)
		}
		return layout.NewFlex(imposed, layout.Flex{Axis: axis, Gap: n.Gap, Tag: n.Tag}, children...), nil

	case "grid":
		children, err := buildInheritedChildren(n.Children)
		if err != nil {
			return nil, err
		}
		props := layout.Grid{Rows: n.Rows, Cols: n.Cols, Gap: n.Gap, Tag: n.Tag}
		return layout.NewGrid(imposed, props, children...), nil

	default:
		return nil, fmt.Errorf("unknown node kind %q", n.Kind)
	}
}

// buildInheritedChildren assembles the children of a basic or grid node.
func buildInheritedChildren(specs []NodeSpec) ([]layout.Layout[layout.Inherited], error) {
	children := make([]layout.Layout[layout.Inherited], 0, len(specs))
	for i, c := range specs {
		child, err := buildNode(c, layout.Inherited{Area: c.inheritedArea()})
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		children = append(children, child)
	}
	return children, nil
}

// parseAxis maps the YAML axis name to a layout axis.
func parseAxis(name string) (layout.Axis, error) {
	switch name {
	case "", "horizontal":
		return layout.AxisHorizontal, nil
	case "vertical":
		return layout.AxisVertical, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", name)
	}
}
