package layout

import (
	"testing"

	"github.com/go-plume/plume/pkg/geometry"
)

// checkPartition asserts the staged children of a flex box are pairwise
// disjoint and contained in the parent's allotted rectangle.
func checkPartition(t *testing.T, parent geometry.Rect, children []Staged) {
	t.Helper()
	for i, a := range children {
		if a.Bounds().Union(parent) != parent {
			t.Errorf("child %d at %+v exceeds parent %+v", i, a.Bounds(), parent)
		}
		for j := i + 1; j < len(children); j++ {
			if !a.Bounds().Intersect(children[j].Bounds()).IsEmpty() {
				t.Errorf("children %d and %d overlap: %+v vs %+v",
					i, j, a.Bounds(), children[j].Bounds())
			}
		}
	}
}

func TestFlexBasisAndWeights(t *testing.T) {
	area := geometry.RectFromLTWH(0, 0, 300, 100)
	node := NewFlex(Inherited{Area: geometry.FullExtent()},
		Flex{Axis: AxisHorizontal, Gap: 10},
		NewLeaf(FlexItem{Basis: 50}, Leaf{}),
		NewLeaf(FlexItem{Basis: 100}, Leaf{}),
		NewLeaf(FlexItem{Flex: 1}, Leaf{}),
	)

	staged := mustStage[Inherited](t, node, area)
	children := staged.Children()
	want := []geometry.Rect{
		geometry.RectFromLTWH(0, 0, 50, 100),
		geometry.RectFromLTWH(60, 0, 100, 100),
		geometry.RectFromLTWH(170, 0, 130, 100),
	}
	for i := range want {
		if !children[i].Bounds().ApproxEqual(want[i]) {
			t.Errorf("child %d = %+v, want %+v", i, children[i].Bounds(), want[i])
		}
	}
	checkPartition(t, area, children)
}

func TestFlexProportionalSplit(t *testing.T) {
	area := geometry.RectFromLTWH(0, 0, 100, 40)
	node := NewFlex(Inherited{Area: geometry.FullExtent()},
		Flex{Axis: AxisHorizontal},
		NewLeaf(FlexItem{Flex: 1}, Leaf{}),
		NewLeaf(FlexItem{Flex: 3}, Leaf{}),
	)

	children := mustStage[Inherited](t, node, area).Children()
	if w := children[0].Bounds().Width(); w != 25 {
		t.Errorf("flex-1 child width = %v, want 25", w)
	}
	if w := children[1].Bounds().Width(); w != 75 {
		t.Errorf("flex-3 child width = %v, want 75", w)
	}
	checkPartition(t, area, children)
}

func TestFlexVertical(t *testing.T) {
	area := geometry.RectFromLTWH(10, 10, 50, 210)
	node := NewFlex(Inherited{Area: geometry.FullExtent()},
		Flex{Axis: AxisVertical, Gap: 5},
		NewLeaf(FlexItem{Basis: 100}, Leaf{}),
		NewLeaf(FlexItem{Flex: 1}, Leaf{}),
	)

	children := mustStage[Inherited](t, node, area).Children()
	wantTop := geometry.RectFromLTWH(10, 10, 50, 100)
	wantBottom := geometry.RectFromLTWH(10, 115, 50, 105)
	if !children[0].Bounds().ApproxEqual(wantTop) {
		t.Errorf("top child = %+v, want %+v", children[0].Bounds(), wantTop)
	}
	if !children[1].Bounds().ApproxEqual(wantBottom) {
		t.Errorf("bottom child = %+v, want %+v", children[1].Bounds(), wantBottom)
	}
	checkPartition(t, area, children)
}

func TestFlexEmpty(t *testing.T) {
	area := geometry.RectFromLTWH(0, 0, 10, 10)
	staged := mustStage[Inherited](t,
		NewFlex(Inherited{Area: geometry.FullExtent()}, Flex{Axis: AxisHorizontal}), area)
	if staged.Bounds() != area || len(staged.Children()) != 0 {
		t.Errorf("empty flex should stage to its area with no children")
	}
}

// TestFlexOverconstrained verifies that when fixed bases exceed the allotted
// extent the overflow is propagated, not rejected, and siblings still never
// overlap.
func TestFlexOverconstrained(t *testing.T) {
	area := geometry.RectFromLTWH(0, 0, 100, 50)
	node := NewFlex(Inherited{Area: geometry.FullExtent()},
		Flex{Axis: AxisHorizontal},
		NewLeaf(FlexItem{Basis: 80}, Leaf{}),
		NewLeaf(FlexItem{Basis: 80}, Leaf{}),
		NewLeaf(FlexItem{Flex: 1}, Leaf{}),
	)

	children := mustStage[Inherited](t, node, area).Children()
	if children[1].Bounds().Right != 160 {
		t.Errorf("second child should overflow to 160, got %+v", children[1].Bounds())
	}
	// Flex children collapse to their basis when nothing is left.
	if !children[2].Bounds().IsEmpty() {
		t.Errorf("flex child should be degenerate when no space remains, got %+v", children[2].Bounds())
	}
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			if !children[i].Bounds().Intersect(children[j].Bounds()).IsEmpty() {
				t.Errorf("children %d and %d overlap", i, j)
			}
		}
	}
}

func TestFlexChildErrorPropagates(t *testing.T) {
	node := NewFlex(Inherited{Area: geometry.FullExtent()},
		Flex{Axis: AxisHorizontal},
		NewGrid(FlexItem{Flex: 1}, Grid{Rows: 0, Cols: 2}),
	)
	_, err := node.Stage(geometry.RectFromLTWH(0, 0, 100, 100))
	if err == nil {
		t.Fatal("expected the grid's staging error to propagate through flex")
	}
}

func TestAxisString(t *testing.T) {
	if AxisHorizontal.String() != "horizontal" || AxisVertical.String() != "vertical" {
		t.Error("unexpected axis names")
	}
	if Axis(7).String() != "Axis(7)" {
		t.Errorf("unexpected fallback: %s", Axis(7).String())
	}
}
