package geometry

import "testing"

// TestComposeIdentity verifies that the full-extent, zero-offset relative
// rectangle leaves any absolute rectangle unchanged.
func TestComposeIdentity(t *testing.T) {
	rects := []Rect{
		RectFromLTWH(0, 0, 200, 100),
		RectFromLTWH(-50, 30, 7, 1000),
		RectFromLTWH(3.5, -2.25, 0.5, 0.5),
		{}, // degenerate identity holds too
	}
	for _, a := range rects {
		if got := Compose(FullExtent(), a); got != a {
			t.Errorf("Compose(FullExtent, %+v) = %+v, want unchanged", a, got)
		}
	}
}

// TestComposePropagation pins the constraint-propagation numbers: a child
// imposing (0.25, 0, 0.5, 1.0) within a 200x100 surface lands at
// (50, 0, 100, 100).
func TestComposePropagation(t *testing.T) {
	a := RectFromLTWH(0, 0, 200, 100)
	got := Compose(RelFromLTWH(0.25, 0, 0.5, 1.0), a)
	want := RectFromLTWH(50, 0, 100, 100)
	if !got.ApproxEqual(want) {
		t.Errorf("Compose = %+v, want %+v", got, want)
	}
}

func TestComposeWithOffsets(t *testing.T) {
	a := RectFromLTWH(10, 10, 100, 100)
	rel := RelRect{
		Min: UnitPoint{X: Unit{Rel: 0, Abs: 5}, Y: Unit{Rel: 0.5, Abs: -5}},
		Max: UnitPoint{X: Unit{Rel: 1, Abs: -5}, Y: Unit{Rel: 1, Abs: 0}},
	}
	got := Compose(rel, a)
	want := Rect{Left: 15, Top: 55, Right: 105, Bottom: 110}
	if !got.ApproxEqual(want) {
		t.Errorf("Compose = %+v, want %+v", got, want)
	}
}

// TestComposeDegenerate verifies malformed fractions are accepted and simply
// produce geometry outside the parent, never an error.
func TestComposeDegenerate(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 100)

	outside := Compose(RelFromLTWH(-0.5, 0, 0.25, 1), a)
	if outside.Left != -50 {
		t.Errorf("negative fraction should land outside the parent, got %+v", outside)
	}

	inverted := Compose(RelFromLTWH(0.8, 0, -0.6, 1), a)
	if !inverted.IsEmpty() {
		t.Errorf("negative width fraction should produce a degenerate rect, got %+v", inverted)
	}
}

// TestCombineAssociativity verifies the key geometry invariant: staging a
// grandchild through two nested relative rectangles equals staging it
// through their algebraic combination.
func TestCombineAssociativity(t *testing.T) {
	abs := []Rect{
		RectFromLTWH(0, 0, 200, 100),
		RectFromLTWH(-20, 40, 333, 77),
		RectFromLTWH(5, 5, 1, 1),
	}
	outers := []RelRect{
		FullExtent(),
		RelFromLTWH(0.25, 0.1, 0.5, 0.8),
		{
			Min: UnitPoint{X: Unit{Rel: 0.1, Abs: 3}, Y: Unit{Rel: 0, Abs: -2}},
			Max: UnitPoint{X: Unit{Rel: 0.9, Abs: -3}, Y: Unit{Rel: 1, Abs: 2}},
		},
	}
	inners := []RelRect{
		FullExtent(),
		RelFromLTWH(0, 0.5, 1, 0.5),
		{
			Min: UnitPoint{X: Unit{Rel: 0.5, Abs: -1}, Y: Unit{Rel: 0.5, Abs: 1}},
			Max: UnitPoint{X: Unit{Rel: 2, Abs: 4}, Y: Unit{Rel: 0.75, Abs: 0}},
		},
	}

	for _, a := range abs {
		for _, outer := range outers {
			for _, inner := range inners {
				nested := Compose(inner, Compose(outer, a))
				combined := Compose(Combine(outer, inner), a)
				if !nested.ApproxEqual(combined) {
					t.Errorf("associativity broken for a=%+v outer=%+v inner=%+v:\n  nested   %+v\n  combined %+v",
						a, outer, inner, nested, combined)
				}
			}
		}
	}
}

// TestCombineIdentity verifies FullExtent is the identity of Combine on both
// sides.
func TestCombineIdentity(t *testing.T) {
	rel := RelRect{
		Min: UnitPoint{X: Unit{Rel: 0.2, Abs: 1}, Y: Unit{Rel: 0.3, Abs: -1}},
		Max: UnitPoint{X: Unit{Rel: 0.8, Abs: 0}, Y: Unit{Rel: 0.9, Abs: 2}},
	}
	if got := Combine(FullExtent(), rel); got != rel {
		t.Errorf("Combine(id, rel) = %+v, want %+v", got, rel)
	}
	if got := Combine(rel, FullExtent()); got != rel {
		t.Errorf("Combine(rel, id) = %+v, want %+v", got, rel)
	}
}
