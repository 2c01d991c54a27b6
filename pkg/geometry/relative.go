package geometry

// Unit is one coordinate of a relative rectangle: a fraction of the
// enclosing extent plus a fixed offset in surface units.
type Unit struct {
	Rel float64
	Abs float64
}

// resolve maps the unit into the absolute interval [start, start+extent].
func (u Unit) resolve(start, extent float64) float64 {
	return start + u.Rel*extent + u.Abs
}

// UnitPoint is a point expressed relative to an enclosing rectangle.
type UnitPoint struct {
	X Unit
	Y Unit
}

// RelRect is a rectangle expressed relative to an enclosing absolute
// rectangle: its top-left and bottom-right corners are each a fraction of
// the enclosing extent plus a fixed offset. Fractions outside [0, 1] are
// legal and simply place geometry outside the enclosing bounds.
type RelRect struct {
	Min UnitPoint
	Max UnitPoint
}

// FullExtent returns the identity relative rectangle: composing it with any
// absolute rectangle returns that rectangle unchanged.
func FullExtent() RelRect {
	return RelRect{
		Min: UnitPoint{X: Unit{Rel: 0}, Y: Unit{Rel: 0}},
		Max: UnitPoint{X: Unit{Rel: 1}, Y: Unit{Rel: 1}},
	}
}

// RelFromLTWH constructs a purely fractional RelRect from left, top, width,
// height fractions of the enclosing rectangle.
func RelFromLTWH(left, top, width, height float64) RelRect {
	return RelRect{
		Min: UnitPoint{X: Unit{Rel: left}, Y: Unit{Rel: top}},
		Max: UnitPoint{X: Unit{Rel: left + width}, Y: Unit{Rel: top + height}},
	}
}

// Compose resolves a relative rectangle against an absolute one, producing
// the absolute rectangle of the child's placement within abs. Composition is
// deterministic, side-effect-free and total: degenerate or out-of-range
// inputs produce degenerate or out-of-bounds output, never an error.
func Compose(rel RelRect, abs Rect) Rect {
	w := abs.Width()
	h := abs.Height()
	return Rect{
		Left:   rel.Min.X.resolve(abs.Left, w),
		Top:    rel.Min.Y.resolve(abs.Top, h),
		Right:  rel.Max.X.resolve(abs.Left, w),
		Bottom: rel.Max.Y.resolve(abs.Top, h),
	}
}

// Combine collapses two nested relative rectangles into one, such that
//
//	Compose(inner, Compose(outer, a)) == Compose(Combine(outer, inner), a)
//
// for every absolute rectangle a. Each axis of a RelRect is an affine map of
// the enclosing interval, so nesting stays closed under combination: a
// grandchild staged through two levels lands exactly where the combined
// rectangle would put it.
func Combine(outer, inner RelRect) RelRect {
	return RelRect{
		Min: UnitPoint{
			X: combineUnit(outer.Min.X, outer.Max.X, inner.Min.X),
			Y: combineUnit(outer.Min.Y, outer.Max.Y, inner.Min.Y),
		},
		Max: UnitPoint{
			X: combineUnit(outer.Min.X, outer.Max.X, inner.Max.X),
			Y: combineUnit(outer.Min.Y, outer.Max.Y, inner.Max.Y),
		},
	}
}

// combineUnit maps an inner endpoint through the outer interval [lo, hi].
// Substituting the outer interval's affine form into the inner endpoint
// keeps the result in (Rel, Abs) form.
func combineUnit(lo, hi, u Unit) Unit {
	return Unit{
		Rel: lo.Rel + u.Rel*(hi.Rel-lo.Rel),
		Abs: lo.Abs + u.Rel*(hi.Abs-lo.Abs) + u.Abs,
	}
}
