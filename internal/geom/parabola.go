package geom

import (
	"math"

	"github.com/pkg/errors"
)

// Parabola is the coefficients of y = a*x^2 + b*x + c describing the
// locus of points equidistant from a site and a horizontal directrix,
// as derived in original_source/voronoi.c's get_parabola:
//
//	dist²(P, S) = dist²(P, L)
//	(x-sx)² + (y-sy)² = (y-ly)²
//	a = 1 / (2*(sy-ly))
//	b = -sx / (sy-ly)
//	c = (sx² + sy² - ly²) * a
type Parabola struct {
	A, B, C float64
}

// NewParabola computes the arc induced by a site at (sx, sy) against
// the sweep directrix y = ly. The caller must ensure sy != ly (the
// site must be strictly above the sweep line).
func NewParabola(sx, sy, ly float64) Parabola {
	a := 1.0 / (2.0 * (sy - ly))
	b := -sx / (sy - ly)
	c := (sx*sx+sy*sy-ly*ly)*a
	return Parabola{A: a, B: b, C: c}
}

// Y evaluates the parabola at x.
func (p Parabola) Y(x float64) float64 {
	return x*x*p.A + x*p.B + p.C
}

// IntersectionX returns the x-coordinate of the breakpoint between the
// arcs induced by left and right against directrix y = ly. When the
// difference of the two parabolas has two roots, the root on the upper
// envelope is selected: x1 (the smaller root) if left is the
// higher/closer site (left.Y < right.Y), else x2 — matching
// get_intersection_x in original_source/voronoi.c.
//
// ok is false (with no error) when either site is level with the
// sweep line (its arc has degenerated to a vertical line) or the two
// sites coincide, which makes the breakpoint ill-defined here (handled
// by the caller's axis-aligned special case); err is non-nil only for
// a genuine numerical failure (negative discriminant, which should not
// occur for two arcs both still open above the sweep line).
func IntersectionX(leftX, leftY, rightX, rightY, ly float64) (x float64, ok bool, err error) {
	if leftY == ly || rightY == ly {
		return 0, false, nil
	}

	pl := NewParabola(leftX, leftY, ly)
	pr := NewParabola(rightX, rightY, ly)
	a := pl.A - pr.A
	b := pl.B - pr.B
	c := pl.C - pr.C

	if a == 0 {
		// The two sites share the same y, so the difference is linear
		// and the breakpoint is the vertical bisector x = -c/b; b is
		// zero only when the sites coincide.
		if b == 0 {
			return 0, false, nil
		}
		return -c / b, true, nil
	}

	discQ := b*b - 4.0*a*c
	if discQ < 0 {
		return 0, false, ErrNegativeDiscriminant
	}
	disc := math.Sqrt(discQ)
	x1 := (-b - disc) / (2.0 * a)
	x2 := (-b + disc) / (2.0 * a)
	if x2 < x1 {
		x1, x2 = x2, x1
	}

	if leftY < rightY {
		return x1, true, nil
	}
	return x2, true, nil
}

// ErrNegativeDiscriminant indicates the breakpoint quadratic has no
// real roots, which signals a numerical failure in the sweep (spec.md
// §7's "discriminant negative where a circle was required").
var ErrNegativeDiscriminant = errors.New("geom: negative discriminant for breakpoint intersection")
