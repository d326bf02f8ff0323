package geom

import "github.com/pkg/errors"

// ErrNoSolution indicates a 2x2 linear system has no solution (parallel
// lines that do not coincide).
var ErrNoSolution = errors.New("geom: linear system has no solution")

// ErrInfiniteSolutions indicates a 2x2 linear system is degenerate and
// has infinitely many solutions (coincident lines).
var ErrInfiniteSolutions = errors.New("geom: linear system has infinite solutions")

// System2 is a 2-variable, 2-equation linear system in the same shape
// as the C original's struct linear2 (original_source/linear.c): two
// rows of (a, b, c) representing a*x + b*y + c = 0, columns settable
// independently for convenience when the system is assembled from two
// direction vectors and an offset (as in line-line intersection).
type System2 struct {
	coefs [6]float64 // row-major: [a0 b0 c0 a1 b1 c1]
	X, Y  float64    // solution, valid only after a successful Solve
}

// SetCol sets column index (0, 1, or 2) of both rows to (x, y). This
// mirrors set_linear2_col in the C original, used to build the system
// one direction-vector/offset at a time rather than row at a time.
func (s *System2) SetCol(index int, x, y float64) {
	s.coefs[index] = x
	s.coefs[index+3] = y
}

// SetRow sets row index (0 or 1) to (a, b, c) directly.
func (s *System2) SetRow(index int, a, b, c float64) {
	s.coefs[index*3] = a
	s.coefs[index*3+1] = b
	s.coefs[index*3+2] = c
}

// Solve solves the system via Cramer's rule, storing the result in
// s.X/s.Y. It returns ErrNoSolution or ErrInfiniteSolutions for a
// singular system, matching the original's solve_linear2 degeneracy
// handling (a zero determinant with a dependent second equation means
// infinitely many solutions; otherwise none).
func (s *System2) Solve() error {
	det := s.coefs[0]*s.coefs[4] - s.coefs[1]*s.coefs[3]
	if det == 0 {
		d2 := s.coefs[0]*s.coefs[5] - s.coefs[3]*s.coefs[2]
		if d2 == 0 {
			return ErrInfiniteSolutions
		}
		return ErrNoSolution
	}

	var x, y float64
	if s.coefs[0] == 0 {
		y = -s.coefs[2] / s.coefs[1]
		x = -(s.coefs[5] + s.coefs[4]*y) / s.coefs[3]
	} else {
		dy := s.coefs[2]*s.coefs[3] - s.coefs[0]*s.coefs[5]
		y = dy / det
		x = -(s.coefs[2] + s.coefs[1]*y) / s.coefs[0]
	}
	s.X, s.Y = x, y
	return nil
}
