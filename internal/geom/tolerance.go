package geom

// DefaultTolerance mirrors the C original's #define TOLERANCE 0.001 in
// edge_list.c, but is no longer a scattered literal: every caller that
// needs a tolerance takes one as a parameter (spec.md §9).
const DefaultTolerance = 1e-3

// Near reports whether value is within tolerance of target.
func Near(value, target, tolerance float64) bool {
	return value > target-tolerance && value < target+tolerance
}

// WithinInterval reports whether value lies within [-tolerance, hi+tolerance].
func WithinInterval(value, hi, tolerance float64) bool {
	return value >= -tolerance && value <= hi+tolerance
}
