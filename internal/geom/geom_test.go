package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem2SolveUniqueIntersection(t *testing.T) {
	var sys System2
	// x + 0*y - 5 = 0  => x = 5
	sys.SetRow(0, 1, 0, -5)
	// 0*x + y - 3 = 0 => y = 3
	sys.SetRow(1, 0, 1, -3)
	require.NoError(t, sys.Solve())
	assert.InDelta(t, 5, sys.X, 1e-9)
	assert.InDelta(t, 3, sys.Y, 1e-9)
}

func TestSystem2SolveParallelNoSolution(t *testing.T) {
	var sys System2
	sys.SetRow(0, 1, 1, -1)
	sys.SetRow(1, 1, 1, -2)
	assert.ErrorIs(t, sys.Solve(), ErrNoSolution)
}

func TestSystem2SolveCoincidentInfiniteSolutions(t *testing.T) {
	var sys System2
	sys.SetRow(0, 1, 1, -1)
	sys.SetRow(1, 2, 2, -2)
	assert.ErrorIs(t, sys.Solve(), ErrInfiniteSolutions)
}

func TestParabolaYAtSiteApex(t *testing.T) {
	// Directly above a site, the parabola sits halfway between the site
	// and the directrix.
	p := NewParabola(5, 10, 0)
	assert.InDelta(t, 5, p.Y(5), 1e-9)
}

func TestIntersectionXSymmetricSites(t *testing.T) {
	x, ok, err := IntersectionX(0, 10, 10, 10, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 5, x, 1e-9)
}

func TestIntersectionXSelectsUpperEnvelopeRoot(t *testing.T) {
	// A closer (lower y, i.e. larger) site carves a narrower arc; the
	// breakpoint nearer to it should lie on the side of the farther site.
	x, ok, err := IntersectionX(0, 8, 20, 12, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Greater(t, x, 0.0)
	assert.Less(t, x, 20.0)
}

func TestIntersectionXSiteOnDirectrixIsNotOk(t *testing.T) {
	_, ok, err := IntersectionX(0, 10, 10, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}
