package beachline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansvanmoer/game/dcel"
	"github.com/hansvanmoer/game/internal/arena"
)

// newSingleArcTree builds a beachline with exactly one arc, for site
// faceA on el, as the starting point for Split-based tests.
func newSingleArcTree(el *dcel.EdgeList, faceA dcel.FaceRef) (*Tree, NodeRef) {
	tree := New(el)
	arc := tree.NewArcNode(faceA)
	tree.Root = arc
	return tree, arc
}

func TestSplitProducesFiveNodeFragment(t *testing.T) {
	el := dcel.NewEdgeList()
	faceA := el.NewFace(0, 10)
	faceB := el.NewFace(4, 6)

	tree, arc := newSingleArcTree(el, faceA)
	edge := el.NewEdge()
	twin := el.HalfEdge(edge).Twin

	leftArc, leftBp, midArc, rightBp, rightArc := tree.Split(arc, faceB, 6, edge, twin)

	require.Equal(t, leftBp, tree.Root)
	assert.Equal(t, Breakpoint, tree.Node(leftBp).Kind)
	assert.Equal(t, Breakpoint, tree.Node(rightBp).Kind)
	assert.Equal(t, Arc, tree.Node(leftArc).Kind)
	assert.Equal(t, Arc, tree.Node(midArc).Kind)
	assert.Equal(t, Arc, tree.Node(rightArc).Kind)

	assert.Equal(t, faceA, tree.Node(leftArc).Face)
	assert.Equal(t, faceB, tree.Node(midArc).Face)
	assert.Equal(t, faceA, tree.Node(rightArc).Face)

	assert.Equal(t, leftArc, tree.Node(leftBp).Left)
	assert.Equal(t, rightBp, tree.Node(leftBp).Right)
	assert.Equal(t, midArc, tree.Node(rightBp).Left)
	assert.Equal(t, rightArc, tree.Node(rightBp).Right)

	// Direction vectors oppose each other: the right breakpoint takes
	// (my, -mx) for (mx, my) = faceB - faceA = (4, -4), the left
	// breakpoint its exact negation (no dx >= 0 canonicalization — see
	// split.go).
	lb, rb := tree.Node(leftBp), tree.Node(rightBp)
	assert.InDelta(t, -4.0, rb.DX, 1e-9)
	assert.InDelta(t, -4.0, rb.DY, 1e-9)
	assert.InDelta(t, -rb.DX, lb.DX, 1e-9)
	assert.InDelta(t, -rb.DY, lb.DY, 1e-9)
}

func TestFirstLastArcAfterSplit(t *testing.T) {
	el := dcel.NewEdgeList()
	faceA := el.NewFace(0, 10)
	faceB := el.NewFace(4, 6)

	tree, arc := newSingleArcTree(el, faceA)
	edge := el.NewEdge()
	leftArc, _, midArc, _, rightArc := tree.Split(arc, faceB, 6, edge, el.HalfEdge(edge).Twin)

	assert.Equal(t, leftArc, tree.FirstArc())
	assert.Equal(t, rightArc, tree.LastArc())
	assert.Equal(t, midArc, tree.NextArc(leftArc))
	assert.Equal(t, leftArc, tree.PrevArc(midArc))
	assert.Equal(t, rightArc, tree.NextArc(midArc))
	assert.Equal(t, midArc, tree.PrevArc(rightArc))
}

func TestLocateArcAboveReachesExtremeArcs(t *testing.T) {
	el := dcel.NewEdgeList()
	faceA := el.NewFace(0, 10)
	faceB := el.NewFace(4, 6)

	tree, arc := newSingleArcTree(el, faceA)
	edge := el.NewEdge()
	leftArc, _, _, _, rightArc := tree.Split(arc, faceB, 6, edge, el.HalfEdge(edge).Twin)

	got, err := tree.LocateArcAbove(-1000, 2)
	require.NoError(t, err)
	assert.Equal(t, leftArc, got)

	got, err = tree.LocateArcAbove(1000, 2)
	require.NoError(t, err)
	assert.Equal(t, rightArc, got)
}

func TestLocateArcAboveOnEmptyTree(t *testing.T) {
	el := dcel.NewEdgeList()
	tree := New(el)
	_, err := tree.LocateArcAbove(0, 0)
	assert.ErrorIs(t, err, ErrEmptyTree)
}

func TestRemoveArcSplicesAndPromotesSurvivor(t *testing.T) {
	el := dcel.NewEdgeList()
	faceA := el.NewFace(0, 10)
	faceB := el.NewFace(4, 6)

	tree, arc := newSingleArcTree(el, faceA)
	splitEdge := el.NewEdge()
	leftArc, leftBp, midArc, rightBp, rightArc := tree.Split(arc, faceB, 6, splitEdge, el.HalfEdge(splitEdge).Twin)
	_ = rightBp

	newEdge := el.NewEdge()
	survivor, gotLeft, gotRight, err := tree.RemoveArc(midArc, 2, 3, newEdge)
	require.NoError(t, err)

	assert.Equal(t, leftBp, survivor, "the breakpoint that was not midArc's direct parent survives")
	assert.Equal(t, leftArc, gotLeft)
	assert.Equal(t, rightArc, gotRight)

	// The surviving breakpoint now sits at the tree root with the two
	// former outer arcs as its direct children.
	assert.Equal(t, leftBp, tree.Root)
	assert.Equal(t, leftArc, tree.Node(leftBp).Left)
	assert.Equal(t, rightArc, tree.Node(leftBp).Right)
	assert.Equal(t, leftBp, tree.Node(leftArc).Parent)
	assert.Equal(t, leftBp, tree.Node(rightArc).Parent)

	sv := tree.Node(leftBp)
	assert.Equal(t, 2.0, sv.X)
	assert.Equal(t, 3.0, sv.Y)
	assert.Equal(t, newEdge, sv.HalfEdge)
	// leftArc and rightArc are both copies of faceA here, so the new
	// direction (rightArc.site - leftArc.site) is the zero vector.
	assert.Equal(t, 0.0, sv.DX)
	assert.Equal(t, 0.0, sv.DY)

	assert.Equal(t, leftArc, tree.FirstArc())
	assert.Equal(t, rightArc, tree.LastArc())
	assert.Equal(t, rightArc, tree.NextArc(leftArc))
}

func TestRemoveArcRejectsArcWithoutNeighbors(t *testing.T) {
	el := dcel.NewEdgeList()
	faceA := el.NewFace(0, 10)
	tree, arc := newSingleArcTree(el, faceA)

	_, _, _, err := tree.RemoveArc(arc, 0, 0, arena.NoHandle)
	assert.ErrorIs(t, err, ErrNoNeighborArc)
}
