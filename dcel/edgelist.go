// Package dcel implements a doubly-connected edge list for a planar
// subdivision: vertices, half-edges (in twin pairs), and faces, each
// backed by a block-allocated arena so that references remain valid
// for the lifetime of the EdgeList and are released in one bulk step.
//
// The shape of the public types (Vertex/HalfEdge/Face with
// Origin/Twin/Next/Prev/Face fields) follows
// _examples/other_examples/0be6096c_quasoft-DCEL__dcel.go.go, the
// quasoft/dcel package the teacher repo imports; the arena-backed ring
// operations (Connect, ProjectHalfEdgeOntoBounds, CloseFaceWithBounds)
// follow original_source/edge_list.c, the C original those Go repos
// were never ported from directly.
package dcel

import (
	"github.com/hansvanmoer/game/internal/arena"
)

const defaultBlockCap = 64

// VertexRef, HalfEdgeRef, and FaceRef are stable handles into an
// EdgeList's arenas. The zero value of each (arena.NoHandle) means
// "absent" — used in place of a nil pointer, e.g. for a half-edge
// whose origin vertex hasn't been assigned yet.
type (
	VertexRef   = arena.Handle
	HalfEdgeRef = arena.Handle
	FaceRef     = arena.Handle
)

// Vertex is a point in the plane, immutable once created.
type Vertex struct {
	X, Y float64
}

// HalfEdge is one direction of an edge pair. Origin may be NoHandle
// while the half-edge is still open-ended (a breakpoint still moving
// at sweep time); it must be non-NoHandle after boundary closure.
type HalfEdge struct {
	Origin VertexRef
	Twin   HalfEdgeRef
	Face   FaceRef
	Prev   HalfEdgeRef
	Next   HalfEdgeRef
}

// Face owns a site and two handles into its own half-edge ring. Head
// and Tail bracket the chain of half-edges known so far; once the ring
// is fully closed, Head == HalfEdge(Tail).Next.
type Face struct {
	X, Y       float64
	Head, Tail HalfEdgeRef
	Prev, Next FaceRef
}

// EdgeList owns every vertex, half-edge, and face of a planar
// subdivision, plus the insertion-ordered doubly-linked list of faces.
type EdgeList struct {
	vertices  *arena.Pool[Vertex]
	halfEdges *arena.Pool[HalfEdge]
	faces     *arena.Pool[Face]

	headFace FaceRef
	tailFace FaceRef
}

// NewEdgeList returns an empty, ready-to-use EdgeList.
func NewEdgeList() *EdgeList {
	return &EdgeList{
		vertices:  arena.New[Vertex](defaultBlockCap),
		halfEdges: arena.New[HalfEdge](defaultBlockCap),
		faces:     arena.New[Face](defaultBlockCap),
	}
}

// Vertex returns a pointer to the vertex referenced by ref.
func (el *EdgeList) Vertex(ref VertexRef) *Vertex { return el.vertices.Get(ref) }

// HalfEdge returns a pointer to the half-edge referenced by ref.
func (el *EdgeList) HalfEdge(ref HalfEdgeRef) *HalfEdge { return el.halfEdges.Get(ref) }

// Face returns a pointer to the face referenced by ref.
func (el *EdgeList) Face(ref FaceRef) *Face { return el.faces.Get(ref) }

// VertexCount, HalfEdgeCount, and FaceCount report the number of each
// entity kind emplaced so far.
func (el *EdgeList) VertexCount() int   { return el.vertices.Len() }
func (el *EdgeList) HalfEdgeCount() int { return el.halfEdges.Len() }
func (el *EdgeList) FaceCount() int     { return el.faces.Len() }

// HeadFace returns the first face in insertion order, or NoHandle if
// the EdgeList has no faces.
func (el *EdgeList) HeadFace() FaceRef { return el.headFace }

// Faces returns every face reference in insertion order.
func (el *EdgeList) Faces() []FaceRef {
	faces := make([]FaceRef, 0, el.faces.Len())
	for f := el.headFace; f != arena.NoHandle; f = el.Face(f).Next {
		faces = append(faces, f)
	}
	return faces
}

// NewVertex emplaces a vertex at (x, y) and returns its handle.
func (el *EdgeList) NewVertex(x, y float64) VertexRef {
	ref, v := el.vertices.Emplace()
	v.X, v.Y = x, y
	return ref
}

// NewHalfEdge emplaces a single half-edge with no twin/face/ring
// linkage set.
func (el *EdgeList) NewHalfEdge() HalfEdgeRef {
	ref, he := el.halfEdges.Emplace()
	he.Origin = arena.NoHandle
	he.Twin = arena.NoHandle
	he.Face = arena.NoHandle
	he.Prev = arena.NoHandle
	he.Next = arena.NoHandle
	return ref
}

// NewEdge emplaces a twin pair of half-edges, cross-linked to each
// other, and returns the first half. The second half is reachable via
// HalfEdge(first).Twin.
func (el *EdgeList) NewEdge() HalfEdgeRef {
	first := el.NewHalfEdge()
	second := el.NewHalfEdge()
	el.HalfEdge(first).Twin = second
	el.HalfEdge(second).Twin = first
	return first
}

// NewFace emplaces a face for the site at (x, y), appended to the tail
// of the insertion-ordered face list.
func (el *EdgeList) NewFace(x, y float64) FaceRef {
	ref, f := el.faces.Emplace()
	f.X, f.Y = x, y
	f.Head, f.Tail = arena.NoHandle, arena.NoHandle
	f.Prev, f.Next = arena.NoHandle, arena.NoHandle

	if el.headFace == arena.NoHandle {
		el.headFace = ref
		el.tailFace = ref
	} else {
		el.Face(el.tailFace).Next = ref
		f.Prev = el.tailFace
		el.tailFace = ref
	}
	return ref
}

// SetHead sets face's ring head to he when the ring is empty or the
// chain only has one endpoint defined so far.
func (el *EdgeList) SetHead(face FaceRef, he HalfEdgeRef) {
	f := el.Face(face)
	f.Head = he
	if f.Tail == arena.NoHandle {
		f.Tail = he
	}
	el.HalfEdge(he).Face = face
}

// Connect sets first.Next = second and second.Prev = first, updating
// face.Head/Tail when the splice changes the face's chain endpoints.
// Both half-edges must already belong to the same face.
func (el *EdgeList) Connect(first, second HalfEdgeRef) {
	fhe := el.HalfEdge(first)
	she := el.HalfEdge(second)
	fhe.Next = second
	she.Prev = first

	face := fhe.Face
	if face == arena.NoHandle {
		return
	}
	f := el.Face(face)
	if f.Head == second && f.Tail != first {
		f.Head = first
	}
	if f.Tail == first && f.Head != second {
		f.Tail = second
	}
}

