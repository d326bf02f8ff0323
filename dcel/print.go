package dcel

import (
	"fmt"
	"io"

	"github.com/hansvanmoer/game/internal/arena"
)

// PrintEdgeList walks every face in insertion order and writes each of
// its half-edges as "origin -> destination" (or NONE for an endpoint
// that hasn't been assigned yet), matching print_edge_list /
// print_face / print_half_edge in original_source/edge_list.c.
func (el *EdgeList) PrintEdgeList(w io.Writer) {
	for f := el.headFace; f != arena.NoHandle; f = el.Face(f).Next {
		el.printFace(w, f)
	}
}

func (el *EdgeList) printFace(w io.Writer, face FaceRef) {
	f := el.Face(face)
	fmt.Fprintf(w, "face:\n\tsite(%.2f, %.2f)\n", f.X, f.Y)
	if f.Head == arena.NoHandle {
		return
	}
	he := f.Head
	for {
		el.printHalfEdge(w, he)
		he = el.HalfEdge(he).Next
		if he == f.Head || he == arena.NoHandle {
			break
		}
	}
}

func (el *EdgeList) printHalfEdge(w io.Writer, he HalfEdgeRef) {
	h := el.HalfEdge(he)
	twin := el.HalfEdge(h.Twin)

	origin := "NONE"
	if h.Origin != arena.NoHandle {
		v := el.Vertex(h.Origin)
		origin = fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
	}
	dest := "NONE"
	if twin.Origin != arena.NoHandle {
		v := el.Vertex(twin.Origin)
		dest = fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
	}
	fmt.Fprintf(w, "\thalf edge %s -> %s\n", origin, dest)
}
