package voronoi

import (
	"io"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/hansvanmoer/game/dcel"
	"github.com/hansvanmoer/game/internal/arena"
	"github.com/hansvanmoer/game/internal/beachline"
	"github.com/hansvanmoer/game/internal/event"
)

// Diagram drives one sweep over a set of sites, writing the resulting
// DCEL into the EdgeList it was constructed with. Its fields mirror
// wanghanting-voronoi/Shamos.go's Voronoi struct (bounds, a beachline,
// an event queue, a running sweep position, a DCEL), generalized to
// the breakpoint-node beachline and handle-based DCEL spec.md §3/§4
// call for.
type Diagram struct {
	el        *dcel.EdgeList
	tree      *beachline.Tree
	queue     *event.Queue
	width     float64
	height    float64
	tolerance float64
	sweepY    float64

	// lastAddArcArc/lastAddArcY remember the arc created by the most
	// recent AddArc event so a same-y sibling arriving right behind it
	// can be routed straight to it instead of through LocateArcAbove.
	// Sites tied at the exact sweep y degenerate every arc between them
	// to zero width (original_source/voronoi.c's get_parabola divides by
	// sy-ly, and is never called for a same-y site in the first place),
	// so LocateArcAbove's breakpoint descent cannot distinguish "landed
	// on the zero-width sliver" from "walked past it" — events are
	// enqueued in (y, x) order (Generate), so a run of equal-y AddArc
	// events is always contiguous, making the previous arc the correct
	// one to split. lastAddArcArc is arena.NoHandle whenever the last
	// handled event wasn't an AddArc at this exact y.
	lastAddArcArc beachline.NodeRef
	lastAddArcY   float64
}

// NewDiagram returns a Diagram ready to sweep sites into out, an
// empty, caller-allocated EdgeList.
func NewDiagram(out *dcel.EdgeList, width, height float64, cfg Config) *Diagram {
	return &Diagram{
		el:        out,
		tree:      beachline.New(out),
		queue:     event.NewQueue(),
		width:     width,
		height:    height,
		tolerance: cfg.tolerance(),
	}
}

// CreateVoronoiDiagram is the core's single external entry point
// (spec.md §6): it validates sites, sweeps them into out, and closes
// the result against the [0,width] x [0,height] box.
func CreateVoronoiDiagram(out *dcel.EdgeList, sites []Site, width, height float64, cfg Config) error {
	return NewDiagram(out, width, height, cfg).Generate(sites, nil)
}

// PrintEdgeList writes out's faces and half-edges in
// original-to-destination form, re-exporting dcel.EdgeList.PrintEdgeList
// so a caller working only against package voronoi never needs to
// import dcel directly (spec.md §6's print_edge_list convenience op).
func PrintEdgeList(out *dcel.EdgeList, w io.Writer) {
	out.PrintEdgeList(w)
}

func discardEntry() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// Generate validates sites, sweeps them against d's bounding box, and
// closes the resulting DCEL along the box boundary. log is optional;
// a nil log discards every step-level message (SPEC_FULL.md §10.1).
func (d *Diagram) Generate(sites []Site, log *logrus.Entry) error {
	if log == nil {
		log = discardEntry()
	}
	if d.width <= 0 || d.height <= 0 {
		return errors.New("voronoi: width and height must be positive")
	}
	if len(sites) == 0 {
		return ErrNoSites
	}

	seen := make(map[[2]float64]int, len(sites))
	for i, s := range sites {
		if s.X <= 0 || s.X >= d.width || s.Y <= 0 || s.Y >= d.height {
			return errors.Wrapf(ErrSiteOutOfBounds, "site %d at (%.4f, %.4f)", i, s.X, s.Y)
		}
		key := [2]float64{s.X, s.Y}
		if j, dup := seen[key]; dup {
			return errors.Wrapf(ErrDuplicateSite, "site %d duplicates site %d at (%.4f, %.4f)", i, j, s.X, s.Y)
		}
		seen[key] = i
	}

	faces := make([]dcel.FaceRef, len(sites))
	for i, s := range sites {
		faces[i] = d.el.NewFace(s.X, s.Y)
	}

	// Faces are created in caller order (spec.md §6), but events are
	// enqueued in (y, x) order so that equal-y sites tie-break
	// deterministically by x regardless of input order — the event
	// queue itself only tie-breaks by insertion sequence.
	order := make([]int, len(sites))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if sites[ia].Y != sites[ib].Y {
			return sites[ia].Y < sites[ib].Y
		}
		return sites[ia].X < sites[ib].X
	})

	log.WithField("sites", len(sites)).Debug("sweep: enqueuing site events")
	for _, i := range order {
		s := sites[i]
		d.queue.Insert(&event.Event{Kind: event.AddArc, Priority: s.Y, Face: faces[i], X: s.X, Y: s.Y})
	}

	for {
		ev := d.queue.PopMin()
		if ev == nil {
			break
		}
		d.sweepY = ev.Priority

		var err error
		if ev.Kind == event.AddArc {
			log.WithFields(logrus.Fields{"x": ev.X, "y": ev.Y}).Debug("sweep: add arc event")
			err = d.handleAddArc(ev)
		} else {
			log.WithFields(logrus.Fields{"x": ev.X, "y": ev.Y}).Debug("sweep: remove arc event")
			err = d.handleRemoveArc(ev)
		}
		if err != nil {
			return err
		}
	}

	log.Debug("sweep: closing boundary")
	if err := d.closeBoundary(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"faces":     d.el.FaceCount(),
		"vertices":  d.el.VertexCount(),
		"halfEdges": d.el.HalfEdgeCount(),
	}).Debug("sweep: diagram complete")
	return nil
}

// attachFaceEdge assigns he to face and, if face's ring is still
// empty, seeds Head/Tail with it — the "seed the new site's face, and
// the old arc's face only if it had none yet" rule from
// original_source/voronoi.c's update_edges_after_insert_arc.
func (d *Diagram) attachFaceEdge(face dcel.FaceRef, he dcel.HalfEdgeRef) {
	d.el.HalfEdge(he).Face = face
	f := d.el.Face(face)
	if f.Head == arena.NoHandle {
		f.Head = he
		f.Tail = he
	}
}

// handleAddArc implements spec.md §4.5's AddArc handler: locate the
// arc above the new site, split it into a five-node fragment sharing a
// fresh edge pair between the split arc's face and the new site's
// face, and re-check both outer copies of the split arc for a circle
// event.
func (d *Diagram) handleAddArc(ev *event.Event) error {
	face := ev.Face

	if d.tree.Root == arena.NoHandle {
		d.tree.Root = d.tree.NewArcNode(face)
		d.lastAddArcArc = d.tree.Root
		d.lastAddArcY = ev.Y
		return nil
	}

	var arcAbove beachline.NodeRef
	if d.lastAddArcArc != arena.NoHandle && ev.Y == d.lastAddArcY {
		// A same-y sibling of the arc the previous AddArc event just
		// created: route to it directly rather than through
		// LocateArcAbove (see lastAddArcArc's comment on the Diagram
		// struct).
		arcAbove = d.lastAddArcArc
	} else {
		var err error
		arcAbove, err = d.tree.LocateArcAbove(ev.X, d.sweepY)
		if err != nil {
			return errors.Wrapf(ErrNumerical, "locate arc above site (%.4f, %.4f): %v", ev.X, ev.Y, err)
		}
	}
	oldFace := d.tree.Node(arcAbove).Face

	// arcAbove is about to be orphaned by Split: its own pending circle
	// event, if any, would otherwise survive in the queue referencing a
	// node the tree no longer holds (Shamos.go's handleSiteEvent calls
	// removeCircleEvent(arcAbove) for the same reason, before splitting).
	d.clearPending(arcAbove)

	edge := d.el.NewEdge()
	twin := d.el.HalfEdge(edge).Twin
	// Per the left-neighbor-face convention: the left breakpoint's half
	// edge belongs to the split arc's face (its left neighbor after the
	// split), the right breakpoint's half edge to the new site's face.
	d.attachFaceEdge(oldFace, edge)
	d.attachFaceEdge(face, twin)

	leftArc, _, midArc, _, rightArc := d.tree.Split(arcAbove, face, d.sweepY, edge, twin)

	d.lastAddArcArc = midArc
	d.lastAddArcY = ev.Y

	if err := d.checkCircleEvent(leftArc); err != nil {
		return err
	}
	if err := d.checkCircleEvent(rightArc); err != nil {
		return err
	}
	return nil
}

// handleRemoveArc implements spec.md §4.5's RemoveArc handler: close
// both half-edges bordering the vanishing arc at the event's vertex,
// splice a new edge between its two now-adjacent neighbors, and
// recheck both for a further circle event.
func (d *Diagram) handleRemoveArc(ev *event.Event) error {
	arcRef := ev.Arc
	arc := d.tree.Node(arcRef)
	if arc.Pending != ev {
		// Superseded by an earlier neighbor change; already dropped.
		return nil
	}

	// A RemoveArc event breaks any run of same-y AddArc events: the tree
	// it reshapes may disturb the arc lastAddArcArc points at, so a
	// later AddArc event must not mistake an unrelated equal-priority
	// circle event for a same-y sibling of the last site.
	d.lastAddArcArc = arena.NoHandle

	leftArc := d.tree.PrevArc(arcRef)
	rightArc := d.tree.NextArc(arcRef)
	leftBpRef := d.tree.PrevNode(arcRef)
	rightBpRef := d.tree.NextNode(arcRef)
	if leftArc == arena.NoHandle || rightArc == arena.NoHandle ||
		leftBpRef == arena.NoHandle || rightBpRef == arena.NoHandle {
		return errors.Wrap(ErrInvariant, "remove arc event fired for an arc without two neighbors")
	}

	leftHe := d.tree.Node(leftBpRef).HalfEdge
	rightHe := d.tree.Node(rightBpRef).HalfEdge

	vertex := d.el.NewVertex(ev.X, ev.Y)

	leftTwin := d.el.HalfEdge(leftHe).Twin
	d.el.HalfEdge(leftTwin).Origin = vertex
	rightTwin := d.el.HalfEdge(rightHe).Twin
	d.el.HalfEdge(rightTwin).Origin = vertex

	// Closes the vanishing arc's own ring at the new vertex.
	d.el.Connect(rightHe, leftTwin)

	newEdge := d.el.NewEdge()
	down := newEdge
	up := d.el.HalfEdge(newEdge).Twin

	d.el.HalfEdge(down).Face = d.el.HalfEdge(leftHe).Face
	d.el.HalfEdge(down).Origin = vertex
	d.el.HalfEdge(up).Face = d.el.HalfEdge(rightTwin).Face

	d.el.Connect(leftHe, down)
	d.el.Connect(up, rightTwin)

	_, gotLeft, gotRight, err := d.tree.RemoveArc(arcRef, ev.X, ev.Y, down)
	if err != nil {
		return errors.Wrap(ErrInvariant, err.Error())
	}

	if err := d.checkCircleEvent(gotLeft); err != nil {
		return err
	}
	if err := d.checkCircleEvent(gotRight); err != nil {
		return err
	}
	return nil
}

// clearPending removes arc's pending RemoveArc event from the queue, if
// any, and nils out its Pending field — original_source/voronoi.c's
// check_for_remove_events unconditionally clearing node->arc.event, and
// Shamos.go's removeCircleEvent.
func (d *Diagram) clearPending(arc beachline.NodeRef) {
	n := d.tree.Node(arc)
	if n.Pending != nil {
		d.queue.Remove(n.Pending)
		n.Pending = nil
	}
}

// checkCircleEvent drops arc's stale pending event, if any, and
// enqueues a fresh one when its two bordering breakpoints are now
// converging, per original_source/voronoi.c's check_for_remove_events.
func (d *Diagram) checkCircleEvent(arc beachline.NodeRef) error {
	d.clearPending(arc)
	n := d.tree.Node(arc)

	ce, ok, err := d.tree.CheckCircleEvent(arc, d.sweepY)
	if err != nil {
		return errors.Wrapf(ErrNumerical, "circle event check: %v", err)
	}
	if !ok {
		return nil
	}

	ev := &event.Event{Kind: event.RemoveArc, Priority: ce.Priority, Arc: arc, X: ce.X, Y: ce.Y}
	d.queue.Insert(ev)
	n.Pending = ev
	return nil
}

// closeBoundary implements spec.md §4.6: project every still-open
// breakpoint onto the box, then close every face's ring against it.
func (d *Diagram) closeBoundary() error {
	arc := d.tree.FirstArc()
	for arc != arena.NoHandle {
		bpRef := d.tree.NextNode(arc)
		if bpRef == arena.NoHandle {
			break
		}
		bp := d.tree.Node(bpRef)
		if err := d.el.ProjectHalfEdgeOntoBounds(bp.HalfEdge, bp.X, bp.Y, bp.DX, bp.DY, d.width, d.height, d.tolerance); err != nil {
			return errors.Wrapf(ErrNumerical, "project breakpoint half-edge onto bounds: %v", err)
		}
		arc = d.tree.NextNode(bpRef)
	}

	for _, face := range d.el.Faces() {
		if err := d.el.CloseFaceWithBounds(face, d.width, d.height, d.tolerance); err != nil {
			return errors.Wrapf(ErrInvariant, "close face with bounds: %v", err)
		}
	}
	return nil
}
