// Package voronoi implements Fortune's sweep-line algorithm over the
// arena-backed primitives in dcel, internal/beachline, and
// internal/event, producing a clipped planar Voronoi diagram as a
// doubly-connected edge list. It is a from-scratch Go rewrite of
// original_source/voronoi.c, restructured around
// wanghanting-voronoi/Shamos.go's object shape (a single driver value
// with a Generate-style entry point consuming an event queue).
package voronoi

import "github.com/pkg/errors"

// ErrNoSites is returned when CreateVoronoiDiagram is called with no
// input sites.
var ErrNoSites = errors.New("voronoi: at least one site is required")

// ErrSiteOutOfBounds is returned when a site does not lie strictly
// inside the (0,0)-(width,height) box.
var ErrSiteOutOfBounds = errors.New("voronoi: site lies on or outside the bounding box")

// ErrDuplicateSite is returned when two input sites share identical
// coordinates.
var ErrDuplicateSite = errors.New("voronoi: duplicate site coordinates")

// ErrAllocation stands in for the arena-growth failure class of
// spec.md §7; the current arena implementation grows without bound, so
// this is reserved for a future bounded arena, surfaced here so the
// error taxonomy is complete and callers can errors.Is against it.
var ErrAllocation = errors.New("voronoi: allocation failure")

// ErrNumerical covers a linear system with no (or infinitely many)
// solutions where a unique intersection was required, a negative
// breakpoint discriminant, or a box projection that found no valid
// intersection.
var ErrNumerical = errors.New("voronoi: numerical failure during sweep")

// ErrInvariant covers defensive failures: a ring walk that doesn't
// terminate, a breakpoint with no half-edge, a face left open after
// closure. These indicate a bug in the sweep, not bad input.
var ErrInvariant = errors.New("voronoi: internal invariant violated")
