/*
Package polygon deals with control polygons of Bézier curves.

A Bézier curve lies within the convex hull of its control points. The
control polygon, the closed contour connecting the control points in order,
is therefore a cheap and conservative stand-in for the curve, e.g. for
bounding boxes, hit testing or clipping. Geometry operations are delegated
to github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/bezier"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a sequence of knots, optionally closed to a cycle.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates an open polygon from a sequence of points.
func FromPoints(pts []bezier.Pair) *Polygon {
	pg := &Polygon{contour: make(polyclip.Contour, 0, len(pts))}
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg
}

// ControlPolygon returns the closed control polygon of a curve with control
// points pts. It contains every point of the curve.
func ControlPolygon(pts []bezier.Pair) *Polygon {
	return FromPoints(pts).Cycle()
}

// Box creates a rectangular polygon with two opposite corners p1 and p2.
func Box(p1, p2 bezier.Pair) *Polygon {
	return NullPolygon().Knot(p1).Knot(bezier.P(p2.X(), p1.Y())).
		Knot(p2).Knot(bezier.P(p1.X(), p2.Y())).Cycle()
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p bezier.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End ends an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Z returns knot i (mod N).
func (pg *Polygon) Z(i int) bezier.Pair {
	i %= pg.N()
	if i < 0 {
		i += pg.N()
	}
	return bezier.P(pg.contour[i].X, pg.contour[i].Y)
}

// Knots returns a copy of all knots.
func (pg *Polygon) Knots() []bezier.Pair {
	pts := make([]bezier.Pair, pg.N())
	for i := range pts {
		pts[i] = pg.Z(i)
	}
	return pts
}

// BoundingBox returns the lower left and upper right corner of the smallest
// axis-aligned rectangle enclosing all knots. An empty polygon has a
// zero-sized box at the origin.
func (pg *Polygon) BoundingBox() (bezier.Pair, bezier.Pair) {
	if pg.N() == 0 {
		return bezier.Origin, bezier.Origin
	}
	r := pg.contour.BoundingBox()
	return bezier.P(r.Min.X, r.Min.Y), bezier.P(r.Max.X, r.Max.Y)
}

// Contains is a predicate: is p inside the area of this polygon?
// Open polygons are treated as if they were closed.
func (pg *Polygon) Contains(p bezier.Pair) bool {
	if pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// Overlaps is a predicate: do the bounding boxes of two polygons overlap?
func (pg *Polygon) Overlaps(other *Polygon) bool {
	if pg.N() == 0 || other.N() == 0 {
		return false
	}
	return pg.contour.BoundingBox().Overlaps(other.contour.BoundingBox())
}

// Intersection clips two closed polygons against each other. The result may
// consist of zero or more polygons.
func (pg *Polygon) Intersection(other *Polygon) []*Polygon {
	subject := polyclip.Polygon{pg.contour}
	clipping := polyclip.Polygon{other.contour}
	result := subject.Construct(polyclip.INTERSECTION, clipping)
	L().Debugf("intersection of %d and %d knots yields %d contours", pg.N(), other.N(), len(result))
	pgs := make([]*Polygon, 0, len(result))
	for _, c := range result {
		pgs = append(pgs, &Polygon{contour: c, cycle: true})
	}
	return pgs
}

// AsString returns a polygon as a (debugging) string, in a
// MetaPost-like notation.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "%v", pg.Z(i))
	}
	if pg.IsCycle() {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
