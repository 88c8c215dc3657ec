/*
Package pyramid maintains the de Casteljau construction of a Bézier curve.

A Pyramid holds the control points of a curve as its base level. Every
level above is derived from the level below by affine interpolation of
neighbouring points at the current curve parameter t:

	level[k][i] = lerp(level[k-1][i], level[k-1][i+1], t)

The topmost level holds exactly one point, the point of the curve at t.
Control points may be appended or removed one at a time without
recomputing the whole construction, and the construction may be
re-evaluated at any parameter. This makes a pyramid suitable for
interactive use, where a single parameter moves under a slider and the
intermediate levels are to be displayed.

A Pyramid is not safe for concurrent use. Clients sharing a pyramid
between goroutines have to serialize access themselves.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pyramid

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/bezier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pyramid'
func tracer() tracing.Trace {
	return tracing.Select("pyramid")
}

// State is the macro state of a pyramid.
type State int

const (
	// Degenerate pyramids have less than 2 control points and do not describe a curve.
	Degenerate State = iota
	// Constructed pyramids have at least 2 control points and a well-defined trace.
	Constructed
)

func (s State) String() string {
	switch s {
	case Degenerate:
		return "Degenerate"
	case Constructed:
		return "Constructed"
	}
	return "<unknown>"
}

// Pyramid is a triangular array of points. Level 0 holds the control points
// in insertion order, level k holds n-k points derived at parameter t, for
// n control points.
//
// The zero value is an empty pyramid at parameter 0, ready to use.
type Pyramid struct {
	levels [][]bezier.Pair // levels[0] are the control points
	t      float64         // parameter all derived levels are computed for
}

// New creates a pyramid from a list of control points. The points are
// copied. Derived levels are computed for parameter 0.
//
// New fails with bezier.ErrInvalidArgument if a point has a NaN or infinite
// coordinate. Zero or one control points yield a degenerate, but valid,
// pyramid.
func New(points ...bezier.Pair) (*Pyramid, error) {
	if err := bezier.CheckPoints(points); err != nil {
		return nil, err
	}
	n := len(points)
	p := &Pyramid{levels: make([][]bezier.Pair, 1, max(n, 1))}
	p.levels[0] = make([]bezier.Pair, n)
	copy(p.levels[0], points)
	for k := 1; k < n; k++ {
		p.levels = append(p.levels, make([]bezier.Pair, n-k))
	}
	p.rebuild()
	tracer().Debugf("new pyramid with %d control points", n)
	return p, nil
}

// MustNew is like New, but panics on invalid control points.
func MustNew(points ...bezier.Pair) *Pyramid {
	p, err := New(points...)
	if err != nil {
		panic(err)
	}
	return p
}

// LevelCount returns the number of control points, which equals the number
// of levels of a non-empty pyramid.
func (p *Pyramid) LevelCount() int {
	if len(p.levels) == 0 {
		return 0
	}
	return len(p.levels[0])
}

// Parameter returns the curve parameter the derived levels are computed for.
func (p *Pyramid) Parameter() float64 {
	return p.t
}

// State returns Degenerate for less than 2 control points, Constructed otherwise.
func (p *Pyramid) State() State {
	if p.LevelCount() < 2 {
		return Degenerate
	}
	return Constructed
}

// IsDegenerate is a predicate: does this pyramid have less than 2 control points?
func (p *Pyramid) IsDegenerate() bool {
	return p.State() == Degenerate
}

// Reparameterize recomputes every derived level for parameter t, which must
// be within [0,1]. The control points are left untouched.
// Calling it twice with the same t produces identical levels.
func (p *Pyramid) Reparameterize(t float64) error {
	if err := bezier.CheckParam(t); err != nil {
		return err
	}
	p.t = t
	p.rebuild()
	tracer().Debugf("pyramid of %d levels re-evaluated at t=%g", p.LevelCount(), t)
	return nil
}

// rebuild derives every level from the one below at the current parameter.
func (p *Pyramid) rebuild() {
	for k := 1; k < len(p.levels); k++ {
		lower, upper := p.levels[k-1], p.levels[k]
		for i := range upper {
			upper[i] = bezier.Lerp(lower[i], lower[i+1], p.t)
		}
	}
}

// AddPoint appends a control point. Instead of re-evaluating the whole
// pyramid, exactly one point is appended to every derived level: it
// depends only on the last two points of the level below, after that
// level has received its own new point. A new topmost level holding
// a single point is created for it.
//
// AddPoint fails with bezier.ErrInvalidArgument for a non-finite point,
// leaving the pyramid unchanged.
func (p *Pyramid) AddPoint(pt bezier.Pair) error {
	if !pt.IsFinite() {
		return fmt.Errorf("%w: control point %v is not finite", bezier.ErrInvalidArgument, pt)
	}
	if len(p.levels) == 0 {
		p.levels = [][]bezier.Pair{nil}
	}
	p.levels[0] = append(p.levels[0], pt)
	n := p.LevelCount()
	if n >= 2 {
		p.levels = append(p.levels, make([]bezier.Pair, 0, 1))
	}
	for k := 0; k < n-1; k++ {
		lower := p.levels[k]
		m := len(lower)
		p.levels[k+1] = append(p.levels[k+1], bezier.Lerp(lower[m-2], lower[m-1], p.t))
	}
	tracer().Debugf("added control point %v, now %d levels", pt, n)
	return nil
}

// RemovePoint removes the last control point, together with the trailing
// point of every derived level and the topmost level. Removing a point from
// an empty pyramid does nothing.
func (p *Pyramid) RemovePoint() {
	n := p.LevelCount()
	if n == 0 {
		tracer().Debugf("remove from empty pyramid ignored")
		return
	}
	for k, level := range p.levels {
		p.levels[k] = level[:len(level)-1]
	}
	if n >= 2 {
		p.levels = p.levels[:len(p.levels)-1]
	}
	tracer().Debugf("removed control point, now %d levels", n-1)
}

// GetTrace samples the path of the topmost point while the parameter moves
// across the half-open range [start,end) in steps of step. The range must
// satisfy 0 ≤ start < end ≤ 1 and 0 < step < 1, otherwise
// bezier.ErrInvalidArgument is returned.
//
// Samples are start + i⋅step for i < ⌈(end-start)/step⌉. With floating
// point stepping the last sample may therefore land on end itself, e.g. for
// start=0.7, end=1 and step=0.1, which yields 4 samples.
//
// For a degenerate pyramid the trace is nil. The pyramid's parameter is
// restored after sampling; the returned points are a snapshot, not a view.
func (p *Pyramid) GetTrace(start, end, step float64) ([]bezier.Pair, error) {
	if err := bezier.CheckRange(start, end, step); err != nil {
		return nil, err
	}
	if p.IsDegenerate() {
		tracer().Debugf("no trace for degenerate pyramid")
		return nil, nil
	}
	params := bezier.Samples(start, end, step)
	trace := make([]bezier.Pair, 0, len(params))
	saved := p.t
	for _, t := range params {
		p.t = t
		p.rebuild()
		trace = append(trace, p.top())
	}
	p.t = saved
	p.rebuild()
	tracer().Debugf("trace of %d samples in [%g,%g)", len(trace), start, end)
	return trace, nil
}

func (p *Pyramid) top() bezier.Pair {
	return p.levels[len(p.levels)-1][0]
}

// Tip returns the single point of the topmost level, i.e. the curve point at
// the current parameter. For a single control point this is the control
// point itself. An empty pyramid returns bezier.ErrEmptyCurve.
func (p *Pyramid) Tip() (bezier.Pair, error) {
	if p.LevelCount() == 0 {
		return bezier.Origin, fmt.Errorf("%w: pyramid is empty", bezier.ErrEmptyCurve)
	}
	return p.top(), nil
}

// Levels returns a copy of all levels, starting with the control points.
// An empty pyramid has a single, empty level.
func (p *Pyramid) Levels() [][]bezier.Pair {
	if len(p.levels) == 0 {
		return [][]bezier.Pair{{}}
	}
	levels := make([][]bezier.Pair, len(p.levels))
	for k, level := range p.levels {
		levels[k] = append([]bezier.Pair(nil), level...)
	}
	return levels
}

// Level returns a copy of level k.
func (p *Pyramid) Level(k int) ([]bezier.Pair, error) {
	if k < 0 || k >= len(p.levels) {
		return nil, fmt.Errorf("%w: level %d not in [0,%d)", bezier.ErrInvalidArgument, k, len(p.levels))
	}
	return append([]bezier.Pair(nil), p.levels[k]...), nil
}

// ControlPoints returns a copy of the base level.
func (p *Pyramid) ControlPoints() []bezier.Pair {
	if len(p.levels) == 0 {
		return nil
	}
	return append([]bezier.Pair(nil), p.levels[0]...)
}

// Transform applies an affine transform to the control points and
// re-evaluates the pyramid at the current parameter. As Bézier curves are
// affinely invariant, every derived point is transformed by m as well.
func (p *Pyramid) Transform(m bezier.AT) error {
	if !m.IsAffine() {
		return fmt.Errorf("%w: not an affine transform %v", bezier.ErrInvalidArgument, m)
	}
	if p.LevelCount() == 0 {
		return nil
	}
	base := m.TransformAll(p.levels[0])
	if err := bezier.CheckPoints(base); err != nil {
		return err
	}
	copy(p.levels[0], base)
	p.rebuild()
	return nil
}

// Check verifies the de Casteljau relation between every pair of adjacent
// levels, with a tolerance per coordinate. It returns an error describing
// the first violation found, if any.
func (p *Pyramid) Check(tolerance float64) error {
	n := p.LevelCount()
	if len(p.levels) == 0 {
		return nil
	}
	if want := max(n, 1); len(p.levels) != want {
		return fmt.Errorf("pyramid has %d levels for %d control points", len(p.levels), n)
	}
	for k := 1; k < len(p.levels); k++ {
		lower, upper := p.levels[k-1], p.levels[k]
		if len(upper) != n-k {
			return fmt.Errorf("level %d holds %d points, expected %d", k, len(upper), n-k)
		}
		for i, pt := range upper {
			want := bezier.Lerp(lower[i], lower[i+1], p.t)
			d := pt - want
			if math.Abs(d.X()) > tolerance || math.Abs(d.Y()) > tolerance {
				return fmt.Errorf("level %d point %d is %v, expected %v for t=%g", k, i, pt, want, p.t)
			}
		}
	}
	return nil
}

// String returns the levels of a pyramid as a (debugging) string, one level
// per line, starting with the control points.
func (p *Pyramid) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pyramid t=%g", p.t)
	for k, level := range p.levels {
		fmt.Fprintf(&b, "\n  %d:", k)
		for _, pt := range level {
			fmt.Fprintf(&b, " %v", pt)
		}
	}
	return b.String()
}
