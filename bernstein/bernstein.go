/*
Package bernstein evaluates Bézier curves by their explicit Bernstein basis.

For n+1 control points p.0 … p.n the curve point at parameter t is

	B(t) = Σ C(n,i)⋅(1-t)^(n-i)⋅t^i⋅p.i    (i = 0 … n)

with C(n,i) the binomial coefficient. This computes the same point as a
de Casteljau construction (package pyramid), without keeping intermediate
points. Evaluation is stateless and safe for concurrent use.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bernstein

import (
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/bezier"
	"github.com/patrickmn/go-cache"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bernstein'
func tracer() tracing.Trace {
	return tracing.Select("bernstein")
}

// maxCachedRow is the highest row of Pascal's triangle kept in rows.
const maxCachedRow = 1024

// rows caches rows of Pascal's triangle, keyed by row number. Cached rows
// are shared between callers and must not be modified.
var rows = cache.New(cache.NoExpiration, 0)

// pascalRow returns row n of Pascal's triangle, i.e. C(n,0) … C(n,n).
// Entries are summed, never multiplied, so there is no intermediate overflow
// as with factorials.
func pascalRow(n int) []float64 {
	key := strconv.Itoa(n)
	if row, found := rows.Get(key); found {
		return row.([]float64)
	}
	row := make([]float64, n+1)
	row[0] = 1
	for r := 1; r <= n; r++ {
		for k := r; k > 0; k-- {
			row[k] += row[k-1]
		}
	}
	if n <= maxCachedRow {
		rows.Set(key, row, cache.NoExpiration)
	}
	return row
}

// Binomial returns the binomial coefficient C(n,k), or 0 if k is not in [0,n].
// Rows of Pascal's triangle up to n = 1024 are computed once and cached.
func Binomial(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return pascalRow(n)[k]
}

// Basis returns the value of the i-th Bernstein basis polynomial of degree n at t.
func Basis(n, i int, t float64) float64 {
	return Binomial(n, i) * math.Pow(1-t, float64(n-i)) * math.Pow(t, float64(i))
}

// combine sums the weighted control points for parameter t, given the
// binomial coefficients for their degree.
func combine(points []bezier.Pair, coeff []float64, t float64) bezier.Pair {
	n := len(points) - 1
	var x, y float64
	for i, c := range coeff {
		w := c * math.Pow(1-t, float64(n-i)) * math.Pow(t, float64(i))
		x += points[i].X() * w
		y += points[i].Y() * w
	}
	return bezier.P(x, y)
}

// PointAt returns the curve point at parameter t ∈ [0,1].
// Zero control points result in bezier.ErrEmptyCurve.
func PointAt(points []bezier.Pair, t float64) (bezier.Pair, error) {
	if err := bezier.CheckParam(t); err != nil {
		return bezier.Origin, err
	}
	if err := bezier.CheckPoints(points); err != nil {
		return bezier.Origin, err
	}
	if len(points) == 0 {
		return bezier.Origin, fmt.Errorf("%w: no control points", bezier.ErrEmptyCurve)
	}
	return combine(points, pascalRow(len(points)-1), t), nil
}

// Evaluate samples the curve defined by points over the closed parameter
// range [start,end] in steps of step. The range must satisfy
// 0 ≤ start < end ≤ 1 and 0 < step < 1, otherwise bezier.ErrInvalidArgument
// is returned.
//
// Sampling steps across [start,end+step) and drops every parameter value
// outside [0,1], thus includes end whenever it is hit by the stepping.
// This differs from the half-open trace of a pyramid.
//
// Zero control points result in bezier.ErrEmptyCurve. A single control
// point results in a one-element slice holding that point, regardless of
// the range.
func Evaluate(points []bezier.Pair, start, end, step float64) ([]bezier.Pair, error) {
	if err := bezier.CheckRange(start, end, step); err != nil {
		return nil, err
	}
	if err := bezier.CheckPoints(points); err != nil {
		return nil, err
	}
	switch len(points) {
	case 0:
		tracer().Debugf("no curve for empty control point list")
		return nil, fmt.Errorf("%w: no control points", bezier.ErrEmptyCurve)
	case 1:
		return []bezier.Pair{points[0]}, nil
	}
	coeff := pascalRow(len(points) - 1)
	params := bezier.Samples(start, end+step, step)
	curve := make([]bezier.Pair, 0, len(params))
	for _, t := range params {
		if t < 0.0 || t > 1.0 {
			continue
		}
		curve = append(curve, combine(points, coeff, t))
	}
	tracer().Debugf("curve of degree %d sampled at %d points in [%g,%g]",
		len(points)-1, len(curve), start, end)
	return curve, nil
}
