/*
Package render connects the points of a de Casteljau construction to a
drawing surface. It does not draw anything itself: clients provide a
Renderer, which knows how to put points and segments onto a canvas,
window or file. Package render walks the levels of a construction and
tells the renderer what to draw in which style.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"image/color"
	"math/rand"

	"github.com/npillmayer/bezier"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// Style describes how to draw a point or a segment.
type Style struct {
	Color  color.RGBA
	Radius int  // radius of point markers
	Width  int  // stroke width of segments
	Filled bool // fill point markers
}

// Renderer is implemented by drawing surfaces.
type Renderer interface {
	DrawPoint(bezier.Pair, Style)
	DrawSegment(bezier.Pair, bezier.Pair, Style)
}

// Palette holds one color per level. Levels beyond the palette's length
// cycle through its colors.
type Palette []color.RGBA

// RandomPalette creates n random colors with components in [0,250].
func RandomPalette(rng *rand.Rand, n int) Palette {
	pal := make(Palette, n)
	for i := range pal {
		pal[i] = color.RGBA{
			R: uint8(rng.Intn(251)),
			G: uint8(rng.Intn(251)),
			B: uint8(rng.Intn(251)),
			A: 0xff,
		}
	}
	return pal
}

// Color returns the color for level k.
func (pal Palette) Color(k int) color.RGBA {
	if len(pal) == 0 {
		return color.RGBA{A: 0xff}
	}
	return pal[k%len(pal)]
}

// LevelStyle returns the style for level k out of n levels. The topmost
// level is highlighted.
func (pal Palette) LevelStyle(k, n int) Style {
	if k == n-1 {
		return Style{Color: pal.Color(k), Radius: 4, Width: 2, Filled: true}
	}
	return Style{Color: pal.Color(k), Radius: 3, Width: 1}
}

// DrawLevels draws every point of every level, and the segments between
// neighbouring points of a level.
func DrawLevels(r Renderer, levels [][]bezier.Pair, pal Palette) {
	n := len(levels)
	for k, level := range levels {
		style := pal.LevelStyle(k, n)
		for _, p := range level {
			r.DrawPoint(p, style)
		}
		for i := 0; i+1 < len(level); i++ {
			r.DrawSegment(level[i], level[i+1], style)
		}
	}
	tracer().Debugf("drew %d levels", n)
}

// DrawPolyline draws the segments between consecutive points, e.g. of a
// pyramid trace or of a sampled curve.
func DrawPolyline(r Renderer, pts []bezier.Pair, style Style) {
	for i := 0; i+1 < len(pts); i++ {
		r.DrawSegment(pts[i], pts[i+1], style)
	}
}
