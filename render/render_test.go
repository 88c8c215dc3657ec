package render

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/bezier"
	"github.com/npillmayer/bezier/pyramid"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPalette(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pal := RandomPalette(rand.New(rand.NewSource(7)), 10)
	require.Len(t, pal, 10)
	for _, c := range pal {
		assert.LessOrEqual(t, c.R, uint8(250))
		assert.LessOrEqual(t, c.G, uint8(250))
		assert.LessOrEqual(t, c.B, uint8(250))
		assert.Equal(t, uint8(0xff), c.A)
	}
	assert.Equal(t, pal[2], pal.Color(12))
	assert.Equal(t, uint8(0xff), Palette(nil).Color(3).A)
}

func TestDrawLevels(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := pyramid.MustNew(bezier.P(50, 50), bezier.P(400, 550), bezier.P(750, 50))
	require.NoError(t, p.Reparameterize(0.5))
	rec := &Recorder{}
	pal := RandomPalette(rand.New(rand.NewSource(1)), 10)
	DrawLevels(rec, p.Levels(), pal)
	// 3+2+1 points, 2+1+0 segments
	assert.Len(t, rec.Ops, 9)
	pts := rec.Points()
	require.Len(t, pts, 6)
	top := pts[5]
	tip, _ := p.Tip()
	assert.Equal(t, tip, top.From)
	assert.True(t, top.Style.Filled)
	assert.Equal(t, 4, top.Style.Radius)
	assert.False(t, pts[0].Style.Filled)
	assert.Equal(t, pal.Color(2), top.Style.Color)
	rec.Reset()
	assert.Empty(t, rec.Ops)
}

func TestDrawPolyline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := pyramid.MustNew(bezier.P(0, 0), bezier.P(1, 1))
	trace, err := p.GetTrace(0, 1, 0.25)
	require.NoError(t, err)
	rec := &Recorder{}
	DrawPolyline(rec, trace, Style{Width: 2})
	assert.Len(t, rec.Ops, len(trace)-1)
	assert.Equal(t, "segment (0,0) -- (0.25,0.25)", rec.Ops[0].String())
	DrawPolyline(rec, nil, Style{})
	assert.Len(t, rec.Ops, len(trace)-1)
}
