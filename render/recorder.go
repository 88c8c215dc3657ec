package render

import (
	"fmt"

	"github.com/npillmayer/bezier"
)

// Op is a recorded drawing operation.
type Op struct {
	From, To bezier.Pair // To equals From for points
	Segment  bool
	Style    Style
}

func (op Op) String() string {
	if op.Segment {
		return fmt.Sprintf("segment %v -- %v", op.From, op.To)
	}
	return fmt.Sprintf("point %v", op.From)
}

// Recorder is a Renderer which just remembers what it has been told to draw.
type Recorder struct {
	Ops []Op
}

var _ Renderer = &Recorder{}

// DrawPoint is part of interface Renderer.
func (rec *Recorder) DrawPoint(p bezier.Pair, style Style) {
	rec.Ops = append(rec.Ops, Op{From: p, To: p, Style: style})
}

// DrawSegment is part of interface Renderer.
func (rec *Recorder) DrawSegment(p, q bezier.Pair, style Style) {
	rec.Ops = append(rec.Ops, Op{From: p, To: q, Segment: true, Style: style})
}

// Points returns the recorded point operations only.
func (rec *Recorder) Points() []Op {
	var pts []Op
	for _, op := range rec.Ops {
		if !op.Segment {
			pts = append(pts, op)
		}
	}
	return pts
}

// Reset forgets all recorded operations.
func (rec *Recorder) Reset() {
	rec.Ops = rec.Ops[:0]
}
