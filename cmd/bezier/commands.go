package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/npillmayer/bezier"
	"github.com/npillmayer/bezier/bernstein"
	"github.com/npillmayer/bezier/polygon"
	"github.com/npillmayer/bezier/pyramid"
	"github.com/npillmayer/bezier/render"
	"github.com/spf13/cobra"
)

// parsePoints reads control points from a list of x,y pairs, separated by
// blanks or semicolons.
func parsePoints(s string) ([]bezier.Pair, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ';' || r == '\t' || r == '\n'
	})
	pts := make([]bezier.Pair, 0, len(fields))
	for _, f := range fields {
		pt, err := parsePair(f)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

// parsePair reads a single point of the form x,y.
func parsePair(f string) (bezier.Pair, error) {
	xy := strings.Split(f, ",")
	if len(xy) != 2 {
		return bezier.Origin, fmt.Errorf("%w: point %q is not of the form x,y", bezier.ErrInvalidArgument, f)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
	if err != nil {
		return bezier.Origin, fmt.Errorf("%w: point %q: %v", bezier.ErrInvalidArgument, f, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
	if err != nil {
		return bezier.Origin, fmt.Errorf("%w: point %q: %v", bezier.ErrInvalidArgument, f, err)
	}
	return bezier.P(x, y), nil
}

// controlPoints parses the control points, then rotates them around the
// origin by --rotate degrees and moves them by --shift.
func (opts *options) controlPoints() ([]bezier.Pair, error) {
	pts, err := parsePoints(opts.points)
	if err != nil {
		return nil, err
	}
	shift, err := parsePair(opts.shift)
	if err != nil {
		return nil, err
	}
	if opts.rotate == 0 && shift.IsOrigin() {
		return pts, nil
	}
	for i, pt := range pts {
		pts[i] = pt.Rotated(opts.rotate * bezier.Deg2Rad).Shifted(shift)
	}
	tracer().Debugf("control points rotated by %g° and shifted by %v", opts.rotate, shift)
	return pts, nil
}

func (opts *options) pyramid(t float64) (*pyramid.Pyramid, error) {
	pts, err := opts.controlPoints()
	if err != nil {
		return nil, err
	}
	p, err := pyramid.New(pts...)
	if err != nil {
		return nil, err
	}
	if err = p.Reparameterize(t); err != nil {
		return nil, err
	}
	if opts.verify {
		if err = p.Check(1e-9); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func printPoints(w io.Writer, pts []bezier.Pair) {
	for _, pt := range pts {
		fmt.Fprintf(w, "%g %g\n", pt.X(), pt.Y())
	}
}

func pointCmd(opts *options) *cobra.Command {
	var t float64
	cmd := &cobra.Command{
		Use:   "point",
		Short: "Print the curve point at parameter t, computed by both methods",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.pyramid(t)
			if err != nil {
				return err
			}
			tip, err := p.Tip()
			if err != nil {
				return err
			}
			pt, err := bernstein.PointAt(p.ControlPoints(), t)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "casteljau %v\n", tip)
			fmt.Fprintf(w, "bernstein %v\n", pt)
			return nil
		},
	}
	cmd.Flags().Float64Var(&t, "t", 0.5, "curve parameter in [0,1]")
	return cmd
}

type sampling struct {
	from, to, step float64
}

func (s *sampling) flags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&s.from, "from", 0, "first curve parameter")
	cmd.Flags().Float64Var(&s.to, "to", 1, "last curve parameter")
	cmd.Flags().Float64Var(&s.step, "step", 0.01, "parameter step")
}

func traceCmd(opts *options) *cobra.Command {
	s := &sampling{}
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the path of the pyramid's topmost point over [from,to)",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.pyramid(0)
			if err != nil {
				return err
			}
			trace, err := p.GetTrace(s.from, s.to, s.step)
			if err != nil {
				return err
			}
			if trace == nil {
				return fmt.Errorf("%w: a trace needs at least 2 control points", bezier.ErrEmptyCurve)
			}
			printPoints(cmd.OutOrStdout(), trace)
			return nil
		},
	}
	s.flags(cmd)
	return cmd
}

func curveCmd(opts *options) *cobra.Command {
	s := &sampling{}
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print curve samples over [from,to], evaluated by the Bernstein basis",
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := opts.controlPoints()
			if err != nil {
				return err
			}
			curve, err := bernstein.Evaluate(pts, s.from, s.to, s.step)
			if err != nil {
				return err
			}
			printPoints(cmd.OutOrStdout(), curve)
			return nil
		},
	}
	s.flags(cmd)
	return cmd
}

func levelsCmd(opts *options) *cobra.Command {
	var t float64
	var seed int64
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the drawing operations for all pyramid levels at parameter t",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.pyramid(t)
			if err != nil {
				return err
			}
			levels := p.Levels()
			pal := render.RandomPalette(rand.New(rand.NewSource(seed)), len(levels))
			rec := &render.Recorder{}
			render.DrawLevels(rec, levels, pal)
			w := cmd.OutOrStdout()
			for _, op := range rec.Ops {
				c := op.Style.Color
				fmt.Fprintf(w, "%s #%02x%02x%02x\n", op, c.R, c.G, c.B)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&t, "t", 0.5, "curve parameter in [0,1]")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for level colors")
	return cmd
}

func bboxCmd(opts *options) *cobra.Command {
	var inside string
	cmd := &cobra.Command{
		Use:   "bbox",
		Short: "Print the control polygon and its bounding box, which enclose the curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := opts.controlPoints()
			if err != nil {
				return err
			}
			if len(pts) == 0 {
				return fmt.Errorf("%w: no control points", bezier.ErrEmptyCurve)
			}
			pg := polygon.ControlPolygon(pts)
			ll, ur := pg.BoundingBox()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "polygon %s\n", polygon.AsString(pg))
			fmt.Fprintf(w, "bbox %v %v\n", ll, ur)
			if inside != "" {
				pt, err := parsePair(inside)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "contains %v %t\n", pt, pg.Contains(pt))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inside, "contains", "", "test if point x,y lies within the control polygon")
	return cmd
}
