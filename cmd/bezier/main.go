/*
Command bezier evaluates Bézier curves from the command line.

Control points are given as a list of x,y pairs:

	bezier point --points "50,50 400,550 750,50" --t 0.3
	bezier trace --from 0 --to 1 --step 0.05
	bezier curve --step 0.1
	bezier levels --t 0.5 --verify
	bezier bbox --rotate 45 --shift 100,0 --contains 400,200

Tracing is configured with NestedText configuration files found at the
usual locations for app tag "bezier" (keys `tracing.adapter`,
`trace.root`, `trace.pyramid`, …) and may be overridden with flag
--trace.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// tracer writes to trace with key 'bezier'
func tracer() tracing.Trace {
	return tracing.Select("bezier")
}

// tracerKeys are the tracers used by the packages of this module.
var tracerKeys = []string{"bezier", "pyramid", "bernstein", "polygon", "render"}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options are shared by all sub-commands.
type options struct {
	points string
	trace  string
	verify bool
	rotate float64 // degrees
	shift  string
}

func rootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "bezier",
		Short:        "Evaluate Bézier curves by de Casteljau's and Bernstein's method",
		SilenceUsage: true,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := ""
		if cmd.Flags().Changed("trace") {
			level = opts.trace
		}
		return initTracing(level)
	}
	root.PersistentFlags().StringVar(&opts.points, "points", "50,50 400,550 750,50",
		"control points as space separated x,y pairs")
	root.PersistentFlags().StringVar(&opts.trace, "trace", "Error",
		"trace level for all tracers (Error, Info, Debug)")
	root.PersistentFlags().BoolVar(&opts.verify, "verify", false,
		"check the de Casteljau construction after evaluation")
	root.PersistentFlags().Float64Var(&opts.rotate, "rotate", 0,
		"rotate control points around the origin, in degrees counter-clockwise")
	root.PersistentFlags().StringVar(&opts.shift, "shift", "0,0",
		"move control points by x,y (after rotation)")
	root.AddCommand(pointCmd(opts), traceCmd(opts), curveCmd(opts), levelsCmd(opts), bboxCmd(opts))
	return root
}

// initTracing installs trace2go as the tracer selector, with tracers
// writing to the Go standard logger. Tracers not configured otherwise trace
// errors only. If level is non-empty, it overrides any configured trace level.
func initTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "bezier", []string{".nt"})
	conf.InitDefaults()
	for _, key := range append([]string{"root"}, tracerKeys...) {
		if level != "" {
			conf.Set("trace."+key, level)
		} else if !conf.IsSet("trace." + key) {
			conf.Set("trace."+key, "Error")
		}
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("tracing configured")
	return nil
}
