package bezier

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument indicates a parameter outside [0,1], a malformed
	// sample range or a non-finite coordinate.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyCurve indicates an operation needing more control points than present.
	ErrEmptyCurve = errors.New("too few control points for a curve")
)

// CheckParam checks that t is a valid curve parameter, i.e. 0 ≤ t ≤ 1.
func CheckParam(t float64) error {
	if math.IsNaN(t) || t < 0.0 || t > 1.0 {
		tracer().Errorf("curve parameter %g out of range [0,1]", t)
		return fmt.Errorf("%w: curve parameter %g not in [0,1]", ErrInvalidArgument, t)
	}
	return nil
}

// MaxSamples is the largest number of samples a sampling range may ask for.
const MaxSamples = 1 << 20

// CheckRange checks a sampling range: 0 ≤ start < end ≤ 1 and 0 < step < 1.
// A step too small for the range, i.e. one resulting in more than
// MaxSamples samples, is rejected as well.
func CheckRange(start, end, step float64) error {
	if math.IsNaN(start) || math.IsNaN(end) || !(0.0 <= start && start < end && end <= 1.0) {
		tracer().Errorf("malformed sample range [%g,%g]", start, end)
		return fmt.Errorf("%w: sample range [%g,%g] violates 0 ≤ start < end ≤ 1",
			ErrInvalidArgument, start, end)
	}
	if math.IsNaN(step) || !(0.0 < step && step < 1.0) {
		tracer().Errorf("malformed sample step %g", step)
		return fmt.Errorf("%w: sample step %g not in (0,1)", ErrInvalidArgument, step)
	}
	if (end-start)/step > MaxSamples {
		tracer().Errorf("sample step %g too small for range [%g,%g]", step, start, end)
		return fmt.Errorf("%w: sample step %g yields more than %d samples in [%g,%g]",
			ErrInvalidArgument, step, MaxSamples, start, end)
	}
	return nil
}

// CheckPoints checks that every point has finite coordinates.
func CheckPoints(pts []Pair) error {
	for i, p := range pts {
		if !p.IsFinite() {
			return fmt.Errorf("%w: control point #%d %v is not finite", ErrInvalidArgument, i, p)
		}
	}
	return nil
}

// Samples returns the parameter values
//
//	start + i⋅step,  0 ≤ i < ⌈(end-start)/step⌉
//
// i.e., the half-open range [start,end) stepped by step. The last sample
// need not reach end. Samples does not validate its arguments beyond
// returning nil for an empty or non-advancing range; callers check with
// CheckRange first.
func Samples(start, end, step float64) []float64 {
	if !(step > 0) || !(end > start) {
		return nil
	}
	n := int(math.Ceil((end - start) / step))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = start + float64(i)*step
	}
	return samples
}
