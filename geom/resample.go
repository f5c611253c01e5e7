package geom

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var (
	// ErrInvalidDistance reports a negative (or NaN) target distance.
	ErrInvalidDistance = errors.New("target distance must be >= 0")
	// ErrInvalidAccuracy reports a non-positive (or NaN) flattening accuracy.
	ErrInvalidAccuracy = errors.New("accuracy must be > 0")
)

// DefaultAccuracy is the flattening tolerance used when neither an accuracy
// nor a target distance has been requested.
const DefaultAccuracy = 0.1

// AccuracyFor derives a flattening accuracy from a resampling distance, so
// that curve approximation error stays well under the resampling granularity.
// For distance == 0 (no resampling) it returns [DefaultAccuracy].
//
// The divisor and ceiling are empirical; callers needing a different policy
// can pass their own accuracy instead.
func AccuracyFor(distance float64) float64 {
	if distance > 0 {
		return min(distance/25.0, 0.05)
	}
	return DefaultAccuracy
}

// Resample walks the polyline through the given points and re-emits points
// spaced uniformly at distance along its cumulative arc length.
//
// A distance of zero disables resampling: the input sequence itself is
// returned unchanged. Otherwise the first input point is emitted as the
// anchor, and a point is emitted each time the accumulated length since the
// previously emitted point reaches distance, by linear interpolation between
// the two bracketing input points. Residual length carries across input
// segments. A trailing partial step is dropped; for a polyline of total
// length L the output therefore has exactly floor(L/distance)+1 points.
//
// An empty input resamples to an empty output. A negative distance is an
// invalid configuration and returns [ErrInvalidDistance].
func Resample(points iter.Seq[Point], distance float64) (iter.Seq[Point], error) {
	if distance < 0 || math.IsNaN(distance) {
		return nil, fmt.Errorf("%w, got %g", ErrInvalidDistance, distance)
	}
	if distance == 0 {
		return points, nil
	}
	return func(yield func(Point) bool) {
		first := true
		var last Point
		// Arc length accumulated since the last emitted point.
		var carry float64
		for pt := range points {
			if first {
				first = false
				last = pt
				if !yield(pt) {
					return
				}
				continue
			}
			length := last.Distance(pt)
			// Walk the input segment, emitting every time a full step fits
			// into carry plus the remaining part of the segment.
			var walked float64
			for carry+(length-walked) >= distance {
				walked += distance - carry
				carry = 0
				if !yield(last.Lerp(pt, walked/length)) {
					return
				}
			}
			carry += length - walked
			last = pt
		}
	}, nil
}

// ResamplePoints is a slice-based convenience wrapper around [Resample].
func ResamplePoints(points []Point, distance float64) ([]Point, error) {
	seq, err := Resample(func(yield func(Point) bool) {
		for _, pt := range points {
			if !yield(pt) {
				return
			}
		}
	}, distance)
	if err != nil {
		return nil, err
	}
	var out []Point
	for pt := range seq {
		out = append(out, pt)
	}
	return out, nil
}
