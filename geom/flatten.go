package geom

import (
	"iter"
)

// maxFlattenDepth caps the recursive bisection of curve segments. Finite
// segments terminate long before the cap at any practical accuracy; the cap
// bounds the work should a segment never pass the flatness test.
const maxFlattenDepth = 64

// chordDistance returns the distance from pt to the chord segment from a to
// b. The projection parameter is clamped to the chord's span, so a point
// past either end reports its distance to the nearer endpoint. Measuring
// against the infinite line instead would under-report control points that
// sit near the line but far beyond the chord, and flattening would accept a
// polyline the curve strays arbitrarily far from.
func chordDistance(pt, a, b Point) float64 {
	d := b.Sub(a)
	hypot2 := d.Hypot2()
	if hypot2 == 0 {
		return pt.Distance(a)
	}
	t := pt.Sub(a).Dot(d) / hypot2
	if t <= 0 {
		return pt.Distance(a)
	}
	if t >= 1 {
		return pt.Distance(b)
	}
	return pt.Distance(a.Lerp(b, t))
}

func flattenQuad(q QuadBez, accuracy float64, depth int, yield func(Point) bool) bool {
	if q.IsNaN() {
		// There is no flatness to measure; pass the NaN through instead of
		// subdividing all the way to the depth cap.
		return yield(q.P2)
	}
	if chordDistance(q.P1, q.P0, q.P2) <= accuracy || depth >= maxFlattenDepth {
		return yield(q.P2)
	}
	q0, q1 := q.Subdivide()
	return flattenQuad(q0, accuracy, depth+1, yield) &&
		flattenQuad(q1, accuracy, depth+1, yield)
}

func flattenCubic(c CubicBez, accuracy float64, depth int, yield func(Point) bool) bool {
	if c.IsNaN() {
		return yield(c.P3)
	}
	d1 := chordDistance(c.P1, c.P0, c.P3)
	d2 := chordDistance(c.P2, c.P0, c.P3)
	if (d1 <= accuracy && d2 <= accuracy) || depth >= maxFlattenDepth {
		return yield(c.P3)
	}
	c0, c1 := c.Subdivide()
	return flattenCubic(c0, accuracy, depth+1, yield) &&
		flattenCubic(c1, accuracy, depth+1, yield)
}

// flattenSegmentTail yields the points approximating seg, excluding the
// segment's start point. Every point of the true curve ends up within
// accuracy of the polyline through the yielded points.
func flattenSegmentTail(seg PathSegment, accuracy float64, yield func(Point) bool) bool {
	switch seg.Kind {
	case LineKind:
		return yield(seg.P1)
	case QuadKind:
		return flattenQuad(seg.Quad(), accuracy, 0, yield)
	case CubicKind:
		return flattenCubic(seg.Cubic(), accuracy, 0, yield)
	default:
		return true
	}
}

// FlattenSegment converts a single segment to an ordered sequence of points
// approximating it within accuracy, using adaptive subdivision: curves are
// recursively bisected until the control points deviate from the chord by no
// more than accuracy.
//
// A line yields exactly its two endpoints. Consecutive coincident points are
// collapsed, so a fully degenerate segment (all control points equal to P)
// yields the single point P.
//
// The function is pure; NaN or infinite coordinates propagate to the output.
func FlattenSegment(seg PathSegment, accuracy float64) iter.Seq[Point] {
	return Flatten(func(yield func(PathSegment) bool) { yield(seg) }, accuracy)
}

// Flatten converts a path, given as a sequence of contiguous segments, to an
// ordered sequence of points approximating it within accuracy. The first
// segment's start point is emitted once, before anything else; points
// coinciding with the previously emitted point are dropped, so segment
// boundaries produce no duplicates.
//
// The segments are expected to satisfy the continuity invariant of
// [Segments]. Should a segment nevertheless start away from the previous
// segment's end, its start point is emitted to keep the polyline faithful.
func Flatten(segs iter.Seq[PathSegment], accuracy float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		var last option[Point]
		emit := func(pt Point) bool {
			if last.isSet && last.value == pt {
				return true
			}
			last.set(pt)
			return yield(pt)
		}
		for seg := range segs {
			if !emit(seg.Start()) {
				return
			}
			if !flattenSegmentTail(seg, accuracy, emit) {
				return
			}
		}
	}
}
