// Package geom provides the 2D geometry for converting vector paths to point
// streams: points, vectors, affine transforms, Bézier path segments, curve
// flattening, and arc-length resampling.
//
// # Pipeline
//
// A path enters as a sequence of [PathElement] values (the PostScript-style
// "move to", "line to", "curve to" commands), usually as a [BezPath]. The
// [Segments] function converts elements to contiguous [PathSegment] values,
// [Flatten] approximates those with a polyline within a given accuracy, and
// [Resample] optionally re-spaces the polyline at a uniform arc-length
// distance. All stages stream through [iter.Seq] and retain no geometry.
//
// # Flattening
//
// [Flatten] uses adaptive subdivision: a curve segment is recursively
// bisected with de Casteljau until its control points deviate from the chord
// of the subdivided endpoints by no more than the accuracy. The number of
// output points grows roughly as the inverse square root of the accuracy.
//
// # Resampling
//
// [Resample] treats its input as a piecewise-linear path and emits points at
// exact multiples of the target distance along the accumulated arc length,
// interpolating between input vertices. Pair it with an accuracy derived via
// [AccuracyFor] so that flattening error stays below the resampling
// granularity.
package geom
