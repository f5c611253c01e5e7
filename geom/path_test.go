package geom

import (
	"slices"
	"testing"
)

func TestSegmentsContinuity(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.QuadTo(Pt(15, 5), Pt(10, 10))
	p.CubicTo(Pt(5, 15), Pt(0, 15), Pt(0, 10))
	p.ClosePath()

	var segs []PathSegment
	for seg := range p.Segments() {
		segs = append(segs, seg)
	}
	if len(segs) != 4 {
		t.Fatalf("got %d segments, want 4", len(segs))
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].Start() != segs[i-1].End() {
			t.Errorf("segment %d starts at %s, previous ends at %s", i, segs[i].Start(), segs[i-1].End())
		}
	}
	// The close emits the line back to the subpath start.
	want := Line{Pt(0, 10), Pt(0, 0)}.Seg()
	diff(t, want, segs[3])
}

func TestSegmentsCloseAtStart(t *testing.T) {
	// Closing a subpath that already sits on its start point must not emit a
	// zero-length line.
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(5, 0))
	p.LineTo(Pt(0, 0))
	p.ClosePath()

	n := 0
	for range p.Segments() {
		n++
	}
	if n != 2 {
		t.Errorf("got %d segments, want 2", n)
	}
}

func TestSegmentsMultipleSubpaths(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 0))
	p.MoveTo(Pt(10, 10))
	p.LineTo(Pt(11, 10))

	var segs []PathSegment
	for seg := range p.Segments() {
		segs = append(segs, seg)
	}
	want := []PathSegment{
		Line{Pt(0, 0), Pt(1, 0)}.Seg(),
		Line{Pt(10, 10), Pt(11, 10)}.Seg(),
	}
	diff(t, want, segs)
}

func TestSubpaths(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 0))
	p.ClosePath()
	p.MoveTo(Pt(10, 10))
	p.CubicTo(Pt(11, 10), Pt(12, 10), Pt(13, 10))

	var subs []BezPath
	for sub := range p.Subpaths() {
		subs = append(subs, slices.Clone(sub))
	}
	if len(subs) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(subs))
	}
	diff(t, BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)), ClosePath()}, subs[0])
	diff(t, BezPath{MoveTo(Pt(10, 10)), CubicTo(Pt(11, 10), Pt(12, 10), Pt(13, 10))}, subs[1])
}

func TestHasSegments(t *testing.T) {
	var empty BezPath
	if empty.HasSegments() {
		t.Error("empty path reports segments")
	}
	moveOnly := BezPath{MoveTo(Pt(1, 1)), ClosePath()}
	if moveOnly.HasSegments() {
		t.Error("move-only path reports segments")
	}
	line := BezPath{MoveTo(Pt(1, 1)), LineTo(Pt(2, 2))}
	if !line.HasSegments() {
		t.Error("line path reports no segments")
	}
}
