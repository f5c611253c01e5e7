package geom

import (
	"testing"
)

func TestLineEval(t *testing.T) {
	const epsilon = 1e-12
	l := Line{Pt(1, 2), Pt(5, 10)}

	assertNear(t, l.Eval(0), Pt(1, 2), epsilon)
	assertNear(t, l.Eval(0.5), Pt(3, 6), epsilon)
	assertNear(t, l.Eval(1), Pt(5, 10), epsilon)
	if got, want := l.Length(), Pt(1, 2).Distance(Pt(5, 10)); got != want {
		t.Errorf("got length %g, want %g", got, want)
	}
}

func TestQuadBezSubdivide(t *testing.T) {
	const epsilon = 1e-12
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	q0, q1 := q.Subdivide()
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, q.Eval(0.5*ts), q0.Eval(ts), epsilon)
		assertNear(t, q.Eval(0.5+0.5*ts), q1.Eval(ts), epsilon)
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	const epsilon = 1e-12
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0, 1.0),
		Pt(2.0, 1.0),
		Pt(3.0, 0.0),
	}
	c0, c1 := c.Subdivide()
	if c0.P3 != c1.P0 {
		t.Fatalf("halves don't meet: %s vs %s", c0.P3, c1.P0)
	}
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, c.Eval(0.5*ts), c0.Eval(ts), epsilon)
		assertNear(t, c.Eval(0.5+0.5*ts), c1.Eval(ts), epsilon)
	}
}

func TestCubicBezEvalEndpoints(t *testing.T) {
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(0.0, 10.0),
		Pt(10.0, 10.0),
		Pt(10.0, 0.0),
	}
	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %s, want %s", got, c.P0)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %s, want %s", got, c.P3)
	}
}
