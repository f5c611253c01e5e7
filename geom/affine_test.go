package geom

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Skew(0, 0)), p, epsilon)
	assertNear(t, p.Transform(Skew(2, 4)), Pt(11, 16), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineRotateAbout(t *testing.T) {
	const epsilon = 1e-9
	center := Pt(3, 4)
	aff := RotateAbout(math.Pi/2, center)

	assertNear(t, center.Transform(aff), center, epsilon)
	assertNear(t, Pt(4, 4).Transform(aff), Pt(3, 5), epsilon)
	assertNear(t, Pt(3, 5).Transform(aff), Pt(2, 4), epsilon)
}

func TestFlipAbout(t *testing.T) {
	const epsilon = 1e-9
	aff := FlipAbout(100)

	assertNear(t, Pt(0, 0).Transform(aff), Pt(0, 100), epsilon)
	assertNear(t, Pt(7, 100).Transform(aff), Pt(7, 0), epsilon)
	assertNear(t, Pt(7, 30).Transform(aff), Pt(7, 70), epsilon)
	// Applying the flip twice is the identity.
	assertNear(t, Pt(5, 13).Transform(aff.Mul(aff)), Pt(5, 13), epsilon)
}
