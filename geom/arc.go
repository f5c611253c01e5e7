package geom

import (
	"iter"
	"math"
)

// Arc is an elliptical arc in center parameterization: the portion of the
// ellipse with the given center, radii and x-axis rotation swept from
// StartAngle by SweepAngle (both in radians).
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// PathElements approximates the arc with a MoveTo followed by cubic Bézier
// segments. The tolerance parameter bounds the approximation error.
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		p0 := sampleEllipse(a.Radii, a.XRotation, a.StartAngle)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}

		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 = sampleEllipse(a.Radii, a.XRotation, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				break
			}
		}
	}
}

// ArcFromEndpoints converts an arc from SVG endpoint parameterization (the
// form used by the path data "A" command) to center parameterization,
// following the W3C conversion notes (SVG 1.1 appendix F.6.5). Out-of-range
// radii are corrected as specified: absolute values taken, then scaled up
// uniformly if no ellipse can reach the end point.
//
// It returns false for degenerate inputs (coincident endpoints or a zero
// radius), which per the SVG spec render as a straight line instead.
func ArcFromEndpoints(from, to Point, radii Vec2, xRotation float64, largeArc, sweep bool) (Arc, bool) {
	rx := math.Abs(radii.X)
	ry := math.Abs(radii.Y)
	if rx == 0 || ry == 0 {
		return Arc{}, false
	}
	sin, cos := math.Sincos(xRotation)

	// Step 1: half the vector from 'to' to 'from', rotated into the ellipse's
	// coordinate system.
	h := from.Sub(to).Mul(0.5)
	x1p := cos*h.X + sin*h.Y
	y1p := -sin*h.X + cos*h.Y
	if x1p == 0 && y1p == 0 {
		return Arc{}, false
	}

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: center in the ellipse's coordinate system.
	rx2 := rx * rx
	ry2 := ry * ry
	radicand := (rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p) / (rx2*y1p*y1p + ry2*x1p*x1p)
	if radicand < 0 {
		// Numerical noise around the λ = 1 boundary.
		radicand = 0
	}
	sq := math.Sqrt(radicand)
	if largeArc == sweep {
		sq = -sq
	}
	cxp := sq * rx * y1p / ry
	cyp := -sq * ry * x1p / rx

	// Step 3: center back in user space.
	mid := from.Midpoint(to)
	center := Point{
		X: cos*cxp - sin*cyp + mid.X,
		Y: sin*cxp + cos*cyp + mid.Y,
	}

	// Step 4: start and sweep angles.
	start := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	end := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	sweepAngle := end - start
	if sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	} else if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radii:      Vec2{rx, ry},
		StartAngle: start,
		SweepAngle: sweepAngle,
		XRotation:  xRotation,
	}, true
}

// sampleEllipse takes the ellipse radii, how the radii are rotated, and the
// sweep angle, and returns a point on the ellipse.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// rotatePt rotates pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}
