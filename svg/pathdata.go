package svg

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"

	"honnef.co/go/svg2pts/geom"
)

// arcTolerance is the error bound for approximating elliptical arc
// commands with cubic segments. The approximation error is tiny compared
// to typical flattening accuracies, so a fixed bound suffices.
const arcTolerance = 0.1

// ParsePathData parses the d attribute of a path element. All commands of
// the SVG path grammar are supported, including implicit command
// repetition and the shorthand smooth variants.
func ParsePathData(d string) (geom.BezPath, error) {
	s := pathScanner{data: []byte(d)}
	var (
		path    geom.BezPath
		cur     geom.Point
		start   geom.Point
		ctrl    geom.Point
		prevCmd byte
	)

	for !s.done() {
		cmd, ok := s.command()
		if !ok {
			// A coordinate without a command repeats the previous one,
			// with moveto continuing as lineto.
			switch prevCmd {
			case 0, 'Z', 'z':
				return nil, fmt.Errorf("svg: expected path command at offset %d", s.pos)
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			default:
				cmd = prevCmd
			}
		}

		rel := cmd >= 'a'
		origin := geom.Point{}
		if rel {
			origin = cur
		}

		switch cmd & 0xdf { // uppercase
		case 'M':
			pt, err := s.point(origin)
			if err != nil {
				return nil, err
			}
			cur = pt
			start = pt
			path.MoveTo(pt)
		case 'Z' & 0xdf:
			path.ClosePath()
			cur = start
		case 'L':
			pt, err := s.point(origin)
			if err != nil {
				return nil, err
			}
			cur = pt
			path.LineTo(pt)
		case 'H':
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += cur.X
			}
			cur = geom.Pt(x, cur.Y)
			path.LineTo(cur)
		case 'V':
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y
			}
			cur = geom.Pt(cur.X, y)
			path.LineTo(cur)
		case 'C':
			p1, err := s.point(origin)
			if err != nil {
				return nil, err
			}
			p2, err := s.point(origin)
			if err != nil {
				return nil, err
			}
			pt, err := s.point(origin)
			if err != nil {
				return nil, err
			}
			path.CubicTo(p1, p2, pt)
			ctrl = p2
			cur = pt
		case 'S':
			p1 := reflectControl(cur, ctrl, prevCmd, 'C', 'S')
			p2, err := s.point(origin)
			if err != nil {
				return nil, err
			}
			pt, err := s.point(origin)
			if err != nil {
				return nil, err
			}
			path.CubicTo(p1, p2, pt)
			ctrl = p2
			cur = pt
		case 'Q':
			p1, err := s.point(origin)
			if err != nil {
				return nil, err
			}
			pt, err := s.point(origin)
			if err != nil {
				return nil, err
			}
			path.QuadTo(p1, pt)
			ctrl = p1
			cur = pt
		case 'T':
			p1 := reflectControl(cur, ctrl, prevCmd, 'Q', 'T')
			pt, err := s.point(origin)
			if err != nil {
				return nil, err
			}
			path.QuadTo(p1, pt)
			ctrl = p1
			cur = pt
		case 'A':
			rx, err := s.number()
			if err != nil {
				return nil, err
			}
			ry, err := s.number()
			if err != nil {
				return nil, err
			}
			rot, err := s.number()
			if err != nil {
				return nil, err
			}
			largeArc, err := s.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := s.flag()
			if err != nil {
				return nil, err
			}
			pt, err := s.point(origin)
			if err != nil {
				return nil, err
			}
			appendArc(&path, cur, pt, geom.Vec(rx, ry), rot, largeArc, sweep)
			cur = pt
		default:
			return nil, fmt.Errorf("svg: unknown path command %q", string(cmd))
		}
		prevCmd = cmd
	}

	if len(path) > 0 && path[0].Kind != geom.MoveToKind {
		return nil, fmt.Errorf("svg: path data must begin with a moveto command")
	}
	return path, nil
}

// reflectControl computes the first control point of a smooth curve
// command: the previous control point reflected about the current point,
// or the current point itself when the previous command was not of the
// matching curve family.
func reflectControl(cur, ctrl geom.Point, prevCmd, full, smooth byte) geom.Point {
	switch prevCmd & 0xdf {
	case full, smooth:
		return geom.Pt(2*cur.X-ctrl.X, 2*cur.Y-ctrl.Y)
	}
	return cur
}

// appendArc converts an elliptical arc command to cubic segments. Zero
// radii and coincident endpoints degrade to a line, as the SVG spec
// prescribes.
func appendArc(path *geom.BezPath, from, to geom.Point, radii geom.Vec2, xRotationDeg float64, largeArc, sweep bool) {
	arc, ok := geom.ArcFromEndpoints(from, to, radii, xRotationDeg*deg2rad, largeArc, sweep)
	if !ok {
		path.LineTo(to)
		return
	}
	n := len(*path)
	first := true
	for el := range arc.PathElements(arcTolerance) {
		if first {
			// The arc starts where the path already is.
			first = false
			continue
		}
		path.Push(el)
	}
	if len(*path) == n {
		path.LineTo(to)
		return
	}
	// Pin the final control point to the exact endpoint so the arc meets
	// whatever follows without a seam.
	(*path)[len(*path)-1].P2 = to
}

type pathScanner struct {
	data []byte
	pos  int
}

func (s *pathScanner) skip() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *pathScanner) done() bool {
	s.skip()
	return s.pos >= len(s.data)
}

func (s *pathScanner) command() (byte, bool) {
	s.skip()
	c := s.data[s.pos]
	if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' {
		s.pos++
		return c, true
	}
	return 0, false
}

func (s *pathScanner) number() (float64, error) {
	s.skip()
	v, n := strconv.ParseFloat(s.data[s.pos:])
	if n == 0 {
		return 0, fmt.Errorf("svg: expected number at offset %d in path data", s.pos)
	}
	s.pos += n
	return v, nil
}

// flag reads an arc flag, which is a single 0 or 1 digit and may directly
// abut the following number.
func (s *pathScanner) flag() (bool, error) {
	s.skip()
	if s.pos < len(s.data) {
		switch s.data[s.pos] {
		case '0':
			s.pos++
			return false, nil
		case '1':
			s.pos++
			return true, nil
		}
	}
	return false, fmt.Errorf("svg: expected arc flag at offset %d in path data", s.pos)
}

func (s *pathScanner) point(origin geom.Point) (geom.Point, error) {
	x, err := s.number()
	if err != nil {
		return geom.Point{}, err
	}
	y, err := s.number()
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(origin.X+x, origin.Y+y), nil
}
