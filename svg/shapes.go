package svg

import (
	"fmt"
	"math"
	"strconv"

	"honnef.co/go/svg2pts/geom"
)

// shapePath builds the outline of a basic shape element. Shapes with a
// missing or degenerate size produce an empty path, which the caller
// discards.
func shapePath(name string, attrs map[string]string) (geom.BezPath, error) {
	num := func(key string) (float64, error) {
		v, ok := attrs[key]
		if !ok || v == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("svg: bad %s attribute %q on <%s>", key, v, name)
		}
		return f, nil
	}

	switch name {
	case "rect":
		var x, y, w, h, rx, ry float64
		for _, f := range []struct {
			key string
			dst *float64
		}{{"x", &x}, {"y", &y}, {"width", &w}, {"height", &h}, {"rx", &rx}, {"ry", &ry}} {
			v, err := num(f.key)
			if err != nil {
				return nil, err
			}
			*f.dst = v
		}
		if w <= 0 || h <= 0 {
			return nil, nil
		}
		// A single corner radius applies to both axes.
		if _, ok := attrs["rx"]; !ok {
			rx = ry
		}
		if _, ok := attrs["ry"]; !ok {
			ry = rx
		}
		rx = math.Min(math.Abs(rx), w/2)
		ry = math.Min(math.Abs(ry), h/2)
		if rx == 0 || ry == 0 {
			var p geom.BezPath
			p.MoveTo(geom.Pt(x, y))
			p.LineTo(geom.Pt(x+w, y))
			p.LineTo(geom.Pt(x+w, y+h))
			p.LineTo(geom.Pt(x, y+h))
			p.ClosePath()
			return p, nil
		}
		return roundedRect(x, y, w, h, rx, ry), nil

	case "circle":
		cx, err := num("cx")
		if err != nil {
			return nil, err
		}
		cy, err := num("cy")
		if err != nil {
			return nil, err
		}
		r, err := num("r")
		if err != nil {
			return nil, err
		}
		if r <= 0 {
			return nil, nil
		}
		return ellipsePath(cx, cy, r, r), nil

	case "ellipse":
		cx, err := num("cx")
		if err != nil {
			return nil, err
		}
		cy, err := num("cy")
		if err != nil {
			return nil, err
		}
		rx, err := num("rx")
		if err != nil {
			return nil, err
		}
		ry, err := num("ry")
		if err != nil {
			return nil, err
		}
		if rx <= 0 || ry <= 0 {
			return nil, nil
		}
		return ellipsePath(cx, cy, rx, ry), nil

	case "line":
		x1, err := num("x1")
		if err != nil {
			return nil, err
		}
		y1, err := num("y1")
		if err != nil {
			return nil, err
		}
		x2, err := num("x2")
		if err != nil {
			return nil, err
		}
		y2, err := num("y2")
		if err != nil {
			return nil, err
		}
		var p geom.BezPath
		p.MoveTo(geom.Pt(x1, y1))
		p.LineTo(geom.Pt(x2, y2))
		return p, nil

	case "polyline", "polygon":
		nums, err := parseNumberList(attrs["points"])
		if err != nil {
			return nil, err
		}
		if len(nums) < 4 {
			return nil, nil
		}
		var p geom.BezPath
		p.MoveTo(geom.Pt(nums[0], nums[1]))
		for i := 2; i+1 < len(nums); i += 2 {
			p.LineTo(geom.Pt(nums[i], nums[i+1]))
		}
		if name == "polygon" {
			p.ClosePath()
		}
		return p, nil
	}
	return nil, nil
}

func ellipsePath(cx, cy, rx, ry float64) geom.BezPath {
	arc := geom.Arc{
		Center:     geom.Pt(cx, cy),
		Radii:      geom.Vec(rx, ry),
		StartAngle: 0,
		SweepAngle: 2 * math.Pi,
	}
	var p geom.BezPath
	for el := range arc.PathElements(arcTolerance) {
		p.Push(el)
	}
	p.ClosePath()
	return p
}

// roundedRect traces a rect with elliptical corners clockwise from the
// end of the top-left corner arc.
func roundedRect(x, y, w, h, rx, ry float64) geom.BezPath {
	corner := func(p *geom.BezPath, fromX, fromY, toX, toY float64) {
		arc, ok := geom.ArcFromEndpoints(geom.Pt(fromX, fromY), geom.Pt(toX, toY), geom.Vec(rx, ry), 0, false, true)
		if !ok {
			p.LineTo(geom.Pt(toX, toY))
			return
		}
		first := true
		for el := range arc.PathElements(arcTolerance) {
			if first {
				first = false
				continue
			}
			p.Push(el)
		}
	}

	var p geom.BezPath
	p.MoveTo(geom.Pt(x+rx, y))
	p.LineTo(geom.Pt(x+w-rx, y))
	corner(&p, x+w-rx, y, x+w, y+ry)
	p.LineTo(geom.Pt(x+w, y+h-ry))
	corner(&p, x+w, y+h-ry, x+w-rx, y+h)
	p.LineTo(geom.Pt(x+rx, y+h))
	corner(&p, x+rx, y+h, x, y+h-ry)
	p.LineTo(geom.Pt(x, y+ry))
	corner(&p, x, y+ry, x+rx, y)
	p.ClosePath()
	return p
}
