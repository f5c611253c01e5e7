package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/svg2pts/geom"
)

// parseOne parses a document without a declared height and returns its
// single visible path. The output flip then mirrors about y = 0, so
// expected coordinates are simply the document's with y negated.
func parseOne(t *testing.T, body string) geom.BezPath {
	t.Helper()
	doc, err := Parse(strings.NewReader(`<svg>` + body + `</svg>`))
	require.NoError(t, err)
	require.Len(t, doc.Paths, 1)
	return doc.Paths[0]
}

func TestRect(t *testing.T) {
	path := parseOne(t, `<rect x="1" y="2" width="10" height="20"/>`)
	assert.Equal(t, geom.BezPath{
		geom.MoveTo(geom.Pt(1, -2)),
		geom.LineTo(geom.Pt(11, -2)),
		geom.LineTo(geom.Pt(11, -22)),
		geom.LineTo(geom.Pt(1, -22)),
		geom.ClosePath(),
	}, path)
}

func TestRectDegenerate(t *testing.T) {
	doc, err := Parse(strings.NewReader(
		`<svg><rect x="1" y="2" width="0" height="20"/><rect width="5"/></svg>`))
	require.NoError(t, err)
	assert.Empty(t, doc.Paths)
}

func TestRectRounded(t *testing.T) {
	path := parseOne(t, `<rect width="10" height="10" rx="2"/>`)
	require.True(t, path.HasSegments())
	// The outline starts after the top-left corner arc and stays within the
	// rect's bounds.
	assert.Equal(t, geom.MoveTo(geom.Pt(2, 0)), path[0])
	for seg := range path.Segments() {
		for i := range 11 {
			pt := seg.Eval(float64(i) / 10)
			assert.GreaterOrEqual(t, pt.X, -0.01)
			assert.LessOrEqual(t, pt.X, 10.01)
			assert.GreaterOrEqual(t, pt.Y, -10.01)
			assert.LessOrEqual(t, pt.Y, 0.01)
		}
	}
}

func TestCircle(t *testing.T) {
	path := parseOne(t, `<circle cx="5" cy="5" r="3"/>`)
	require.True(t, path.HasSegments())
	center := geom.Pt(5, -5)
	for seg := range path.Segments() {
		for i := range 11 {
			pt := seg.Eval(float64(i) / 10)
			assert.InDelta(t, 3, pt.Distance(center), 0.15)
		}
	}
}

func TestEllipse(t *testing.T) {
	path := parseOne(t, `<ellipse cx="0" cy="0" rx="4" ry="2"/>`)
	require.True(t, path.HasSegments())
	for seg := range path.Segments() {
		for i := range 11 {
			pt := seg.Eval(float64(i) / 10)
			v := (pt.X*pt.X)/16 + (pt.Y*pt.Y)/4
			assert.InDelta(t, 1, v, 0.1)
		}
	}
}

func TestLine(t *testing.T) {
	path := parseOne(t, `<line x1="1" y1="2" x2="3" y2="4" stroke="black"/>`)
	assert.Equal(t, geom.BezPath{
		geom.MoveTo(geom.Pt(1, -2)),
		geom.LineTo(geom.Pt(3, -4)),
	}, path)
}

func TestPolylinePolygon(t *testing.T) {
	path := parseOne(t, `<polyline points="0,0 10,0 10,10" fill="none" stroke="black"/>`)
	assert.Equal(t, geom.BezPath{
		geom.MoveTo(geom.Pt(0, 0)),
		geom.LineTo(geom.Pt(10, 0)),
		geom.LineTo(geom.Pt(10, -10)),
	}, path)

	path = parseOne(t, `<polygon points="0 0, 10 0, 10 10"/>`)
	assert.Equal(t, geom.BezPath{
		geom.MoveTo(geom.Pt(0, 0)),
		geom.LineTo(geom.Pt(10, 0)),
		geom.LineTo(geom.Pt(10, -10)),
		geom.ClosePath(),
	}, path)
}
