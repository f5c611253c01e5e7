package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"honnef.co/go/svg2pts/geom"
)

var errNoRoot = errors.New("svg: missing <svg> root element")

// frame is the inherited state for one level of the element tree: the
// composed transform, the fill and stroke in effect, and whether an
// ancestor disables rendering.
type frame struct {
	xf     geom.Affine
	fill   string // "" means unset, which the SVG initial value turns into black
	stroke string
	hidden bool
}

type parser struct {
	doc     *Document
	stack   []frame
	sawRoot bool
}

// Parse reads an SVG document and collects its visible path geometry. The
// decoder is deliberately lenient about XML strictness and character sets,
// as real-world SVG files frequently are sloppy about both.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity
	dec.CharsetReader = charset.NewReaderLabel

	p := parser{doc: &Document{}}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svg: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.startElement(t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			p.endElement()
		}
	}
	if !p.sawRoot {
		return nil, errNoRoot
	}

	flip := geom.FlipAbout(p.doc.flipHeight())
	for i := range p.doc.Paths {
		p.doc.Paths[i].ApplyTransform(flip)
	}
	return p.doc, nil
}

// nonRendered lists container elements whose content never produces
// geometry of its own: definitions, gradients, and the text machinery we
// don't lay out.
var nonRendered = map[string]bool{
	"clipPath":       true,
	"defs":           true,
	"desc":           true,
	"filter":         true,
	"linearGradient": true,
	"marker":         true,
	"mask":           true,
	"metadata":       true,
	"pattern":        true,
	"radialGradient": true,
	"style":          true,
	"symbol":         true,
	"text":           true,
	"title":          true,
}

func (p *parser) startElement(se xml.StartElement) error {
	f := frame{xf: geom.Identity}
	if len(p.stack) > 0 {
		f = p.stack[len(p.stack)-1]
	}

	name := se.Name.Local
	if nonRendered[name] {
		f.hidden = true
	}

	attrs := make(map[string]string, len(se.Attr))
	for _, a := range se.Attr {
		attrs[a.Name.Local] = a.Value
	}

	if v, ok := attrs["transform"]; ok {
		xf, err := ParseTransform(v)
		if err != nil {
			return err
		}
		f.xf = f.xf.Mul(xf)
	}
	if v, ok := attrs["fill"]; ok {
		f.fill = strings.TrimSpace(v)
	}
	if v, ok := attrs["stroke"]; ok {
		f.stroke = strings.TrimSpace(v)
	}
	if strings.TrimSpace(attrs["display"]) == "none" {
		f.hidden = true
	}
	if v, ok := attrs["style"]; ok {
		applyInlineStyle(&f, v)
	}

	switch name {
	case "svg":
		if !p.sawRoot {
			p.sawRoot = true
			p.rootAttrs(attrs)
		}
	case "path":
		if d, ok := attrs["d"]; ok {
			path, err := ParsePathData(d)
			if err != nil {
				return err
			}
			p.emit(path, f)
		}
	case "rect", "circle", "ellipse", "line", "polyline", "polygon":
		path, err := shapePath(name, attrs)
		if err != nil {
			return err
		}
		p.emit(path, f)
	}

	p.stack = append(p.stack, f)
	return nil
}

func (p *parser) endElement() {
	if len(p.stack) > 0 {
		p.stack = p.stack[:len(p.stack)-1]
	}
}

// emit records a path if it would be painted: not inside a non-rendered
// subtree, has actual segments, and carries a fill or a stroke. An unset
// fill counts as visible, matching the SVG initial value of black.
func (p *parser) emit(path geom.BezPath, f frame) {
	if f.hidden || !path.HasSegments() {
		return
	}
	if f.fill == "none" && (f.stroke == "" || f.stroke == "none") {
		return
	}
	p.doc.Paths = append(p.doc.Paths, path.Transform(f.xf))
}

func (p *parser) rootAttrs(attrs map[string]string) {
	if v, ok := attrs["viewBox"]; ok {
		if nums, err := parseNumberList(v); err == nil && len(nums) == 4 {
			p.doc.ViewBox = ViewBox{nums[0], nums[1], nums[2], nums[3]}
		}
	}
	p.doc.Width = parseLength(attrs["width"])
	p.doc.Height = parseLength(attrs["height"])
	if p.doc.Width == 0 {
		p.doc.Width = p.doc.ViewBox.Width
	}
	if p.doc.Height == 0 {
		p.doc.Height = p.doc.ViewBox.Height
	}
}

// applyInlineStyle picks the few properties we care about out of a style
// attribute. Full CSS cascading is well beyond what point extraction needs.
func applyInlineStyle(f *frame, style string) {
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(prop) {
		case "fill":
			f.fill = value
		case "stroke":
			f.stroke = value
		case "display":
			if value == "none" {
				f.hidden = true
			}
		}
	}
}

// parseLength reads a width/height attribute value, ignoring any trailing
// unit. Percentages and unparsable values yield 0, deferring to the viewBox.
func parseLength(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, "%") {
		return 0
	}
	s = strings.TrimRight(s, "abcdefghijklmnopqrstuvwxyz ")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseNumberList splits a whitespace- or comma-separated list of numbers,
// as used by the viewBox and points attributes.
func parseNumberList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	nums := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("svg: bad number %q: %w", field, err)
		}
		nums[i] = v
	}
	return nums, nil
}
