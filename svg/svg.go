// Package svg reads the subset of SVG needed to turn a document into plain
// path geometry: path and basic-shape elements, transform composition, and
// enough styling to decide which paths would actually be painted. Rendering
// concerns (colors, gradients, text, filters) are out of scope; paths with
// neither fill nor stroke are culled.
package svg

import (
	"honnef.co/go/svg2pts/geom"
)

// ViewBox is the viewBox rectangle of an SVG document.
type ViewBox struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

// Document holds the drawable geometry of a parsed SVG document.
type Document struct {
	// Width and Height are the document's nominal size, taken from the width
	// and height attributes, falling back to the viewBox.
	Width  float64
	Height float64

	// ViewBox is the document's viewBox, or the zero value if absent.
	ViewBox ViewBox

	// Paths are the visible paths in document order, with all node and group
	// transforms applied and the y axis flipped about the document height, so
	// that emitted points are in the conventional y-up space.
	Paths []geom.BezPath
}

// flipHeight returns the height about which output y coordinates are
// mirrored. The viewBox height takes precedence over the height attribute.
func (doc *Document) flipHeight() float64 {
	if doc.ViewBox.Height > 0 {
		return doc.ViewBox.Height
	}
	return doc.Height
}
