package svgwire

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// bezierCircleK is the control-point offset, as a fraction of the
// radius, that makes four cubic Béziers trace a circle to within 0.02%.
const bezierCircleK = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Rect is an SVG rect element, optionally with rounded corners.
type Rect struct {
	ID       string `xml:"id,attr"`
	DataName string `xml:"data-name,attr"`
	X        string `xml:"x,attr"`
	Y        string `xml:"y,attr"`
	Width    string `xml:"width,attr"`
	Height   string `xml:"height,attr"`
	Rx       string `xml:"rx,attr"`
	Ry       string `xml:"ry,attr"`
}

// Circle is an SVG circle element.
type Circle struct {
	ID       string `xml:"id,attr"`
	DataName string `xml:"data-name,attr"`
	Cx       string `xml:"cx,attr"`
	Cy       string `xml:"cy,attr"`
	Radius   string `xml:"r,attr"`
}

// Ellipse is an SVG ellipse element.
type Ellipse struct {
	ID       string `xml:"id,attr"`
	DataName string `xml:"data-name,attr"`
	Cx       string `xml:"cx,attr"`
	Cy       string `xml:"cy,attr"`
	Rx       string `xml:"rx,attr"`
	Ry       string `xml:"ry,attr"`
}

// Line is an SVG line element.
type Line struct {
	ID       string `xml:"id,attr"`
	DataName string `xml:"data-name,attr"`
	X1       string `xml:"x1,attr"`
	Y1       string `xml:"y1,attr"`
	X2       string `xml:"x2,attr"`
	Y2       string `xml:"y2,attr"`
}

// Polyline is an SVG polyline element: connected line segments through
// a list of points, left open.
type Polyline struct {
	ID       string `xml:"id,attr"`
	DataName string `xml:"data-name,attr"`
	Points   string `xml:"points,attr"`
}

// Polygon is an SVG polygon element: like a polyline but closed.
type Polygon struct {
	ID       string `xml:"id,attr"`
	DataName string `xml:"data-name,attr"`
	Points   string `xml:"points,attr"`
}

func (r *Rect) label(i int) string     { return elementLabel(r.ID, r.DataName, "rect", i) }
func (c *Circle) label(i int) string   { return elementLabel(c.ID, c.DataName, "circle", i) }
func (e *Ellipse) label(i int) string  { return elementLabel(e.ID, e.DataName, "ellipse", i) }
func (l *Line) label(i int) string     { return elementLabel(l.ID, l.DataName, "line", i) }
func (p *Polyline) label(i int) string { return elementLabel(p.ID, p.DataName, "polyline", i) }
func (p *Polygon) label(i int) string  { return elementLabel(p.ID, p.DataName, "polygon", i) }

// PathData reduces the rectangle to path grammar. Zero corner radii
// give the plain four-sided form; nonzero radii give eight segments
// alternating straight sides and quarter-ellipse arc corners, swept
// clockwise.
func (r *Rect) PathData() string {
	x, y := attrFloat(r.X), attrFloat(r.Y)
	w, h := attrFloat(r.Width), attrFloat(r.Height)
	if w <= 0 || h <= 0 {
		return ""
	}
	rx, ry := attrFloat(r.Rx), attrFloat(r.Ry)
	if ry == 0 {
		ry = rx
	}
	rx = math.Min(rx, w/2)
	ry = math.Min(ry, h/2)
	if rx <= 0 || ry <= 0 {
		return fmt.Sprintf("M%s,%s h%s v%s h%s Z",
			fnum(x), fnum(y), fnum(w), fnum(h), fnum(-w))
	}

	var b strings.Builder
	arc := func(ex, ey float64) {
		fmt.Fprintf(&b, " A%s %s 0 0 1 %s,%s", fnum(rx), fnum(ry), fnum(ex), fnum(ey))
	}
	fmt.Fprintf(&b, "M%s,%s", fnum(x+rx), fnum(y))
	fmt.Fprintf(&b, " L%s,%s", fnum(x+w-rx), fnum(y))
	arc(x+w, y+ry)
	fmt.Fprintf(&b, " L%s,%s", fnum(x+w), fnum(y+h-ry))
	arc(x+w-rx, y+h)
	fmt.Fprintf(&b, " L%s,%s", fnum(x+rx), fnum(y+h))
	arc(x, y+h-ry)
	fmt.Fprintf(&b, " L%s,%s", fnum(x), fnum(y+ry))
	arc(x+rx, y)
	b.WriteString(" Z")
	return b.String()
}

// PathData reduces the circle to four cubic Bézier arcs, starting at
// the leftmost point and running clockwise through top, right and
// bottom before closing.
func (c *Circle) PathData() string {
	r := attrFloat(c.Radius)
	if r <= 0 {
		return ""
	}
	return ellipsePathData(attrFloat(c.Cx), attrFloat(c.Cy), r, r)
}

// PathData reduces the ellipse with the same four-arc construction as
// the circle, each axis scaling its own control offset.
func (e *Ellipse) PathData() string {
	rx, ry := attrFloat(e.Rx), attrFloat(e.Ry)
	if rx <= 0 || ry <= 0 {
		return ""
	}
	return ellipsePathData(attrFloat(e.Cx), attrFloat(e.Cy), rx, ry)
}

func ellipsePathData(cx, cy, rx, ry float64) string {
	kx := bezierCircleK * rx
	ky := bezierCircleK * ry

	var b strings.Builder
	cubic := func(c1x, c1y, c2x, c2y, ex, ey float64) {
		fmt.Fprintf(&b, " C%s,%s %s,%s %s,%s",
			fnum(c1x), fnum(c1y), fnum(c2x), fnum(c2y), fnum(ex), fnum(ey))
	}
	fmt.Fprintf(&b, "M%s,%s", fnum(cx-rx), fnum(cy))
	cubic(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	cubic(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	cubic(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	cubic(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	b.WriteString(" Z")
	return b.String()
}

// PathData reduces the line segment to a two-point open path.
func (l *Line) PathData() string {
	return fmt.Sprintf("M%s,%s L%s,%s",
		fnum(attrFloat(l.X1)), fnum(attrFloat(l.Y1)),
		fnum(attrFloat(l.X2)), fnum(attrFloat(l.Y2)))
}

func (p *Polyline) PathData() string {
	return polyPathData(p.Points, false)
}

func (p *Polygon) PathData() string {
	return polyPathData(p.Points, true)
}

func polyPathData(points string, closed bool) string {
	pts := parsePoints(points)
	if len(pts) < 2 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", fnum(pts[0][0]), fnum(pts[0][1]))
	for _, pt := range pts[1:] {
		fmt.Fprintf(&b, " L%s,%s", fnum(pt[0]), fnum(pt[1]))
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String()
}

// parsePoints reads a whitespace/comma delimited coordinate list. The
// list is truncated at the first non-numeric token and at a trailing
// unpaired number, so no pair ever mixes coordinates from different
// points.
func parsePoints(s string) []Tuple {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	var pts []Tuple
	for i := 0; i+1 < len(fields); i += 2 {
		x, errx := strconv.ParseFloat(fields[i], 64)
		y, erry := strconv.ParseFloat(fields[i+1], 64)
		if errx != nil || erry != nil {
			break
		}
		pts = append(pts, Tuple{x, y})
	}
	return pts
}

// attrFloat parses a numeric attribute, defaulting to 0 when the
// attribute is absent or not a number.
func attrFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
