// Package svgwire converts SVG paths and basic shapes into 3D curve
// primitives (lines and cubic Béziers) and hands them to a geometry
// kernel for assembly into wires. Styling, transforms on elements,
// nested groups and use references are out of scope.
package svgwire

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// element is anything that can resolve itself to a path description.
type element interface {
	PathData() string
}

// Document is a parsed SVG document restricted to the element types the
// converter understands. Only direct children of the svg element are
// collected; group contents are not resolved.
type Document struct {
	XMLName xml.Name `xml:"svg"`
	Title   string   `xml:"title"`

	Paths     []Path     `xml:"path"`
	Rects     []Rect     `xml:"rect"`
	Circles   []Circle   `xml:"circle"`
	Ellipses  []Ellipse  `xml:"ellipse"`
	Lines     []Line     `xml:"line"`
	Polylines []Polyline `xml:"polyline"`
	Polygons  []Polygon  `xml:"polygon"`

	Name   string
	mapper *PlaneMapper
}

// Parse reads an SVG document from r. A scale > 0 multiplies all
// coordinates by scale; a scale < 0 divides them by -scale; 0 leaves
// them untouched.
func Parse(r io.Reader, name string, scale float64) (*Document, error) {
	doc := Document{Name: name, mapper: NewPlaneMapper()}
	if scale > 0 {
		doc.mapper.transform.Scale(scale, scale)
	}
	if scale < 0 {
		doc.mapper.transform.Scale(1.0/-scale, 1.0/-scale)
	}
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ConversionError{
			Kind:    ErrDocumentMalformed,
			Message: fmt.Sprintf("parsing %q: %v", name, err),
		}
	}
	return &doc, nil
}

// ParseString parses an SVG document held in a string.
func ParseString(s string, name string, scale float64) (*Document, error) {
	return Parse(strings.NewReader(s), name, scale)
}

// docElement pairs an element with its resolved display name.
type docElement struct {
	name   string
	source element
}

// elements lists the recognized elements grouped by type: paths, rects,
// circles, ellipses, lines, polylines, polygons, document order within
// each type.
func (d *Document) elements() []docElement {
	var els []docElement
	for i := range d.Paths {
		els = append(els, docElement{d.Paths[i].label(i), &d.Paths[i]})
	}
	for i := range d.Rects {
		els = append(els, docElement{d.Rects[i].label(i), &d.Rects[i]})
	}
	for i := range d.Circles {
		els = append(els, docElement{d.Circles[i].label(i), &d.Circles[i]})
	}
	for i := range d.Ellipses {
		els = append(els, docElement{d.Ellipses[i].label(i), &d.Ellipses[i]})
	}
	for i := range d.Lines {
		els = append(els, docElement{d.Lines[i].label(i), &d.Lines[i]})
	}
	for i := range d.Polylines {
		els = append(els, docElement{d.Polylines[i].label(i), &d.Polylines[i]})
	}
	for i := range d.Polygons {
		els = append(els, docElement{d.Polygons[i].label(i), &d.Polygons[i]})
	}
	return els
}

// elementLabel picks the element's display name: id attribute, then
// data-name, then a positional fallback.
func elementLabel(id, dataName, kind string, i int) string {
	if id != "" {
		return id
	}
	if dataName != "" {
		return dataName
	}
	return fmt.Sprintf("%s-%d", kind, i)
}

// Shape is one successfully converted element: a kernel wire plus its
// name.
type Shape struct {
	Name string
	Wire Wire
}

// ShapeGroup is the result of converting a document.
type ShapeGroup struct {
	Name   string
	Shapes []Shape
}

// Tally counts per-element outcomes across one conversion.
type Tally struct {
	Attempted int
	Succeeded int
	Skipped   int
	Failed    int
}

// ElementOutcome records how a single element fared. Err is nil on
// success, in which case Primitives holds the emitted curves.
type ElementOutcome struct {
	Name       string
	Primitives []CurvePrimitive
	Err        error
}

// Converter drives document conversion against a geometry kernel. A
// Converter is single-use per Convert call conceptually: counts,
// outcomes and diagnostics are reset each time. It is not safe for
// concurrent use.
type Converter struct {
	Kernel Kernel
	// Verbose attaches the timestamped diagnostic log to any returned
	// error.
	Verbose bool

	counts   Tally
	outcomes []ElementOutcome
	log      conversionLog
}

func NewConverter(k Kernel) *Converter {
	return &Converter{Kernel: k}
}

// Tally returns the counts of the most recent conversion.
func (c *Converter) Tally() Tally { return c.counts }

// Outcomes returns the per-element records of the most recent
// conversion, in processing order.
func (c *Converter) Outcomes() []ElementOutcome { return c.outcomes }

// Diagnostics returns the timestamped log of the most recent
// conversion.
func (c *Converter) Diagnostics() []string { return c.log.lines }

// Convert turns every recognized element of the document into a named
// shape wrapping one wire. Element failures are contained: a malformed
// path or a kernel refusal costs that element only. Convert fails as a
// whole when the document has no recognized elements or when no element
// produced a shape.
func (c *Converter) Convert(doc *Document) (*ShapeGroup, error) {
	c.counts = Tally{}
	c.outcomes = nil
	c.log = conversionLog{}

	if doc.mapper == nil {
		doc.mapper = NewPlaneMapper()
	}
	elements := doc.elements()
	c.log.notef("document %q: %d supported elements", doc.Name, len(elements))
	if len(elements) == 0 {
		return nil, c.fail(ErrNoRecognizedElements,
			fmt.Sprintf("document %q contains no path, rect, circle, ellipse, line, polyline or polygon elements", doc.Name))
	}

	group := &ShapeGroup{Name: doc.Name}
	for _, el := range elements {
		c.counts.Attempted++
		shape, ok := c.convertElement(doc, el)
		if ok {
			group.Shapes = append(group.Shapes, shape)
		}
	}

	if len(group.Shapes) == 0 {
		return nil, c.fail(ErrNoValidElements,
			fmt.Sprintf("no valid elements in %q: %d attempted, %d skipped, %d failed",
				doc.Name, c.counts.Attempted, c.counts.Skipped, c.counts.Failed))
	}
	c.log.notef("document %q: %d of %d elements converted", doc.Name, c.counts.Succeeded, c.counts.Attempted)
	return group, nil
}

func (c *Converter) convertElement(doc *Document, el docElement) (Shape, bool) {
	d := strings.TrimSpace(el.source.PathData())
	if d == "" {
		c.counts.Skipped++
		c.log.notef("%s: no path data, skipped", el.name)
		c.outcomes = append(c.outcomes, ElementOutcome{
			Name: el.name,
			Err:  elementError(ErrReductionEmpty, "%s has no path data", el.name),
		})
		return Shape{}, false
	}

	commands, notes, err := parsePathData(el.name, d)
	for _, n := range notes {
		c.log.notef("%s: %s", el.name, n)
	}
	if err != nil {
		return c.failElement(el.name, elementError(ErrGrammarParse, "%s: %v", el.name, err))
	}

	in := newInterpreter(doc.mapper)
	prims := in.run(commands)
	for _, n := range in.notes {
		c.log.notef("%s: %s", el.name, n)
	}
	if len(prims) == 0 {
		return c.failElement(el.name, elementError(ErrGrammarParse, "%s produced no curve primitives", el.name))
	}

	var edges []Edge
	for _, p := range prims {
		var e Edge
		var err error
		switch p.Kind {
		case LinePrimitive:
			e, err = c.Kernel.Line(p.Start, p.End)
		case CubicPrimitive:
			e, err = c.Kernel.Bezier(p.Start, p.C1, p.C2, p.End)
		}
		if err != nil {
			// One bad segment must not discard an otherwise valid path.
			c.log.notef("%s: %s: %v, primitive omitted", el.name, ErrPrimitiveConstruction, err)
			continue
		}
		edges = append(edges, e)
	}
	if len(edges) == 0 {
		return c.failElement(el.name, elementError(ErrWireAssembly, "%s: no edges survived construction", el.name))
	}

	w, err := c.Kernel.Wire(edges)
	if err != nil {
		return c.failElement(el.name, elementError(ErrWireAssembly, "%s: %v", el.name, err))
	}

	c.counts.Succeeded++
	c.log.notef("%s: converted, %d primitives", el.name, len(prims))
	c.outcomes = append(c.outcomes, ElementOutcome{Name: el.name, Primitives: prims})
	return Shape{Name: el.name, Wire: w}, true
}

func (c *Converter) failElement(name string, err *ConversionError) (Shape, bool) {
	c.counts.Failed++
	c.log.notef("%s", err.Error())
	c.outcomes = append(c.outcomes, ElementOutcome{Name: name, Err: err})
	return Shape{}, false
}

func (c *Converter) fail(kind ErrorKind, msg string) error {
	e := &ConversionError{Kind: kind, Message: msg}
	if c.Verbose {
		e.Trace = append([]string(nil), c.log.lines...)
	}
	return e
}
