package svgwire

import (
	"errors"
	"strings"
	"testing"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/require"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<svg version="1.1" xmlns="http://www.w3.org/2000/svg" width="595.201px" height="841.922px" viewBox="0 0 595.201 841.922">
<title>fixture</title>
<rect x="207" y="53" fill="#009FE3" width="181.667" height="85.333"/>
<path id="outline" d="M0,0 L10,0 L10,10 Z"/>
</svg>`

func TestParse(t *testing.T) {
	is := is.New(t)

	doc, err := ParseString(testSvg, "test", 0)
	is.NoErr(err)
	is.NotNil(doc)
	is.Equal(doc.Title, "fixture")
	is.Equal(len(doc.Paths), 1)
	is.Equal(len(doc.Rects), 1)

	doc, err = Parse(strings.NewReader(testSvg), "test", 0)
	is.NoErr(err)
	is.NotNil(doc)
}

func TestParseMalformed(t *testing.T) {
	_, err := ParseString(`<svg><path`, "bad", 0)
	requireKind(t, err, ErrDocumentMalformed)
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	var ce *ConversionError
	require.True(t, errors.As(err, &ce), "expected ConversionError, got %T: %v", err, err)
	require.Equal(t, kind, ce.Kind)
}

func convertString(t *testing.T, svg string) (*ShapeGroup, *Converter, *StubKernel, error) {
	t.Helper()
	doc, err := ParseString(svg, "test", 0)
	require.NoError(t, err)
	k := &StubKernel{}
	c := NewConverter(k)
	group, err := c.Convert(doc)
	return group, c, k, err
}

func TestConvertTriangle(t *testing.T) {
	group, c, k, err := convertString(t, `<svg><path d="M0,0 L10,0 L10,10 Z"/></svg>`)
	require.NoError(t, err)
	require.Len(t, group.Shapes, 1)
	require.Len(t, k.Wires, 1)

	want := []CurvePrimitive{
		{Kind: LinePrimitive, Start: Pt3(0, 0, 0), End: Pt3(10, 0, 0)},
		{Kind: LinePrimitive, Start: Pt3(10, 0, 0), End: Pt3(10, -10, 0)},
		{Kind: LinePrimitive, Start: Pt3(10, -10, 0), End: Pt3(0, 0, 0)},
	}
	require.Equal(t, want, k.Wires[0])
	require.Equal(t, Tally{Attempted: 1, Succeeded: 1}, c.Tally())

	outcomes := c.Outcomes()
	require.Len(t, outcomes, 1)
	require.NoError(t, outcomes[0].Err)
	require.Equal(t, want, outcomes[0].Primitives)
}

func TestConvertRect(t *testing.T) {
	group, _, k, err := convertString(t, `<svg><rect x="0" y="0" width="10" height="5"/></svg>`)
	require.NoError(t, err)
	require.Len(t, group.Shapes, 1)
	require.Len(t, k.Wires, 1)

	wire := k.Wires[0]
	require.Len(t, wire, 4)
	for _, p := range wire {
		require.Equal(t, LinePrimitive, p.Kind)
	}
	// The closing line returns to the starting corner.
	require.Equal(t, Pt3(0, 0, 0), wire[0].Start)
	require.Equal(t, Pt3(0, 0, 0), wire[3].End)
	require.Equal(t, Pt3(10, -5, 0), wire[1].End)
}

func TestConvertNoRecognizedElements(t *testing.T) {
	_, _, _, err := convertString(t, `<svg><text>hi</text></svg>`)
	requireKind(t, err, ErrNoRecognizedElements)
}

func TestConvertSinglePointPolyline(t *testing.T) {
	_, c, _, err := convertString(t, `<svg><polyline points="0,0"/></svg>`)
	requireKind(t, err, ErrNoValidElements)
	require.Equal(t, Tally{Attempted: 1, Skipped: 1}, c.Tally())

	outcomes := c.Outcomes()
	require.Len(t, outcomes, 1)
	var ce *ConversionError
	require.True(t, errors.As(outcomes[0].Err, &ce))
	require.Equal(t, ErrReductionEmpty, ce.Kind)
}

func TestConvertSkippedElementDoesNotBlockOthers(t *testing.T) {
	group, c, _, err := convertString(t,
		`<svg><polyline points="0,0"/><path d="M0,0 L5,5"/></svg>`)
	require.NoError(t, err)
	require.Len(t, group.Shapes, 1)
	require.Equal(t, Tally{Attempted: 2, Succeeded: 1, Skipped: 1}, c.Tally())
}

func TestConvertElementNaming(t *testing.T) {
	group, _, _, err := convertString(t, `<svg>
		<path id="named" d="M0,0 L1,1"/>
		<path data-name="fallback" d="M0,0 L1,1"/>
		<path d="M0,0 L1,1"/>
	</svg>`)
	require.NoError(t, err)
	require.Len(t, group.Shapes, 3)
	require.Equal(t, "named", group.Shapes[0].Name)
	require.Equal(t, "fallback", group.Shapes[1].Name)
	require.Equal(t, "path-2", group.Shapes[2].Name)
}

func TestConvertTypeGroupedOrder(t *testing.T) {
	// Paths are processed before circles regardless of document order.
	group, _, _, err := convertString(t, `<svg>
		<circle id="c" cx="0" cy="0" r="5"/>
		<path id="p" d="M0,0 L1,1"/>
	</svg>`)
	require.NoError(t, err)
	require.Len(t, group.Shapes, 2)
	require.Equal(t, "p", group.Shapes[0].Name)
	require.Equal(t, "c", group.Shapes[1].Name)
}

func TestConvertPrimitiveFailureIsContained(t *testing.T) {
	// Lines fail, the cubic survives, the element still converts.
	doc, err := ParseString(`<svg><path d="M0,0 L10,0 C1,1 2,2 3,3"/></svg>`, "test", 0)
	require.NoError(t, err)
	k := &StubKernel{LineErr: errors.New("line refused")}
	c := NewConverter(k)

	group, err := c.Convert(doc)
	require.NoError(t, err)
	require.Len(t, group.Shapes, 1)
	require.Len(t, k.Wires, 1)
	require.Len(t, k.Wires[0], 1)
	require.Equal(t, CubicPrimitive, k.Wires[0][0].Kind)
}

func TestConvertWireFailureFailsElement(t *testing.T) {
	doc, err := ParseString(`<svg><path d="M0,0 L10,0"/></svg>`, "test", 0)
	require.NoError(t, err)
	k := &StubKernel{WireErr: errors.New("wire refused")}
	c := NewConverter(k)

	_, err = c.Convert(doc)
	requireKind(t, err, ErrNoValidElements)
	require.Equal(t, Tally{Attempted: 1, Failed: 1}, c.Tally())
}

func TestConvertAllPrimitivesFailingFailsElement(t *testing.T) {
	doc, err := ParseString(`<svg><path d="M0,0 L10,0"/></svg>`, "test", 0)
	require.NoError(t, err)
	k := &StubKernel{LineErr: errors.New("line refused")}
	c := NewConverter(k)

	_, err = c.Convert(doc)
	requireKind(t, err, ErrNoValidElements)

	outcomes := c.Outcomes()
	require.Len(t, outcomes, 1)
	var ce *ConversionError
	require.True(t, errors.As(outcomes[0].Err, &ce))
	require.Equal(t, ErrWireAssembly, ce.Kind)
}

func TestConvertVerboseAppendsDiagnostics(t *testing.T) {
	doc, err := ParseString(`<svg><polyline points="0,0"/></svg>`, "test", 0)
	require.NoError(t, err)
	c := NewConverter(&StubKernel{})
	c.Verbose = true

	_, err = c.Convert(doc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no path data, skipped")

	var ce *ConversionError
	require.True(t, errors.As(err, &ce))
	require.NotEmpty(t, ce.Trace)
}

func TestConvertScaleAppliesBeforeInversion(t *testing.T) {
	doc, err := ParseString(`<svg><path d="M0,0 L10,20"/></svg>`, "test", 2)
	require.NoError(t, err)
	k := &StubKernel{}
	_, err = NewConverter(k).Convert(doc)
	require.NoError(t, err)
	require.Len(t, k.Edges, 1)
	require.Equal(t, Pt3(20, -40, 0), k.Edges[0].End)
}

func TestConvertNegativeScaleDivides(t *testing.T) {
	doc, err := ParseString(`<svg><path d="M0,0 L10,20"/></svg>`, "test", -2)
	require.NoError(t, err)
	k := &StubKernel{}
	_, err = NewConverter(k).Convert(doc)
	require.NoError(t, err)
	require.Len(t, k.Edges, 1)
	require.Equal(t, Pt3(5, -10, 0), k.Edges[0].End)
}

func TestConvertUnsupportedCommandNoted(t *testing.T) {
	doc, err := ParseString(`<svg><path d="M0,0 X9 L5,5"/></svg>`, "test", 0)
	require.NoError(t, err)
	c := NewConverter(&StubKernel{})
	group, err := c.Convert(doc)
	require.NoError(t, err)
	require.Len(t, group.Shapes, 1)

	var noted bool
	for _, line := range c.Diagnostics() {
		if strings.Contains(line, "unsupported path command") {
			noted = true
		}
	}
	require.True(t, noted)
}
