package svgwire

// Edge is an opaque curve handle produced by a Kernel.
type Edge interface{}

// Wire is an opaque handle to an assembled chain of edges.
type Wire interface{}

// Kernel is the geometry-construction capability the converter relies
// on. Implementations wrap a CAD or geometry system. Calls are
// synchronous and independently fallible; the converter never retries
// them, and a failed Line or Bezier only costs that one primitive.
type Kernel interface {
	// Line constructs a straight edge between two points.
	Line(start, end Point3) (Edge, error)
	// Bezier constructs a cubic Bézier edge from its four points.
	Bezier(p0, c1, c2, p3 Point3) (Edge, error)
	// Wire assembles an ordered edge chain into one wire.
	Wire(edges []Edge) (Wire, error)
}

// StubKernel records the primitives it is asked to build instead of
// constructing real geometry. It backs the tests and allows dry-running
// a conversion without a geometry system attached. The error fields,
// when set, are returned by the corresponding call.
type StubKernel struct {
	Edges []CurvePrimitive
	Wires [][]CurvePrimitive

	LineErr   error
	BezierErr error
	WireErr   error
}

func (k *StubKernel) Line(start, end Point3) (Edge, error) {
	if k.LineErr != nil {
		return nil, k.LineErr
	}
	p := CurvePrimitive{Kind: LinePrimitive, Start: start, End: end}
	k.Edges = append(k.Edges, p)
	return p, nil
}

func (k *StubKernel) Bezier(p0, c1, c2, p3 Point3) (Edge, error) {
	if k.BezierErr != nil {
		return nil, k.BezierErr
	}
	p := CurvePrimitive{Kind: CubicPrimitive, Start: p0, C1: c1, C2: c2, End: p3}
	k.Edges = append(k.Edges, p)
	return p, nil
}

func (k *StubKernel) Wire(edges []Edge) (Wire, error) {
	if k.WireErr != nil {
		return nil, k.WireErr
	}
	w := make([]CurvePrimitive, 0, len(edges))
	for _, e := range edges {
		w = append(w, e.(CurvePrimitive))
	}
	k.Wires = append(k.Wires, w)
	return w, nil
}
