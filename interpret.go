package svgwire

import "fmt"

// PrimitiveKind tags a CurvePrimitive variant.
type PrimitiveKind int

const (
	LinePrimitive PrimitiveKind = iota
	CubicPrimitive
)

// CurvePrimitive is one emitted curve on the working plane: a straight
// line or a cubic Bézier. The caller owns it once returned.
type CurvePrimitive struct {
	Kind   PrimitiveKind
	Start  Point3
	C1, C2 Point3 // cubic control points, zero for lines
	End    Point3
}

// closeTolerance is the maximum gap between the current point and the
// sub-path start for ClosePath to treat the sub-path as already closed.
const closeTolerance = 1e-3

// interpreter folds a normalized command sequence into curve
// primitives. State is scoped to a single path and discarded after.
type interpreter struct {
	mapper *PlaneMapper

	current     Tuple
	start       Tuple
	lastControl *Tuple

	notes []string
}

func newInterpreter(m *PlaneMapper) *interpreter {
	return &interpreter{mapper: m}
}

func (in *interpreter) run(commands []PathCommand) []CurvePrimitive {
	var prims []CurvePrimitive
	for _, cmd := range commands {
		if p, ok := in.step(cmd); ok {
			prims = append(prims, p)
		}
	}
	return prims
}

func (in *interpreter) step(cmd PathCommand) (CurvePrimitive, bool) {
	switch cmd.Kind {
	case MoveToCmd:
		in.current = cmd.P
		in.start = cmd.P
		in.lastControl = nil
		return CurvePrimitive{}, false
	case LineToCmd:
		return in.lineTo(cmd.P), true
	case HLineToCmd:
		return in.lineTo(Tuple{cmd.N, in.current[1]}), true
	case VLineToCmd:
		return in.lineTo(Tuple{in.current[0], cmd.N}), true
	case CubicToCmd:
		return in.cubicTo(cmd.C1, cmd.C2, cmd.P), true
	case SmoothCubicToCmd:
		return in.cubicTo(in.reflectedControl(), cmd.C2, cmd.P), true
	case QuadToCmd:
		return in.quadTo(cmd.C1, cmd.P), true
	case SmoothQuadToCmd:
		return in.quadTo(in.reflectedControl(), cmd.P), true
	case ArcToCmd:
		// Arc decomposition is not implemented; the arc is replaced by
		// its chord.
		in.notes = append(in.notes, fmt.Sprintf(
			"arc (rx=%g ry=%g) to (%g, %g) approximated by a straight chord",
			cmd.Rx, cmd.Ry, cmd.P[0], cmd.P[1]))
		return in.lineTo(cmd.P), true
	case CloseCmd:
		return in.closePath()
	}
	return CurvePrimitive{}, false
}

func (in *interpreter) lineTo(p Tuple) CurvePrimitive {
	prim := CurvePrimitive{
		Kind:  LinePrimitive,
		Start: in.mapper.MapTuple(in.current),
		End:   in.mapper.MapTuple(p),
	}
	in.current = p
	in.lastControl = nil
	return prim
}

func (in *interpreter) cubicTo(c1, c2, end Tuple) CurvePrimitive {
	prim := CurvePrimitive{
		Kind:  CubicPrimitive,
		Start: in.mapper.MapTuple(in.current),
		C1:    in.mapper.MapTuple(c1),
		C2:    in.mapper.MapTuple(c2),
		End:   in.mapper.MapTuple(end),
	}
	in.current = end
	lc := c2
	in.lastControl = &lc
	return prim
}

// quadTo elevates the quadratic to a cubic. The remembered control
// point is the quadratic one, pre-elevation, so a following smooth
// quadratic reflects the right point.
func (in *interpreter) quadTo(c, end Tuple) CurvePrimitive {
	c1, c2 := elevateQuadratic(in.current, c, end)
	prim := CurvePrimitive{
		Kind:  CubicPrimitive,
		Start: in.mapper.MapTuple(in.current),
		C1:    in.mapper.MapTuple(c1),
		C2:    in.mapper.MapTuple(c2),
		End:   in.mapper.MapTuple(end),
	}
	in.current = end
	lc := c
	in.lastControl = &lc
	return prim
}

// reflectedControl mirrors the previous control point across the
// current point. Without a previous curve command the reflection
// degenerates to the current point itself.
func (in *interpreter) reflectedControl() Tuple {
	if in.lastControl == nil {
		return in.current
	}
	return Tuple{
		2*in.current[0] - in.lastControl[0],
		2*in.current[1] - in.lastControl[1],
	}
}

func (in *interpreter) closePath() (CurvePrimitive, bool) {
	from := in.mapper.MapTuple(in.current)
	to := in.mapper.MapTuple(in.start)
	in.current = in.start
	in.lastControl = nil
	if from.Distance(to) <= closeTolerance {
		return CurvePrimitive{}, false
	}
	return CurvePrimitive{Kind: LinePrimitive, Start: from, End: to}, true
}
