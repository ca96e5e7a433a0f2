package svgwire

// CommandKind tags a PathCommand variant.
type CommandKind int

// Path grammar commands after normalization. Relative letters never
// survive parsing, so there is one kind per command family.
const (
	MoveToCmd CommandKind = iota
	LineToCmd
	HLineToCmd
	VLineToCmd
	CubicToCmd
	SmoothCubicToCmd
	QuadToCmd
	SmoothQuadToCmd
	ArcToCmd
	CloseCmd
)

func (k CommandKind) String() string {
	switch k {
	case MoveToCmd:
		return "MoveTo"
	case LineToCmd:
		return "LineTo"
	case HLineToCmd:
		return "HLineTo"
	case VLineToCmd:
		return "VLineTo"
	case CubicToCmd:
		return "CubicTo"
	case SmoothCubicToCmd:
		return "SmoothCubicTo"
	case QuadToCmd:
		return "QuadTo"
	case SmoothQuadToCmd:
		return "SmoothQuadTo"
	case ArcToCmd:
		return "ArcTo"
	case CloseCmd:
		return "Close"
	}
	return "Unknown"
}

// PathCommand is one normalized path-grammar command. All coordinates
// are absolute; the parser resolves relative commands against the
// running current point before emitting them.
type PathCommand struct {
	Kind CommandKind

	// P is the end point for every command that has one. HLineTo and
	// VLineTo carry the single resolved coordinate in N instead.
	P Tuple
	N float64

	// C1 is the first cubic control point, or the quadratic control
	// point for QuadTo. C2 is the second cubic control point (CubicTo
	// and SmoothCubicTo).
	C1 Tuple
	C2 Tuple

	// Elliptical arc parameters (ArcTo only).
	Rx, Ry   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
}
