package svgwire

import (
	"fmt"

	gl "github.com/rustyoz/genericlexer"
)

// Path is an SVG XML path element.
type Path struct {
	ID       string `xml:"id,attr"`
	DataName string `xml:"data-name,attr"`
	D        string `xml:"d,attr"`
	Style    string `xml:"style,attr"`
}

// PathData implements the element interface; a path is its own data.
func (p *Path) PathData() string { return p.D }

func (p *Path) label(i int) string { return elementLabel(p.ID, p.DataName, "path", i) }

// pathDescriptionParser walks a d attribute and accumulates normalized
// commands. It tracks the current point and the sub-path start so
// relative coordinates resolve to absolute ones at parse time.
type pathDescriptionParser struct {
	lex      gl.Lexer
	x, y     float64
	sx, sy   float64
	commands []PathCommand
	notes    []string
}

func newPathDParse() *pathDescriptionParser {
	return &pathDescriptionParser{}
}

// parsePathData turns a path description into a normalized command
// sequence. Unsupported command letters are skipped and reported in the
// returned notes; a lexing failure aborts the whole description.
func parsePathData(name, d string) ([]PathCommand, []string, error) {
	pdp := newPathDParse()
	l, _ := gl.Lex(name, d)
	pdp.lex = *l
	for {
		i := pdp.lex.NextItem()
		switch {
		case i.Type == gl.ItemError:
			return nil, pdp.notes, fmt.Errorf("error lexing path %q: %s", name, i.Value)
		case i.Type == gl.ItemEOS:
			return pdp.commands, pdp.notes, nil
		case i.Type == gl.ItemLetter:
			if err := pdp.parseCommand(i); err != nil {
				return nil, pdp.notes, err
			}
		default:
		}
	}
}

func (pdp *pathDescriptionParser) parseCommand(i gl.Item) error {
	switch i.Value {
	case "M":
		return pdp.parseMoveTo(false)
	case "m":
		return pdp.parseMoveTo(true)
	case "L":
		return pdp.parseLineTo(false)
	case "l":
		return pdp.parseLineTo(true)
	case "H":
		return pdp.parseHLineTo(false)
	case "h":
		return pdp.parseHLineTo(true)
	case "V":
		return pdp.parseVLineTo(false)
	case "v":
		return pdp.parseVLineTo(true)
	case "C":
		return pdp.parseCurveTo(false)
	case "c":
		return pdp.parseCurveTo(true)
	case "S":
		return pdp.parseSmoothCurveTo(false)
	case "s":
		return pdp.parseSmoothCurveTo(true)
	case "Q":
		return pdp.parseQuadTo(false)
	case "q":
		return pdp.parseQuadTo(true)
	case "T":
		return pdp.parseSmoothQuadTo(false)
	case "t":
		return pdp.parseSmoothQuadTo(true)
	case "A":
		return pdp.parseArcTo(false)
	case "a":
		return pdp.parseArcTo(true)
	case "z", "Z":
		return pdp.parseClose()
	default:
		pdp.notes = append(pdp.notes, fmt.Sprintf("skipping unsupported path command %q", i.Value))
		pdp.discardArguments()
		return nil
	}
}

func (pdp *pathDescriptionParser) emit(c PathCommand) {
	pdp.commands = append(pdp.commands, c)
}

// discardArguments drops the numeric arguments of a command we do not
// understand so the next command letter lexes cleanly.
func (pdp *pathDescriptionParser) discardArguments() {
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		pdp.lex.NextItem()
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
	}
}

func (pdp *pathDescriptionParser) advance(t Tuple, rel bool) Tuple {
	if rel {
		pdp.x += t[0]
		pdp.y += t[1]
	} else {
		pdp.x = t[0]
		pdp.y = t[1]
	}
	return Tuple{pdp.x, pdp.y}
}

// resolve maps a parsed tuple to absolute coordinates without moving
// the current point.
func (pdp *pathDescriptionParser) resolve(t Tuple, rel bool) Tuple {
	if rel {
		return Tuple{pdp.x + t[0], pdp.y + t[1]}
	}
	return t
}

func (pdp *pathDescriptionParser) parseMoveTo(rel bool) error {
	pdp.lex.ConsumeWhiteSpace()
	t, err := parseTuple(&pdp.lex)
	if err != nil {
		return fmt.Errorf("Error Parsing MoveTo Expected Tuple\n%s", err)
	}
	p := pdp.advance(t, rel)
	pdp.sx, pdp.sy = pdp.x, pdp.y
	pdp.emit(PathCommand{Kind: MoveToCmd, P: p})

	// Coordinate pairs after the first are implicit line-tos.
	pdp.lex.ConsumeWhiteSpace()
	pdp.lex.ConsumeComma()
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		t, err := parseTuple(&pdp.lex)
		if err != nil {
			return fmt.Errorf("Error Parsing MoveTo\n%s", err)
		}
		pdp.emit(PathCommand{Kind: LineToCmd, P: pdp.advance(t, rel)})
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
	}
	return nil
}

func (pdp *pathDescriptionParser) parseLineTo(rel bool) error {
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		t, err := parseTuple(&pdp.lex)
		if err != nil {
			return fmt.Errorf("Error Parsing LineTo\n%s", err)
		}
		pdp.emit(PathCommand{Kind: LineToCmd, P: pdp.advance(t, rel)})
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
	}
	return nil
}

func (pdp *pathDescriptionParser) parseHLineTo(rel bool) error {
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		n, err := parseNumber(pdp.lex.NextItem())
		if err != nil {
			return fmt.Errorf("Error Parsing HLineTo\n%s", err)
		}
		if rel {
			pdp.x += n
		} else {
			pdp.x = n
		}
		pdp.emit(PathCommand{Kind: HLineToCmd, N: pdp.x})
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
	}
	return nil
}

func (pdp *pathDescriptionParser) parseVLineTo(rel bool) error {
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		n, err := parseNumber(pdp.lex.NextItem())
		if err != nil {
			return fmt.Errorf("Error Parsing VLineTo\n%s", err)
		}
		if rel {
			pdp.y += n
		} else {
			pdp.y = n
		}
		pdp.emit(PathCommand{Kind: VLineToCmd, N: pdp.y})
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
	}
	return nil
}

func (pdp *pathDescriptionParser) parseTuples() ([]Tuple, error) {
	var tuples []Tuple
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		t, err := parseTuple(&pdp.lex)
		if err != nil {
			return nil, err
		}
		tuples = append(tuples, t)
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
	}
	return tuples, nil
}

func (pdp *pathDescriptionParser) parseCurveTo(rel bool) error {
	tuples, err := pdp.parseTuples()
	if err != nil {
		return fmt.Errorf("Error Parsing CurveTo\n%s", err)
	}
	for j := 0; j+2 < len(tuples); j += 3 {
		c1 := pdp.resolve(tuples[j], rel)
		c2 := pdp.resolve(tuples[j+1], rel)
		end := pdp.advance(tuples[j+2], rel)
		pdp.emit(PathCommand{Kind: CubicToCmd, C1: c1, C2: c2, P: end})
	}
	return nil
}

func (pdp *pathDescriptionParser) parseSmoothCurveTo(rel bool) error {
	tuples, err := pdp.parseTuples()
	if err != nil {
		return fmt.Errorf("Error Parsing SmoothCurveTo\n%s", err)
	}
	for j := 0; j+1 < len(tuples); j += 2 {
		c2 := pdp.resolve(tuples[j], rel)
		end := pdp.advance(tuples[j+1], rel)
		pdp.emit(PathCommand{Kind: SmoothCubicToCmd, C2: c2, P: end})
	}
	return nil
}

func (pdp *pathDescriptionParser) parseQuadTo(rel bool) error {
	tuples, err := pdp.parseTuples()
	if err != nil {
		return fmt.Errorf("Error Parsing QuadTo\n%s", err)
	}
	for j := 0; j+1 < len(tuples); j += 2 {
		c := pdp.resolve(tuples[j], rel)
		end := pdp.advance(tuples[j+1], rel)
		pdp.emit(PathCommand{Kind: QuadToCmd, C1: c, P: end})
	}
	return nil
}

func (pdp *pathDescriptionParser) parseSmoothQuadTo(rel bool) error {
	tuples, err := pdp.parseTuples()
	if err != nil {
		return fmt.Errorf("Error Parsing SmoothQuadTo\n%s", err)
	}
	for _, t := range tuples {
		pdp.emit(PathCommand{Kind: SmoothQuadToCmd, P: pdp.advance(t, rel)})
	}
	return nil
}

func (pdp *pathDescriptionParser) parseArcTo(rel bool) error {
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		rx, err := parseNumber(pdp.lex.NextItem())
		if err != nil {
			return fmt.Errorf("Error Parsing ArcTo\n%s", err)
		}
		ry, err := parseSingle(&pdp.lex)
		if err != nil {
			return fmt.Errorf("Error Parsing ArcTo\n%s", err)
		}
		rotation, err := parseSingle(&pdp.lex)
		if err != nil {
			return fmt.Errorf("Error Parsing ArcTo\n%s", err)
		}
		largeArc, err := parseFlag(&pdp.lex)
		if err != nil {
			return fmt.Errorf("Error Parsing ArcTo\n%s", err)
		}
		sweep, err := parseFlag(&pdp.lex)
		if err != nil {
			return fmt.Errorf("Error Parsing ArcTo\n%s", err)
		}
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		t, err := parseTuple(&pdp.lex)
		if err != nil {
			return fmt.Errorf("Error Parsing ArcTo\n%s", err)
		}
		pdp.emit(PathCommand{
			Kind:     ArcToCmd,
			Rx:       rx,
			Ry:       ry,
			Rotation: rotation,
			LargeArc: largeArc,
			Sweep:    sweep,
			P:        pdp.advance(t, rel),
		})
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
	}
	return nil
}

func (pdp *pathDescriptionParser) parseClose() error {
	pdp.lex.ConsumeWhiteSpace()
	pdp.x, pdp.y = pdp.sx, pdp.sy
	pdp.emit(PathCommand{Kind: CloseCmd})
	return nil
}
