package svgwire

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

func parseNumber(i gl.Item) (float64, error) {
	var n float64
	var err error
	if i.Type == gl.ItemNumber {
		n, err = strconv.ParseFloat(i.Value, 64)
		if err != nil {
			return n, fmt.Errorf("Error parsing number %s", err)
		}
	}
	return n, nil
}

// parseTuple reads an x,y coordinate pair, consuming any separators
// between the two numbers.
func parseTuple(l *gl.Lexer) (Tuple, error) {
	t := Tuple{}

	l.ConsumeWhiteSpace()

	ni := l.NextItem()
	if ni.Type != gl.ItemNumber {
		return t, fmt.Errorf("Error parsing Tuple expected Number got: %v", ni)
	}
	n, err := strconv.ParseFloat(ni.Value, 64)
	if err != nil {
		return t, fmt.Errorf("Error parsing number %s", err)
	}
	t[0] = n

	l.ConsumeWhiteSpace()
	l.ConsumeComma()
	l.ConsumeWhiteSpace()

	ni = l.NextItem()
	if ni.Type != gl.ItemNumber {
		return t, fmt.Errorf("Error parsing Tuple expected Number got: %v", ni)
	}
	n, err = strconv.ParseFloat(ni.Value, 64)
	if err != nil {
		return t, fmt.Errorf("Error parsing number %s", err)
	}
	t[1] = n

	return t, nil
}

// parseSingle reads the next number, consuming any leading separators.
func parseSingle(l *gl.Lexer) (float64, error) {
	l.ConsumeWhiteSpace()
	l.ConsumeComma()
	l.ConsumeWhiteSpace()

	ni := l.NextItem()
	if ni.Type != gl.ItemNumber {
		return 0, fmt.Errorf("Error parsing number expected Number got: %v", ni)
	}
	n, err := strconv.ParseFloat(ni.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("Error parsing number %s", err)
	}
	return n, nil
}

// parseFlag reads an arc flag, which the grammar writes as 0 or 1.
func parseFlag(l *gl.Lexer) (bool, error) {
	n, err := parseSingle(l)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}
