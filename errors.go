package svgwire

import (
	"fmt"
	"strings"
	"time"
)

// ErrorKind classifies conversion failures. Document-level kinds abort
// the whole conversion; element-level kinds only appear in per-element
// outcomes and diagnostics.
type ErrorKind int

const (
	// ErrDocumentMalformed: the XML failed to parse. Nothing was converted.
	ErrDocumentMalformed ErrorKind = iota
	// ErrNoRecognizedElements: the document holds none of the supported
	// element types.
	ErrNoRecognizedElements
	// ErrNoValidElements: every element was skipped or failed, so no
	// shapes were produced.
	ErrNoValidElements
	// ErrReductionEmpty: a shape's attributes reduce to no path data
	// (element level).
	ErrReductionEmpty
	// ErrGrammarParse: the path description could not be parsed
	// (element level).
	ErrGrammarParse
	// ErrPrimitiveConstruction: a single kernel Line/Bezier call failed
	// (primitive level, the primitive is omitted).
	ErrPrimitiveConstruction
	// ErrWireAssembly: the kernel could not assemble the element's
	// edges into a wire (element level).
	ErrWireAssembly
)

func (k ErrorKind) String() string {
	switch k {
	case ErrDocumentMalformed:
		return "DocumentMalformed"
	case ErrNoRecognizedElements:
		return "NoRecognizedElements"
	case ErrNoValidElements:
		return "NoValidElements"
	case ErrReductionEmpty:
		return "ElementReductionEmpty"
	case ErrGrammarParse:
		return "GrammarParseFailure"
	case ErrPrimitiveConstruction:
		return "PrimitiveConstructionFailure"
	case ErrWireAssembly:
		return "WireAssemblyFailure"
	}
	return "Unknown"
}

// ConversionError is the failure type used at both document and element
// level. Trace holds the timestamped diagnostic log when the conversion
// ran in verbose mode.
type ConversionError struct {
	Kind    ErrorKind
	Message string
	Trace   []string
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if len(e.Trace) == 0 {
		return msg
	}
	return msg + "\n" + strings.Join(e.Trace, "\n")
}

func elementError(kind ErrorKind, format string, args ...interface{}) *ConversionError {
	return &ConversionError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// conversionLog records one timestamped line per notable step of a
// conversion.
type conversionLog struct {
	lines []string
}

func (l *conversionLog) notef(format string, args ...interface{}) {
	l.lines = append(l.lines,
		time.Now().Format("15:04:05.000")+" "+fmt.Sprintf(format, args...))
}
