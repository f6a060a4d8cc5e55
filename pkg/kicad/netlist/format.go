package netlist

import (
	"fmt"
	"strings"

	"github.com/chewxy/sexp"
)

// Format identifies the kind of netlist file
type Format int

const (
	FormatUnknown Format = iota
	FormatLegacy         // Eeschema legacy netlist with "( /uuid ..." headers
	FormatExport         // KiCad S-expression export: (export (version ...) ...)
)

func (f Format) String() string {
	switch f {
	case FormatLegacy:
		return "Eeschema legacy netlist"
	case FormatExport:
		return "KiCad S-expression netlist"
	default:
		return "unknown"
	}
}

// DetectFormat sniffs text to explain why no header lines were found.
func DetectFormat(text string) Format {
	if len(ParseHeaders(SplitLines(text))) > 0 {
		return FormatLegacy
	}

	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "(") {
		return FormatUnknown
	}
	exprs, err := sexp.ParseString(trimmed)
	if err != nil || len(exprs) == 0 || exprs[0].IsLeaf() {
		return FormatUnknown
	}
	head := exprs[0].Head()
	if head == nil || !head.IsLeaf() {
		return FormatUnknown
	}
	if strings.EqualFold(strings.Trim(fmt.Sprint(head), `"`), "export") {
		return FormatExport
	}
	return FormatUnknown
}

// NoHeadersError wraps ErrNoHeaders with a hint derived from the detected
// format.
func NoHeadersError(text string) error {
	switch DetectFormat(text) {
	case FormatExport:
		return fmt.Errorf("%w: file is a %s; export it in the legacy (Eeschema) netlist format", ErrNoHeaders, FormatExport)
	default:
		return fmt.Errorf("%w: is this an Eeschema legacy netlist?", ErrNoHeaders)
	}
}
