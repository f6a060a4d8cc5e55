// Package netlist reads and rewrites component header lines of KiCad
// Eeschema legacy netlists ("Version 1.1" style):
//
//	( /5F3A1C2B Resistor_THT:R_Axial_DIN0207 R1 10k
//	 (    1 Net-(R1-Pad1) )
//	 (    2 GND )
//	)
//
// Only header lines and the pad lines that follow them are interpreted;
// everything else passes through untouched.
package netlist

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoHeaders is returned when a netlist holds no component header lines.
var ErrNoHeaders = errors.New("netlist: no component headers found")

// ( /<uuid> <footprint> <ref> <value...>
var headerPattern = regexp.MustCompile(`(?i)^\s*\(\s*/([0-9A-F-]+)\s+(\S+)\s+(\S+)(?:\s+(.*))?$`)

// Span is a half-open byte range within a line
type Span struct {
	Start int
	End   int
}

// Header is one component header line.
type Header struct {
	Line      int    // index into the line slice
	Text      string // original line, terminator included
	UUID      string
	Footprint string
	Ref       string
	Value     string
	Span      Span // location of Footprint within Text
}

// SplitLines splits text after every '\n'. Joining the result reproduces
// text exactly.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ParseHeaders returns a Header for every line that matches the header
// grammar, in line order.
func ParseHeaders(lines []string) []Header {
	var headers []Header
	for i, line := range lines {
		if h, ok := ParseHeader(i, line); ok {
			headers = append(headers, h)
		}
	}
	return headers
}

// ParseHeader classifies a single line.
func ParseHeader(index int, line string) (Header, bool) {
	m := headerPattern.FindStringSubmatchIndex(trimEOL(line))
	if m == nil {
		return Header{}, false
	}
	h := Header{
		Line:      index,
		Text:      line,
		UUID:      line[m[2]:m[3]],
		Footprint: line[m[4]:m[5]],
		Ref:       line[m[6]:m[7]],
		Span:      Span{Start: m[4], End: m[5]},
	}
	if m[8] >= 0 {
		h.Value = line[m[8]:m[9]]
	}
	return h, true
}

// trimEOL drops a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
