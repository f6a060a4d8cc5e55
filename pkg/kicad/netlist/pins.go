package netlist

import (
	"regexp"
	"strings"
)

// A pad line: "(    1 Net-(R1-Pad1) )"
var padPattern = regexp.MustCompile(`^\s*\(\s*[0-9A-Za-z]+\b`)

// PinCounts infers each component's pin count by counting the pad lines
// after its header, up to the lone ")" that closes the component block or
// the end of input. Results are keyed by reference designator.
//
// This is a heuristic: it assumes the usual block shape and does not
// understand nested parentheses inside pad lines.
func PinCounts(headers []Header, lines []string) map[string]int {
	counts := make(map[string]int, len(headers))
	for _, h := range headers {
		count := 0
		for j := h.Line + 1; j < len(lines); j++ {
			line := lines[j]
			if strings.TrimSpace(line) == ")" {
				break
			}
			if padPattern.MatchString(line) {
				count++
			}
		}
		counts[h.Ref] = count
	}
	return counts
}

// Group is the set of headers sharing one footprint
type Group struct {
	Footprint string
	Headers   []Header
}

// Refs returns the reference designators of the group in line order
func (g Group) Refs() []string {
	refs := make([]string, len(g.Headers))
	for i, h := range g.Headers {
		refs[i] = h.Ref
	}
	return refs
}

// RequiredPins returns the largest inferred pin count across the group,
// 0 when nothing is known.
func (g Group) RequiredPins(counts map[string]int) int {
	most := 0
	for _, h := range g.Headers {
		if n := counts[h.Ref]; n > most {
			most = n
		}
	}
	return most
}

// GroupByFootprint buckets headers by their current footprint. Groups are
// returned in order of first appearance.
func GroupByFootprint(headers []Header) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, h := range headers {
		i, ok := index[h.Footprint]
		if !ok {
			i = len(groups)
			index[h.Footprint] = i
			groups = append(groups, Group{Footprint: h.Footprint})
		}
		groups[i].Headers = append(groups[i].Headers, h)
	}
	return groups
}
