package netlist

// Change records one rewritten header line. Line terminators are stripped
// from Old and New.
type Change struct {
	Line int
	Old  string
	New  string
}

// Apply substitutes the mapped footprint into every header whose mapping
// differs from its current footprint. Only the recorded span is replaced;
// all other bytes of the line are kept. lines is not modified.
func Apply(lines []string, headers []Header, mapping map[string]string) ([]string, []Change) {
	updated := make([]string, len(lines))
	copy(updated, lines)

	var changes []Change
	for _, h := range headers {
		newFP, ok := mapping[h.Footprint]
		if !ok || newFP == h.Footprint {
			continue
		}
		if h.Line >= len(updated) || updated[h.Line] != h.Text {
			continue // header does not belong to these lines
		}
		line := updated[h.Line]
		newLine := line[:h.Span.Start] + newFP + line[h.Span.End:]
		changes = append(changes, Change{
			Line: h.Line,
			Old:  trimEOL(line),
			New:  trimEOL(newLine),
		})
		updated[h.Line] = newLine
	}
	return updated, changes
}
