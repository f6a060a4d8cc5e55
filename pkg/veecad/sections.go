package veecad

import (
	"regexp"
	"strings"
)

// Outline block opener inside an outline section: Name,number
var outlineOpener = regexp.MustCompile(`^([A-Za-z0-9_]+)\s*,\s*\d+\s*$`)

// sectionReader walks the line-oriented .per grammar:
//
//	[Outlines]
//	SIP3,3
//	Pin,1,0,0
//	Pin,2,1,0
//	End
type sectionReader struct {
	file     string
	sections map[string]bool

	inOutlines bool
	current    string // open block name, "" when none
	pins       []string
	seen       map[string]struct{}
	entries    []Entry
}

// parseSections extracts outlines with the line grammar. A block left open
// by a section switch or by the end of the file is still committed.
func parseSections(file, text string, sections map[string]bool) []Entry {
	r := &sectionReader{file: file, sections: sections}
	for _, raw := range strings.Split(text, "\n") {
		r.line(strings.TrimSpace(raw))
	}
	r.commit()
	return r.entries
}

func (r *sectionReader) line(line string) {
	if line == "" {
		return
	}

	if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
		name := strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
		r.commit()
		r.inOutlines = r.sections[name]
		return
	}
	if !r.inOutlines {
		return
	}

	if r.current == "" {
		if m := outlineOpener.FindStringSubmatch(line); m != nil {
			r.current = m[1]
			r.pins = nil
			r.seen = make(map[string]struct{})
		}
		return
	}

	lower := strings.ToLower(line)
	switch {
	case lower == "end":
		r.commit()
	case strings.HasPrefix(lower, "pin,"):
		parts := strings.Split(line, ",")
		id := strings.TrimSpace(parts[1])
		if id == "" {
			return
		}
		if _, dup := r.seen[id]; !dup {
			r.seen[id] = struct{}{}
			r.pins = append(r.pins, id)
		}
	}
}

// commit records the open block, if any.
func (r *sectionReader) commit() {
	if r.current == "" {
		return
	}
	r.entries = append(r.entries, Entry{
		File:     r.file,
		Name:     r.current,
		PinNames: r.pins,
		PinCount: len(r.pins),
	})
	r.current = ""
	r.pins = nil
	r.seen = nil
}
