package prompt

import (
	"strings"

	"github.com/OpenTraceLab/veemap/pkg/mapper"
)

// state of one interactive selection
type state int

const (
	awaitingInput state = iota
	listing
	filtering
	confirmingCustom
	resolved
)

func (s state) String() string {
	switch s {
	case awaitingInput:
		return "awaiting-input"
	case listing:
		return "listing"
	case filtering:
		return "filtering"
	case confirmingCustom:
		return "confirming-custom"
	case resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// session holds the state machine for one footprint. It does no I/O; the
// Selector drives it and renders each state.
type session struct {
	req   mapper.Request
	state state

	query   string // lower-cased filter text while filtering
	pending string // custom name awaiting confirmation

	choice string
	keep   bool
}

// dispatch interprets one line typed at the selection prompt and moves to
// the next state. It returns a message to show the operator, if any.
func (s *session) dispatch(line string) string {
	switch {
	case line == "":
		return ""

	case line == "0":
		s.keep = true
		s.state = resolved
		return ""

	case line == "*":
		s.state = listing
		return ""

	case strings.HasPrefix(line, "/"):
		s.query = strings.ToLower(strings.TrimSpace(line[1:]))
		s.state = filtering
		return ""
	}

	if n, ok := parseSelection(line); ok {
		if n < 1 || n > len(s.req.Candidates) {
			return "Invalid number."
		}
		s.choice = s.req.Candidates[n-1]
		s.state = resolved
		return ""
	}

	if s.req.Library.Has(line) {
		s.choice = line
		s.state = resolved
		return ""
	}
	s.pending = line
	s.state = confirmingCustom
	return ""
}

// confirm handles the answer to the custom-name question. Only "y"
// accepts; anything else discards the name.
func (s *session) confirm(answer string) {
	if strings.ToLower(strings.TrimSpace(answer)) == "y" {
		s.choice = s.pending
		s.state = resolved
	} else {
		s.state = awaitingInput
	}
	s.pending = ""
}
