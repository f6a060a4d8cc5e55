// Package report renders the planned netlist changes for the operator.
package report

import (
	"fmt"
	"io"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"

	"github.com/OpenTraceLab/veemap/pkg/kicad/netlist"
)

// DefaultContext is the number of context lines in unified hunks
const DefaultContext = 3

// Changes prints each change as "line: old -> new" with 1-based line
// numbers.
func Changes(w io.Writer, changes []netlist.Change) {
	fmt.Fprintln(w, "Planned changes (line_number: old -> new):")
	if len(changes) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, c := range changes {
		fmt.Fprintf(w, "  %d: %s\n", c.Line+1, c.Old)
		fmt.Fprintf(w, "      -> %s\n", c.New)
	}
}

// Unified returns a unified diff between the original and updated lines.
// Both slices keep their line terminators. An empty string means no
// difference.
func Unified(name string, original, updated []string, contextLines int) (string, error) {
	if contextLines <= 0 {
		contextLines = DefaultContext
	}
	u := difflib.UnifiedDiff{
		A:        original,
		B:        updated,
		FromFile: "a/" + strings.TrimPrefix(name, "/"),
		ToFile:   "b/" + strings.TrimPrefix(name, "/"),
		Context:  contextLines,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return "", fmt.Errorf("report: diff %s: %w", name, err)
	}
	return s, nil
}

// Summary prints the closing line of a run
func Summary(w io.Writer, changes []netlist.Change) {
	fmt.Fprintf(w, "Changed %d component header lines.\n", len(changes))
}
