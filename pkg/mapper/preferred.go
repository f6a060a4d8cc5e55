package mapper

import (
	"path"
	"strings"

	"github.com/OpenTraceLab/veemap/pkg/veecad"
)

// fileRule prefers library files for designators starting with one of refPrefixes.
type fileRule struct {
	refPrefixes []string
	match       func(file string) bool
}

func isStandardLib(file string) bool {
	return strings.HasPrefix(strings.ToLower(path.Base(file)), "v_standard")
}

var preferredFileRules = []fileRule{
	// capacitors
	{refPrefixes: []string{"C"}, match: func(file string) bool {
		return strings.Contains(strings.ToLower(file), "capacitor")
	}},
	// generic parts and resistors
	{refPrefixes: []string{"U", "R"}, match: isStandardLib},
	// connectors and headers
	{refPrefixes: []string{"J"}, match: func(file string) bool {
		return isStandardLib(file) || strings.Contains(strings.ToLower(path.Base(file)), "header")
	}},
}

// PreferredFiles picks the library files most likely to hold a suitable
// outline for components with the given reference designators. An empty
// result is normal.
func PreferredFiles(refs []string, lib *veecad.Library) []string {
	files := lib.Files()

	var preferred []string
	for _, rule := range preferredFileRules {
		if !anyHasPrefix(refs, rule.refPrefixes) {
			continue
		}
		for _, f := range files {
			if rule.match(f) {
				preferred = append(preferred, f)
			}
		}
	}
	return dedupe(preferred)
}

func anyHasPrefix(refs, prefixes []string) bool {
	for _, r := range refs {
		upper := strings.ToUpper(r)
		for _, p := range prefixes {
			if strings.HasPrefix(upper, p) {
				return true
			}
		}
	}
	return false
}
