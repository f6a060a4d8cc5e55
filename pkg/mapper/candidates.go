// Package mapper matches netlist footprints against library outlines and
// builds the footprint → outline mapping.
package mapper

import (
	"strings"

	"github.com/OpenTraceLab/veemap/pkg/veecad"
)

// CommonPrefixes are the outline families offered when nothing better
// matches, in display order.
var CommonPrefixes = []string{"DIP", "SIP", "TO", "AX", "CAP", "LED", "RES", "HDR"}

// Candidates lists the outlines that could stand in for footprint.
//
// The first non-empty source wins: an exact name match, outlines whose name
// contains footprint (case-insensitive), outlines defined in the preferred
// files, then outlines in the common families. When requiredPins is known
// (non-zero) the list is narrowed to outlines with that pin count or an
// unknown one, unless that would leave nothing.
func Candidates(footprint string, requiredPins int, lib *veecad.Library, preferred []string) []string {
	candidates := rawCandidates(footprint, lib, preferred)
	if requiredPins == 0 {
		return candidates
	}
	return filterByPins(candidates, requiredPins, lib)
}

func rawCandidates(footprint string, lib *veecad.Library, preferred []string) []string {
	if lib.Has(footprint) {
		return []string{footprint}
	}

	names := lib.Names()
	lower := strings.ToLower(footprint)

	var out []string
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), lower) {
			out = append(out, n)
		}
	}
	if len(out) > 0 {
		return out
	}

	if len(preferred) > 0 {
		var fromFiles []string
		for _, file := range preferred {
			fromFiles = append(fromFiles, lib.NamesInFile(file)...)
		}
		out = dedupe(fromFiles)
		if len(out) > 0 {
			return out
		}
	}

	var family []string
	for _, prefix := range CommonPrefixes {
		for _, n := range names {
			if strings.HasPrefix(strings.ToUpper(n), prefix) {
				family = append(family, n)
			}
		}
	}
	return dedupe(family)
}

// filterByPins keeps outlines whose pin count is unknown or equal to
// required. An empty result falls back to the unfiltered list.
func filterByPins(candidates []string, required int, lib *veecad.Library) []string {
	var filtered []string
	for _, n := range candidates {
		pins := lib.PinCount(n)
		if pins == 0 || pins == required {
			filtered = append(filtered, n)
		}
	}
	if len(filtered) == 0 {
		return candidates
	}
	return filtered
}

// dedupe removes repeated names, keeping the first occurrence.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
