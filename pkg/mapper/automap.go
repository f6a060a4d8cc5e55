package mapper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/veemap/pkg/veecad"
)

// autoRule proposes outline names for a lower-cased footprint
type autoRule struct {
	name    string
	targets func(fp string) []string
}

var (
	dipPattern       = regexp.MustCompile(`dip[-_ ]?(\d+)`)
	to92Pattern      = regexp.MustCompile(`to[-_ ]?92`)
	singleRowPattern = regexp.MustCompile(`1x(\d+)`)
)

// Two-pin axial outlines tried for generic THT passives, in order
var axialPassives = []string{"AX2_1", "AX2_2", "AX2_1N"}

var autoRules = []autoRule{
	{"dip", func(fp string) []string {
		if m := dipPattern.FindStringSubmatch(fp); m != nil {
			return []string{"DIP" + m[1]}
		}
		return nil
	}},
	{"to92", func(fp string) []string {
		if to92Pattern.MatchString(fp) {
			return []string{"TO92"}
		}
		return nil
	}},
	// PinHeader_1x04, JST 1x03, ...
	{"single-row", func(fp string) []string {
		m := singleRowPattern.FindStringSubmatch(fp)
		if m == nil {
			return nil
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			return []string{"SIP" + strconv.Itoa(n)}
		}
		return []string{"SIP" + m[1]}
	}},
	// Bourns 3296 trimmers
	{"3296", func(fp string) []string {
		if strings.Contains(fp, "3296") {
			return []string{"SIP3"}
		}
		return nil
	}},
	{"tht-passive", func(fp string) []string {
		if strings.HasPrefix(fp, "resistor_tht:") || strings.HasPrefix(fp, "capacitor_tht:") {
			return axialPassives
		}
		return nil
	}},
}

// AutoMap applies the auto-mapping rules in order and returns the first
// proposed outline that exists in lib.
func AutoMap(footprint string, lib *veecad.Library) (string, bool) {
	target, _, ok := autoMap(footprint, lib)
	return target, ok
}

// autoMap is AutoMap that also names the rule that fired.
func autoMap(footprint string, lib *veecad.Library) (target, rule string, ok bool) {
	fp := strings.ToLower(footprint)
	for _, r := range autoRules {
		for _, t := range r.targets(fp) {
			if lib.Has(t) {
				return t, r.name, true
			}
		}
	}
	return "", "", false
}
