package veecad

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Size is the human-readable physical size implied by an outline name.
// Zero values mean "not known".
type Size struct {
	DiameterMM float64
	PitchMM    float64
	BodyLabel  string // body variant family, e.g. "BOX10_5"
	Label      string // display label, e.g. "D=10mm, P=5mm"
}

// IsZero reports whether nothing could be inferred
func (s Size) IsZero() bool {
	return s == Size{}
}

// String returns the display label, composing one from diameter and pitch
// when no explicit label was set.
func (s Size) String() string {
	if s.Label != "" {
		return s.Label
	}
	var parts []string
	if s.DiameterMM != 0 {
		parts = append(parts, fmt.Sprintf("D=%gmm", s.DiameterMM))
	}
	if s.PitchMM != 0 {
		parts = append(parts, fmt.Sprintf("P=%gmm", s.PitchMM))
	}
	return strings.Join(parts, ", ")
}

// CAPR<diameter>_<pitch>, e.g. CAPR10_5, CAPR2.5_5
var radialCapPattern = regexp.MustCompile(`^CAPR([0-9]+(?:\.[0-9]+)?)_([0-9]+(?:\.[0-9]+)?)$`)

// bodyPrefixes name families whose suffix is a body variant in unknown units.
var bodyPrefixes = []string{"BOX"}

// InferSize derives size information from common VeeCAD naming
// conventions. Unrecognised names yield a zero Size.
func InferSize(name string) Size {
	upper := strings.ToUpper(name)

	if m := radialCapPattern.FindStringSubmatch(upper); m != nil {
		diameter, errD := strconv.ParseFloat(m[1], 64)
		pitch, errP := strconv.ParseFloat(m[2], 64)
		if errD == nil && errP == nil {
			return Size{
				DiameterMM: diameter,
				PitchMM:    pitch,
				Label:      fmt.Sprintf("D=%gmm, P=%gmm", diameter, pitch),
			}
		}
	}

	for _, prefix := range bodyPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return Size{BodyLabel: upper}
		}
	}

	return Size{}
}
