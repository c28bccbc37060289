package astro

import (
	"fmt"
	"math"
)

// Markers shown in place of a number when a quantity has no solution.
const (
	InvalidHc  = "invalid"
	NoSolution = "no solution"
)

// Display holds the formatted strings for a Reduction.
type Display struct {
	Hc    string // Hc in decimal degrees, %.5f
	HcDeg string // Whole degrees of Hc
	HcMin string // Arc minutes of Hc, %.1f
	Z     string // Azimuth angle, %.1f
	Zn    string // True azimuth, %.0f
}

// Format renders the reduction for display.
func (r Reduction) Format() Display {
	var d Display

	if r.HcValid() {
		whole, minutes := SplitDegrees(r.HcDeg)
		d.Hc = fmt.Sprintf("%.5f", r.HcDeg)
		d.HcDeg = fmt.Sprintf("%d", whole)
		if whole == 0 && math.Signbit(r.HcDeg) {
			d.HcDeg = "-0"
		}
		d.HcMin = fmt.Sprintf("%.1f", minutes)
	} else {
		d.Hc = InvalidHc
		d.HcDeg = "-"
		d.HcMin = "-"
	}

	if r.ZValid() {
		d.Z = fmt.Sprintf("%.1f", r.ZDeg)
		// Round before wrapping so 359.5 and up shows as 0, not 360.
		d.Zn = fmt.Sprintf("%.0f", normalizeDegrees(math.Round(r.ZnDeg)))
	} else {
		d.Z = NoSolution
		d.Zn = NoSolution
	}

	return d
}
