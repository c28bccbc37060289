// Package astro provides the sight-reduction math: angle helpers, the
// Law of Cosines solution for Hc and Z, and true azimuth resolution.
package astro

import "math"

// DegMin combines a degrees value and a minutes value into decimal degrees.
//
// The sign of the degrees value is the sign of the whole angle, so minutes
// are subtracted when degrees is negative. "-0" counts as zero, not negative.
func DegMin(deg, minutes float64) float64 {
	if deg < 0 {
		return deg - minutes/60
	}
	return deg + minutes/60
}

// SplitDegrees splits decimal degrees into whole degrees (truncated toward
// zero) and the unsigned remainder in arc minutes.
func SplitDegrees(deg float64) (int, float64) {
	whole, frac := math.Modf(deg)
	return int(whole), math.Abs(frac) * 60
}

// normalizeDegrees wraps an angle into [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
