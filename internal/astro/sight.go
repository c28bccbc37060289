package astro

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain reports that an inverse trig argument left its valid domain,
// so the quantity it feeds has no solution for the given angles.
var ErrDomain = errors.New("astro: argument outside trig domain")

const (
	// asinSlack is the round-off tolerated above |1| before Hc is rejected.
	asinSlack = 1e-12

	// acosSlack is the round-off tolerated above |1| before Z is rejected.
	// Meridian transits land a few ulps past -1 or +1.
	acosSlack = 1e-9

	// minAzimuthDenom is the smallest cos|lat|·cos(Hc) for which azimuth is
	// defined. Below it the observer is at a pole or the body at the zenith.
	minAzimuthDenom = 1e-6
)

// Reduction is the result of a Law of Cosines sight reduction.
type Reduction struct {
	HcDeg float64 // Computed altitude in degrees
	ZDeg  float64 // Azimuth angle, 0-180
	ZnDeg float64 // True azimuth, 0-360

	HcErr error // Non-nil when Hc could not be computed
	ZErr  error // Non-nil when Z and Zn could not be computed
}

// HcValid reports whether Hc is usable.
func (r Reduction) HcValid() bool {
	return r.HcErr == nil
}

// ZValid reports whether Z and Zn are usable.
func (r Reduction) ZValid() bool {
	return r.ZErr == nil
}

// Reduce computes Hc, Z and Zn from Local Hour Angle, observer latitude and
// declination, all in signed decimal degrees.
//
// Latitude enters the trig as an absolute value; its sign (the hemisphere)
// only matters when resolving Zn. Declination is positive when it has the
// same name as the latitude.
func Reduce(lhaDeg, latDeg, decDeg float64) Reduction {
	lha := degToRad(lhaDeg)
	lat := degToRad(latDeg)
	dec := degToRad(decDeg)
	absLat := math.Abs(lat)

	var r Reduction

	hc, err := checkedAsin(math.Cos(lha)*math.Cos(absLat)*math.Cos(dec) + math.Sin(absLat)*math.Sin(dec))
	if err != nil {
		r.HcErr = err
		r.ZErr = err
		return r
	}
	r.HcDeg = radToDeg(hc)

	denom := math.Cos(absLat) * math.Cos(hc)
	if math.Abs(denom) < minAzimuthDenom {
		r.ZErr = fmt.Errorf("azimuth undefined at pole or zenith: %w", ErrDomain)
		return r
	}

	z, err := checkedAcos((math.Sin(dec) - math.Sin(absLat)*math.Sin(hc)) / denom)
	if err != nil {
		r.ZErr = err
		return r
	}
	r.ZDeg = radToDeg(z)
	r.ZnDeg = ResolveZn(lha, lat, r.ZDeg)

	return r
}

// ResolveZn converts the azimuth angle Z into true azimuth using the signed
// LHA and latitude in radians:
//
//	LHA > 180, north latitude:  Zn = Z
//	LHA > 180, south latitude:  Zn = 180 - Z
//	LHA <= 180, north latitude: Zn = 360 - Z
//	LHA <= 180, south latitude: Zn = 180 + Z
//
// A latitude of exactly zero takes the southern branch. The result is in [0, 360).
func ResolveZn(lhaRad, latRad, zDeg float64) float64 {
	var zn float64
	if lhaRad > math.Pi {
		if latRad > 0 {
			zn = zDeg
		} else {
			zn = 180 - zDeg
		}
	} else {
		if latRad > 0 {
			zn = 360 - zDeg
		} else {
			zn = 180 + zDeg
		}
	}
	return normalizeDegrees(zn)
}

func checkedAsin(x float64) (float64, error) {
	if math.IsNaN(x) || math.Abs(x) > 1+asinSlack {
		return 0, fmt.Errorf("asin(%g): %w", x, ErrDomain)
	}
	return math.Asin(clampUnit(x)), nil
}

func checkedAcos(x float64) (float64, error) {
	if math.IsNaN(x) || math.Abs(x) > 1+acosSlack {
		return 0, fmt.Errorf("acos(%g): %w", x, ErrDomain)
	}
	return math.Acos(clampUnit(x)), nil
}

// clampUnit clamps x to [-1, 1] to absorb floating point round-off.
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}
