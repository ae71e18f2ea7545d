// Package coords converts GPS magnitudes into signed decimal degrees,
// degree/minute/second strings and imperial altitudes.
package coords

import (
	"fmt"
	"math"
)

// FeetPerMeter is the fixed meters to feet factor
const FeetPerMeter = 3.28084

// ToDecimalDegrees applies the hemisphere sign to an unsigned magnitude.
// South and West are negative; everything else is returned unchanged.
func ToDecimalDegrees(magnitude float64, hemisphere string) float64 {
	if hemisphere == "S" || hemisphere == "W" {
		return -magnitude
	}
	return magnitude
}

// ToDMSString renders decimal degrees as `D° M' S.SS" R`. Degrees and
// minutes are truncated toward zero; only seconds are rounded.
func ToDMSString(decimal float64, hemisphere string) string {
	abs := math.Abs(decimal)
	deg := math.Trunc(abs)
	min := math.Trunc((abs - deg) * 60)
	sec := (abs - deg - min/60) * 3600

	return fmt.Sprintf("%.0f° %.0f' %.2f\" %s", deg, min, sec, hemisphere)
}

// MetersToFeet converts an altitude in meters to feet
func MetersToFeet(m float64) float64 {
	return m * FeetPerMeter
}
