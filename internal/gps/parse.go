package gps

import (
	"fmt"

	"github.com/bstardust/djicoords/pkg/common"
)

// Hemisphere reference letters
const (
	North = "N"
	South = "S"
	East  = "E"
	West  = "W"
)

// Axis selects which hemisphere letters are valid for a reference
type Axis int

const (
	Latitude Axis = iota
	Longitude
)

// ParseDegrees reads a degrees/minutes/seconds rational triple and returns
// degrees + minutes/60 + seconds/3600. Components past the third are ignored.
func ParseDegrees(f Field) (float64, error) {
	if f.Shape != ShapeRational {
		return 0, common.NewFieldError(common.ErrInvalidFieldShape, "",
			fmt.Sprintf("expected rational triple, got %s", f.Shape))
	}
	if len(f.Rationals) < 3 {
		return 0, common.NewFieldError(common.ErrInvalidRational, "",
			fmt.Sprintf("expected 3 components, got %d", len(f.Rationals)))
	}

	v := f.Rationals
	return v[0].Float() + v[1].Float()/60 + v[2].Float()/3600, nil
}

// ParseReference returns the first character of an ASCII reference value
func ParseReference(f Field) (string, error) {
	if f.Shape != ShapeASCII || f.ASCII == "" {
		return "", common.NewFieldError(common.ErrInvalidReference, "", "expected non-empty ascii value")
	}

	c := f.ASCII[0]
	if c >= 0x80 {
		return "", common.NewFieldError(common.ErrInvalidReference, "", fmt.Sprintf("non-ascii byte 0x%02x", c))
	}
	return string(c), nil
}

// ParseHemisphere reads a reference value and checks it against the
// letters allowed for the axis: N/S for latitude, E/W for longitude.
func ParseHemisphere(f Field, axis Axis) (string, error) {
	ref, err := ParseReference(f)
	if err != nil {
		return "", err
	}

	switch {
	case axis == Latitude && (ref == North || ref == South):
		return ref, nil
	case axis == Longitude && (ref == East || ref == West):
		return ref, nil
	}
	return "", common.NewFieldError(common.ErrInvalidReference, "", fmt.Sprintf("unexpected hemisphere %q", ref))
}

// ParseAltitude returns the first rational component in meters
func ParseAltitude(f Field) (float64, error) {
	if f.Shape != ShapeRational || len(f.Rationals) == 0 {
		return 0, common.NewFieldError(common.ErrInvalidAltitude, "", "expected at least one rational")
	}
	return f.Rationals[0].Float(), nil
}
