// internal/gps/field.go
package gps

import (
	"fmt"

	"github.com/rwcarlsen/goexif/tiff"
)

// Shape describes how a raw EXIF value is laid out
type Shape int

const (
	ShapeOther Shape = iota
	ShapeRational
	ShapeASCII
)

func (s Shape) String() string {
	switch s {
	case ShapeRational:
		return "rational"
	case ShapeASCII:
		return "ascii"
	default:
		return "other"
	}
}

// Rational is one EXIF numerator/denominator pair
type Rational struct {
	Num   int64
	Denom int64
}

// Float returns the rational as a float. A zero denominator yields
// +Inf, -Inf or NaN.
func (r Rational) Float() float64 {
	return float64(r.Num) / float64(r.Denom)
}

// Field is a decoded EXIF value, detached from the file it was read from
type Field struct {
	Shape     Shape
	Rationals []Rational
	ASCII     string
}

// RationalField builds a rational field from num/denom pairs
func RationalField(pairs ...int64) Field {
	f := Field{Shape: ShapeRational}
	for i := 0; i+1 < len(pairs); i += 2 {
		f.Rationals = append(f.Rationals, Rational{Num: pairs[i], Denom: pairs[i+1]})
	}
	return f
}

// ASCIIField builds an ASCII field
func ASCIIField(s string) Field {
	return Field{Shape: ShapeASCII, ASCII: s}
}

// FieldFromTag converts a goexif tag into a Field. Values that are neither
// rational nor ASCII come back with ShapeOther.
func FieldFromTag(tag *tiff.Tag) (Field, error) {
	switch tag.Format() {
	case tiff.RatVal:
		f := Field{Shape: ShapeRational}
		for i := 0; i < int(tag.Count); i++ {
			num, denom, err := tag.Rat2(i)
			if err != nil {
				return Field{}, fmt.Errorf("failed to read rational %d: %w", i, err)
			}
			f.Rationals = append(f.Rationals, Rational{Num: num, Denom: denom})
		}
		return f, nil
	case tiff.StringVal:
		s, err := tag.StringVal()
		if err != nil {
			return Field{}, fmt.Errorf("failed to read ascii value: %w", err)
		}
		return ASCIIField(s), nil
	default:
		return Field{Shape: ShapeOther}, nil
	}
}
