package coords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDecimalDegrees(t *testing.T) {
	magnitude := 34.0 + 5.0/60 + 12.34/3600

	tests := []struct {
		hemisphere string
		want       float64
	}{
		{"N", magnitude},
		{"S", -magnitude},
		{"E", magnitude},
		{"W", -magnitude},
	}

	for _, tt := range tests {
		t.Run(tt.hemisphere, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDecimalDegrees(magnitude, tt.hemisphere))
		})
	}
}

func TestToDMSString(t *testing.T) {
	tests := []struct {
		name       string
		decimal    float64
		hemisphere string
		want       string
	}{
		{"latitude", 34.0867611, "N", `34° 5' 12.34" N`},
		{"negative longitude", -118.249106, "W", `118° 14' 56.78" W`},
		{"whole degrees", 34.0, "N", `34° 0' 0.00" N`},
		{"half degree", 10.5, "E", `10° 30' 0.00" E`},
		{"no zero padding", 34.0 + 12.0/60 + 5.0/3600, "N", `34° 12' 5.00" N`},
		{"below one degree", -0.25, "S", `0° 15' 0.00" S`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDMSString(tt.decimal, tt.hemisphere))
		})
	}
}

func TestDMSRoundTrip(t *testing.T) {
	dd := ToDecimalDegrees(34.0867611, "S")
	assert.Equal(t, `34° 5' 12.34" S`, ToDMSString(dd, "S"))
}

func TestMetersToFeet(t *testing.T) {
	assert.InDelta(t, 328.084, MetersToFeet(100.0), 1e-6)
	assert.InDelta(t, -32.8084, MetersToFeet(-10.0), 1e-6)
	assert.Equal(t, 0.0, MetersToFeet(0))
	assert.True(t, math.IsNaN(MetersToFeet(math.NaN())))
}
