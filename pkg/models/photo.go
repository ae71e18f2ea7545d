package models

import (
	"strconv"
)

// Header is the first row of every report
var Header = []string{
	"FileName",
	"Latitude_DMS",
	"Longitude_DMS",
	"Latitude_DD",
	"Longitude_DD",
	"Altitude_m",
	"Altitude_ft",
}

// PhotoRecord is one report row for a successfully processed photo
type PhotoRecord struct {
	FileName     string
	LatitudeDMS  string
	LongitudeDMS string
	LatitudeDD   float64
	LongitudeDD  float64
	AltitudeM    float64
	AltitudeFt   float64
}

// Record renders the row with 6 decimals for coordinates and 2 for altitudes
func (p *PhotoRecord) Record() []string {
	return []string{
		p.FileName,
		p.LatitudeDMS,
		p.LongitudeDMS,
		strconv.FormatFloat(p.LatitudeDD, 'f', 6, 64),
		strconv.FormatFloat(p.LongitudeDD, 'f', 6, 64),
		strconv.FormatFloat(p.AltitudeM, 'f', 2, 64),
		strconv.FormatFloat(p.AltitudeFt, 'f', 2, 64),
	}
}
