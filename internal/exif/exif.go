// internal/exif/exif.go
package exif

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bstardust/djicoords/internal/coords"
	"github.com/bstardust/djicoords/internal/gps"
	"github.com/bstardust/djicoords/pkg/common"
	"github.com/bstardust/djicoords/pkg/models"
	"github.com/rwcarlsen/goexif/exif"
)

// RequiredTags are the GPS tags every photo must carry, in lookup order
var RequiredTags = []exif.FieldName{
	exif.GPSLatitude,
	exif.GPSLatitudeRef,
	exif.GPSLongitude,
	exif.GPSLongitudeRef,
	exif.GPSAltitude,
}

// Extract reads the photo at path and builds its report row
func Extract(path string) (*models.PhotoRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.NewExifDecodeError(path, fmt.Errorf("failed to open file: %w", err))
	}
	defer f.Close()

	return ExtractFrom(f, filepath.Base(path))
}

// ExtractFrom decodes EXIF from r and builds the report row for name
func ExtractFrom(r io.Reader, name string) (*models.PhotoRecord, error) {
	x, err := exif.Decode(r)
	if err != nil {
		return nil, common.NewExifDecodeError(name, err)
	}

	fields := make(map[exif.FieldName]gps.Field, len(RequiredTags))
	for _, tagName := range RequiredTags {
		tag, err := x.Get(tagName)
		if err != nil {
			return nil, common.NewMissingGpsTagError(string(tagName))
		}
		field, err := gps.FieldFromTag(tag)
		if err != nil {
			return nil, common.NewFieldError(common.ErrInvalidFieldShape, string(tagName), err.Error())
		}
		fields[tagName] = field
	}

	return buildRecord(name, fields)
}

func buildRecord(name string, fields map[exif.FieldName]gps.Field) (*models.PhotoRecord, error) {
	lat, err := gps.ParseDegrees(fields[exif.GPSLatitude])
	if err != nil {
		return nil, common.WithTag(err, string(exif.GPSLatitude))
	}
	latRef, err := gps.ParseHemisphere(fields[exif.GPSLatitudeRef], gps.Latitude)
	if err != nil {
		return nil, common.WithTag(err, string(exif.GPSLatitudeRef))
	}
	lon, err := gps.ParseDegrees(fields[exif.GPSLongitude])
	if err != nil {
		return nil, common.WithTag(err, string(exif.GPSLongitude))
	}
	lonRef, err := gps.ParseHemisphere(fields[exif.GPSLongitudeRef], gps.Longitude)
	if err != nil {
		return nil, common.WithTag(err, string(exif.GPSLongitudeRef))
	}
	altM, err := gps.ParseAltitude(fields[exif.GPSAltitude])
	if err != nil {
		return nil, common.WithTag(err, string(exif.GPSAltitude))
	}

	latDD := coords.ToDecimalDegrees(lat, latRef)
	lonDD := coords.ToDecimalDegrees(lon, lonRef)

	return &models.PhotoRecord{
		FileName:     name,
		LatitudeDMS:  coords.ToDMSString(latDD, latRef),
		LongitudeDMS: coords.ToDMSString(lonDD, lonRef),
		LatitudeDD:   latDD,
		LongitudeDD:  lonDD,
		AltitudeM:    altM,
		AltitudeFt:   coords.MetersToFeet(altM),
	}, nil
}
