package exif

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bstardust/djicoords/internal/exif/exiftest"
	"github.com/bstardust/djicoords/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFrom(t *testing.T) {
	rec, err := ExtractFrom(bytes.NewReader(exiftest.JPEG(exiftest.DJITags()...)), "DJI_0001.jpg")
	require.NoError(t, err)

	assert.Equal(t, "DJI_0001.jpg", rec.FileName)
	assert.Equal(t, `34° 5' 12.34" N`, rec.LatitudeDMS)
	assert.Equal(t, `118° 14' 56.78" W`, rec.LongitudeDMS)
	assert.InDelta(t, 34.086761, rec.LatitudeDD, 1e-6)
	assert.InDelta(t, -118.249106, rec.LongitudeDD, 1e-6)
	assert.InDelta(t, 123.45, rec.AltitudeM, 1e-9)
	assert.InDelta(t, 405.0197, rec.AltitudeFt, 1e-4)

	assert.Equal(t, []string{
		"DJI_0001.jpg",
		`34° 5' 12.34" N`,
		`118° 14' 56.78" W`,
		"34.086761",
		"-118.249106",
		"123.45",
		"405.02",
	}, rec.Record())
}

func TestExtractFromSouthEast(t *testing.T) {
	tags := exiftest.DJITags()
	tags = exiftest.Replace(tags, exiftest.ASCII(exiftest.GPSLatitudeRef, "S"))
	tags = exiftest.Replace(tags, exiftest.ASCII(exiftest.GPSLongitudeRef, "E"))

	rec, err := ExtractFrom(bytes.NewReader(exiftest.JPEG(tags...)), "south.jpg")
	require.NoError(t, err)

	assert.Equal(t, `34° 5' 12.34" S`, rec.LatitudeDMS)
	assert.Equal(t, `118° 14' 56.78" E`, rec.LongitudeDMS)
	assert.Less(t, rec.LatitudeDD, 0.0)
	assert.Greater(t, rec.LongitudeDD, 0.0)
}

func TestExtractFromNegativeAltitude(t *testing.T) {
	tags := exiftest.Replace(exiftest.DJITags(), exiftest.SRationals(exiftest.GPSAltitude, -1050, 10))

	rec, err := ExtractFrom(bytes.NewReader(exiftest.JPEG(tags...)), "below.jpg")
	require.NoError(t, err)

	assert.InDelta(t, -105.0, rec.AltitudeM, 1e-9)
	assert.InDelta(t, -344.4882, rec.AltitudeFt, 1e-6)
	assert.Equal(t, "-105.00", rec.Record()[5])
	assert.Equal(t, "-344.49", rec.Record()[6])
}

func TestExtractFromMissingTag(t *testing.T) {
	tests := []struct {
		id   uint16
		name string
	}{
		{exiftest.GPSLatitude, "GPSLatitude"},
		{exiftest.GPSLatitudeRef, "GPSLatitudeRef"},
		{exiftest.GPSLongitude, "GPSLongitude"},
		{exiftest.GPSLongitudeRef, "GPSLongitudeRef"},
		{exiftest.GPSAltitude, "GPSAltitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := exiftest.Without(exiftest.DJITags(), tt.id)
			rec, err := ExtractFrom(bytes.NewReader(exiftest.JPEG(tags...)), "x.jpg")
			assert.Nil(t, rec)

			var missing *common.MissingGpsTagError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.name, missing.Tag)
			assert.True(t, common.IsPerFile(err))
		})
	}
}

func TestExtractFromInvalidFields(t *testing.T) {
	tests := []struct {
		name string
		tag  exiftest.Tag
		kind error
	}{
		{"short latitude", exiftest.Rationals(exiftest.GPSLatitude, 34, 1, 5, 1), common.ErrInvalidRational},
		{"ascii longitude", exiftest.ASCII(exiftest.GPSLongitude, "118"), common.ErrInvalidFieldShape},
		{"empty reference", exiftest.ASCII(exiftest.GPSLatitudeRef, ""), common.ErrInvalidReference},
		{"bad hemisphere", exiftest.ASCII(exiftest.GPSLongitudeRef, "N"), common.ErrInvalidReference},
		{"byte altitude", exiftest.Byte(exiftest.GPSAltitude, 7), common.ErrInvalidAltitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := exiftest.Replace(exiftest.DJITags(), tt.tag)
			_, err := ExtractFrom(bytes.NewReader(exiftest.JPEG(tags...)), "x.jpg")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
			assert.True(t, common.IsPerFile(err))
		})
	}
}

func TestExtractFromNoExif(t *testing.T) {
	_, err := ExtractFrom(bytes.NewReader([]byte("not a jpeg at all")), "bad.jpg")

	var decodeErr *common.ExifDecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "bad.jpg", decodeErr.Path)

	_, err = ExtractFrom(bytes.NewReader(nil), "empty.jpg")
	assert.True(t, errors.As(err, &decodeErr))
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "DJI_0042.JPG")
	require.NoError(t, os.WriteFile(path, exiftest.JPEG(exiftest.DJITags()...), 0644))

	rec, err := Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "DJI_0042.JPG", rec.FileName)

	_, err = Extract(filepath.Join(dir, "missing.jpg"))
	assert.True(t, common.IsPerFile(err))
}
