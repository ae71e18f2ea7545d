// Package exiftest builds small JPEG files with a GPS IFD for tests
package exiftest

import (
	"bytes"
	"encoding/binary"
	"sort"
)

// GPS IFD tag ids
const (
	GPSLatitudeRef  uint16 = 0x0001
	GPSLatitude     uint16 = 0x0002
	GPSLongitudeRef uint16 = 0x0003
	GPSLongitude    uint16 = 0x0004
	GPSAltitudeRef  uint16 = 0x0005
	GPSAltitude     uint16 = 0x0006

	gpsInfoIFDPointer uint16 = 0x8825
)

// TIFF data types
const (
	typeByte      uint16 = 1
	typeASCII     uint16 = 2
	typeLong      uint16 = 4
	typeRational  uint16 = 5
	typeSRational uint16 = 10
)

// Tag is one raw GPS IFD entry
type Tag struct {
	ID    uint16
	Type  uint16
	Count uint32
	Value []byte
}

// ASCII builds a NUL-terminated ASCII tag
func ASCII(id uint16, s string) Tag {
	v := append([]byte(s), 0)
	return Tag{ID: id, Type: typeASCII, Count: uint32(len(v)), Value: v}
}

// Rationals builds an unsigned rational tag from num/denom pairs
func Rationals(id uint16, pairs ...uint32) Tag {
	var buf bytes.Buffer
	for _, p := range pairs {
		binary.Write(&buf, binary.BigEndian, p)
	}
	return Tag{ID: id, Type: typeRational, Count: uint32(len(pairs) / 2), Value: buf.Bytes()}
}

// SRationals builds a signed rational tag from num/denom pairs
func SRationals(id uint16, pairs ...int32) Tag {
	var buf bytes.Buffer
	for _, p := range pairs {
		binary.Write(&buf, binary.BigEndian, p)
	}
	return Tag{ID: id, Type: typeSRational, Count: uint32(len(pairs) / 2), Value: buf.Bytes()}
}

// Byte builds a single BYTE tag
func Byte(id uint16, b byte) Tag {
	return Tag{ID: id, Type: typeByte, Count: 1, Value: []byte{b}}
}

// DJITags returns a complete set of GPS tags: 34° 5' 12.34" N,
// 118° 14' 56.78" W at 123.45 m.
func DJITags() []Tag {
	return []Tag{
		ASCII(GPSLatitudeRef, "N"),
		Rationals(GPSLatitude, 34, 1, 5, 1, 1234, 100),
		ASCII(GPSLongitudeRef, "W"),
		Rationals(GPSLongitude, 118, 1, 14, 1, 5678, 100),
		Rationals(GPSAltitude, 12345, 100),
	}
}

// Without returns tags minus the ones with the given ids
func Without(tags []Tag, ids ...uint16) []Tag {
	var out []Tag
	for _, t := range tags {
		skip := false
		for _, id := range ids {
			if t.ID == id {
				skip = true
			}
		}
		if !skip {
			out = append(out, t)
		}
	}
	return out
}

// Replace returns tags with the entry sharing tag's id swapped for tag
func Replace(tags []Tag, tag Tag) []Tag {
	return append(Without(tags, tag.ID), tag)
}

// JPEG returns a minimal JPEG whose APP1 segment holds a big-endian TIFF
// with IFD0 pointing at a GPS IFD made of tags.
func JPEG(tags ...Tag) []byte {
	tiff := TIFF(tags...)

	var out bytes.Buffer
	out.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	binary.Write(&out, binary.BigEndian, uint16(2+6+len(tiff)))
	out.WriteString("Exif\x00\x00")
	out.Write(tiff)
	out.Write([]byte{0xFF, 0xD9})
	return out.Bytes()
}

// TIFF returns the raw TIFF block used by JPEG
func TIFF(tags ...Tag) []byte {
	sorted := append([]Tag(nil), tags...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	const ifd0Offset = 8
	const gpsOffset = ifd0Offset + 2 + 12 + 4
	dataOffset := gpsOffset + 2 + 12*len(sorted) + 4

	var buf bytes.Buffer
	buf.WriteString("MM")
	binary.Write(&buf, binary.BigEndian, uint16(42))
	binary.Write(&buf, binary.BigEndian, uint32(ifd0Offset))

	// IFD0: a single GPS pointer
	binary.Write(&buf, binary.BigEndian, uint16(1))
	writeEntry(&buf, gpsInfoIFDPointer, typeLong, 1, be32(gpsOffset))
	binary.Write(&buf, binary.BigEndian, uint32(0))

	var data bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint16(len(sorted)))
	for _, t := range sorted {
		if len(t.Value) <= 4 {
			v := make([]byte, 4)
			copy(v, t.Value)
			writeEntry(&buf, t.ID, t.Type, t.Count, v)
			continue
		}
		writeEntry(&buf, t.ID, t.Type, t.Count, be32(uint32(dataOffset+data.Len())))
		data.Write(t.Value)
		if data.Len()%2 == 1 {
			data.WriteByte(0)
		}
	}
	binary.Write(&buf, binary.BigEndian, uint32(0))
	buf.Write(data.Bytes())

	return buf.Bytes()
}

func writeEntry(buf *bytes.Buffer, id, typ uint16, count uint32, value []byte) {
	binary.Write(buf, binary.BigEndian, id)
	binary.Write(buf, binary.BigEndian, typ)
	binary.Write(buf, binary.BigEndian, count)
	buf.Write(value)
}

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}
