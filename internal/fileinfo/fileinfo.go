package fileinfo

import (
	"path/filepath"
	"strings"
)

// IsJPEGFile checks if a file has a .jpg extension, ignoring case
func IsJPEGFile(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".jpg")
}

// IsCSVFile checks if a file has a .csv extension, ignoring case
func IsCSVFile(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".csv")
}

// GetContentType returns the content type for a report or photo file
func GetContentType(filename string) string {
	switch {
	case IsCSVFile(filename):
		return "text/csv"
	case IsJPEGFile(filename):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
