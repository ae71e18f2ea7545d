package common

import (
	"errors"
	"fmt"
)

// Field error sentinels, matched with errors.Is against a *FieldError
var (
	ErrInvalidFieldShape = errors.New("invalid field shape")
	ErrInvalidRational   = errors.New("invalid rational value")
	ErrInvalidReference  = errors.New("invalid reference value")
	ErrInvalidAltitude   = errors.New("invalid altitude value")
)

// BatchSetupError is returned when a batch cannot start: the input root
// cannot be enumerated or the output file cannot be created.
type BatchSetupError struct {
	Op   string
	Path string
	Err  error
}

func (e *BatchSetupError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("Batch Setup Error: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("Batch Setup Error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *BatchSetupError) Unwrap() error {
	return e.Err
}

// ExifDecodeError means the file carries no parseable EXIF container
type ExifDecodeError struct {
	Path string
	Err  error
}

func (e *ExifDecodeError) Error() string {
	return fmt.Sprintf("EXIF Decode Error: %s: %v", e.Path, e.Err)
}

func (e *ExifDecodeError) Unwrap() error {
	return e.Err
}

// MissingGpsTagError names a required GPS tag that is absent
type MissingGpsTagError struct {
	Tag string
}

func (e *MissingGpsTagError) Error() string {
	return fmt.Sprintf("Missing GPS Tag: %s", e.Tag)
}

// FieldError reports a GPS tag that is present but has an unexpected value.
// Kind is one of the Err* sentinels above.
type FieldError struct {
	Kind    error
	Tag     string
	Message string
}

func (e *FieldError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Tag, e.Message)
}

func (e *FieldError) Is(target error) bool {
	return e.Kind == target
}

func NewBatchSetupError(op, path string, err error) error {
	return &BatchSetupError{Op: op, Path: path, Err: err}
}

func NewExifDecodeError(path string, err error) error {
	return &ExifDecodeError{Path: path, Err: err}
}

func NewMissingGpsTagError(tag string) error {
	return &MissingGpsTagError{Tag: tag}
}

func NewFieldError(kind error, tag, message string) error {
	return &FieldError{Kind: kind, Tag: tag, Message: message}
}

// WithTag returns a copy of a *FieldError labelled with the tag it came from.
// Other errors are returned unchanged.
func WithTag(err error, tag string) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{Kind: fe.Kind, Tag: tag, Message: fe.Message}
	}
	return err
}

// IsPerFile reports whether err only affects a single photo and should
// result in the photo being skipped.
func IsPerFile(err error) bool {
	if err == nil {
		return false
	}

	var decodeErr *ExifDecodeError
	var missingErr *MissingGpsTagError
	var fieldErr *FieldError
	return errors.As(err, &decodeErr) || errors.As(err, &missingErr) || errors.As(err, &fieldErr)
}
