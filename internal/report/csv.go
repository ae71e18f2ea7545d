// internal/report/csv.go
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/bstardust/djicoords/pkg/models"
)

// Sink receives report rows
type Sink interface {
	Write(rec *models.PhotoRecord) error
	Close() error
}

// CSVWriter writes report rows as CSV. The header is written on creation.
type CSVWriter struct {
	w      *csv.Writer
	closer io.Closer
	rows   int

	closeOnce sync.Once
	closeErr  error
}

// NewCSVWriter wraps w and writes the header row. If w is an io.Closer it is
// closed by Close.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := &CSVWriter{w: csv.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		cw.closer = c
	}
	if err := cw.w.Write(models.Header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	return cw, nil
}

// Create creates (or truncates) the report file at path
func Create(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	cw, err := NewCSVWriter(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return cw, nil
}

// Write appends one row
func (c *CSVWriter) Write(rec *models.PhotoRecord) error {
	if err := c.w.Write(rec.Record()); err != nil {
		return fmt.Errorf("failed to write row for %s: %w", rec.FileName, err)
	}
	c.rows++
	return nil
}

// Rows returns the number of rows written, excluding the header
func (c *CSVWriter) Rows() int {
	return c.rows
}

// Close flushes buffered rows and releases the underlying writer.
// Calls after the first return the first result.
func (c *CSVWriter) Close() error {
	c.closeOnce.Do(func() {
		c.w.Flush()
		c.closeErr = c.w.Error()
		if c.closer != nil {
			if err := c.closer.Close(); err != nil && c.closeErr == nil {
				c.closeErr = err
			}
		}
	})
	return c.closeErr
}
