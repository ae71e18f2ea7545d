// Package batch turns a list of photo paths into a GPS report. Photos that
// fail to extract are skipped; only setup failures abort a run.
package batch

import (
	"errors"
	"fmt"

	"github.com/bstardust/djicoords/internal/exif"
	"github.com/bstardust/djicoords/internal/fshelper"
	"github.com/bstardust/djicoords/internal/progress"
	"github.com/bstardust/djicoords/internal/report"
	"github.com/bstardust/djicoords/pkg/common"
	"github.com/bstardust/djicoords/pkg/models"
)

// ExtractFunc builds the report row for one photo
type ExtractFunc func(path string) (*models.PhotoRecord, error)

// SinkFactory opens the report destination
type SinkFactory func(path string) (report.Sink, error)

// Result is the outcome of one photo: a row or the reason it was dropped
type Result struct {
	Path   string
	Record *models.PhotoRecord
	Err    error
}

// OK reports whether the photo produced a row
func (r Result) OK() bool {
	return r.Err == nil && r.Record != nil
}

// Processor runs batches
type Processor struct {
	source   fshelper.PathSource
	extract  ExtractFunc
	openSink SinkFactory
	progress *progress.Reporter
}

// Option configures a Processor
type Option func(*Processor)

// WithExtractor replaces the EXIF extractor
func WithExtractor(fn ExtractFunc) Option {
	return func(p *Processor) { p.extract = fn }
}

// WithSinkFactory replaces the CSV file sink
func WithSinkFactory(fn SinkFactory) Option {
	return func(p *Processor) { p.openSink = fn }
}

// New creates a Processor reading candidate paths from source
func New(source fshelper.PathSource, opts ...Option) *Processor {
	p := &Processor{
		source:   source,
		extract:  exif.Extract,
		openSink: createCSV,
		progress: progress.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func createCSV(path string) (report.Sink, error) {
	return report.Create(path)
}

// Process walks inputRoot recursively and writes the report to outputPath.
// It returns the number of rows written.
func Process(inputRoot, outputPath string) (int, error) {
	summary, err := New(fshelper.NewDirSource(true)).Run(inputRoot, outputPath)
	return summary.Processed, err
}

// Run enumerates inputRoot, opens outputPath and folds every photo into it
func (p *Processor) Run(inputRoot, outputPath string) (summary progress.Summary, err error) {
	if inputRoot == "" {
		return summary, common.NewBatchSetupError("enumerate input", "", errors.New("input folder is required"))
	}
	if outputPath == "" {
		return summary, common.NewBatchSetupError("create output", "", errors.New("output file is required"))
	}

	paths, err := p.source.Paths(inputRoot)
	if err != nil {
		return summary, common.NewBatchSetupError("enumerate input", inputRoot, err)
	}

	sink, err := p.openSink(outputPath)
	if err != nil {
		return summary, common.NewBatchSetupError("create output", outputPath, err)
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to finalize report %s: %w", outputPath, cerr)
		}
	}()

	p.progress.Start(len(paths))
	if err := p.Fold(paths, sink); err != nil {
		return p.progress.Finish(), err
	}
	return p.progress.Finish(), nil
}

// Fold extracts each path in order and writes successful rows to sink.
// Extraction failures are recorded and skipped; a sink write failure stops
// the fold.
func (p *Processor) Fold(paths []string, sink report.Sink) error {
	for _, path := range paths {
		res := p.extractOne(path)
		if !res.OK() {
			p.progress.Skip(res.Path, res.Err)
			continue
		}

		if err := sink.Write(res.Record); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
		p.progress.Complete(res.Path)
	}
	return nil
}

func (p *Processor) extractOne(path string) Result {
	rec, err := p.extract(path)
	if err == nil && rec == nil {
		err = errors.New("extractor returned no record")
	}
	return Result{Path: path, Record: rec, Err: err}
}
