// Package converter runs the JSON to CSV pipeline:
// load -> extract -> reconcile columns -> write.
//
// Per-file and per-field problems are absorbed and surfaced in aggregate,
// the converter always writes a best-effort CSV from whatever records parsed
// successfully. Only a missing input set or an unwritable output is fatal.
package converter

import (
	"errors"

	"github.com/spf13/afero"

	"github.com/rahalio/data-extraction/internal/pkg/extractor"
	"github.com/rahalio/data-extraction/internal/pkg/record"
	"github.com/rahalio/data-extraction/internal/pkg/table"
)

// ErrNoInputFiles - the run is meaningless, no input file was resolved at all.
// Distinct from "some files matched, but none parsed", which is not fatal.
var ErrNoInputFiles = errors.New("no input files found")

// ProgressFunc is called after each processed file.
type ProgressFunc func(done, total int)

// Result of one convert operation.
type Result struct {
	RowsWritten int
	Accepted    int
	Duplicates  int
	FilesFailed int
	OutputPath  string
	Errors      []record.LoadError
}

type Converter struct {
	fs       afero.Fs
	rules    []extractor.Rule
	dedup    bool
	progress ProgressFunc
}

func New(fs afero.Fs) *Converter {
	return &Converter{fs: fs, rules: extractor.DefaultRules(), dedup: true}
}

// WithRules overrides the default extraction schema.
func (c *Converter) WithRules(rules []extractor.Rule) *Converter {
	c.rules = rules
	return c
}

// WithDeduplication toggles skipping of records with an already seen entity URN.
func (c *Converter) WithDeduplication(enabled bool) *Converter {
	c.dedup = enabled
	return c
}

// WithProgress registers a callback invoked after each processed file.
func (c *Converter) WithProgress(fn ProgressFunc) *Converter {
	c.progress = fn
	return c
}

// Convert processes the input files in order and writes the CSV artifact.
func (c *Converter) Convert(paths []string, outputPath string) (*Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoInputFiles
	}

	loader := record.NewLoader(c.fs)
	fieldExtractor := extractor.NewExtractorWithRules(c.rules, c.dedup)
	result := &Result{OutputPath: outputPath}

	// The schema columns are always present in the header,
	// even when no record survives extraction.
	reconciler := table.NewReconciler()
	for _, rule := range c.rules {
		reconciler.AddColumns(rule.Column)
	}

	// Process files strictly in the discovered order,
	// the output column order depends on it.
	for i, path := range paths {
		loaded := loader.LoadFiles([]string{path})
		result.Errors = append(result.Errors, loaded.Errors...)
		if len(loaded.Records) == 0 && len(loaded.Errors) > 0 {
			result.FilesFailed++
		}
		for _, rec := range loaded.Records {
			if row, ok := fieldExtractor.ExtractRow(rec); ok {
				reconciler.AddRow(row)
			}
		}
		if c.progress != nil {
			c.progress(i+1, len(paths))
		}
	}

	if err := table.NewWriter(c.fs).WriteFile(outputPath, reconciler); err != nil {
		return nil, err
	}

	stats := fieldExtractor.Stats()
	result.RowsWritten = reconciler.Len()
	result.Accepted = stats.Accepted
	result.Duplicates = stats.Duplicates
	return result, nil
}
