// Package combiner merges multiple JSON export files into one JSON document.
//
// Top-level arrays are extended element by element, top-level objects are
// appended as a single record. Files that fail to parse are skipped and
// reported, the run fails only when no file could be processed at all.
package combiner

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/rahalio/data-extraction/internal/pkg/json"
	"github.com/rahalio/data-extraction/internal/pkg/record"
	"github.com/rahalio/data-extraction/internal/pkg/utils"
)

// Result of one combine operation.
type Result struct {
	FilesProcessed int
	FilesSkipped   int
	TotalRecords   int
	OutputPath     string
	Errors         []record.LoadError
}

type Combiner struct {
	fs     afero.Fs
	loader *record.Loader
}

func New(fs afero.Fs) *Combiner {
	return &Combiner{fs: fs, loader: record.NewLoader(fs)}
}

// Combine merges the given files into one pretty-printed JSON array.
func (c *Combiner) Combine(paths []string, outputPath string) (*Result, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files to combine")
	}

	loaded := c.loader.LoadFiles(paths)

	// A file counts as skipped only when it contributed no record at all,
	// a list with one bad element among valid ones is still processed.
	failed := make(map[string]bool)
	for _, loadErr := range loaded.Errors {
		failed[loadErr.Path] = true
	}
	for _, rec := range loaded.Records {
		delete(failed, rec.SourcePath)
	}

	processed := len(paths) - len(failed)
	if processed == 0 {
		err := utils.NewError()
		err.SetPrefix("no file was successfully processed:")
		for _, loadErr := range loaded.Errors {
			err.Add(loadErr)
		}
		return nil, err
	}

	combined := make([]interface{}, 0, len(loaded.Records))
	for _, rec := range loaded.Records {
		combined = append(combined, rec.Data)
	}

	content, err := json.Encode(combined, true)
	if err != nil {
		return nil, fmt.Errorf("cannot encode combined JSON: %s", err)
	}
	if err := utils.WriteFileAtomic(c.fs, outputPath, content); err != nil {
		return nil, err
	}

	return &Result{
		FilesProcessed: processed,
		FilesSkipped:   len(failed),
		TotalRecords:   len(loaded.Records),
		OutputPath:     outputPath,
		Errors:         loaded.Errors,
	}, nil
}
