// Package record loads raw JSON records from export files.
//
// Each input file contains either one object or a list of objects. A file
// that cannot be parsed produces a LoadError and is skipped, and inside
// a list every non-object element produces its own LoadError while the
// object elements around it are kept. The run is never aborted because
// of one bad file or element.
package record

import (
	"fmt"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Record is one parsed source entity, before extraction.
// Data preserves the key order of the original JSON document.
type Record struct {
	SourcePath string
	Data       *orderedmap.OrderedMap
}

// LoadError describes one file that could not be processed.
type LoadError struct {
	Path   string
	Reason string
}

func (e LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Result of loading all input files.
type Result struct {
	Records []Record
	Errors  []LoadError
}

func (r *Result) AddError(path, reason string) {
	r.Errors = append(r.Errors, LoadError{Path: path, Reason: reason})
}
