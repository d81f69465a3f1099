// Package workflow chains the combine and convert steps into one run.
package workflow

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/rahalio/data-extraction/internal/pkg/combiner"
	"github.com/rahalio/data-extraction/internal/pkg/converter"
)

const (
	// CombinedFileName is the intermediate artifact of the combine step.
	CombinedFileName = "combined_salesnav.json"
	// DefaultCSVFileName is the final artifact of the convert step.
	DefaultCSVFileName = "linkedin_companies.csv"
)

// Options for one workflow run.
type Options struct {
	InputPaths   []string // JSON export files, in discovery order
	OutputDir    string
	KeepCombined bool // keep the intermediate combined JSON artifact
	Progress     converter.ProgressFunc
}

// Result aggregates both steps.
type Result struct {
	Combine *combiner.Result
	Convert *converter.Result
	CSVPath string
}

type Workflow struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Workflow {
	return &Workflow{fs: fs}
}

// Run combines all input files into one JSON document and converts it to CSV.
// The intermediate artifact is removed at the end unless KeepCombined is set.
func (w *Workflow) Run(opts Options) (*Result, error) {
	combinedPath := filepath.Join(opts.OutputDir, CombinedFileName)
	csvPath := filepath.Join(opts.OutputDir, DefaultCSVFileName)

	combineResult, err := combiner.New(w.fs).Combine(opts.InputPaths, combinedPath)
	if err != nil {
		return nil, err
	}

	convertResult, err := converter.New(w.fs).
		WithProgress(opts.Progress).
		Convert([]string{combinedPath}, csvPath)
	if err != nil {
		return nil, err
	}

	if !opts.KeepCombined {
		_ = w.fs.Remove(combinedPath)
	}

	return &Result{
		Combine: combineResult,
		Convert: convertResult,
		CSVPath: csvPath,
	}, nil
}
