package table

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/rahalio/data-extraction/internal/pkg/utils"
)

// Writer serializes reconciled rows to a CSV file.
type Writer struct {
	fs afero.Fs
}

func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// WriteFile writes the header and all rows to the given path.
// The content is first written to a temporary file in the target directory
// and then renamed into place, an interrupted run never leaves behind
// a truncated CSV under the final name.
func (w *Writer) WriteFile(path string, r *Reconciler) error {
	content, err := Render(r)
	if err != nil {
		return err
	}
	return utils.WriteFileAtomic(w.fs, path, []byte(content))
}

// Render serializes the header and all rows to a CSV string.
// Quoting and escaping follow the standard CSV rules.
func Render(r *Reconciler) (string, error) {
	var sb strings.Builder
	csvWriter := csv.NewWriter(&sb)

	if err := csvWriter.Write(r.Columns()); err != nil {
		return "", fmt.Errorf("cannot write CSV header: %s", err)
	}

	for i, row := range r.Rows() {
		if err := csvWriter.Write(r.Cells(row)); err != nil {
			return "", fmt.Errorf("cannot write CSV row %d: %s", i, err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return "", fmt.Errorf("cannot flush CSV writer: %s", err)
	}

	return sb.String(), nil
}
