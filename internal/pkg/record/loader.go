package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/afero"
)

// Loader reads JSON files from the filesystem.
type Loader struct {
	fs afero.Fs
}

func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// LoadFiles parses all given paths, in order.
// Records keep the order of the files and the order within each file.
func (l *Loader) LoadFiles(paths []string) *Result {
	result := &Result{}
	for _, path := range paths {
		l.loadFile(result, path)
	}
	return result
}

func (l *Loader) loadFile(result *Result, path string) {
	content, err := afero.ReadFile(l.fs, path)
	if err != nil {
		result.AddError(path, fmt.Sprintf("cannot read file: %s", err))
		return
	}

	trimmed := bytes.TrimLeft(content, " \t\r\n")
	if len(trimmed) == 0 {
		result.AddError(path, "file is empty")
		return
	}

	switch trimmed[0] {
	case '{':
		l.decodeObject(result, path, content)
	case '[':
		l.decodeList(result, path, content)
	default:
		result.AddError(path, "unexpected top-level JSON type, expected object or array")
	}
}

func (l *Loader) decodeObject(result *Result, path string, content []byte) {
	data := orderedmap.New()
	if err := json.Unmarshal(content, data); err != nil {
		result.AddError(path, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	result.Records = append(result.Records, Record{SourcePath: path, Data: data})
}

// decodeList accepts the object elements of a top-level list.
// A non-object element is recorded as one LoadError and skipped,
// the valid elements around it are kept.
func (l *Loader) decodeList(result *Result, path string, content []byte) {
	var items []json.RawMessage
	if err := json.Unmarshal(content, &items); err != nil {
		result.AddError(path, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	for i, item := range items {
		data := orderedmap.New()
		if err := json.Unmarshal(item, data); err != nil {
			result.AddError(path, fmt.Sprintf("element [%d] is not an object: %s", i, err))
			continue
		}
		result.Records = append(result.Records, Record{SourcePath: path, Data: data})
	}
}
