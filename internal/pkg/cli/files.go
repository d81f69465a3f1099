package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// inputDir resolves the input directory relative to the working directory.
func (root *rootCommand) inputDir() string {
	dir := root.options.InputDir
	if dir == "" {
		dir = "."
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root.options.WorkingDirectory, dir)
	}
	return dir
}

// outputPath resolves the output file relative to the input directory.
func (root *rootCommand) outputPath(defaultName string) string {
	out := root.options.Output
	if out == "" {
		out = defaultName
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(root.inputDir(), out)
	}
	return out
}

// discoverInputFiles lists files matching the pattern in the input directory,
// sorted by name. Files named as one of the excluded outputs are skipped, so
// a previous run's artifact is never consumed as input.
func (root *rootCommand) discoverInputFiles(exclude ...string) ([]string, error) {
	dir := root.inputDir()
	pattern := root.options.Pattern
	if pattern == "" {
		pattern = "*.json"
	}

	if ok, err := afero.DirExists(root.fs, dir); err != nil {
		return nil, fmt.Errorf("cannot check input directory \"%s\": %s", dir, err)
	} else if !ok {
		return nil, fmt.Errorf("input directory \"%s\" not found", dir)
	}

	matches, err := afero.Glob(root.fs, filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern \"%s\": %s", pattern, err)
	}

	excluded := make(map[string]bool)
	for _, name := range exclude {
		excluded[filepath.Base(name)] = true
	}

	var files []string
	for _, match := range matches {
		if isDir, err := afero.IsDir(root.fs, match); err != nil || isDir {
			continue
		}
		if excluded[filepath.Base(match)] {
			continue
		}
		files = append(files, match)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no files matching pattern \"%s\" found in \"%s\"", pattern, dir)
	}

	return files, nil
}
