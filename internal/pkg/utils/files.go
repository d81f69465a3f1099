package utils

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileExists returns true if file exists.
func FileExists(fs afero.Fs, path string) bool {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		panic(fmt.Errorf("cannot test if file exists \"%s\": %s", path, err))
	}
	return exists
}

// WriteFileAtomic writes content to a temporary file in the target directory
// and renames it into place, so an interrupted run never leaves behind
// a truncated file under the final name.
func WriteFileAtomic(fs afero.Fs, path string, content []byte) error {
	dir := filepath.Dir(path)
	temp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in \"%s\": %s", dir, err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(content); err != nil {
		_ = temp.Close()
		_ = fs.Remove(tempPath)
		return fmt.Errorf("cannot write file \"%s\": %s", tempPath, err)
	}
	if err := temp.Close(); err != nil {
		_ = fs.Remove(tempPath)
		return fmt.Errorf("cannot close file \"%s\": %s", tempPath, err)
	}

	if err := fs.Rename(tempPath, path); err != nil {
		_ = fs.Remove(tempPath)
		return fmt.Errorf("cannot write file \"%s\": %s", path, err)
	}
	return nil
}
