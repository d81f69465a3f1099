package record

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func TestLoadFilesObject(t *testing.T) {
	t.Parallel()
	fs := testFs(t, map[string]string{
		"one.json": `{"companyName": "Acme"}`,
	})

	result := NewLoader(fs).LoadFiles([]string{"one.json"})
	assert.Empty(t, result.Errors)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "one.json", result.Records[0].SourcePath)
	assert.Equal(t, "Acme", result.Records[0].Data.GetOrNil("companyName"))
}

func TestLoadFilesList(t *testing.T) {
	t.Parallel()
	fs := testFs(t, map[string]string{
		"list.json": `[{"companyName": "A"}, {"companyName": "B"}]`,
	})

	result := NewLoader(fs).LoadFiles([]string{"list.json"})
	assert.Empty(t, result.Errors)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "A", result.Records[0].Data.GetOrNil("companyName"))
	assert.Equal(t, "B", result.Records[1].Data.GetOrNil("companyName"))
}

func TestLoadFilesMalformedFileIsSkipped(t *testing.T) {
	t.Parallel()
	fs := testFs(t, map[string]string{
		"good1.json": `{"companyName": "A"}`,
		"bad.json":   `{"companyName": `,
		"good2.json": `{"companyName": "B"}`,
	})

	result := NewLoader(fs).LoadFiles([]string{"good1.json", "bad.json", "good2.json"})

	// The run completes, rows come only from the valid files
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "bad.json", result.Errors[0].Path)
	assert.Contains(t, result.Errors[0].Reason, "invalid JSON")
	require.Len(t, result.Records, 2)
	assert.Equal(t, "A", result.Records[0].Data.GetOrNil("companyName"))
	assert.Equal(t, "B", result.Records[1].Data.GetOrNil("companyName"))
}

func TestLoadFilesUnexpectedTopLevelType(t *testing.T) {
	t.Parallel()
	fs := testFs(t, map[string]string{
		"scalar.json": `"just a string"`,
		"number.json": `42`,
		"empty.json":  ``,
	})

	result := NewLoader(fs).LoadFiles([]string{"scalar.json", "number.json", "empty.json"})
	assert.Empty(t, result.Records)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0].Reason, "unexpected top-level JSON type")
	assert.Contains(t, result.Errors[1].Reason, "unexpected top-level JSON type")
	assert.Contains(t, result.Errors[2].Reason, "file is empty")
}

func TestLoadFilesMissingFile(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	result := NewLoader(fs).LoadFiles([]string{"missing.json"})
	assert.Empty(t, result.Records)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "missing.json", result.Errors[0].Path)
	assert.Contains(t, result.Errors[0].Reason, "cannot read file")
}

func TestLoadFilesListWithNonObjectElement(t *testing.T) {
	t.Parallel()
	fs := testFs(t, map[string]string{
		"mixed.json": `[{"companyName": "A"}, "oops", {"companyName": "B"}]`,
	})

	// Only the bad element is skipped, the objects around it are kept
	result := NewLoader(fs).LoadFiles([]string{"mixed.json"})
	require.Len(t, result.Records, 2)
	assert.Equal(t, "A", result.Records[0].Data.GetOrNil("companyName"))
	assert.Equal(t, "B", result.Records[1].Data.GetOrNil("companyName"))
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "mixed.json", result.Errors[0].Path)
	assert.Contains(t, result.Errors[0].Reason, "element [1] is not an object")
}

func TestLoadFilesPreservesOrder(t *testing.T) {
	t.Parallel()
	fs := testFs(t, map[string]string{
		"b.json": `[{"n": "1"}, {"n": "2"}]`,
		"a.json": `{"n": "3"}`,
	})

	// Records keep the order of the given paths, not the file names
	result := NewLoader(fs).LoadFiles([]string{"b.json", "a.json"})
	require.Len(t, result.Records, 3)
	assert.Equal(t, "1", result.Records[0].Data.GetOrNil("n"))
	assert.Equal(t, "2", result.Records[1].Data.GetOrNil("n"))
	assert.Equal(t, "3", result.Records[2].Data.GetOrNil("n"))
}

func TestLoadError(t *testing.T) {
	t.Parallel()
	err := LoadError{Path: "foo.json", Reason: "invalid JSON"}
	assert.Equal(t, "foo.json: invalid JSON", err.Error())
}
