package extractor

import (
	"path/filepath"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Rule maps one output column to a value in the raw record.
//
// Either Path or Derive is set. Path is a dotted/indexed path expression,
// eg. "entityUrn" or "badges[0].text", resolved with the record's default
// ("") when any segment is absent or of an unexpected type. Derive computes
// the value from the whole record, for columns that are not a plain lookup.
// Post, when set, post-processes the final string value.
type Rule struct {
	Column string
	Path   string
	Derive func(data *orderedmap.OrderedMap, sourcePath string) string
	Post   func(value string) string
}

// SourceFileColumn carries the originating path in every row,
// for provenance tracing and deduplication downstream.
const SourceFileColumn = "source_file"

// DefaultRules is the full Sales Navigator company schema.
// The column order here defines the output column order.
func DefaultRules() []Rule {
	return []Rule{
		{Column: "companyName", Path: "companyName"},
		{Column: "industry", Path: "industry"},
		{Column: "employeeCountRange", Path: "employeeCountRange"},
		{Column: "employeeDisplayCount", Path: "employeeDisplayCount"},
		{Column: "listCount", Path: "listCount"},
		{Column: "saved", Path: "saved"},
		{Column: "entityUrn", Path: "entityUrn"},
		{Column: "linkedin_url", Derive: func(data *orderedmap.OrderedMap, sourcePath string) string {
			return BuildProfileURL(stringAt(data, "entityUrn"))
		}},
		{Column: "recipeType", Path: "$recipeType"},
		{Column: "trackingId", Path: "trackingId"},
		{Column: "description", Path: "description", Post: Normalize},
		{Column: "logo_100", Derive: logoRule(100)},
		{Column: "logo_200", Derive: logoRule(200)},
		{Column: "logo_400", Derive: logoRule(400)},
		{Column: "spotlightBadges", Derive: func(data *orderedmap.OrderedMap, sourcePath string) string {
			return joinBadges(data.GetOrNil("spotlightBadges"))
		}},
		{Column: SourceFileColumn, Derive: func(data *orderedmap.OrderedMap, sourcePath string) string {
			return filepath.Base(sourcePath)
		}},
	}
}

func logoRule(width int) func(data *orderedmap.OrderedMap, sourcePath string) string {
	return func(data *orderedmap.OrderedMap, sourcePath string) string {
		return pickArtifactURL(data.GetOrNil("companyPictureDisplayImage"), width)
	}
}

// stringAt resolves a path and stringifies the value, "" when absent.
func stringAt(data *orderedmap.OrderedMap, path string) string {
	result := evaluatePath(data, orderedmap.PathFromStr(path))
	if result.State != Found {
		return ""
	}
	value, ok := stringifyScalar(result.Value)
	if !ok {
		return ""
	}
	return value
}
