package extractor

import (
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/cast"
)

// stringifyScalar converts a scalar JSON value to its stable string form:
// booleans as lowercase true/false, whole numbers without a trailing decimal
// point, nil as "". Objects and arrays are not scalars, ok is false for them.
func stringifyScalar(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case bool, float64, float32, int, int64:
		return cast.ToString(v), true
	default:
		return "", false
	}
}

// pickArtifactURL selects the logo artifact with the given width from
// a picture object and joins it with the root URL. Falls back to the first
// artifact when no width matches, returns "" when anything is missing.
func pickArtifactURL(picture interface{}, targetWidth int) string {
	pic, ok := picture.(*orderedmap.OrderedMap)
	if !ok {
		return ""
	}

	root, _ := pic.GetOrNil("rootUrl").(string)
	artifacts, _ := pic.GetOrNil("artifacts").([]interface{})

	var chosen *orderedmap.OrderedMap
	for _, item := range artifacts {
		artifact, ok := item.(*orderedmap.OrderedMap)
		if !ok {
			continue
		}
		if cast.ToInt(artifact.GetOrNil("width")) == targetWidth {
			chosen = artifact
			break
		}
	}

	// Fallback to the first artifact
	if chosen == nil && len(artifacts) > 0 {
		chosen, _ = artifacts[0].(*orderedmap.OrderedMap)
	}
	if chosen == nil || root == "" {
		return ""
	}

	segment, _ := chosen.GetOrNil("fileIdentifyingUrlPathSegment").(string)
	if segment == "" {
		return ""
	}
	return root + segment
}

// joinBadges joins badge "id: displayValue" pairs with " | ".
func joinBadges(badges interface{}) string {
	items, ok := badges.([]interface{})
	if !ok {
		return ""
	}

	var parts []string
	for _, item := range items {
		badge, ok := item.(*orderedmap.OrderedMap)
		if !ok {
			continue
		}
		label, _ := badge.GetOrNil("id").(string)
		display, _ := badge.GetOrNil("displayValue").(string)
		if label == "" && display == "" {
			continue
		}
		parts = append(parts, strings.Trim(label+": "+display, ": "))
	}

	return strings.Join(parts, " | ")
}
