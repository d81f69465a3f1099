package extractor

import (
	"encoding/json"
	"testing"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMap(t *testing.T, content string) *orderedmap.OrderedMap {
	t.Helper()
	data := orderedmap.New()
	require.NoError(t, json.Unmarshal([]byte(content), data))
	return data
}

func TestStringifyScalar(t *testing.T) {
	t.Parallel()

	value, ok := stringifyScalar("foo")
	assert.True(t, ok)
	assert.Equal(t, "foo", value)

	value, ok = stringifyScalar(true)
	assert.True(t, ok)
	assert.Equal(t, "true", value)

	value, ok = stringifyScalar(false)
	assert.True(t, ok)
	assert.Equal(t, "false", value)

	// Whole numbers without a trailing decimal point
	value, ok = stringifyScalar(float64(42))
	assert.True(t, ok)
	assert.Equal(t, "42", value)

	value, ok = stringifyScalar(float64(1.5))
	assert.True(t, ok)
	assert.Equal(t, "1.5", value)

	value, ok = stringifyScalar(nil)
	assert.True(t, ok)
	assert.Equal(t, "", value)

	// Objects and arrays are not scalars
	_, ok = stringifyScalar(orderedmap.New())
	assert.False(t, ok)
	_, ok = stringifyScalar([]interface{}{"foo"})
	assert.False(t, ok)
}

func TestPickArtifactURL(t *testing.T) {
	t.Parallel()
	picture := decodeMap(t, `{
		"rootUrl": "https://media.licdn.com/logo/",
		"artifacts": [
			{"width": 100, "fileIdentifyingUrlPathSegment": "100/img.png"},
			{"width": 200, "fileIdentifyingUrlPathSegment": "200/img.png"}
		]
	}`)

	// Matching width
	assert.Equal(t, "https://media.licdn.com/logo/200/img.png", pickArtifactURL(picture, 200))

	// No match -> fallback to the first artifact
	assert.Equal(t, "https://media.licdn.com/logo/100/img.png", pickArtifactURL(picture, 400))

	// Missing root URL
	assert.Equal(t, "", pickArtifactURL(decodeMap(t, `{"artifacts": [{"width": 100, "fileIdentifyingUrlPathSegment": "x"}]}`), 100))

	// Missing path segment
	assert.Equal(t, "", pickArtifactURL(decodeMap(t, `{"rootUrl": "https://cdn/", "artifacts": [{"width": 100}]}`), 100))

	// Not a picture object at all
	assert.Equal(t, "", pickArtifactURL(nil, 100))
	assert.Equal(t, "", pickArtifactURL("foo", 100))
	assert.Equal(t, "", pickArtifactURL(decodeMap(t, `{}`), 100))
}

func TestJoinBadges(t *testing.T) {
	t.Parallel()

	badges := decodeMap(t, `{"badges": [
		{"id": "HIRING", "displayValue": "Hiring on LinkedIn"},
		{"id": "GROWTH", "displayValue": ""},
		{"id": "", "displayValue": "Recent activity"},
		{"id": "", "displayValue": ""}
	]}`).GetOrNil("badges")

	assert.Equal(t, "HIRING: Hiring on LinkedIn | GROWTH | Recent activity", joinBadges(badges))

	assert.Equal(t, "", joinBadges(nil))
	assert.Equal(t, "", joinBadges("foo"))
	assert.Equal(t, "", joinBadges([]interface{}{}))
}
