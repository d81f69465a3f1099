package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvNamingConvention(t *testing.T) {
	t.Parallel()
	envNaming := &envNamingConvention{}
	assert.Equal(t, "SALESNAV_FOO", envNaming.Replace("foo"))
	assert.Equal(t, "SALESNAV_FOO_BAR", envNaming.Replace("foo-bar"))
	assert.Equal(t, "SALESNAV_INPUT_DIR", envNaming.Replace("input-dir"))
}

func TestEnvNamingConventionEmptyFlag(t *testing.T) {
	t.Parallel()
	envNaming := &envNamingConvention{}
	assert.PanicsWithError(t, "flag name cannot be empty", func() {
		envNaming.Replace("")
	})
}
