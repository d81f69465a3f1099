package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorEmpty(t *testing.T) {
	t.Parallel()
	e := NewError()
	assert.Equal(t, 0, e.Len())
	assert.Equal(t, "", e.Error())
	assert.NoError(t, e.ErrorOrNil())
}

func TestErrorAccumulates(t *testing.T) {
	t.Parallel()
	e := NewError()
	e.Add(fmt.Errorf("first"))
	e.Addf("second %d", 2)

	assert.Equal(t, 2, e.Len())
	assert.Equal(t, "- first\n- second 2", e.Error())
	assert.Error(t, e.ErrorOrNil())
}

func TestErrorPrefix(t *testing.T) {
	t.Parallel()
	e := NewError()
	e.SetPrefix("operation failed:")
	e.Add(fmt.Errorf("boom"))
	assert.Equal(t, "operation failed:\n- boom", e.Error())
}

func TestErrorAddFlattensNested(t *testing.T) {
	t.Parallel()
	inner := NewError()
	inner.Add(fmt.Errorf("a"))
	inner.Add(fmt.Errorf("b"))

	e := NewError()
	e.Add(inner)
	assert.Equal(t, 2, e.Len())
	assert.Equal(t, "- a\n- b", e.Error())
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	e := WrapError("cannot load file", fmt.Errorf("permission denied"))
	assert.Equal(t, "cannot load file:\n- permission denied", e.Error())
}

func TestErrorAddSubError(t *testing.T) {
	t.Parallel()
	sub := NewError()
	sub.Add(fmt.Errorf("a"))
	sub.Add(fmt.Errorf("b"))

	e := NewError()
	e.AddSubError("in file \"x.json\"", sub)
	assert.Equal(t, "- in file \"x.json\":\n\t- a\n\t- b", e.Error())
}
