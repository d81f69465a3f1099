package extractor

import (
	"github.com/keboola/go-utils/pkg/orderedmap"
)

// PathState describes the outcome of a path lookup.
type PathState int

const (
	// Found - path resolved to a value.
	Found PathState = iota
	// NotFound - some segment of the path is absent.
	NotFound
	// TypeMismatch - some segment expects an object/array, but the value has a different type.
	TypeMismatch
)

func (s PathState) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	default:
		return "type mismatch"
	}
}

// PathValue is the result of evaluating a path expression against a record.
type PathValue struct {
	State PathState
	Value interface{}
}

// evaluatePath resolves a dotted/indexed path, eg. "badges[0].text", in the record.
// Absence is normal, not exceptional: out-of-range indexes and missing keys
// yield NotFound, wrong container types yield TypeMismatch, nothing panics.
func evaluatePath(data *orderedmap.OrderedMap, path orderedmap.Path) PathValue {
	var current interface{} = data
	for _, step := range path {
		switch step := step.(type) {
		case orderedmap.MapStep:
			m, ok := current.(*orderedmap.OrderedMap)
			if !ok {
				return PathValue{State: TypeMismatch}
			}
			value, found := m.Get(string(step))
			if !found {
				return PathValue{State: NotFound}
			}
			current = value
		case orderedmap.SliceStep:
			s, ok := current.([]interface{})
			if !ok {
				return PathValue{State: TypeMismatch}
			}
			index := int(step)
			if index < 0 || index >= len(s) {
				return PathValue{State: NotFound}
			}
			current = s[index]
		default:
			return PathValue{State: TypeMismatch}
		}
	}
	return PathValue{State: Found, Value: current}
}
