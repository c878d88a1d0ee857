package ichor

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MaybeEmptyList is a list the API sends as `{}` when it has no
// items and as a JSON array otherwise. Both `{}` and `[]` decode
// to an empty list.
type MaybeEmptyList[T any] []T

var (
	_ json.Unmarshaler = (*MaybeEmptyList[string])(nil)
	_ json.Marshaler   = MaybeEmptyList[string](nil)
)

// UnmarshalJSON accepts any JSON object (its keys are ignored) as
// an empty list, or an array of T. Every other shape is an error.
func (l *MaybeEmptyList[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("expected empty object or array, got nothing")
	}

	switch trimmed[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		*l = MaybeEmptyList[T]{}
		return nil
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = MaybeEmptyList[T](items)
		return nil
	default:
		return fmt.Errorf("expected empty object or array, got %s", shapeOf(trimmed))
	}
}

// MarshalJSON always emits an array, `[]` when empty.
func (l MaybeEmptyList[T]) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]T(l))
}

// Items returns the list as a plain slice, never nil
func (l MaybeEmptyList[T]) Items() []T {
	if l == nil {
		return []T{}
	}
	return []T(l)
}

// IsEmpty is true for both the `{}` and `[]` encodings
func (l MaybeEmptyList[T]) IsEmpty() bool {
	return len(l) == 0
}

// Equal compares two lists element by element
func (l MaybeEmptyList[T]) Equal(other MaybeEmptyList[T], eq func(a, b T) bool) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !eq(l[i], other[i]) {
			return false
		}
	}
	return true
}

func shapeOf(data []byte) string {
	switch data[0] {
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
