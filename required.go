package ichor

import (
	"fmt"
	"reflect"

	"github.com/fatih/structtag"
)

// checkRequired walks a decoded JSON value alongside the Go type it's
// about to be unmarshalled into, and reports the first required key
// that is missing or null. encoding/json silently zero-fills those,
// and treats null as a no-op for structs and list elements.
//
// Only pointers may be null. A json tag with `omitempty` (flag booleans
// that default to false) lets the key be missing, not null.
func checkRequired(t reflect.Type, value interface{}, path string) error {
	if value == nil {
		if t.Kind() == reflect.Ptr {
			return nil
		}
		return nullError(t, path)
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := value.(map[string]interface{})
		if !ok {
			// type mismatches are reported by encoding/json
			return nil
		}

		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.PkgPath != "" {
				continue
			}

			name, optional, err := jsonKey(field)
			if err != nil {
				return err
			}
			if name == "-" {
				continue
			}

			fieldPath := joinPath(path, name)
			fieldValue, present := obj[name]
			if !present {
				if optional || field.Type.Kind() == reflect.Ptr {
					continue
				}
				return fmt.Errorf("missing required field %q", fieldPath)
			}

			err = checkRequired(field.Type, fieldValue, fieldPath)
			if err != nil {
				return err
			}
		}
	case reflect.Slice:
		arr, ok := value.([]interface{})
		if !ok {
			// MaybeEmptyList sent as `{}`
			return nil
		}
		for i, el := range arr {
			err := checkRequired(t.Elem(), el, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func nullError(t reflect.Type, path string) error {
	expected := "value"
	switch t.Kind() {
	case reflect.Struct:
		expected = "object"
	case reflect.Slice:
		expected = "empty object or array"
	case reflect.String:
		expected = "string"
	case reflect.Bool:
		expected = "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		expected = "number"
	}

	if path == "" {
		return fmt.Errorf("expected %s, got null", expected)
	}
	return fmt.Errorf("%q: expected %s, got null", path, expected)
}

func jsonKey(field reflect.StructField) (name string, optional bool, err error) {
	tags, err := structtag.Parse(string(field.Tag))
	if err != nil {
		return "", false, fmt.Errorf("parsing tags of %s: %s", field.Name, err.Error())
	}

	jsonTag, err := tags.Get("json")
	if err != nil {
		return field.Name, false, nil
	}

	name = jsonTag.Name
	if name == "" {
		name = field.Name
	}
	return name, jsonTag.HasOption("omitempty"), nil
}

func joinPath(parent string, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
